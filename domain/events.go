package domain

import (
	"context"
	"time"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// OTP verification events
	OTPRequestedEvent    AuditEventType = "OTP_REQUESTED"
	OTPVerifiedEvent     AuditEventType = "OTP_VERIFIED"
	OTPVerifyFailedEvent AuditEventType = "OTP_VERIFY_FAILED"

	// KYC events
	KYCApprovedEvent AuditEventType = "KYC_APPROVED"
	KYCRejectedEvent AuditEventType = "KYC_REJECTED"

	// Authentication events
	UserLoginEvent      AuditEventType = "USER_LOGIN"
	UserRegisteredEvent AuditEventType = "USER_REGISTERED"
	UserLogoutEvent     AuditEventType = "USER_LOGOUT"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType    AuditEventType         `json:"event_type"`
	ActorID      uint                   `json:"actor_id,omitempty"`
	Email        string                 `json:"email,omitempty"`
	ResourceType string                 `json:"resource_type,omitempty"`
	ResourceID   string                 `json:"resource_id,omitempty"`
	Timestamp    time.Time              `json:"timestamp"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	ErrorMsg     string                 `json:"error_msg,omitempty"`
	Success      bool                   `json:"success"`
}

// AuditLogger defines operations for audit logging
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent)
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithActor sets the acting account id
func (e *AuditEvent) WithActor(id uint) *AuditEvent {
	e.ActorID = id
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithResource sets the resource binding the event refers to
func (e *AuditEvent) WithResource(resourceType, resourceID string) *AuditEvent {
	e.ResourceType = resourceType
	e.ResourceID = resourceID
	return e
}

// WithError marks the event as failed and records the cause
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithMetadata adds metadata to the event
func (e *AuditEvent) WithMetadata(key string, value interface{}) *AuditEvent {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}
