package domain

import (
	"context"
	"time"
)

// UserRepository defines account data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	ApplyKYC(ctx context.Context, userID uint, status KYCStatus) error
	ListProviders(ctx context.Context, bucket KYCBucket) ([]*User, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// OTPStore persists live OTP records keyed by (resourceType, resourceID).
// Put overwrites any prior live record for the pair. Consume is an atomic
// compare-and-delete: it removes the record only when the submitted code
// matches, so two racing verifies cannot both succeed.
type OTPStore interface {
	Put(ctx context.Context, rec *OTPRecord, ttl time.Duration) error
	Get(ctx context.Context, resourceType, resourceID string) (*OTPRecord, error)
	Consume(ctx context.Context, resourceType, resourceID, code string) (*OTPRecord, error)
	Drop(ctx context.Context, resourceType, resourceID string) error
	IncrAttempts(ctx context.Context, resourceType, resourceID string, ttl time.Duration) (int64, error)
	ResendWait(ctx context.Context, resourceType, resourceID string) (time.Duration, error)
	SetResendThrottle(ctx context.Context, resourceType, resourceID string, window time.Duration) error
}

// VerificationRepository records completed resource verifications
type VerificationRepository interface {
	Create(ctx context.Context, v *Verification) error
	FindByResource(ctx context.Context, resourceType, resourceID string) (*Verification, error)
}

// AnnouncementRepository defines announcement data access operations
type AnnouncementRepository interface {
	Create(ctx context.Context, a *Announcement) error
	List(ctx context.Context) ([]*Announcement, error)
	Delete(ctx context.Context, id uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, phone, password, role string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
}

// OTPService issues and verifies resource-bound one-time codes
type OTPService interface {
	Send(ctx context.Context, resourceType, resourceID, email string) error
	Verify(ctx context.Context, resourceType, resourceID, code string) (*VerificationResult, error)
}

// KYCService drives the provider approval state machine
type KYCService interface {
	Approve(ctx context.Context, adminID, providerID uint) (*User, error)
	Reject(ctx context.Context, adminID, providerID uint, reason string) (*User, error)
	ListProviders(ctx context.Context, bucket KYCBucket) ([]*User, error)
}

// AnnouncementService defines announcement business logic
type AnnouncementService interface {
	Publish(ctx context.Context, adminID uint, title, body string) (*Announcement, error)
	List(ctx context.Context) ([]*Announcement, error)
	Remove(ctx context.Context, id uint) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, role string, sessionID string) (string, error)
	GenerateRefreshToken(userID uint, role string, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines outbound notification operations
type NotificationService interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, message string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer is the subset of the Casbin enforcer the service relies on
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
