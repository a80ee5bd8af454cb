package domain

import (
	"errors"
	"testing"
	"time"
)

func TestKYCStatus_Bucket(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		status KYCStatus
		want   KYCBucket
	}{
		{
			name:   "fresh account is pending",
			status: KYCStatus{},
			want:   KYCBucketPending,
		},
		{
			name: "verified account is approved",
			status: KYCStatus{
				Verified:   true,
				VerifiedAt: &now,
				VerifiedBy: 7,
			},
			want: KYCBucketApproved,
		},
		{
			name: "rejected account is rejected",
			status: KYCStatus{
				Rejected:        true,
				RejectionReason: "documents unreadable",
			},
			want: KYCBucketRejected,
		},
		{
			name: "re-approved account is approved even with a historical reason",
			status: KYCStatus{
				Verified:        true,
				Rejected:        false,
				RejectionReason: "documents unreadable",
				VerifiedAt:      &now,
			},
			want: KYCBucketApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Bucket(); got != tt.want {
				t.Errorf("Bucket() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOTPRecord_Expiry(t *testing.T) {
	rec := OTPRecord{
		ResourceType: "order",
		ResourceID:   "ORD123",
		Email:        "a@b.com",
		Code:         "123456",
		ExpiresAt:    time.Now().Add(5 * time.Minute),
	}

	if rec.ExpiresAt.Before(time.Now()) {
		t.Error("record should not be expired immediately after creation")
	}
}

func TestNewAuditEvent(t *testing.T) {
	e := NewAuditEvent(OTPVerifiedEvent).
		WithActor(42).
		WithEmail("a@b.com").
		WithResource("order", "ORD123").
		WithMetadata("transaction_id", "tx-1")

	if e.EventType != OTPVerifiedEvent {
		t.Errorf("expected event type %q, got %q", OTPVerifiedEvent, e.EventType)
	}
	if !e.Success {
		t.Error("new events should default to success")
	}
	if e.ActorID != 42 || e.Email != "a@b.com" {
		t.Errorf("actor fields not applied: %+v", e)
	}
	if e.ResourceType != "order" || e.ResourceID != "ORD123" {
		t.Errorf("resource binding not applied: %+v", e)
	}
	if e.Metadata["transaction_id"] != "tx-1" {
		t.Errorf("metadata not applied: %+v", e.Metadata)
	}
	if e.Timestamp.IsZero() {
		t.Error("timestamp should be populated")
	}

	e.WithError(errors.New("boom"))
	if e.Success || e.ErrorMsg != "boom" {
		t.Errorf("WithError should flip success and record the cause: %+v", e)
	}
}
