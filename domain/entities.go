package domain

import "time"

// Account roles
const (
	RoleOwner    = "owner"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// KYCBucket is the admin dashboard filter over provider verification state
type KYCBucket string

const (
	KYCBucketPending  KYCBucket = "pending"
	KYCBucketApproved KYCBucket = "approved"
	KYCBucketRejected KYCBucket = "rejected"
)

// User represents a marketplace account (pet owner, service provider or admin)
type User struct {
	ID           uint
	Email        string
	Phone        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	IsActive     bool
	KYC          KYCStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// KYCStatus is the verification sub-document embedded in a provider account.
// Verified and Rejected are never both true in the steady state; re-approval
// from the rejected state clears Rejected.
type KYCStatus struct {
	Verified        bool
	Rejected        bool
	RejectionReason string
	VerifiedAt      *time.Time
	VerifiedBy      uint
}

// Bucket maps the status pair onto the admin dashboard buckets.
func (s KYCStatus) Bucket() KYCBucket {
	switch {
	case s.Verified:
		return KYCBucketApproved
	case s.Rejected:
		return KYCBucketRejected
	default:
		return KYCBucketPending
	}
}

// OTPRecord is the live one-time code bound to a (resourceType, resourceID,
// email) triple. At most one live record exists per resource pair; issuing
// a new code supersedes any prior record for that pair.
type OTPRecord struct {
	ResourceType  string    `json:"resource_type"`
	ResourceID    string    `json:"resource_id"`
	Email         string    `json:"email"`
	Code          string    `json:"code"`
	TransactionID string    `json:"transaction_id"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// VerificationResult is returned synchronously from the verify operation.
// It is never persisted.
type VerificationResult struct {
	Valid         bool
	Message       string
	TransactionID string
}

// Verification is the audit row written once a resource passes OTP
// verification.
type Verification struct {
	ID            uint
	ResourceType  string
	ResourceID    string
	Email         string
	TransactionID string
	VerifiedAt    time.Time
}

// Announcement is a platform-wide notice published by an admin.
type Announcement struct {
	ID        uint
	Title     string
	Body      string
	CreatedBy uint
	CreatedAt time.Time
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// Session represents a logged-in user session
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
