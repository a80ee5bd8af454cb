package domain

import "errors"

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrRoleNotAllowed     = errors.New("role not allowed")
)

// OTP errors
var (
	ErrOTPNotFound        = errors.New("otp not found or expired")
	ErrOTPInvalid         = errors.New("incorrect otp code")
	ErrOTPMaxAttempts     = errors.New("maximum otp attempts exceeded")
	ErrOTPResendThrottled = errors.New("otp resend throttled")
)

// KYC errors
var (
	ErrNotProvider          = errors.New("account is not a service provider")
	ErrEmptyRejectionReason = errors.New("rejection reason is required")
	ErrInvalidKYCBucket     = errors.New("invalid kyc filter")
)

// Announcement errors
var (
	ErrEmptyAnnouncementTitle = errors.New("announcement title is required")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrResourceNotFound = errors.New("resource not found")
)
