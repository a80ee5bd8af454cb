package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// OTPServiceImpl implements domain.OTPService over a Redis-backed store
type OTPServiceImpl struct {
	store           domain.OTPStore
	verifications   domain.VerificationRepository
	notificationSvc domain.NotificationService
	audit           domain.AuditLogger
	config          OTPConfig
}

type OTPConfig struct {
	Length       int
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(
	store domain.OTPStore,
	verifications domain.VerificationRepository,
	notificationSvc domain.NotificationService,
	audit domain.AuditLogger,
	config OTPConfig,
) domain.OTPService {
	return &OTPServiceImpl{
		store:           store,
		verifications:   verifications,
		notificationSvc: notificationSvc,
		audit:           audit,
		config:          config,
	}
}

// Send implements domain.OTPService. A new code always supersedes any live
// record for the same (resourceType, resourceID) pair.
func (s *OTPServiceImpl) Send(ctx context.Context, resourceType, resourceID, email string) error {
	wait, err := s.store.ResendWait(ctx, resourceType, resourceID)
	if err != nil {
		return err
	}
	if wait > 0 {
		return fmt.Errorf("%w: retry in %d seconds", domain.ErrOTPResendThrottled, int(wait.Seconds()))
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	rec := &domain.OTPRecord{
		ResourceType:  resourceType,
		ResourceID:    resourceID,
		Email:         email,
		Code:          code,
		TransactionID: uuid.NewString(),
		ExpiresAt:     time.Now().Add(s.config.TTL),
	}

	if err := s.store.Put(ctx, rec, s.config.TTL); err != nil {
		return err
	}
	if err := s.store.SetResendThrottle(ctx, resourceType, resourceID, s.config.ResendWindow); err != nil {
		return err
	}

	subject := "Your PetVerse verification code"
	body := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.",
		code, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendEmail(email, subject, body); err != nil {
		// Clean up the stored record if delivery fails
		s.store.Drop(ctx, resourceType, resourceID)
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPRequestedEvent).
		WithEmail(email).
		WithResource(resourceType, resourceID))

	return nil
}

// Verify implements domain.OTPService. Consumption is atomic: the stored
// record is deleted only when the submitted code matches, so a second verify
// with the same code fails. A mismatch leaves the record live for a retry
// within the expiry window, up to the attempts cap.
func (s *OTPServiceImpl) Verify(ctx context.Context, resourceType, resourceID, code string) (*domain.VerificationResult, error) {
	attempts, err := s.store.IncrAttempts(ctx, resourceType, resourceID, s.config.TTL)
	if err != nil {
		return nil, err
	}
	if attempts > int64(s.config.MaxAttempts) {
		s.store.Drop(ctx, resourceType, resourceID)
		s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPVerifyFailedEvent).
			WithResource(resourceType, resourceID).
			WithError(domain.ErrOTPMaxAttempts))
		return nil, domain.ErrOTPMaxAttempts
	}

	rec, err := s.store.Consume(ctx, resourceType, resourceID, code)
	if err != nil {
		s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPVerifyFailedEvent).
			WithResource(resourceType, resourceID).
			WithError(err))
		return nil, err
	}

	// Redis expiry normally removes the key, but guard against clock skew.
	if rec.ExpiresAt.Before(time.Now()) {
		return nil, domain.ErrOTPNotFound
	}

	verification := &domain.Verification{
		ResourceType:  resourceType,
		ResourceID:    resourceID,
		Email:         rec.Email,
		TransactionID: rec.TransactionID,
		VerifiedAt:    time.Now().UTC(),
	}
	if err := s.verifications.Create(ctx, verification); err != nil {
		return nil, fmt.Errorf("failed to record verification: %w", err)
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPVerifiedEvent).
		WithEmail(rec.Email).
		WithResource(resourceType, resourceID).
		WithMetadata("transaction_id", rec.TransactionID))

	return &domain.VerificationResult{
		Valid:         true,
		Message:       "resource verified successfully",
		TransactionID: rec.TransactionID,
	}, nil
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
