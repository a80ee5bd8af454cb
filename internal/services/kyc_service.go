package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// KYCServiceImpl implements domain.KYCService. State transitions are a
// single-row update applied through the user repository; the provider is
// notified best-effort after the write.
type KYCServiceImpl struct {
	userRepo        domain.UserRepository
	notificationSvc domain.NotificationService
	audit           domain.AuditLogger
	logger          *zap.Logger
}

// NewKYCService creates a new KYC service
func NewKYCService(
	userRepo domain.UserRepository,
	notificationSvc domain.NotificationService,
	audit domain.AuditLogger,
	logger *zap.Logger,
) domain.KYCService {
	return &KYCServiceImpl{
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		audit:           audit,
		logger:          logger,
	}
}

// Approve implements domain.KYCService. Approval is idempotent and also
// serves as re-approval from the rejected state: it unconditionally sets
// verified and clears rejected.
func (s *KYCServiceImpl) Approve(ctx context.Context, adminID, providerID uint) (*domain.User, error) {
	provider, err := s.userRepo.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider.Role != domain.RoleProvider {
		return nil, domain.ErrNotProvider
	}

	now := time.Now().UTC()
	status := domain.KYCStatus{
		Verified:   true,
		Rejected:   false,
		VerifiedAt: &now,
		VerifiedBy: adminID,
		// The last rejection reason stays on the row as history.
		RejectionReason: provider.KYC.RejectionReason,
	}

	if err := s.userRepo.ApplyKYC(ctx, providerID, status); err != nil {
		return nil, err
	}
	provider.KYC = status

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.KYCApprovedEvent).
		WithActor(adminID).
		WithEmail(provider.Email).
		WithMetadata("provider_id", providerID))

	s.notify(provider, "PetVerse account verified",
		"Your service provider account has been verified. You can now accept bookings.")

	return provider, nil
}

// Reject implements domain.KYCService
func (s *KYCServiceImpl) Reject(ctx context.Context, adminID, providerID uint, reason string) (*domain.User, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrEmptyRejectionReason
	}

	provider, err := s.userRepo.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider.Role != domain.RoleProvider {
		return nil, domain.ErrNotProvider
	}

	status := domain.KYCStatus{
		Verified:        false,
		Rejected:        true,
		RejectionReason: reason,
	}

	if err := s.userRepo.ApplyKYC(ctx, providerID, status); err != nil {
		return nil, err
	}
	provider.KYC = status

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.KYCRejectedEvent).
		WithActor(adminID).
		WithEmail(provider.Email).
		WithMetadata("provider_id", providerID).
		WithMetadata("reason", reason))

	s.notify(provider, "PetVerse verification rejected",
		"Your service provider verification was rejected. Reason: "+reason)

	return provider, nil
}

// ListProviders implements domain.KYCService
func (s *KYCServiceImpl) ListProviders(ctx context.Context, bucket domain.KYCBucket) ([]*domain.User, error) {
	if bucket == "" {
		bucket = domain.KYCBucketPending
	}
	return s.userRepo.ListProviders(ctx, bucket)
}

// notify delivers the decision to the provider. Failures are logged and do
// not affect the recorded state.
func (s *KYCServiceImpl) notify(provider *domain.User, subject, message string) {
	if err := s.notificationSvc.SendEmail(provider.Email, subject, message); err != nil {
		s.logger.Warn("kyc notification email failed",
			zap.Uint("provider_id", provider.ID), zap.Error(err))
	}
	if provider.Phone != "" {
		if err := s.notificationSvc.SendSMS(provider.Phone, message); err != nil {
			s.logger.Warn("kyc notification sms failed",
				zap.Uint("provider_id", provider.ID), zap.Error(err))
		}
	}
}
