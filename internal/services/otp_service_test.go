package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/infrastructure/repositories"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/mocks"
)

type otpFixture struct {
	mr      *miniredis.Miniredis
	store   domain.OTPStore
	verRepo *mocks.MockVerificationRepository
	notify  *mocks.MockNotificationService
	audit   *mocks.MockAuditLogger
	svc     domain.OTPService

	sentEmails []string
	saved      []*domain.Verification
}

func newOTPFixture(t *testing.T, cfg OTPConfig) *otpFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	f := &otpFixture{
		mr:    mr,
		store: repositories.NewOTPStore(client),
		audit: &mocks.MockAuditLogger{},
	}
	f.verRepo = &mocks.MockVerificationRepository{
		CreateFn: func(ctx context.Context, v *domain.Verification) error {
			f.saved = append(f.saved, v)
			return nil
		},
	}
	f.notify = &mocks.MockNotificationService{
		SendEmailFn: func(to, subject, body string) error {
			f.sentEmails = append(f.sentEmails, body)
			return nil
		},
	}
	f.svc = NewOTPService(f.store, f.verRepo, f.notify, f.audit, cfg)
	return f
}

func defaultOTPConfig() OTPConfig {
	return OTPConfig{Length: 6, TTL: 5 * time.Minute, MaxAttempts: 5, ResendWindow: time.Minute}
}

func (f *otpFixture) liveCode(t *testing.T, resourceType, resourceID string) string {
	t.Helper()
	rec, err := f.store.Get(context.Background(), resourceType, resourceID)
	require.NoError(t, err)
	return rec.Code
}

func TestOTPService_SendStoresCodeAndNotifies(t *testing.T) {
	f := newOTPFixture(t, defaultOTPConfig())

	err := f.svc.Send(context.Background(), "pet", "42", "owner@example.com")
	require.NoError(t, err)

	rec, err := f.store.Get(context.Background(), "pet", "42")
	require.NoError(t, err)
	assert.Len(t, rec.Code, 6)
	assert.Equal(t, "owner@example.com", rec.Email)
	assert.NotEmpty(t, rec.TransactionID)

	require.Len(t, f.sentEmails, 1)
	assert.Contains(t, f.sentEmails[0], rec.Code)
}

func TestOTPService_ResendSupersedesPriorCode(t *testing.T) {
	f := newOTPFixture(t, defaultOTPConfig())
	ctx := context.Background()

	require.NoError(t, f.svc.Send(ctx, "pet", "42", "owner@example.com"))
	firstCode := f.liveCode(t, "pet", "42")

	// Step past the resend throttle window.
	f.mr.FastForward(61 * time.Second)

	require.NoError(t, f.svc.Send(ctx, "pet", "42", "owner@example.com"))
	secondCode := f.liveCode(t, "pet", "42")

	// The superseded code no longer verifies, the new one does.
	if firstCode != secondCode {
		_, err := f.svc.Verify(ctx, "pet", "42", firstCode)
		assert.ErrorIs(t, err, domain.ErrOTPInvalid)
	}

	result, err := f.svc.Verify(ctx, "pet", "42", secondCode)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestOTPService_ResendThrottled(t *testing.T) {
	f := newOTPFixture(t, defaultOTPConfig())
	ctx := context.Background()

	require.NoError(t, f.svc.Send(ctx, "pet", "42", "owner@example.com"))

	err := f.svc.Send(ctx, "pet", "42", "owner@example.com")
	assert.ErrorIs(t, err, domain.ErrOTPResendThrottled)
	assert.Len(t, f.sentEmails, 1)
}

func TestOTPService_VerifyConsumesExactlyOnce(t *testing.T) {
	f := newOTPFixture(t, defaultOTPConfig())
	ctx := context.Background()

	require.NoError(t, f.svc.Send(ctx, "pet", "42", "owner@example.com"))
	code := f.liveCode(t, "pet", "42")

	result, err := f.svc.Verify(ctx, "pet", "42", code)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.NotEmpty(t, result.TransactionID)

	require.Len(t, f.saved, 1)
	assert.Equal(t, "pet", f.saved[0].ResourceType)
	assert.Equal(t, "42", f.saved[0].ResourceID)
	assert.Equal(t, result.TransactionID, f.saved[0].TransactionID)

	// Replay with the same code fails: the record was consumed.
	_, err = f.svc.Verify(ctx, "pet", "42", code)
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPService_WrongCodeLeavesRecordLive(t *testing.T) {
	f := newOTPFixture(t, defaultOTPConfig())
	ctx := context.Background()

	require.NoError(t, f.svc.Send(ctx, "pet", "42", "owner@example.com"))
	code := f.liveCode(t, "pet", "42")

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, err := f.svc.Verify(ctx, "pet", "42", wrong)
	assert.ErrorIs(t, err, domain.ErrOTPInvalid)

	// A retry with the right code still succeeds.
	result, err := f.svc.Verify(ctx, "pet", "42", code)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestOTPService_MaxAttemptsInvalidatesCode(t *testing.T) {
	cfg := defaultOTPConfig()
	cfg.MaxAttempts = 3
	f := newOTPFixture(t, cfg)
	ctx := context.Background()

	require.NoError(t, f.svc.Send(ctx, "pet", "42", "owner@example.com"))
	code := f.liveCode(t, "pet", "42")

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	for i := 0; i < 3; i++ {
		_, err := f.svc.Verify(ctx, "pet", "42", wrong)
		assert.ErrorIs(t, err, domain.ErrOTPInvalid)
	}

	// The cap is hit before the code is even compared.
	_, err := f.svc.Verify(ctx, "pet", "42", code)
	assert.ErrorIs(t, err, domain.ErrOTPMaxAttempts)

	// The record itself is gone now.
	_, err = f.store.Get(ctx, "pet", "42")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPService_ExpiredCodeNotFound(t *testing.T) {
	f := newOTPFixture(t, defaultOTPConfig())
	ctx := context.Background()

	require.NoError(t, f.svc.Send(ctx, "pet", "42", "owner@example.com"))
	code := f.liveCode(t, "pet", "42")

	f.mr.FastForward(6 * time.Minute)

	_, err := f.svc.Verify(ctx, "pet", "42", code)
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPService_ResourcesAreIsolated(t *testing.T) {
	f := newOTPFixture(t, defaultOTPConfig())
	ctx := context.Background()

	require.NoError(t, f.svc.Send(ctx, "pet", "1", "a@example.com"))
	require.NoError(t, f.svc.Send(ctx, "provider", "1", "b@example.com"))

	petCode := f.liveCode(t, "pet", "1")
	provCode := f.liveCode(t, "provider", "1")

	result, err := f.svc.Verify(ctx, "pet", "1", petCode)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	// The provider record is untouched by the pet verification.
	result, err = f.svc.Verify(ctx, "provider", "1", provCode)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestOTPService_EmailFailureRollsBackRecord(t *testing.T) {
	f := newOTPFixture(t, defaultOTPConfig())
	f.notify.SendEmailFn = func(to, subject, body string) error {
		return errors.New("smtp unreachable")
	}
	ctx := context.Background()

	err := f.svc.Send(ctx, "pet", "42", "owner@example.com")
	require.Error(t, err)

	_, err = f.store.Get(ctx, "pet", "42")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPService_AuditTrail(t *testing.T) {
	f := newOTPFixture(t, defaultOTPConfig())
	ctx := context.Background()

	require.NoError(t, f.svc.Send(ctx, "pet", "42", "owner@example.com"))
	code := f.liveCode(t, "pet", "42")
	_, err := f.svc.Verify(ctx, "pet", "42", code)
	require.NoError(t, err)

	require.Len(t, f.audit.Events, 2)
	assert.Equal(t, domain.OTPRequestedEvent, f.audit.Events[0].EventType)
	assert.Equal(t, domain.OTPVerifiedEvent, f.audit.Events[1].EventType)
	assert.True(t, f.audit.Events[1].Success)
}
