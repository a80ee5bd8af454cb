package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&DBUser{}, &DBVerification{}, &DBAnnouncement{}))
	return db
}

func seedProvider(t *testing.T, repo domain.UserRepository, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:        email,
		Phone:        "+15550100",
		PasswordHash: "hashed",
		Role:         domain.RoleProvider,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	u := seedProvider(t, repo, "p@example.com")
	assert.NotZero(t, u.ID)

	byEmail, err := repo.FindByEmail(ctx, "p@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, domain.RoleProvider, byEmail.Role)
	assert.Equal(t, domain.KYCBucketPending, byEmail.KYC.Bucket())

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "p@example.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_ApplyKYC(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	u := seedProvider(t, repo, "p@example.com")

	now := time.Now().UTC()
	status := domain.KYCStatus{Verified: true, VerifiedAt: &now, VerifiedBy: 1}
	require.NoError(t, repo.ApplyKYC(ctx, u.ID, status))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.KYC.Verified)
	assert.False(t, got.KYC.Rejected)
	assert.Equal(t, uint(1), got.KYC.VerifiedBy)
	require.NotNil(t, got.KYC.VerifiedAt)
}

func TestUserRepository_ApplyKYCRejectThenReApprove(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	u := seedProvider(t, repo, "p@example.com")

	require.NoError(t, repo.ApplyKYC(ctx, u.ID, domain.KYCStatus{
		Rejected: true, RejectionReason: "expired license",
	}))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KYCBucketRejected, got.KYC.Bucket())

	now := time.Now().UTC()
	require.NoError(t, repo.ApplyKYC(ctx, u.ID, domain.KYCStatus{
		Verified: true, VerifiedAt: &now, VerifiedBy: 2,
		RejectionReason: got.KYC.RejectionReason,
	}))

	got, err = repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KYCBucketApproved, got.KYC.Bucket())
	assert.False(t, got.KYC.Rejected)
	assert.Equal(t, "expired license", got.KYC.RejectionReason)
}

func TestUserRepository_ApplyKYCUnknownUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	err := repo.ApplyKYC(context.Background(), 999, domain.KYCStatus{Verified: true})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_ListProvidersByBucket(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	pending := seedProvider(t, repo, "pending@example.com")
	approved := seedProvider(t, repo, "approved@example.com")
	rejected := seedProvider(t, repo, "rejected@example.com")

	// A pet owner must never appear in any bucket.
	owner := &domain.User{Email: "owner@example.com", Role: domain.RoleOwner, IsActive: true}
	require.NoError(t, repo.Create(ctx, owner))

	now := time.Now().UTC()
	require.NoError(t, repo.ApplyKYC(ctx, approved.ID, domain.KYCStatus{Verified: true, VerifiedAt: &now, VerifiedBy: 1}))
	require.NoError(t, repo.ApplyKYC(ctx, rejected.ID, domain.KYCStatus{Rejected: true, RejectionReason: "bad docs"}))

	cases := []struct {
		bucket domain.KYCBucket
		wantID uint
	}{
		{domain.KYCBucketPending, pending.ID},
		{domain.KYCBucketApproved, approved.ID},
		{domain.KYCBucketRejected, rejected.ID},
	}
	for _, tc := range cases {
		got, err := repo.ListProviders(ctx, tc.bucket)
		require.NoError(t, err, string(tc.bucket))
		require.Len(t, got, 1, string(tc.bucket))
		assert.Equal(t, tc.wantID, got[0].ID, string(tc.bucket))
	}

	_, err := repo.ListProviders(ctx, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidKYCBucket)
}
