package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags).
// The KYC verification sub-document is flattened into kyc_* columns so a
// decision is a single-row update.
type DBUser struct {
	ID                 uint   `gorm:"primaryKey"`
	Email              string `gorm:"uniqueIndex;size:255"`
	Phone              string `gorm:"index;size:32"`
	PasswordHash       string `gorm:"column:password"`
	Role               string `gorm:"index;size:32"`
	IsActive           bool   `gorm:"index"`
	KYCVerified        bool   `gorm:"column:kyc_verified;index"`
	KYCRejected        bool   `gorm:"column:kyc_rejected;index"`
	KYCRejectionReason string `gorm:"column:kyc_rejection_reason"`
	KYCVerifiedAt      *time.Time `gorm:"column:kyc_verified_at"`
	KYCVerifiedBy      uint       `gorm:"column:kyc_verified_by"`
	CreatedAt          time.Time  `gorm:"index"`
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// ApplyKYC implements domain.UserRepository. The whole decision is one
// single-row update, so there is no partial-write window.
func (r *UserRepositoryImpl) ApplyKYC(ctx context.Context, userID uint, status domain.KYCStatus) error {
	updates := map[string]interface{}{
		"kyc_verified":         status.Verified,
		"kyc_rejected":         status.Rejected,
		"kyc_rejection_reason": status.RejectionReason,
		"kyc_verified_at":      status.VerifiedAt,
		"kyc_verified_by":      status.VerifiedBy,
	}

	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListProviders implements domain.UserRepository
func (r *UserRepositoryImpl) ListProviders(ctx context.Context, bucket domain.KYCBucket) ([]*domain.User, error) {
	q := r.db.WithContext(ctx).Where("role = ?", domain.RoleProvider)

	switch bucket {
	case domain.KYCBucketPending:
		q = q.Where("kyc_verified = ? AND kyc_rejected = ?", false, false)
	case domain.KYCBucketApproved:
		q = q.Where("kyc_verified = ?", true)
	case domain.KYCBucketRejected:
		q = q.Where("kyc_rejected = ?", true)
	default:
		return nil, domain.ErrInvalidKYCBucket
	}

	var dbUsers []DBUser
	if err := q.Order("created_at").Find(&dbUsers).Error; err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                 user.ID,
		Email:              user.Email,
		Phone:              user.Phone,
		PasswordHash:       user.PasswordHash,
		Role:               user.Role,
		IsActive:           user.IsActive,
		KYCVerified:        user.KYC.Verified,
		KYCRejected:        user.KYC.Rejected,
		KYCRejectionReason: user.KYC.RejectionReason,
		KYCVerifiedAt:      user.KYC.VerifiedAt,
		KYCVerifiedBy:      user.KYC.VerifiedBy,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Email:        dbUser.Email,
		Phone:        dbUser.Phone,
		PasswordHash: dbUser.PasswordHash,
		Role:         dbUser.Role,
		IsActive:     dbUser.IsActive,
		KYC: domain.KYCStatus{
			Verified:        dbUser.KYCVerified,
			Rejected:        dbUser.KYCRejected,
			RejectionReason: dbUser.KYCRejectionReason,
			VerifiedAt:      dbUser.KYCVerifiedAt,
			VerifiedBy:      dbUser.KYCVerifiedBy,
		},
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
	}
}
