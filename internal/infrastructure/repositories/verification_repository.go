package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// VerificationRepositoryImpl implements domain.VerificationRepository using GORM
type VerificationRepositoryImpl struct {
	db *gorm.DB
}

// DBVerification is the audit row for a completed resource verification
type DBVerification struct {
	ID            uint   `gorm:"primaryKey"`
	ResourceType  string `gorm:"index:idx_verifications_resource;size:64"`
	ResourceID    string `gorm:"index:idx_verifications_resource;size:128"`
	Email         string `gorm:"size:255"`
	TransactionID string `gorm:"uniqueIndex;size:64"`
	VerifiedAt    time.Time
}

// TableName returns the table name for GORM
func (DBVerification) TableName() string {
	return "verifications"
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) domain.VerificationRepository {
	return &VerificationRepositoryImpl{db: db}
}

// Create implements domain.VerificationRepository
func (r *VerificationRepositoryImpl) Create(ctx context.Context, v *domain.Verification) error {
	row := &DBVerification{
		ResourceType:  v.ResourceType,
		ResourceID:    v.ResourceID,
		Email:         v.Email,
		TransactionID: v.TransactionID,
		VerifiedAt:    v.VerifiedAt,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	v.ID = row.ID
	return nil
}

// FindByResource implements domain.VerificationRepository
func (r *VerificationRepositoryImpl) FindByResource(ctx context.Context, resourceType, resourceID string) (*domain.Verification, error) {
	var row DBVerification
	err := r.db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("verified_at DESC").
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}

	return &domain.Verification{
		ID:            row.ID,
		ResourceType:  row.ResourceType,
		ResourceID:    row.ResourceID,
		Email:         row.Email,
		TransactionID: row.TransactionID,
		VerifiedAt:    row.VerifiedAt,
	}, nil
}
