package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// AnnouncementRepositoryImpl implements domain.AnnouncementRepository using GORM
type AnnouncementRepositoryImpl struct {
	db *gorm.DB
}

// DBAnnouncement represents the database model for Announcement
type DBAnnouncement struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255"`
	Body      string
	CreatedBy uint      `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAnnouncement) TableName() string {
	return "announcements"
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) domain.AnnouncementRepository {
	return &AnnouncementRepositoryImpl{db: db}
}

// Create implements domain.AnnouncementRepository
func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, a *domain.Announcement) error {
	row := &DBAnnouncement{
		Title:     a.Title,
		Body:      a.Body,
		CreatedBy: a.CreatedBy,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	a.ID = row.ID
	a.CreatedAt = row.CreatedAt
	return nil
}

// List implements domain.AnnouncementRepository
func (r *AnnouncementRepositoryImpl) List(ctx context.Context) ([]*domain.Announcement, error) {
	var rows []DBAnnouncement
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*domain.Announcement, 0, len(rows))
	for i := range rows {
		items = append(items, &domain.Announcement{
			ID:        rows[i].ID,
			Title:     rows[i].Title,
			Body:      rows[i].Body,
			CreatedBy: rows[i].CreatedBy,
			CreatedAt: rows[i].CreatedAt,
		})
	}
	return items, nil
}

// Delete implements domain.AnnouncementRepository
func (r *AnnouncementRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&DBAnnouncement{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}
