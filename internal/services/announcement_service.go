package services

import (
	"context"
	"strings"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// AnnouncementServiceImpl implements domain.AnnouncementService
type AnnouncementServiceImpl struct {
	repo domain.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo domain.AnnouncementRepository) domain.AnnouncementService {
	return &AnnouncementServiceImpl{repo: repo}
}

// Publish implements domain.AnnouncementService
func (s *AnnouncementServiceImpl) Publish(ctx context.Context, adminID uint, title, body string) (*domain.Announcement, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrEmptyAnnouncementTitle
	}

	a := &domain.Announcement{
		Title:     title,
		Body:      body,
		CreatedBy: adminID,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List implements domain.AnnouncementService
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]*domain.Announcement, error) {
	return s.repo.List(ctx)
}

// Remove implements domain.AnnouncementService
func (s *AnnouncementServiceImpl) Remove(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
