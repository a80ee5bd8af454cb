package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

func TestAnnouncementRepository_CreateListDelete(t *testing.T) {
	repo := NewAnnouncementRepository(newTestDB(t))
	ctx := context.Background()

	a := &domain.Announcement{Title: "Maintenance window", Body: "Saturday 02:00 UTC", CreatedBy: 1}
	require.NoError(t, repo.Create(ctx, a))
	assert.NotZero(t, a.ID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Maintenance window", items[0].Title)

	require.NoError(t, repo.Delete(ctx, a.ID))

	items, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAnnouncementRepository_DeleteMissing(t *testing.T) {
	repo := NewAnnouncementRepository(newTestDB(t))

	err := repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}
