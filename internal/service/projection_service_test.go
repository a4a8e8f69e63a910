package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"kreartif/internal/domain"
	"kreartif/internal/service"
)

func artworkAt(title, author string, category domain.ArtworkCategory, status domain.ArtworkStatus, createdAt *time.Time) domain.Artwork {
	return domain.Artwork{
		ID:        uuid.New(),
		Title:     title,
		Author:    author,
		Category:  category,
		Status:    status,
		CreatedAt: createdAt,
	}
}

func unixTime(sec int64) *time.Time {
	t := time.Unix(sec, 0)
	return &t
}

func TestProjectionService_Gallery(t *testing.T) {
	ctx := context.Background()
	artRepo := new(MockArtworkRepository)
	svc := service.NewProjectionService(artRepo, nil)

	approved := []domain.Artwork{
		artworkAt("Hujan Kota", "Citra Dewi", domain.CategoryLukisan, domain.ArtworkApproved, unixTime(100)),
		artworkAt("Sunset di Pantai", "Budi Santoso", domain.CategoryFotografi, domain.ArtworkApproved, unixTime(300)),
		artworkAt("Senja Digital", "Andi Wijaya", domain.CategoryDigitalArt, domain.ArtworkApproved, unixTime(200)),
	}
	artRepo.On("ListByStatus", ctx, domain.ArtworkApproved).Return(approved, nil)

	t.Run("Newest First", func(t *testing.T) {
		out, err := svc.Gallery(ctx, uuid.Nil, domain.GalleryFilter{})

		assert.NoError(t, err)
		assert.Len(t, out, 3)
		assert.Equal(t, "Sunset di Pantai", out[0].Title)
		assert.Equal(t, "Senja Digital", out[1].Title)
		assert.Equal(t, "Hujan Kota", out[2].Title)
	})

	t.Run("Search Matches Title Or Author", func(t *testing.T) {
		out, err := svc.Gallery(ctx, uuid.Nil, domain.GalleryFilter{Search: "sun"})

		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "Sunset di Pantai", out[0].Title)

		out, err = svc.Gallery(ctx, uuid.Nil, domain.GalleryFilter{Search: "citra"})

		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "Hujan Kota", out[0].Title)
	})

	t.Run("Category Filter", func(t *testing.T) {
		out, err := svc.Gallery(ctx, uuid.Nil, domain.GalleryFilter{Category: "Lukisan"})

		assert.NoError(t, err)
		assert.Len(t, out, 1)

		out, err = svc.Gallery(ctx, uuid.Nil, domain.GalleryFilter{Category: domain.CategoryAll})

		assert.NoError(t, err)
		assert.Len(t, out, 3)
	})
}

func TestProjectionService_Queues(t *testing.T) {
	ctx := context.Background()
	artRepo := new(MockArtworkRepository)
	svc := service.NewProjectionService(artRepo, nil)

	all := []domain.Artwork{
		artworkAt("a", "x", domain.CategoryLukisan, domain.ArtworkPending, unixTime(1)),
		artworkAt("b", "x", domain.CategoryLukisan, domain.ArtworkApproved, unixTime(2)),
		artworkAt("c", "x", domain.CategoryFotografi, domain.ArtworkApproved, unixTime(3)),
		artworkAt("d", "x", domain.CategoryIlustrasi, domain.ArtworkRejected, unixTime(4)),
		artworkAt("e", "x", domain.CategoryDigitalArt, domain.ArtworkDeleted, unixTime(5)),
	}
	artRepo.On("ListAll", ctx).Return(all, nil)

	queues, err := svc.Queues(ctx)

	assert.NoError(t, err)
	assert.Len(t, queues.Pending, 1)
	assert.Len(t, queues.Approved, 2)
	assert.Len(t, queues.Rejected, 1)
	assert.Len(t, queues.Deleted, 1)

	stats, err := svc.Stats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Approved)
	assert.Equal(t, 2, stats.Categories[domain.CategoryLukisan])
	assert.Equal(t, 1, stats.Categories[domain.CategoryFotografi])
}

func TestProjectionService_AuthorProfile(t *testing.T) {
	ctx := context.Background()
	artRepo := new(MockArtworkRepository)
	svc := service.NewProjectionService(artRepo, nil)

	authorID := uuid.New()
	mine := artworkAt("mine", "me", domain.CategoryLukisan, domain.ArtworkRejected, unixTime(1))
	mine.AuthorID = &authorID
	mine.Likes = []string{authorID.String()}
	other := artworkAt("other", "someone", domain.CategoryLukisan, domain.ArtworkApproved, unixTime(2))

	artRepo.On("ListByAuthor", ctx, authorID).Return([]domain.Artwork{mine, other}, nil)

	out, err := svc.AuthorProfile(ctx, authorID)

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "mine", out[0].Title)
	assert.True(t, out[0].IsLiked)
}
