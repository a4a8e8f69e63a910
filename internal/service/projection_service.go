package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"kreartif/internal/domain"
	"kreartif/internal/repository"
)

const (
	artworkCacheKeyPrefix = "artworks:"
	artworkCacheTTL       = 5 * time.Minute
)

// ProjectionService derives the audience views. Raw status partitions are
// cached in Redis; the per-viewer annotation and filtering happen on every
// call so cached entries stay viewer-independent.
type ProjectionService interface {
	Gallery(ctx context.Context, viewerID uuid.UUID, filter domain.GalleryFilter) ([]domain.Artwork, error)
	Queues(ctx context.Context) (domain.ModerationQueues, error)
	Stats(ctx context.Context) (domain.QueueStats, error)
	AuthorProfile(ctx context.Context, authorID uuid.UUID) ([]domain.Artwork, error)
	InvalidateArtworkCache(ctx context.Context)
}

type projectionService struct {
	artworkRepo repository.ArtworkRepository
	redisClient *redis.Client
}

func NewProjectionService(artworkRepo repository.ArtworkRepository, redisClient *redis.Client) ProjectionService {
	return &projectionService{
		artworkRepo: artworkRepo,
		redisClient: redisClient,
	}
}

func (s *projectionService) Gallery(ctx context.Context, viewerID uuid.UUID, filter domain.GalleryFilter) ([]domain.Artwork, error) {
	approved, err := s.cachedList(ctx, artworkCacheKeyPrefix+"approved", func(ctx context.Context) ([]domain.Artwork, error) {
		return s.artworkRepo.ListByStatus(ctx, domain.ArtworkApproved)
	})
	if err != nil {
		return nil, err
	}

	return domain.ProjectGallery(approved, viewerID, filter), nil
}

func (s *projectionService) Queues(ctx context.Context) (domain.ModerationQueues, error) {
	all, err := s.cachedList(ctx, artworkCacheKeyPrefix+"all", s.artworkRepo.ListAll)
	if err != nil {
		return domain.ModerationQueues{}, err
	}

	return domain.ProjectQueues(all), nil
}

func (s *projectionService) Stats(ctx context.Context) (domain.QueueStats, error) {
	queues, err := s.Queues(ctx)
	if err != nil {
		return domain.QueueStats{}, err
	}
	return queues.Stats(), nil
}

func (s *projectionService) AuthorProfile(ctx context.Context, authorID uuid.UUID) ([]domain.Artwork, error) {
	artworks, err := s.artworkRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return domain.ProjectAuthorProfile(artworks, authorID), nil
}

func (s *projectionService) InvalidateArtworkCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}

	keys, err := s.redisClient.Keys(ctx, artworkCacheKeyPrefix+"*").Result()
	if err != nil {
		fmt.Printf("Failed to scan artwork cache keys: %v\n", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		fmt.Printf("Failed to invalidate artwork cache: %v\n", err)
	}
}

func (s *projectionService) cachedList(ctx context.Context, key string, load func(context.Context) ([]domain.Artwork, error)) ([]domain.Artwork, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, key).Result()
		if err == nil {
			var artworks []domain.Artwork
			if err := json.Unmarshal([]byte(cached), &artworks); err == nil {
				return artworks, nil
			}
		}
	}

	artworks, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(artworks); err == nil {
			if err := s.redisClient.Set(ctx, key, data, artworkCacheTTL).Err(); err != nil {
				fmt.Printf("Failed to cache %s: %v\n", key, err)
			}
		}
	}

	return artworks, nil
}
