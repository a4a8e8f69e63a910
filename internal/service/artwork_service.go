package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kreartif/internal/domain"
	"kreartif/internal/repository"
)

var (
	ErrArtworkNotFound   = errors.New("artwork not found")
	ErrMissingFields     = errors.New("title, description and image are required")
	ErrInvalidTransition = errors.New("artwork is not in a state that allows this action")
	ErrReasonRequired    = errors.New("rejection reason is required")
	ErrInvalidCategory   = errors.New("unknown artwork category")
	ErrEmptyComment      = errors.New("comment text is required")
	ErrNotArtworkOwner   = errors.New("artwork belongs to another user")
)

type ArtworkService interface {
	Submit(ctx context.Context, author *domain.User, input domain.SubmitArtworkInput) (*domain.Artwork, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Artwork, error)

	Approve(ctx context.Context, adminID, artworkID uuid.UUID) (*domain.Artwork, error)
	Reject(ctx context.Context, adminID, artworkID uuid.UUID, input domain.RejectArtworkInput) (*domain.Artwork, error)
	Remove(ctx context.Context, adminID, artworkID uuid.UUID) (*domain.Artwork, error)
	Purge(ctx context.Context, adminID, artworkID uuid.UUID) error
	DeleteOwn(ctx context.Context, userID, artworkID uuid.UUID) error

	ToggleLike(ctx context.Context, userID, artworkID uuid.UUID) (bool, error)
	AddComment(ctx context.Context, author *domain.User, artworkID uuid.UUID, input domain.AddCommentInput) (*domain.Comment, error)
	RecordView(ctx context.Context, artworkID uuid.UUID) error
}

type artworkService struct {
	artworkRepo  repository.ArtworkRepository
	auditRepo    repository.AuditLogRepository
	notifService NotificationService
	mediaService MediaService
	projections  ProjectionService
	realtime     RealtimeService
}

func NewArtworkService(
	artworkRepo repository.ArtworkRepository,
	auditRepo repository.AuditLogRepository,
	notifService NotificationService,
	mediaService MediaService,
	projections ProjectionService,
	realtime RealtimeService,
) ArtworkService {
	return &artworkService{
		artworkRepo:  artworkRepo,
		auditRepo:    auditRepo,
		notifService: notifService,
		mediaService: mediaService,
		projections:  projections,
		realtime:     realtime,
	}
}

func (s *artworkService) Submit(ctx context.Context, author *domain.User, input domain.SubmitArtworkInput) (*domain.Artwork, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" || input.ImageURL == "" {
		return nil, ErrMissingFields
	}
	if !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	authorID := author.ID
	art := &domain.Artwork{
		ID:          uuid.New(),
		Title:       title,
		Category:    input.Category,
		Description: description,
		ImageURL:    input.ImageURL,
		Author:      author.FullName,
		AuthorID:    &authorID,
		Status:      domain.ArtworkPending,
		Likes:       []string{},
		Comments:    domain.CommentList{},
	}

	if err := s.artworkRepo.Create(ctx, art); err != nil {
		return nil, err
	}

	s.afterChange(ctx, TopicModeration, ProfileTopic(authorID))
	return art, nil
}

func (s *artworkService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artwork, error) {
	art, err := s.artworkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, ErrArtworkNotFound
	}
	return art, nil
}

func (s *artworkService) Approve(ctx context.Context, adminID, artworkID uuid.UUID) (*domain.Artwork, error) {
	art, err := s.GetByID(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if art.Status != domain.ArtworkPending {
		return nil, ErrInvalidTransition
	}

	if err := s.artworkRepo.UpdateStatus(ctx, art.ID, domain.ArtworkApproved, nil); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, adminID, "approve", art, domain.ArtworkApproved)

	if art.AuthorID != nil {
		authorID, title := *art.AuthorID, art.Title
		go func() {
			if err := s.notifService.NotifyArtworkApproved(context.Background(), authorID, title); err != nil {
				fmt.Printf("Failed to notify approval for artwork %s: %v\n", artworkID, err)
			}
		}()
	}

	s.afterChange(ctx, s.topicsFor(art)...)

	art.Status = domain.ArtworkApproved
	return art, nil
}

func (s *artworkService) Reject(ctx context.Context, adminID, artworkID uuid.UUID, input domain.RejectArtworkInput) (*domain.Artwork, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	art, err := s.GetByID(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if art.Status != domain.ArtworkPending {
		return nil, ErrInvalidTransition
	}

	if err := s.artworkRepo.UpdateStatus(ctx, art.ID, domain.ArtworkRejected, &reason); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, adminID, "reject", art, domain.ArtworkRejected)

	if art.AuthorID != nil {
		authorID, title := *art.AuthorID, art.Title
		go func() {
			if err := s.notifService.NotifyArtworkRejected(context.Background(), authorID, title, reason); err != nil {
				fmt.Printf("Failed to notify rejection for artwork %s: %v\n", artworkID, err)
			}
		}()
	}

	s.afterChange(ctx, s.topicsFor(art)...)

	art.Status = domain.ArtworkRejected
	art.Reason = &reason
	return art, nil
}

// Remove soft-deletes an approved or rejected artwork. The record survives in
// the deleted queue until an explicit purge.
func (s *artworkService) Remove(ctx context.Context, adminID, artworkID uuid.UUID) (*domain.Artwork, error) {
	art, err := s.GetByID(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if art.Status != domain.ArtworkApproved && art.Status != domain.ArtworkRejected {
		return nil, ErrInvalidTransition
	}

	if err := s.artworkRepo.UpdateStatus(ctx, art.ID, domain.ArtworkDeleted, nil); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, adminID, "remove", art, domain.ArtworkDeleted)

	if art.AuthorID != nil {
		authorID, title := *art.AuthorID, art.Title
		go func() {
			if err := s.notifService.NotifyArtworkRemoved(context.Background(), authorID, title); err != nil {
				fmt.Printf("Failed to notify removal for artwork %s: %v\n", artworkID, err)
			}
		}()
	}

	s.afterChange(ctx, s.topicsFor(art)...)

	art.Status = domain.ArtworkDeleted
	return art, nil
}

// Purge erases a soft-deleted artwork and its stored image. No notification
// is sent; the author already heard about the removal.
func (s *artworkService) Purge(ctx context.Context, adminID, artworkID uuid.UUID) error {
	art, err := s.GetByID(ctx, artworkID)
	if err != nil {
		return err
	}
	if art.Status != domain.ArtworkDeleted {
		return ErrInvalidTransition
	}

	if err := s.artworkRepo.Delete(ctx, art.ID); err != nil {
		return err
	}

	s.recordAudit(ctx, adminID, "purge", art, domain.ArtworkDeleted)

	if err := s.mediaService.RemoveByURL(ctx, art.ImageURL); err != nil {
		fmt.Printf("Failed to remove image for artwork %s: %v\n", artworkID, err)
	}

	s.afterChange(ctx, s.topicsFor(art)...)
	return nil
}

// DeleteOwn lets an author erase their artwork in any status, bypassing the
// soft-delete queue entirely.
func (s *artworkService) DeleteOwn(ctx context.Context, userID, artworkID uuid.UUID) error {
	art, err := s.GetByID(ctx, artworkID)
	if err != nil {
		return err
	}
	if art.AuthorID == nil || *art.AuthorID != userID {
		return ErrNotArtworkOwner
	}

	if err := s.artworkRepo.Delete(ctx, art.ID); err != nil {
		return err
	}

	s.recordAudit(ctx, userID, "author_delete", art, art.Status)

	if err := s.mediaService.RemoveByURL(ctx, art.ImageURL); err != nil {
		fmt.Printf("Failed to remove image for artwork %s: %v\n", artworkID, err)
	}

	s.afterChange(ctx, s.topicsFor(art)...)
	return nil
}

func (s *artworkService) ToggleLike(ctx context.Context, userID, artworkID uuid.UUID) (bool, error) {
	art, err := s.GetByID(ctx, artworkID)
	if err != nil {
		return false, err
	}

	liked := art.LikedBy(userID)
	if liked {
		err = s.artworkRepo.RemoveLike(ctx, art.ID, userID)
	} else {
		err = s.artworkRepo.AddLike(ctx, art.ID, userID)
	}
	if err != nil {
		return false, err
	}

	s.afterChange(ctx, s.topicsFor(art)...)
	return !liked, nil
}

func (s *artworkService) AddComment(ctx context.Context, author *domain.User, artworkID uuid.UUID, input domain.AddCommentInput) (*domain.Comment, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	art, err := s.GetByID(ctx, artworkID)
	if err != nil {
		return nil, err
	}

	authorID := author.ID
	comment := domain.Comment{
		ID:            uuid.New(),
		AuthorName:    author.FullName,
		AuthorInitial: domain.AuthorInitialOf(author.FullName),
		Text:          text,
		AuthorID:      &authorID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.artworkRepo.AppendComment(ctx, art.ID, comment); err != nil {
		return nil, err
	}

	s.afterChange(ctx, s.topicsFor(art)...)
	return &comment, nil
}

// RecordView counts every open, repeat viewers included.
func (s *artworkService) RecordView(ctx context.Context, artworkID uuid.UUID) error {
	art, err := s.GetByID(ctx, artworkID)
	if err != nil {
		return err
	}

	if err := s.artworkRepo.IncrementViews(ctx, art.ID); err != nil {
		return err
	}

	s.afterChange(ctx, s.topicsFor(art)...)
	return nil
}

func (s *artworkService) recordAudit(ctx context.Context, actorID uuid.UUID, action string, art *domain.Artwork, newStatus domain.ArtworkStatus) {
	entry := &domain.AuditLog{
		ID:        uuid.New(),
		UserID:    actorID,
		Action:    action,
		ArtworkID: art.ID,
		OldStatus: art.Status,
		NewStatus: newStatus,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		fmt.Printf("Failed to record audit entry for artwork %s: %v\n", art.ID, err)
	}
}

func (s *artworkService) afterChange(ctx context.Context, topics ...string) {
	s.projections.InvalidateArtworkCache(ctx)
	s.realtime.Publish(ctx, topics...)
}

func (s *artworkService) topicsFor(art *domain.Artwork) []string {
	topics := []string{TopicGallery, TopicModeration}
	if art.AuthorID != nil {
		topics = append(topics, ProfileTopic(*art.AuthorID))
	}
	return topics
}
