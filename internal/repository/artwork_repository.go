package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kreartif/internal/domain"
)

type ArtworkRepository interface {
	Create(ctx context.Context, art *domain.Artwork) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Artwork, error)
	ListByStatus(ctx context.Context, status domain.ArtworkStatus) ([]domain.Artwork, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Artwork, error)
	ListAll(ctx context.Context) ([]domain.Artwork, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ArtworkStatus, reason *string) error
	AddLike(ctx context.Context, id, userID uuid.UUID) error
	RemoveLike(ctx context.Context, id, userID uuid.UUID) error
	AppendComment(ctx context.Context, id uuid.UUID, comment domain.Comment) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type artworkRepository struct {
	db *sqlx.DB
}

func NewArtworkRepository(db *sqlx.DB) ArtworkRepository {
	return &artworkRepository{db: db}
}

func (r *artworkRepository) Create(ctx context.Context, art *domain.Artwork) error {
	query := `
		INSERT INTO artworks (id, title, category, description, image_url, author, author_id, status, likes, comments, views)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		art.ID, art.Title, art.Category, art.Description, art.ImageURL,
		art.Author, art.AuthorID, art.Status, art.Likes, art.Comments, art.Views,
	).Scan(&art.CreatedAt)
}

func (r *artworkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artwork, error) {
	var art domain.Artwork
	query := `SELECT * FROM artworks WHERE id = $1`
	err := r.db.GetContext(ctx, &art, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &art, nil
}

func (r *artworkRepository) ListByStatus(ctx context.Context, status domain.ArtworkStatus) ([]domain.Artwork, error) {
	var artworks []domain.Artwork
	query := `SELECT * FROM artworks WHERE status = $1`
	err := r.db.SelectContext(ctx, &artworks, query, status)
	return artworks, err
}

func (r *artworkRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Artwork, error) {
	var artworks []domain.Artwork
	query := `SELECT * FROM artworks WHERE author_id = $1`
	err := r.db.SelectContext(ctx, &artworks, query, authorID)
	return artworks, err
}

func (r *artworkRepository) ListAll(ctx context.Context) ([]domain.Artwork, error) {
	var artworks []domain.Artwork
	query := `SELECT * FROM artworks`
	err := r.db.SelectContext(ctx, &artworks, query)
	return artworks, err
}

func (r *artworkRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ArtworkStatus, reason *string) error {
	if reason != nil {
		query := `UPDATE artworks SET status = $2, reason = $3 WHERE id = $1`
		_, err := r.db.ExecContext(ctx, query, id, status, *reason)
		return err
	}

	// Reason is left untouched so a soft delete keeps the rejection reason.
	query := `UPDATE artworks SET status = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *artworkRepository) AddLike(ctx context.Context, id, userID uuid.UUID) error {
	query := `
		UPDATE artworks
		SET likes = array_append(likes, $2)
		WHERE id = $1 AND NOT ($2 = ANY(likes))`
	_, err := r.db.ExecContext(ctx, query, id, userID.String())
	return err
}

func (r *artworkRepository) RemoveLike(ctx context.Context, id, userID uuid.UUID) error {
	query := `UPDATE artworks SET likes = array_remove(likes, $2) WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, userID.String())
	return err
}

func (r *artworkRepository) AppendComment(ctx context.Context, id uuid.UUID, comment domain.Comment) error {
	payload, err := json.Marshal([]domain.Comment{comment})
	if err != nil {
		return err
	}

	query := `UPDATE artworks SET comments = comments || $2::jsonb WHERE id = $1`
	_, err = r.db.ExecContext(ctx, query, id, payload)
	return err
}

func (r *artworkRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE artworks SET views = views + 1 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *artworkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM artworks WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
