package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records a moderation action against an artwork.
type AuditLog struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	UserID    uuid.UUID     `json:"user_id" db:"user_id"`
	Action    string        `json:"action" db:"action"`
	ArtworkID uuid.UUID     `json:"artwork_id" db:"artwork_id"`
	OldStatus ArtworkStatus `json:"old_status" db:"old_status"`
	NewStatus ArtworkStatus `json:"new_status" db:"new_status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}
