package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ArtworkStatus string

const (
	ArtworkPending  ArtworkStatus = "pending"
	ArtworkApproved ArtworkStatus = "approved"
	ArtworkRejected ArtworkStatus = "rejected"
	ArtworkDeleted  ArtworkStatus = "deleted"
)

func (s ArtworkStatus) IsValid() bool {
	switch s {
	case ArtworkPending, ArtworkApproved, ArtworkRejected, ArtworkDeleted:
		return true
	}
	return false
}

type ArtworkCategory string

const (
	CategoryLukisan    ArtworkCategory = "Lukisan"
	CategoryDigitalArt ArtworkCategory = "Digital Art"
	CategoryFotografi  ArtworkCategory = "Fotografi"
	CategoryIlustrasi  ArtworkCategory = "Ilustrasi"
)

// CategoryAll is the sentinel category filter meaning "no category filter".
const CategoryAll = "Semua Karya"

func Categories() []ArtworkCategory {
	return []ArtworkCategory{CategoryLukisan, CategoryDigitalArt, CategoryFotografi, CategoryIlustrasi}
}

func (c ArtworkCategory) IsValid() bool {
	switch c {
	case CategoryLukisan, CategoryDigitalArt, CategoryFotografi, CategoryIlustrasi:
		return true
	}
	return false
}

// Comment is an append-only entry on an artwork. Comments are never edited or
// removed once appended.
type Comment struct {
	ID            uuid.UUID  `json:"id"`
	AuthorName    string     `json:"author_name"`
	AuthorInitial string     `json:"author_initial"`
	Text          string     `json:"text"`
	AuthorID      *uuid.UUID `json:"author_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AuthorInitialOf derives the single-letter avatar initial shown next to a
// comment, defaulting to "U" for empty names.
func AuthorInitialOf(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "U"
	}
	r := []rune(trimmed)[0]
	return string(unicode.ToUpper(r))
}

// CommentList stores the artwork's comments as a jsonb column.
type CommentList []Comment

func (c CommentList) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

func (c *CommentList) Scan(src interface{}) error {
	if src == nil {
		*c = CommentList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return errors.New("unsupported scan type for CommentList")
}

type Artwork struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Category    ArtworkCategory `json:"category" db:"category"`
	Description string          `json:"description" db:"description"`
	ImageURL    string          `json:"image" db:"image_url"`
	Author      string          `json:"author" db:"author"`
	AuthorID    *uuid.UUID      `json:"author_id,omitempty" db:"author_id"`
	Status      ArtworkStatus   `json:"status" db:"status"`
	Reason      *string         `json:"reason,omitempty" db:"reason"`
	Likes       pq.StringArray  `json:"likes" db:"likes"`
	Comments    CommentList     `json:"comments" db:"comments"`
	Views       int64           `json:"views" db:"views"`
	CreatedAt   *time.Time      `json:"created_at,omitempty" db:"created_at"`

	// IsLiked annotates whether the viewing principal liked this artwork.
	IsLiked bool `json:"is_liked" db:"-"`
}

// LikedBy reports whether the principal is in the like set.
func (a *Artwork) LikedBy(userID uuid.UUID) bool {
	if userID == uuid.Nil {
		return false
	}
	id := userID.String()
	for _, l := range a.Likes {
		if l == id {
			return true
		}
	}
	return false
}

// CreatedAtUnix falls back to 0 for legacy records without a timestamp, so
// they sort after everything else in newest-first order.
func (a *Artwork) CreatedAtUnix() int64 {
	if a.CreatedAt == nil {
		return 0
	}
	return a.CreatedAt.Unix()
}

type SubmitArtworkInput struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Category    ArtworkCategory `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required,max=500"`
	ImageURL    string          `json:"image" validate:"required,url"`
}

type RejectArtworkInput struct {
	Reason string `json:"reason" validate:"required"`
}

type AddCommentInput struct {
	Text string `json:"text" validate:"required,max=2000"`
}
