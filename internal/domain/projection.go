package domain

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Projections are pure: they read a snapshot of the artwork set and derive a
// view for one audience without mutating the input. Snapshots for different
// status partitions arrive independently, so callers must not assume the
// partitions are mutually consistent at any instant.

type GalleryFilter struct {
	// Search matches case-insensitively against title or author name.
	Search string
	// Category filters on exact category; CategoryAll (or empty) disables it.
	Category string
}

// ProjectGallery derives the public gallery: approved artworks only, newest
// first, narrowed by the filter, annotated with the viewer's like state.
func ProjectGallery(artworks []Artwork, viewerID uuid.UUID, filter GalleryFilter) []Artwork {
	out := make([]Artwork, 0, len(artworks))
	for _, art := range artworks {
		if art.Status != ArtworkApproved {
			continue
		}
		if !matchesFilter(&art, filter) {
			continue
		}
		art.IsLiked = art.LikedBy(viewerID)
		out = append(out, art)
	}
	SortNewestFirst(out)
	return out
}

func matchesFilter(art *Artwork, filter GalleryFilter) bool {
	if filter.Category != "" && filter.Category != CategoryAll && string(art.Category) != filter.Category {
		return false
	}
	if filter.Search == "" {
		return true
	}
	needle := strings.ToLower(filter.Search)
	return strings.Contains(strings.ToLower(art.Title), needle) ||
		strings.Contains(strings.ToLower(art.Author), needle)
}

// SortNewestFirst orders by creation timestamp descending. Records without a
// timestamp sort last.
func SortNewestFirst(artworks []Artwork) {
	sort.SliceStable(artworks, func(i, j int) bool {
		return artworks[i].CreatedAtUnix() > artworks[j].CreatedAtUnix()
	})
}

// ModerationQueues partitions the artwork set by status for the admin view.
type ModerationQueues struct {
	Pending  []Artwork `json:"pending"`
	Approved []Artwork `json:"approved"`
	Rejected []Artwork `json:"rejected"`
	Deleted  []Artwork `json:"deleted"`
}

func ProjectQueues(artworks []Artwork) ModerationQueues {
	var q ModerationQueues
	for _, art := range artworks {
		switch art.Status {
		case ArtworkPending:
			q.Pending = append(q.Pending, art)
		case ArtworkApproved:
			q.Approved = append(q.Approved, art)
		case ArtworkRejected:
			q.Rejected = append(q.Rejected, art)
		case ArtworkDeleted:
			q.Deleted = append(q.Deleted, art)
		}
	}
	SortNewestFirst(q.Pending)
	SortNewestFirst(q.Approved)
	SortNewestFirst(q.Rejected)
	SortNewestFirst(q.Deleted)
	return q
}

// CategoryCounts aggregates across the union of all four partitions.
func (q ModerationQueues) CategoryCounts() map[ArtworkCategory]int {
	counts := make(map[ArtworkCategory]int, len(Categories()))
	for _, cat := range Categories() {
		counts[cat] = 0
	}
	for _, part := range [][]Artwork{q.Pending, q.Approved, q.Rejected, q.Deleted} {
		for _, art := range part {
			counts[art.Category]++
		}
	}
	return counts
}

// QueueStats is the admin dashboard summary.
type QueueStats struct {
	Pending    int                     `json:"pending"`
	Approved   int                     `json:"approved"`
	Rejected   int                     `json:"rejected"`
	Deleted    int                     `json:"deleted"`
	Categories map[ArtworkCategory]int `json:"categories"`
}

func (q ModerationQueues) Stats() QueueStats {
	return QueueStats{
		Pending:    len(q.Pending),
		Approved:   len(q.Approved),
		Rejected:   len(q.Rejected),
		Deleted:    len(q.Deleted),
		Categories: q.CategoryCounts(),
	}
}

// ProjectAuthorProfile derives the owning author's view: every status, store
// order, annotated with the author's own like state.
func ProjectAuthorProfile(artworks []Artwork, authorID uuid.UUID) []Artwork {
	out := make([]Artwork, 0, len(artworks))
	for _, art := range artworks {
		if art.AuthorID == nil || *art.AuthorID != authorID {
			continue
		}
		art.IsLiked = art.LikedBy(authorID)
		out = append(out, art)
	}
	return out
}
