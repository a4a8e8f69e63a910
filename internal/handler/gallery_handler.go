package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kreartif/internal/domain"
	"kreartif/internal/middleware"
	"kreartif/internal/service"
)

type GalleryHandler struct {
	projections    service.ProjectionService
	artworkService service.ArtworkService
}

func NewGalleryHandler(projections service.ProjectionService, artworkService service.ArtworkService) *GalleryHandler {
	return &GalleryHandler{
		projections:    projections,
		artworkService: artworkService,
	}
}

// List serves the public gallery. Anonymous viewers get is_liked=false.
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	filter := domain.GalleryFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	artworks, err := h.projections.Gallery(c.Context(), middleware.GetCurrentUserID(c), filter)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": artworks,
	})
}

func (h *GalleryHandler) Categories(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": domain.Categories(),
	})
}

// Detail exposes a single artwork. Non-approved artworks are only visible to
// their author or an admin.
func (h *GalleryHandler) Detail(c *fiber.Ctx) error {
	artworkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid artwork ID")
	}

	art, err := h.artworkService.GetByID(c.Context(), artworkID)
	if err != nil {
		if err == service.ErrArtworkNotFound {
			return middleware.NotFound("Artwork not found")
		}
		return err
	}

	if art.Status != domain.ArtworkApproved && !canSeeUnapproved(c, art) {
		return middleware.NotFound("Artwork not found")
	}

	art.IsLiked = art.LikedBy(middleware.GetCurrentUserID(c))
	return c.Status(fiber.StatusOK).JSON(art)
}

func canSeeUnapproved(c *fiber.Ctx, art *domain.Artwork) bool {
	if middleware.IsAdmin(c) {
		return true
	}
	userID := middleware.GetCurrentUserID(c)
	return art.AuthorID != nil && *art.AuthorID == userID && userID != uuid.Nil
}
