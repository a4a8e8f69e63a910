package handler

import (
	"github.com/gofiber/fiber/v2"

	"kreartif/internal/middleware"
	"kreartif/internal/service"
)

type ProfileHandler struct {
	projections service.ProjectionService
}

func NewProfileHandler(projections service.ProjectionService) *ProfileHandler {
	return &ProfileHandler{projections: projections}
}

// MyArtworks lists everything the viewer has submitted, across all statuses.
func (h *ProfileHandler) MyArtworks(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	artworks, err := h.projections.AuthorProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  artworks,
		"count": len(artworks),
	})
}
