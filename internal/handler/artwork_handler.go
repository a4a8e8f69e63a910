package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kreartif/internal/domain"
	"kreartif/internal/middleware"
	"kreartif/internal/service"
)

type ArtworkHandler struct {
	artworkService service.ArtworkService
}

func NewArtworkHandler(artworkService service.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{artworkService: artworkService}
}

func (h *ArtworkHandler) Submit(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.SubmitArtworkInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	art, err := h.artworkService.Submit(c.Context(), user, input)
	if err != nil {
		if err == service.ErrInvalidCategory {
			return middleware.BadRequest("Unknown artwork category")
		}
		if err == service.ErrMissingFields {
			return middleware.BadRequest("Title, description and image are required")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(art)
}

func (h *ArtworkHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	artworkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid artwork ID")
	}

	if err := h.artworkService.DeleteOwn(c.Context(), userID, artworkID); err != nil {
		if err == service.ErrArtworkNotFound {
			return middleware.NotFound("Artwork not found")
		}
		if err == service.ErrNotArtworkOwner {
			return middleware.Forbidden("Artwork belongs to another user")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *ArtworkHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	artworkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid artwork ID")
	}

	liked, err := h.artworkService.ToggleLike(c.Context(), userID, artworkID)
	if err != nil {
		if err == service.ErrArtworkNotFound {
			return middleware.NotFound("Artwork not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"liked": liked,
	})
}

func (h *ArtworkHandler) AddComment(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	artworkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid artwork ID")
	}

	var input domain.AddCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	comment, err := h.artworkService.AddComment(c.Context(), user, artworkID, input)
	if err != nil {
		if err == service.ErrArtworkNotFound {
			return middleware.NotFound("Artwork not found")
		}
		if err == service.ErrEmptyComment {
			return middleware.BadRequest("Comment text is required")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *ArtworkHandler) RecordView(c *fiber.Ctx) error {
	artworkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid artwork ID")
	}

	if err := h.artworkService.RecordView(c.Context(), artworkID); err != nil {
		if err == service.ErrArtworkNotFound {
			return middleware.NotFound("Artwork not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
