package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kreartif/internal/domain"
	"kreartif/internal/middleware"
	"kreartif/internal/service"
)

type ModerationHandler struct {
	artworkService service.ArtworkService
	projections    service.ProjectionService
	auditService   service.AuditService
}

func NewModerationHandler(artworkService service.ArtworkService, projections service.ProjectionService, auditService service.AuditService) *ModerationHandler {
	return &ModerationHandler{
		artworkService: artworkService,
		projections:    projections,
		auditService:   auditService,
	}
}

func (h *ModerationHandler) Queues(c *fiber.Ctx) error {
	queues, err := h.projections.Queues(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(queues)
}

func (h *ModerationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.projections.Stats(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *ModerationHandler) Approve(c *fiber.Ctx) error {
	adminID, artworkID, err := h.moderationIDs(c)
	if err != nil {
		return err
	}

	art, err := h.artworkService.Approve(c.Context(), adminID, artworkID)
	if err != nil {
		return moderationError(err)
	}

	return c.Status(fiber.StatusOK).JSON(art)
}

func (h *ModerationHandler) Reject(c *fiber.Ctx) error {
	adminID, artworkID, err := h.moderationIDs(c)
	if err != nil {
		return err
	}

	var input domain.RejectArtworkInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	art, err := h.artworkService.Reject(c.Context(), adminID, artworkID, input)
	if err != nil {
		if err == service.ErrReasonRequired {
			return middleware.BadRequest("Rejection reason is required")
		}
		return moderationError(err)
	}

	return c.Status(fiber.StatusOK).JSON(art)
}

func (h *ModerationHandler) Remove(c *fiber.Ctx) error {
	adminID, artworkID, err := h.moderationIDs(c)
	if err != nil {
		return err
	}

	art, err := h.artworkService.Remove(c.Context(), adminID, artworkID)
	if err != nil {
		return moderationError(err)
	}

	return c.Status(fiber.StatusOK).JSON(art)
}

func (h *ModerationHandler) Purge(c *fiber.Ctx) error {
	adminID, artworkID, err := h.moderationIDs(c)
	if err != nil {
		return err
	}

	if err := h.artworkService.Purge(c.Context(), adminID, artworkID); err != nil {
		return moderationError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *ModerationHandler) AuditLog(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.auditService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ModerationHandler) ArtworkAuditLog(c *fiber.Ctx) error {
	artworkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid artwork ID")
	}

	entries, err := h.auditService.ListByArtwork(c.Context(), artworkID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": entries,
	})
}

func (h *ModerationHandler) moderationIDs(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	adminID, err := middleware.GetUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	artworkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.BadRequest("Invalid artwork ID")
	}

	return adminID, artworkID, nil
}

func moderationError(err error) error {
	switch err {
	case service.ErrArtworkNotFound:
		return middleware.NotFound("Artwork not found")
	case service.ErrInvalidTransition:
		return middleware.Conflict("Artwork is not in a state that allows this action")
	}
	return err
}
