package handler

import (
	"github.com/gofiber/fiber/v2"

	"kreartif/internal/middleware"
	"kreartif/internal/service"
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload stores an artwork image and returns its public URL. The artwork
// itself is submitted separately with this URL.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read uploaded file")
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")

	url, err := h.mediaService.UploadImage(c.Context(), userID, fileHeader.Filename, fileHeader.Size, mimeType, file)
	if err != nil {
		if err == service.ErrNotAnImage {
			return middleware.BadRequest("Only image uploads are allowed")
		}
		if err == service.ErrFileTooLarge {
			return fiber.NewError(fiber.StatusRequestEntityTooLarge, "File exceeds the upload size limit")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}
