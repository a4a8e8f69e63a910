package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"kreartif/internal/domain"
	"kreartif/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	Gallery      *GalleryHandler
	Artwork      *ArtworkHandler
	Moderation   *ModerationHandler
	Profile      *ProfileHandler
	Notification *NotificationHandler
	Media        *MediaHandler
	Events       *EventsHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Gallery:      NewGalleryHandler(services.Projection, services.Artwork),
		Artwork:      NewArtworkHandler(services.Artwork),
		Moderation:   NewModerationHandler(services.Artwork, services.Projection, services.Audit),
		Profile:      NewProfileHandler(services.Projection),
		Notification: NewNotificationHandler(services.Notification),
		Media:        NewMediaHandler(services.Media),
		Events:       NewEventsHandler(services.Projection, services.Notification, services.Realtime),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page, err := strconv.Atoi(c.Query("page", "1")); err == nil {
		params.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("page_size", "20")); err == nil {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
