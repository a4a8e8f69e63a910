package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"kreartif/internal/domain"
	"kreartif/internal/middleware"
	"kreartif/internal/service"
)

// EventsHandler streams audience snapshots over WebSocket. Every change
// signal triggers a fresh projection query, so clients always converge on the
// latest state even if intermediate signals were coalesced.
type EventsHandler struct {
	projections  service.ProjectionService
	notifService service.NotificationService
	realtime     service.RealtimeService
}

func NewEventsHandler(projections service.ProjectionService, notifService service.NotificationService, realtime service.RealtimeService) *EventsHandler {
	return &EventsHandler{
		projections:  projections,
		notifService: notifService,
		realtime:     realtime,
	}
}

// UpgradeRequired rejects plain HTTP requests on WebSocket routes.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *EventsHandler) Gallery() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		viewerID := connUserID(conn)
		filter := domain.GalleryFilter{
			Search:   conn.Query("search"),
			Category: conn.Query("category"),
		}

		h.stream(conn, service.TopicGallery, func(ctx context.Context) (interface{}, error) {
			return h.projections.Gallery(ctx, viewerID, filter)
		})
	})
}

func (h *EventsHandler) Moderation() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		h.stream(conn, service.TopicModeration, func(ctx context.Context) (interface{}, error) {
			return h.projections.Queues(ctx)
		})
	})
}

func (h *EventsHandler) Profile() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID := connUserID(conn)
		if userID == uuid.Nil {
			_ = conn.Close()
			return
		}

		h.stream(conn, service.ProfileTopic(userID), func(ctx context.Context) (interface{}, error) {
			return h.projections.AuthorProfile(ctx, userID)
		})
	})
}

func (h *EventsHandler) Notifications() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID := connUserID(conn)
		if userID == uuid.Nil {
			_ = conn.Close()
			return
		}

		h.stream(conn, service.NotificationsTopic(userID), func(ctx context.Context) (interface{}, error) {
			return h.notifService.ListAll(ctx, userID)
		})
	})
}

func (h *EventsHandler) stream(conn *websocket.Conn, topic string, snapshot func(context.Context) (interface{}, error)) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, unsubscribe := h.realtime.Subscribe(topic)
	defer unsubscribe()

	// The read loop only exists to notice the peer going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.sendSnapshot(ctx, conn, snapshot); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			if err := h.sendSnapshot(ctx, conn, snapshot); err != nil {
				return
			}
		}
	}
}

// sendSnapshot fails only when the connection is dead. A store read failure
// is logged and skipped; the subscription stays open and the client keeps its
// last snapshot until the next change event.
func (h *EventsHandler) sendSnapshot(ctx context.Context, conn *websocket.Conn, snapshot func(context.Context) (interface{}, error)) error {
	data, err := snapshot(ctx)
	if err != nil {
		fmt.Printf("Failed to build snapshot: %v\n", err)
		return nil
	}

	return conn.WriteJSON(fiber.Map{
		"data": data,
	})
}

func connUserID(conn *websocket.Conn) uuid.UUID {
	userID, ok := conn.Locals(middleware.UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
