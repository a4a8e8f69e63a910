package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"kreartif/internal/config"
	"kreartif/internal/handler"
	"kreartif/internal/middleware"
	"kreartif/internal/repository"
	"kreartif/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (image upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	// Relay change events published by other instances.
	go services.Realtime.Run(context.Background())

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadBytes) + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Post("/refresh", h.Auth.RefreshToken)

	// The gallery is public; a token only personalizes is_liked.
	gallery := v1.Group("/gallery", middleware.OptionalAuth(authService))
	gallery.Get("/", h.Gallery.List)
	gallery.Get("/categories", h.Gallery.Categories)
	gallery.Get("/:id", h.Gallery.Detail)
	gallery.Post("/:id/view", h.Artwork.RecordView)

	protected := v1.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.Auth.Me)
	users.Put("/me", h.Auth.UpdateProfile)
	users.Get("/me/artworks", h.Profile.MyArtworks)

	artworks := protected.Group("/artworks")
	artworks.Post("/", h.Artwork.Submit)
	artworks.Delete("/:id", h.Artwork.Delete)
	artworks.Post("/:id/like", h.Artwork.ToggleLike)
	artworks.Post("/:id/comments", h.Artwork.AddComment)

	media := protected.Group("/media")
	media.Post("/", h.Media.Upload)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)

	admin := protected.Group("/admin", middleware.RequireRole("admin"))
	admin.Get("/queues", h.Moderation.Queues)
	admin.Get("/stats", h.Moderation.Stats)
	admin.Post("/artworks/:id/approve", h.Moderation.Approve)
	admin.Post("/artworks/:id/reject", h.Moderation.Reject)
	admin.Delete("/artworks/:id", h.Moderation.Remove)
	admin.Delete("/artworks/:id/purge", h.Moderation.Purge)
	admin.Get("/audit", h.Moderation.AuditLog)
	admin.Get("/artworks/:id/audit", h.Moderation.ArtworkAuditLog)

	events := v1.Group("/events", handler.UpgradeRequired)
	events.Get("/gallery", middleware.OptionalAuth(authService), h.Events.Gallery())
	events.Get("/profile", middleware.AuthRequired(authService), h.Events.Profile())
	events.Get("/notifications", middleware.AuthRequired(authService), h.Events.Notifications())
	events.Get("/moderation", middleware.AuthRequired(authService), middleware.RequireRole("admin"), h.Events.Moderation())
}
