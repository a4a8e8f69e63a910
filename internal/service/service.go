package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"kreartif/internal/config"
	"kreartif/internal/repository"
)

type Services struct {
	Auth         AuthService
	Role         RoleService
	Artwork      ArtworkService
	Projection   ProjectionService
	Notification NotificationService
	Realtime     RealtimeService
	Media        MediaService
	Email        EmailService
	Audit        AuditService
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	realtime := NewRealtimeService(redisClient)
	email := NewEmailService(cfg)
	media := NewMediaService(minioClient, cfg)
	notification := NewNotificationService(repos.Notification, realtime)
	role := NewRoleService(repos.User, cfg)
	auth := NewAuthService(repos.User, repos.Session, role, notification, email, cfg)
	projection := NewProjectionService(repos.Artwork, redisClient)
	artwork := NewArtworkService(repos.Artwork, repos.AuditLog, notification, media, projection, realtime)
	audit := NewAuditService(repos.AuditLog)

	return &Services{
		Auth:         auth,
		Role:         role,
		Artwork:      artwork,
		Projection:   projection,
		Notification: notification,
		Realtime:     realtime,
		Media:        media,
		Email:        email,
		Audit:        audit,
	}
}
