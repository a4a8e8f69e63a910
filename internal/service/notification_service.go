package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kreartif/internal/domain"
	"kreartif/internal/repository"
)

type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	NotifyArtworkApproved(ctx context.Context, userID uuid.UUID, title string) error
	NotifyArtworkRejected(ctx context.Context, userID uuid.UUID, title, reason string) error
	NotifyArtworkRemoved(ctx context.Context, userID uuid.UUID, title string) error
	NotifyWelcome(ctx context.Context, userID uuid.UUID, fullName string) error
}

type notificationService struct {
	notifRepo repository.NotificationRepository
	realtime  RealtimeService
}

func NewNotificationService(notifRepo repository.NotificationRepository, realtime RealtimeService) NotificationService {
	return &notificationService{
		notifRepo: notifRepo,
		realtime:  realtime,
	}
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *notificationService) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	return s.notifRepo.ListAllByUser(ctx, userID)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.notifRepo.MarkAsRead(ctx, id); err != nil {
		return err
	}
	s.realtime.Publish(ctx, NotificationsTopic(userID))
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.notifRepo.MarkAllAsRead(ctx, userID); err != nil {
		return err
	}
	s.realtime.Publish(ctx, NotificationsTopic(userID))
	return nil
}

func (s *notificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *notificationService) NotifyArtworkApproved(ctx context.Context, userID uuid.UUID, title string) error {
	return s.deliver(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    domain.NotifSuccess,
		Title:   "Karya Diterima 🎉",
		Message: fmt.Sprintf("Selamat! Karya Anda \"%s\" telah disetujui Admin.", title),
	})
}

func (s *notificationService) NotifyArtworkRejected(ctx context.Context, userID uuid.UUID, title, reason string) error {
	return s.deliver(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    domain.NotifError,
		Title:   "Karya Ditolak 😔",
		Message: fmt.Sprintf("Maaf, karya \"%s\" ditolak. Alasan: %s", title, reason),
	})
}

func (s *notificationService) NotifyArtworkRemoved(ctx context.Context, userID uuid.UUID, title string) error {
	return s.deliver(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    domain.NotifError,
		Title:   "Karya Dihapus 🗑️",
		Message: fmt.Sprintf("Karya Anda \"%s\" telah dihapus oleh Admin.", title),
	})
}

func (s *notificationService) NotifyWelcome(ctx context.Context, userID uuid.UUID, fullName string) error {
	return s.deliver(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    domain.NotifInfo,
		Title:   "Selamat Datang!",
		Message: fmt.Sprintf("Halo %s, selamat bergabung di KreArtif. Mulailah mengunggah karyamu!", fullName),
	})
}

func (s *notificationService) deliver(ctx context.Context, notif *domain.Notification) error {
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	s.realtime.Publish(ctx, NotificationsTopic(notif.UserID))
	return nil
}
