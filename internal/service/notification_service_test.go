package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kreartif/internal/domain"
	"kreartif/internal/service"
)

func newNotificationService(notifRepo *MockNotificationRepository) service.NotificationService {
	return service.NewNotificationService(notifRepo, service.NewRealtimeService(nil))
}

func TestNotificationService_Messages(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Approved", func(t *testing.T) {
		notifRepo := new(MockNotificationRepository)
		svc := newNotificationService(notifRepo)

		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == userID &&
				n.Type == domain.NotifSuccess &&
				n.Title == "Karya Diterima 🎉" &&
				n.Message == "Selamat! Karya Anda \"Sunset di Pantai\" telah disetujui Admin."
		})).Return(nil).Once()

		err := svc.NotifyArtworkApproved(ctx, userID, "Sunset di Pantai")

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Rejected Includes Reason", func(t *testing.T) {
		notifRepo := new(MockNotificationRepository)
		svc := newNotificationService(notifRepo)

		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotifError &&
				n.Title == "Karya Ditolak 😔" &&
				n.Message == "Maaf, karya \"Sunset di Pantai\" ditolak. Alasan: Kualitas gambar rendah"
		})).Return(nil).Once()

		err := svc.NotifyArtworkRejected(ctx, userID, "Sunset di Pantai", "Kualitas gambar rendah")

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Removed", func(t *testing.T) {
		notifRepo := new(MockNotificationRepository)
		svc := newNotificationService(notifRepo)

		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotifError &&
				n.Title == "Karya Dihapus 🗑️" &&
				n.Message == "Karya Anda \"Sunset di Pantai\" telah dihapus oleh Admin."
		})).Return(nil).Once()

		err := svc.NotifyArtworkRemoved(ctx, userID, "Sunset di Pantai")

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Welcome", func(t *testing.T) {
		notifRepo := new(MockNotificationRepository)
		svc := newNotificationService(notifRepo)

		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotifInfo &&
				n.Title == "Selamat Datang!" &&
				n.Message == "Halo Budi Santoso, selamat bergabung di KreArtif. Mulailah mengunggah karyamu!"
		})).Return(nil).Once()

		err := svc.NotifyWelcome(ctx, userID, "Budi Santoso")

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})
}

func TestNotificationService_DeliveryPublishesEvent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notifRepo := new(MockNotificationRepository)
	realtime := service.NewRealtimeService(nil)
	svc := service.NewNotificationService(notifRepo, realtime)

	events, cancel := realtime.Subscribe(service.NotificationsTopic(userID))
	defer cancel()

	notifRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	err := svc.NotifyWelcome(ctx, userID, "Budi")

	assert.NoError(t, err)
	select {
	case topic := <-events:
		assert.Equal(t, service.NotificationsTopic(userID), topic)
	default:
		t.Fatal("expected a notifications event")
	}
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notifID := uuid.New()
	notifRepo := new(MockNotificationRepository)
	svc := newNotificationService(notifRepo)

	notifRepo.On("MarkAsRead", ctx, notifID).Return(nil).Once()

	err := svc.MarkAsRead(ctx, userID, notifID)

	assert.NoError(t, err)
	notifRepo.AssertExpectations(t)
}
