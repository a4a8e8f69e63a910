package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"kreartif/internal/config"
	"kreartif/internal/domain"
	"kreartif/internal/repository"
	"kreartif/internal/service"
)

type authServiceFixture struct {
	userRepo    *MockUserRepository
	sessionRepo *MockSessionRepository
	notifSvc    *MockNotificationService
	emailSvc    *MockEmailService
	svc         service.AuthService
}

func newAuthServiceFixture() *authServiceFixture {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	notifSvc := new(MockNotificationService)
	emailSvc := new(MockEmailService)

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
		AdminEmails:      []string{"admin@kreartif.com"},
	}
	roleSvc := service.NewRoleService(userRepo, cfg)

	return &authServiceFixture{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		notifSvc:    notifSvc,
		emailSvc:    emailSvc,
		svc:         service.NewAuthService(userRepo, sessionRepo, roleSvc, notifSvc, emailSvc, cfg),
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newAuthServiceFixture()
		input := domain.CreateUserInput{
			Email:    "Budi@Example.com",
			Password: "rahasia123",
			FullName: "Budi Santoso",
			NIM:      "123456",
		}

		f.userRepo.On("ExistsByEmail", ctx, "budi@example.com").Return(false, nil).Once()
		f.userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "budi@example.com" && u.Role == "user" && u.NIM == "123456"
		})).Return(nil).Once()
		f.sessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		f.notifSvc.On("NotifyWelcome", mock.Anything, mock.Anything, "Budi Santoso").Return(nil).Maybe()
		f.emailSvc.On("SendWelcomeEmail", mock.Anything, "budi@example.com", "Budi Santoso").Return(nil).Maybe()

		user, tokens, err := f.svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotNil(t, tokens)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		f.userRepo.AssertExpectations(t)
	})

	t.Run("Admin Email Gets Admin Role", func(t *testing.T) {
		f := newAuthServiceFixture()
		input := domain.CreateUserInput{
			Email:    "admin@kreartif.com",
			Password: "rahasia123",
			FullName: "Admin",
		}

		f.userRepo.On("ExistsByEmail", ctx, "admin@kreartif.com").Return(false, nil).Once()
		f.userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == "admin"
		})).Return(nil).Once()
		f.sessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		f.notifSvc.On("NotifyWelcome", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
		f.emailSvc.On("SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		_, _, err := f.svc.Register(ctx, input)

		assert.NoError(t, err)
		f.userRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		f := newAuthServiceFixture()
		input := domain.CreateUserInput{Email: "budi@example.com", Password: "rahasia123", FullName: "Budi"}

		f.userRepo.On("ExistsByEmail", ctx, "budi@example.com").Return(true, nil).Once()

		user, tokens, err := f.svc.Register(ctx, input)

		assert.ErrorIs(t, err, service.ErrEmailExists)
		assert.Nil(t, user)
		assert.Nil(t, tokens)
	})

	t.Run("Short Password", func(t *testing.T) {
		f := newAuthServiceFixture()
		input := domain.CreateUserInput{Email: "budi@example.com", Password: "abc", FullName: "Budi"}

		user, _, err := f.svc.Register(ctx, input)

		assert.ErrorIs(t, err, service.ErrPasswordTooShort)
		assert.Nil(t, user)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)

	t.Run("Success", func(t *testing.T) {
		f := newAuthServiceFixture()
		stored := &domain.User{
			ID:           uuid.New(),
			Email:        "budi@example.com",
			PasswordHash: string(hash),
			Role:         "user",
		}

		f.userRepo.On("GetByEmail", ctx, "budi@example.com").Return(stored, nil).Once()
		f.sessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		user, tokens, err := f.svc.Login(ctx, domain.LoginInput{Email: "budi@example.com", Password: "rahasia123"})

		assert.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("Allow Listed Email Is Promoted On Login", func(t *testing.T) {
		f := newAuthServiceFixture()
		stored := &domain.User{
			ID:           uuid.New(),
			Email:        "admin@kreartif.com",
			PasswordHash: string(hash),
			Role:         "user",
		}

		f.userRepo.On("GetByEmail", ctx, "admin@kreartif.com").Return(stored, nil).Once()
		f.userRepo.On("UpdateRole", ctx, stored.ID, domain.RoleAdmin).Return(nil).Once()
		f.sessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		user, _, err := f.svc.Login(ctx, domain.LoginInput{Email: "admin@kreartif.com", Password: "rahasia123"})

		assert.NoError(t, err)
		assert.Equal(t, "admin", user.Role)
		f.userRepo.AssertExpectations(t)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		f := newAuthServiceFixture()
		stored := &domain.User{ID: uuid.New(), Email: "budi@example.com", PasswordHash: string(hash), Role: "user"}

		f.userRepo.On("GetByEmail", ctx, "budi@example.com").Return(stored, nil).Once()

		user, tokens, err := f.svc.Login(ctx, domain.LoginInput{Email: "budi@example.com", Password: "salah"})

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Nil(t, user)
		assert.Nil(t, tokens)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		f := newAuthServiceFixture()

		f.userRepo.On("GetByEmail", ctx, "tidak@ada.com").Return(nil, nil).Once()

		_, _, err := f.svc.Login(ctx, domain.LoginInput{Email: "tidak@ada.com", Password: "rahasia123"})

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	f := newAuthServiceFixture()
	hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	stored := &domain.User{ID: uuid.New(), Email: "budi@example.com", PasswordHash: string(hash), Role: "user"}

	f.userRepo.On("GetByEmail", ctx, "budi@example.com").Return(stored, nil).Once()
	f.sessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	_, tokens, err := f.svc.Login(ctx, domain.LoginInput{Email: "budi@example.com", Password: "rahasia123"})
	assert.NoError(t, err)

	claims, err := f.svc.ValidateAccessToken(tokens.AccessToken)

	assert.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, stored.Email, claims.Email)

	_, err = f.svc.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Token", func(t *testing.T) {
		f := newAuthServiceFixture()

		f.sessionRepo.On("GetByTokenHash", ctx, mock.Anything).Return(nil, nil).Once()

		tokens, err := f.svc.RefreshToken(ctx, "unknown")

		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, tokens)
	})

	t.Run("Revoked Session", func(t *testing.T) {
		f := newAuthServiceFixture()
		now := time.Now()
		session := &repository.Session{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			ExpiresAt: now.Add(time.Hour),
			RevokedAt: &now,
		}

		f.sessionRepo.On("GetByTokenHash", ctx, mock.Anything).Return(session, nil).Once()

		tokens, err := f.svc.RefreshToken(ctx, "revoked")

		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, tokens)
	})

	t.Run("Rotates Session", func(t *testing.T) {
		f := newAuthServiceFixture()
		userID := uuid.New()
		session := &repository.Session{
			ID:        uuid.New(),
			UserID:    userID,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		user := &domain.User{ID: userID, Email: "budi@example.com", Role: "user"}

		f.sessionRepo.On("GetByTokenHash", ctx, mock.Anything).Return(session, nil).Once()
		f.userRepo.On("GetByID", ctx, userID).Return(user, nil).Once()
		f.sessionRepo.On("Revoke", ctx, session.ID).Return(nil).Once()
		f.sessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		tokens, err := f.svc.RefreshToken(ctx, "valid")

		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		f.sessionRepo.AssertExpectations(t)
	})
}
