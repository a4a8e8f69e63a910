package service

import (
	"context"
	"fmt"
	"strings"

	"kreartif/internal/config"
	"kreartif/internal/domain"
	"kreartif/internal/repository"
)

// RoleService resolves a user's effective role. The allow-list wins over the
// stored role, and anything unrecognized falls back to plain user.
type RoleService interface {
	Resolve(user *domain.User) domain.UserRole
	Sync(ctx context.Context, user *domain.User) error
}

type roleService struct {
	userRepo    repository.UserRepository
	adminEmails map[string]struct{}
}

func NewRoleService(userRepo repository.UserRepository, cfg *config.Config) RoleService {
	adminEmails := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		adminEmails[strings.ToLower(email)] = struct{}{}
	}
	return &roleService{
		userRepo:    userRepo,
		adminEmails: adminEmails,
	}
}

func (s *roleService) Resolve(user *domain.User) domain.UserRole {
	if user == nil {
		return domain.RoleUser
	}
	if _, ok := s.adminEmails[strings.ToLower(user.Email)]; ok {
		return domain.RoleAdmin
	}
	if role := domain.UserRole(user.Role); role.IsValid() {
		return role
	}
	return domain.RoleUser
}

// Sync writes the resolved role back to the user record so the allow-list
// promotion survives in storage, and updates the in-memory user either way.
func (s *roleService) Sync(ctx context.Context, user *domain.User) error {
	resolved := s.Resolve(user)
	if string(resolved) == user.Role {
		return nil
	}

	if err := s.userRepo.UpdateRole(ctx, user.ID, resolved); err != nil {
		return fmt.Errorf("failed to persist role: %w", err)
	}
	user.Role = string(resolved)
	return nil
}
