package service

import (
	"context"

	"github.com/google/uuid"

	"kreartif/internal/domain"
	"kreartif/internal/repository"
)

type AuditService interface {
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)
	ListByArtwork(ctx context.Context, artworkID uuid.UUID) ([]domain.AuditLog, error)
}

type auditService struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditService(auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	entries, total, err := s.auditRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.AuditLog]{}, err
	}

	return domain.NewPaginatedResponse(entries, params.Page, params.PageSize, total), nil
}

func (s *auditService) ListByArtwork(ctx context.Context, artworkID uuid.UUID) ([]domain.AuditLog, error) {
	return s.auditRepo.ListByArtwork(ctx, artworkID)
}
