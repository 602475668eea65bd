package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository"
)

var ErrLeadNotFound = repository.ErrLeadNotFound

type LeadRepository interface {
	Create(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	FindByID(ctx context.Context, id uint) (domain.Lead, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Lead, error)
	UpdateStatus(ctx context.Context, id uint, status string) (domain.Lead, error)
}

type LeadOfficeRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Office, error)
}

type LeadService struct {
	repo       LeadRepository
	officeRepo LeadOfficeRepository
}

func NewLeadService(repo LeadRepository, officeRepo LeadOfficeRepository) *LeadService {
	return &LeadService{
		repo:       repo,
		officeRepo: officeRepo,
	}
}

// Submit records an inbound contact request. A lead referencing an
// office that no longer exists is kept but detached, so a form
// submitted from a stale tab is never lost.
func (s *LeadService) Submit(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	if lead.OfficeID != nil {
		if _, err := s.officeRepo.FindByID(ctx, *lead.OfficeID); err != nil {
			if !errors.Is(err, repository.ErrOfficeNotFound) {
				return domain.Lead{}, fmt.Errorf("s.officeRepo.FindByID -> %w", err)
			}

			zap.L().Warn("lead references unknown office, detaching",
				zap.Uint("officeId", *lead.OfficeID))
			lead.OfficeID = nil
		}
	}

	created, err := s.repo.Create(ctx, lead)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("lead captured",
		zap.Uint("id", created.ID),
		zap.String("email", created.Email),
		zap.Uintp("officeId", created.OfficeID))

	return created, nil
}

func (s *LeadService) List(ctx context.Context, status string, limit, offset int) ([]domain.Lead, error) {
	leads, err := s.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return leads, nil
}

func (s *LeadService) UpdateStatus(ctx context.Context, id uint, status string) (domain.Lead, error) {
	lead, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return lead, nil
}
