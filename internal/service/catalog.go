package service

import (
	"context"
	"fmt"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository"
)

var (
	ErrServiceNotFound   = repository.ErrServiceNotFound
	ErrServiceNameExists = repository.ErrServiceNameExists
)

type CatalogRepository interface {
	Create(ctx context.Context, svc domain.Service) (domain.Service, error)
	FindAll(ctx context.Context) ([]domain.Service, error)
	FindByID(ctx context.Context, id uint) (domain.Service, error)
	Update(ctx context.Context, svc domain.Service) (domain.Service, error)
	Delete(ctx context.Context, id uint) error
}

// CatalogService manages the referential of amenities (wifi, meeting
// rooms, ...) offices can be tagged with.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) Create(ctx context.Context, svc domain.Service) (domain.Service, error) {
	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		return domain.Service{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return services, nil
}

func (s *CatalogService) Get(ctx context.Context, id uint) (domain.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Service{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return svc, nil
}

func (s *CatalogService) Update(ctx context.Context, svc domain.Service) (domain.Service, error) {
	updated, err := s.repo.Update(ctx, svc)
	if err != nil {
		return domain.Service{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
