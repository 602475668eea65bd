package service

import (
	"context"
	"fmt"
	"time"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository"
)

var ErrOfficeNotFound = repository.ErrOfficeNotFound

type OfficeRepository interface {
	Create(ctx context.Context, office domain.Office, serviceIDs []uint) (domain.Office, error)
	FindBySlug(ctx context.Context, slug string, excludeID uint) (domain.Office, error)
	FindPublishedBySlug(ctx context.Context, slug string) (domain.Office, error)
	FindByID(ctx context.Context, id uint) (domain.Office, error)
	List(ctx context.Context, filter domain.OfficeFilter) ([]domain.Office, error)
	Update(ctx context.Context, office domain.Office, serviceIDs []uint) (domain.Office, error)
	Delete(ctx context.Context, id uint) error
	SetPublishedAt(ctx context.Context, id uint, publishedAt *time.Time) error
}

type OfficeService struct {
	repo OfficeRepository
	now  func() time.Time
}

func NewOfficeService(repo OfficeRepository) *OfficeService {
	return &OfficeService{
		repo: repo,
		now:  time.Now,
	}
}

// ListPublished returns the public catalog: published offices only,
// optionally narrowed by arrondissement, price ceiling and workstation
// count.
func (s *OfficeService) ListPublished(ctx context.Context, filter domain.OfficeFilter) ([]domain.Office, error) {
	filter.PublishedOnly = true

	offices, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return offices, nil
}

// ListAll returns every office, drafts included. Admin only.
func (s *OfficeService) ListAll(ctx context.Context, filter domain.OfficeFilter) ([]domain.Office, error) {
	offices, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return offices, nil
}

func (s *OfficeService) GetPublishedBySlug(ctx context.Context, slug string) (domain.Office, error) {
	office, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return domain.Office{}, fmt.Errorf("s.repo.FindPublishedBySlug -> %w", err)
	}

	return office, nil
}

func (s *OfficeService) GetByID(ctx context.Context, id uint) (domain.Office, error) {
	office, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Office{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return office, nil
}

func (s *OfficeService) Create(ctx context.Context, office domain.Office, serviceIDs []uint) (domain.Office, error) {
	if office.NbPosts == 0 {
		office.NbPosts = 1
	}

	created, err := s.repo.Create(ctx, office, serviceIDs)
	if err != nil {
		return domain.Office{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *OfficeService) Update(ctx context.Context, office domain.Office, serviceIDs []uint) (domain.Office, error) {
	existing, err := s.repo.FindByID(ctx, office.ID)
	if err != nil {
		return domain.Office{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	// PublishedAt is managed through Publish/Unpublish, not edits.
	office.PublishedAt = existing.PublishedAt
	office.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, office, serviceIDs)
	if err != nil {
		return domain.Office{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *OfficeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *OfficeService) Publish(ctx context.Context, id uint) (domain.Office, error) {
	now := s.now()
	if err := s.repo.SetPublishedAt(ctx, id, &now); err != nil {
		return domain.Office{}, fmt.Errorf("s.repo.SetPublishedAt -> %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *OfficeService) Unpublish(ctx context.Context, id uint) (domain.Office, error) {
	if err := s.repo.SetPublishedAt(ctx, id, nil); err != nil {
		return domain.Office{}, fmt.Errorf("s.repo.SetPublishedAt -> %w", err)
	}

	return s.GetByID(ctx, id)
}
