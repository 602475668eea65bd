package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository/dao"
)

var (
	ErrOfficeNotFound   = dao.ErrOfficeNotFound
	ErrOfficeSlugExists = dao.ErrOfficeSlugExists
)

type OfficeDAO interface {
	Insert(ctx context.Context, office dao.Office, serviceIDs []uint) (dao.Office, error)
	InsertWithAmenities(ctx context.Context, office dao.Office, amenities []string) (dao.Office, error)
	FindBySlug(ctx context.Context, slug string, excludeID uint) (dao.Office, error)
	FindPublishedBySlug(ctx context.Context, slug string) (dao.Office, error)
	FindByID(ctx context.Context, id uint) (dao.Office, error)
	List(ctx context.Context, filter dao.OfficeListFilter) ([]dao.Office, error)
	Update(ctx context.Context, office dao.Office, serviceIDs []uint) (dao.Office, error)
	Delete(ctx context.Context, id uint) error
	SetPublishedAt(ctx context.Context, id uint, publishedAt *time.Time) error
	CountAll(ctx context.Context) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
	CountPerArr(ctx context.Context) (map[int]int, error)
	AvgPublishedPriceCents(ctx context.Context) (int64, error)
}

type OfficeRepository struct {
	dao OfficeDAO
}

func NewOfficeRepository(dao OfficeDAO) *OfficeRepository {
	return &OfficeRepository{
		dao: dao,
	}
}

func (r *OfficeRepository) Create(ctx context.Context, office domain.Office, serviceIDs []uint) (domain.Office, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(office), serviceIDs)
	if err != nil {
		return domain.Office{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

// CreateWithAmenities persists one import row: the office plus its amenity
// links, all inside the DAO's single transaction.
func (r *OfficeRepository) CreateWithAmenities(ctx context.Context, office domain.Office, amenities []string) (domain.Office, error) {
	created, err := r.dao.InsertWithAmenities(ctx, r.domainToDao(office), amenities)
	if err != nil {
		return domain.Office{}, fmt.Errorf("r.dao.InsertWithAmenities -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OfficeRepository) FindBySlug(ctx context.Context, slug string, excludeID uint) (domain.Office, error) {
	found, err := r.dao.FindBySlug(ctx, slug, excludeID)
	if err != nil {
		return domain.Office{}, fmt.Errorf("r.dao.FindBySlug -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OfficeRepository) FindPublishedBySlug(ctx context.Context, slug string) (domain.Office, error) {
	found, err := r.dao.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return domain.Office{}, fmt.Errorf("r.dao.FindPublishedBySlug -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OfficeRepository) FindByID(ctx context.Context, id uint) (domain.Office, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Office{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OfficeRepository) List(ctx context.Context, filter domain.OfficeFilter) ([]domain.Office, error) {
	found, err := r.dao.List(ctx, dao.OfficeListFilter{
		PublishedOnly: filter.PublishedOnly,
		Arr:           filter.Arr,
		MaxPriceCents: filter.MaxPriceCents,
		MinPosts:      filter.MinPosts,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	offices := make([]domain.Office, len(found))
	for i, office := range found {
		offices[i] = r.daoToDomain(office)
	}

	return offices, nil
}

func (r *OfficeRepository) Update(ctx context.Context, office domain.Office, serviceIDs []uint) (domain.Office, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(office), serviceIDs)
	if err != nil {
		return domain.Office{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *OfficeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *OfficeRepository) SetPublishedAt(ctx context.Context, id uint, publishedAt *time.Time) error {
	if err := r.dao.SetPublishedAt(ctx, id, publishedAt); err != nil {
		return fmt.Errorf("r.dao.SetPublishedAt -> %w", err)
	}

	return nil
}

func (r *OfficeRepository) CountAll(ctx context.Context) (int64, error) {
	return r.dao.CountAll(ctx)
}

func (r *OfficeRepository) CountPublished(ctx context.Context) (int64, error) {
	return r.dao.CountPublished(ctx)
}

func (r *OfficeRepository) CountPerArr(ctx context.Context) (map[int]int, error) {
	return r.dao.CountPerArr(ctx)
}

func (r *OfficeRepository) AvgPublishedPriceCents(ctx context.Context) (int64, error) {
	return r.dao.AvgPublishedPriceCents(ctx)
}

func (r *OfficeRepository) domainToDao(o domain.Office) dao.Office {
	photos := make([]dao.Photo, len(o.Photos))
	for i, photo := range o.Photos {
		photos[i] = dao.Photo{
			ID:       photo.ID,
			OfficeID: photo.OfficeID,
			URL:      photo.URL,
			Alt:      photo.Alt,
			Position: photo.Position,
		}
	}

	return dao.Office{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Slug:        o.Slug,
		Arr:         o.Arr,
		PriceCents:  o.PriceCents,
		NbPosts:     o.NbPosts,
		Lat:         o.Lat,
		Lng:         o.Lng,
		IsFake:      o.IsFake,
		PublishedAt: o.PublishedAt,
		Photos:      photos,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (r *OfficeRepository) daoToDomain(o dao.Office) domain.Office {
	photos := make([]domain.Photo, len(o.Photos))
	for i, photo := range o.Photos {
		photos[i] = domain.Photo{
			ID:       photo.ID,
			OfficeID: photo.OfficeID,
			URL:      photo.URL,
			Alt:      photo.Alt,
			Position: photo.Position,
		}
	}

	services := make([]domain.Service, len(o.Services))
	for i, service := range o.Services {
		services[i] = domain.Service{
			ID:   service.ID,
			Name: service.Name,
			Icon: service.Icon,
		}
	}

	return domain.Office{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Slug:        o.Slug,
		Arr:         o.Arr,
		PriceCents:  o.PriceCents,
		NbPosts:     o.NbPosts,
		Lat:         o.Lat,
		Lng:         o.Lng,
		IsFake:      o.IsFake,
		PublishedAt: o.PublishedAt,
		Photos:      photos,
		Services:    services,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
