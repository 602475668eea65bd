package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository/dao"
)

var ErrLeadNotFound = dao.ErrLeadNotFound

type LeadDAO interface {
	Insert(ctx context.Context, lead dao.Lead) (dao.Lead, error)
	FindByID(ctx context.Context, id uint) (dao.Lead, error)
	List(ctx context.Context, status string, limit, offset int) ([]dao.Lead, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dao.Lead, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type LeadRepository struct {
	dao LeadDAO
}

func NewLeadRepository(dao LeadDAO) *LeadRepository {
	return &LeadRepository{
		dao: dao,
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	created, err := r.dao.Insert(ctx, dao.Lead{
		Name:     lead.Name,
		Email:    lead.Email,
		Phone:    lead.Phone,
		Message:  lead.Message,
		OfficeID: lead.OfficeID,
		Source:   lead.Source,
		Status:   domain.LeadStatusNew,
	})
	if err != nil {
		return domain.Lead{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id uint) (domain.Lead, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *LeadRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Lead, error) {
	found, err := r.dao.List(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	leads := make([]domain.Lead, len(found))
	for i, lead := range found {
		leads[i] = r.daoToDomain(lead)
	}

	return leads, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id uint, status string) (domain.Lead, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	return r.dao.CountByStatus(ctx)
}

func (r *LeadRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.dao.CountCreatedSince(ctx, since)
}

func (r *LeadRepository) daoToDomain(l dao.Lead) domain.Lead {
	return domain.Lead{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Message:   l.Message,
		OfficeID:  l.OfficeID,
		Source:    l.Source,
		Status:    l.Status,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
