package repository

import (
	"context"
	"fmt"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository/dao"
)

var (
	ErrServiceNotFound   = dao.ErrServiceNotFound
	ErrServiceNameExists = dao.ErrServiceNameExists
)

type ServiceDAO interface {
	Insert(ctx context.Context, service dao.Service) (dao.Service, error)
	FindAll(ctx context.Context) ([]dao.Service, error)
	FindByID(ctx context.Context, id uint) (dao.Service, error)
	FindByNames(ctx context.Context, names []string) ([]dao.Service, error)
	Update(ctx context.Context, service dao.Service) (dao.Service, error)
	Delete(ctx context.Context, id uint) error
}

type ServiceRepository struct {
	dao ServiceDAO
}

func NewServiceRepository(dao ServiceDAO) *ServiceRepository {
	return &ServiceRepository{
		dao: dao,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, service domain.Service) (domain.Service, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(service))
	if err != nil {
		return domain.Service{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ServiceRepository) FindAll(ctx context.Context) ([]domain.Service, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uint) (domain.Service, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Service{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ServiceRepository) FindByNames(ctx context.Context, names []string) ([]domain.Service, error) {
	found, err := r.dao.FindByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByNames -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ServiceRepository) Update(ctx context.Context, service domain.Service) (domain.Service, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(service))
	if err != nil {
		return domain.Service{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ServiceRepository) domainToDao(s domain.Service) dao.Service {
	return dao.Service{
		ID:   s.ID,
		Name: s.Name,
		Icon: s.Icon,
	}
}

func (r *ServiceRepository) daoToDomain(s dao.Service) domain.Service {
	return domain.Service{
		ID:   s.ID,
		Name: s.Name,
		Icon: s.Icon,
	}
}

func (r *ServiceRepository) daosToDomain(found []dao.Service) []domain.Service {
	services := make([]domain.Service, len(found))
	for i, service := range found {
		services[i] = r.daoToDomain(service)
	}

	return services
}
