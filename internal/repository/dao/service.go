package dao

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrServiceNameExists = errors.New("service name already exists")
)

type Service struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null"`
	Icon string
}

type ServiceDAO struct {
	db *gorm.DB
}

func NewServiceDAO(db *gorm.DB) *ServiceDAO {
	return &ServiceDAO{
		db: db,
	}
}

func (d *ServiceDAO) Insert(ctx context.Context, service Service) (Service, error) {
	result := d.db.WithContext(ctx).Create(&service)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, "uni_services_name") {
			return Service{}, ErrServiceNameExists
		}

		return Service{}, result.Error
	}

	return service, nil
}

func (d *ServiceDAO) FindAll(ctx context.Context) ([]Service, error) {
	var services []Service
	if err := d.db.WithContext(ctx).Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

func (d *ServiceDAO) FindByID(ctx context.Context, id uint) (Service, error) {
	var service Service

	result := d.db.WithContext(ctx).First(&service, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Service{}, ErrServiceNotFound
		}

		return Service{}, result.Error
	}

	return service, nil
}

// FindByNames resolves a set of service names in one query. Names without
// a catalog entry are simply absent from the result.
func (d *ServiceDAO) FindByNames(ctx context.Context, names []string) ([]Service, error) {
	if len(names) == 0 {
		return []Service{}, nil
	}

	var services []Service
	if err := d.db.WithContext(ctx).Where("name IN ?", names).Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

func (d *ServiceDAO) Update(ctx context.Context, service Service) (Service, error) {
	result := d.db.WithContext(ctx).Save(&service)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, "uni_services_name") {
			return Service{}, ErrServiceNameExists
		}

		return Service{}, result.Error
	}

	return service, nil
}

func (d *ServiceDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Service{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrServiceNotFound
		}

		return tx.Where("service_id = ?", id).Delete(&OfficeService{}).Error
	})
}
