package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrLeadNotFound = errors.New("lead not found")

type Lead struct {
	ID uint `gorm:"primaryKey"`

	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Phone   string
	Message string `gorm:"not null"`

	OfficeID *uint `gorm:"index"`
	Source   string
	Status   string `gorm:"not null;default:new;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type LeadDAO struct {
	db *gorm.DB
}

func NewLeadDAO(db *gorm.DB) *LeadDAO {
	return &LeadDAO{
		db: db,
	}
}

func (d *LeadDAO) Insert(ctx context.Context, lead Lead) (Lead, error) {
	result := d.db.WithContext(ctx).Create(&lead)
	if result.Error != nil {
		return Lead{}, result.Error
	}

	return lead, nil
}

func (d *LeadDAO) FindByID(ctx context.Context, id uint) (Lead, error) {
	var lead Lead

	result := d.db.WithContext(ctx).First(&lead, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Lead{}, ErrLeadNotFound
		}

		return Lead{}, result.Error
	}

	return lead, nil
}

func (d *LeadDAO) List(ctx context.Context, status string, limit, offset int) ([]Lead, error) {
	query := d.db.WithContext(ctx).Order("created_at DESC")

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var leads []Lead
	if err := query.Find(&leads).Error; err != nil {
		return nil, err
	}

	return leads, nil
}

func (d *LeadDAO) UpdateStatus(ctx context.Context, id uint, status string) (Lead, error) {
	result := d.db.WithContext(ctx).
		Model(&Lead{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return Lead{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Lead{}, ErrLeadNotFound
	}

	return d.FindByID(ctx, id)
}

type statusCount struct {
	Status string
	Count  int
}

func (d *LeadDAO) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []statusCount
	err := d.db.WithContext(ctx).
		Model(&Lead{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (d *LeadDAO) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&Lead{}).
		Where("created_at >= ?", since).
		Count(&count).Error

	return count, err
}
