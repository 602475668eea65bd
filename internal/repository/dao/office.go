package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrOfficeNotFound   = errors.New("office not found")
	ErrOfficeSlugExists = errors.New("office slug already exists")
)

type Office struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string
	Slug        string `gorm:"unique;not null"`
	Arr         int    `gorm:"not null"`
	PriceCents  int    `gorm:"not null"`
	NbPosts     int    `gorm:"not null;default:1"`
	Lat         float64
	Lng         float64
	IsFake      bool `gorm:"not null;default:false"`
	PublishedAt *time.Time

	Photos   []Photo   `gorm:"foreignKey:OfficeID"`
	Services []Service `gorm:"many2many:office_services;"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Photo struct {
	ID       uint   `gorm:"primaryKey"`
	OfficeID uint   `gorm:"not null;index"`
	URL      string `gorm:"not null"`
	Alt      string
	Position int `gorm:"not null;default:0"`
}

// OfficeService is the join row between offices and the service catalog.
// Rows are written explicitly so the import pipeline controls exactly
// what lands inside each row transaction.
type OfficeService struct {
	OfficeID  uint `gorm:"primaryKey"`
	ServiceID uint `gorm:"primaryKey"`
}

func (OfficeService) TableName() string {
	return "office_services"
}

type OfficeDAO struct {
	db *gorm.DB
}

func NewOfficeDAO(db *gorm.DB) *OfficeDAO {
	return &OfficeDAO{
		db: db,
	}
}

// isSlugUniqueViolation reports whether err is the Postgres unique-constraint
// violation on offices.slug. The constraint is the real uniqueness safeguard;
// pre-checks above this layer only exist for friendlier error messages.
func isSlugUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, "uni_offices_slug")
}

func (d *OfficeDAO) Insert(ctx context.Context, office Office, serviceIDs []uint) (Office, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Services").Create(&office).Error; err != nil {
			if isSlugUniqueViolation(err) {
				return ErrOfficeSlugExists
			}

			return err
		}

		return insertOfficeServices(tx, office.ID, serviceIDs)
	})
	if err != nil {
		return Office{}, err
	}

	return office, nil
}

// InsertWithAmenities inserts one office and its service links inside a
// single transaction, resolving amenities by name. Amenity names with no
// matching catalog entry are silently ignored.
func (d *OfficeDAO) InsertWithAmenities(ctx context.Context, office Office, amenities []string) (Office, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Services").Create(&office).Error; err != nil {
			if isSlugUniqueViolation(err) {
				return ErrOfficeSlugExists
			}

			return err
		}

		if len(amenities) == 0 {
			return nil
		}

		var services []Service
		if err := tx.Where("name IN ?", amenities).Find(&services).Error; err != nil {
			return err
		}

		serviceIDs := make([]uint, len(services))
		for i, svc := range services {
			serviceIDs[i] = svc.ID
		}

		return insertOfficeServices(tx, office.ID, serviceIDs)
	})
	if err != nil {
		return Office{}, err
	}

	return office, nil
}

func insertOfficeServices(tx *gorm.DB, officeID uint, serviceIDs []uint) error {
	for _, serviceID := range serviceIDs {
		join := OfficeService{OfficeID: officeID, ServiceID: serviceID}
		if err := tx.Create(&join).Error; err != nil {
			return err
		}
	}

	return nil
}

// FindBySlug looks up an office by exact slug. When excludeID is non-zero
// that office's own slug does not count as a match.
func (d *OfficeDAO) FindBySlug(ctx context.Context, slug string, excludeID uint) (Office, error) {
	query := d.db.WithContext(ctx).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var office Office
	result := query.First(&office)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Office{}, ErrOfficeNotFound
		}

		return Office{}, result.Error
	}

	return office, nil
}

func (d *OfficeDAO) FindByID(ctx context.Context, id uint) (Office, error) {
	var office Office

	result := d.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photos.position ASC")
		}).
		Preload("Services").
		First(&office, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Office{}, ErrOfficeNotFound
		}

		return Office{}, result.Error
	}

	return office, nil
}

func (d *OfficeDAO) FindPublishedBySlug(ctx context.Context, slug string) (Office, error) {
	var office Office

	result := d.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photos.position ASC")
		}).
		Preload("Services").
		Where("slug = ? AND published_at IS NOT NULL", slug).
		First(&office)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Office{}, ErrOfficeNotFound
		}

		return Office{}, result.Error
	}

	return office, nil
}

type OfficeListFilter struct {
	PublishedOnly bool
	Arr           int
	MaxPriceCents int
	MinPosts      int
}

func (d *OfficeDAO) List(ctx context.Context, filter OfficeListFilter) ([]Office, error) {
	query := d.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photos.position ASC")
		}).
		Preload("Services").
		Order("offices.id ASC")

	if filter.PublishedOnly {
		query = query.Where("published_at IS NOT NULL")
	}
	if filter.Arr != 0 {
		query = query.Where("arr = ?", filter.Arr)
	}
	if filter.MaxPriceCents != 0 {
		query = query.Where("price_cents <= ?", filter.MaxPriceCents)
	}
	if filter.MinPosts != 0 {
		query = query.Where("nb_posts >= ?", filter.MinPosts)
	}

	var offices []Office
	if err := query.Find(&offices).Error; err != nil {
		return nil, err
	}

	return offices, nil
}

// Update rewrites the office row, replaces its photo set and its service
// links in one transaction.
func (d *OfficeDAO) Update(ctx context.Context, office Office, serviceIDs []uint) (Office, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		photos := office.Photos
		office.Photos = nil

		if err := tx.Omit("Services", "Photos").Save(&office).Error; err != nil {
			if isSlugUniqueViolation(err) {
				return ErrOfficeSlugExists
			}

			return err
		}

		if err := tx.Where("office_id = ?", office.ID).Delete(&Photo{}).Error; err != nil {
			return err
		}
		for i := range photos {
			photos[i].ID = 0
			photos[i].OfficeID = office.ID
			if err := tx.Create(&photos[i]).Error; err != nil {
				return err
			}
		}
		office.Photos = photos

		if err := tx.Where("office_id = ?", office.ID).Delete(&OfficeService{}).Error; err != nil {
			return err
		}

		return insertOfficeServices(tx, office.ID, serviceIDs)
	})
	if err != nil {
		return Office{}, err
	}

	return office, nil
}

// Delete removes an office and everything it owns.
func (d *OfficeDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Office{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOfficeNotFound
		}

		if err := tx.Where("office_id = ?", id).Delete(&Photo{}).Error; err != nil {
			return err
		}

		return tx.Where("office_id = ?", id).Delete(&OfficeService{}).Error
	})
}

func (d *OfficeDAO) SetPublishedAt(ctx context.Context, id uint, publishedAt *time.Time) error {
	result := d.db.WithContext(ctx).
		Model(&Office{}).
		Where("id = ?", id).
		Update("published_at", publishedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOfficeNotFound
	}

	return nil
}

func (d *OfficeDAO) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Office{}).Count(&count).Error

	return count, err
}

func (d *OfficeDAO) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&Office{}).
		Where("published_at IS NOT NULL").
		Count(&count).Error

	return count, err
}

type arrCount struct {
	Arr   int
	Count int
}

func (d *OfficeDAO) CountPerArr(ctx context.Context) (map[int]int, error) {
	var rows []arrCount
	err := d.db.WithContext(ctx).
		Model(&Office{}).
		Select("arr, COUNT(*) AS count").
		Group("arr").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Arr] = row.Count
	}

	return counts, nil
}

func (d *OfficeDAO) AvgPublishedPriceCents(ctx context.Context) (int64, error) {
	var avg *float64
	err := d.db.WithContext(ctx).
		Model(&Office{}).
		Where("published_at IS NOT NULL").
		Select("AVG(price_cents)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}

	return int64(*avg), nil
}
