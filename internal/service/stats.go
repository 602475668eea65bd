package service

import (
	"context"
	"fmt"
	"time"

	"github.com/parisbureaux/bureaux-api/internal/domain"
)

type StatsOfficeRepository interface {
	CountAll(ctx context.Context) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
	CountPerArr(ctx context.Context) (map[int]int, error)
	AvgPublishedPriceCents(ctx context.Context) (int64, error)
}

type StatsLeadRepository interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type StatsService struct {
	officeRepo StatsOfficeRepository
	leadRepo   StatsLeadRepository
	now        func() time.Time
}

func NewStatsService(officeRepo StatsOfficeRepository, leadRepo StatsLeadRepository) *StatsService {
	return &StatsService{
		officeRepo: officeRepo,
		leadRepo:   leadRepo,
		now:        time.Now,
	}
}

func (s *StatsService) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	total, err := s.officeRepo.CountAll(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.officeRepo.CountAll -> %w", err)
	}

	published, err := s.officeRepo.CountPublished(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.officeRepo.CountPublished -> %w", err)
	}

	perArr, err := s.officeRepo.CountPerArr(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.officeRepo.CountPerArr -> %w", err)
	}

	avgPrice, err := s.officeRepo.AvgPublishedPriceCents(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.officeRepo.AvgPublishedPriceCents -> %w", err)
	}

	byStatus, err := s.leadRepo.CountByStatus(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.leadRepo.CountByStatus -> %w", err)
	}

	recent, err := s.leadRepo.CountCreatedSince(ctx, s.now().AddDate(0, 0, -30))
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.leadRepo.CountCreatedSince -> %w", err)
	}

	return domain.DashboardStats{
		TotalOffices:     int(total),
		PublishedOffices: int(published),
		DraftOffices:     int(total - published),
		OfficesPerArr:    perArr,
		AvgPriceCents:    int(avgPrice),
		LeadsByStatus:    byStatus,
		LeadsLast30Days:  int(recent),
	}, nil
}
