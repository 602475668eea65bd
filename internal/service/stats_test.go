package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsOfficeRepo struct{}

func (fakeStatsOfficeRepo) CountAll(context.Context) (int64, error)       { return 12, nil }
func (fakeStatsOfficeRepo) CountPublished(context.Context) (int64, error) { return 9, nil }
func (fakeStatsOfficeRepo) CountPerArr(context.Context) (map[int]int, error) {
	return map[int]int{2: 5, 9: 4, 11: 3}, nil
}
func (fakeStatsOfficeRepo) AvgPublishedPriceCents(context.Context) (int64, error) {
	return 187500, nil
}

type fakeStatsLeadRepo struct {
	gotSince time.Time
}

func (f *fakeStatsLeadRepo) CountByStatus(context.Context) (map[string]int, error) {
	return map[string]int{"new": 4, "contacted": 2}, nil
}

func (f *fakeStatsLeadRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	f.gotSince = since

	return 6, nil
}

func TestStatsService_Dashboard(t *testing.T) {
	leadRepo := &fakeStatsLeadRepo{}
	svc := NewStatsService(fakeStatsOfficeRepo{}, leadRepo)
	pinned := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return pinned }

	stats, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalOffices)
	assert.Equal(t, 9, stats.PublishedOffices)
	assert.Equal(t, 3, stats.DraftOffices)
	assert.Equal(t, map[int]int{2: 5, 9: 4, 11: 3}, stats.OfficesPerArr)
	assert.Equal(t, 187500, stats.AvgPriceCents)
	assert.Equal(t, map[string]int{"new": 4, "contacted": 2}, stats.LeadsByStatus)
	assert.Equal(t, 6, stats.LeadsLast30Days)
	assert.Equal(t, pinned.AddDate(0, 0, -30), leadRepo.gotSince)
}
