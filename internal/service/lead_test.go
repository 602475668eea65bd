package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository"
)

type fakeLeadRepo struct {
	leads []domain.Lead
}

func (f *fakeLeadRepo) Create(_ context.Context, lead domain.Lead) (domain.Lead, error) {
	lead.ID = uint(len(f.leads) + 1)
	lead.Status = domain.LeadStatusNew
	f.leads = append(f.leads, lead)

	return lead, nil
}

func (f *fakeLeadRepo) FindByID(_ context.Context, id uint) (domain.Lead, error) {
	for _, l := range f.leads {
		if l.ID == id {
			return l, nil
		}
	}

	return domain.Lead{}, repository.ErrLeadNotFound
}

func (f *fakeLeadRepo) List(_ context.Context, status string, _, _ int) ([]domain.Lead, error) {
	var out []domain.Lead
	for _, l := range f.leads {
		if status == "" || l.Status == status {
			out = append(out, l)
		}
	}

	return out, nil
}

func (f *fakeLeadRepo) UpdateStatus(_ context.Context, id uint, status string) (domain.Lead, error) {
	for i, l := range f.leads {
		if l.ID == id {
			f.leads[i].Status = status
			return f.leads[i], nil
		}
	}

	return domain.Lead{}, repository.ErrLeadNotFound
}

func TestLeadService_Submit(t *testing.T) {
	officeRepo := newFakeOfficeRepo()
	office, err := officeRepo.Create(context.Background(), domain.Office{Title: "Bureau", Slug: "bureau"}, nil)
	require.NoError(t, err)

	repo := &fakeLeadRepo{}
	svc := NewLeadService(repo, officeRepo)

	lead, err := svc.Submit(context.Background(), domain.Lead{
		Name:     "Jean Dupont",
		Email:    "jean@example.com",
		Message:  "Intéressé par une visite",
		OfficeID: &office.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	require.NotNil(t, lead.OfficeID)
	assert.Equal(t, office.ID, *lead.OfficeID)
}

func TestLeadService_Submit_DetachesUnknownOffice(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := NewLeadService(repo, newFakeOfficeRepo())

	ghost := uint(404)
	lead, err := svc.Submit(context.Background(), domain.Lead{
		Name:     "Jean Dupont",
		Email:    "jean@example.com",
		Message:  "Bonjour",
		OfficeID: &ghost,
	})

	require.NoError(t, err)
	assert.Nil(t, lead.OfficeID)
}

func TestLeadService_UpdateStatus(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := NewLeadService(repo, newFakeOfficeRepo())

	created, err := svc.Submit(context.Background(), domain.Lead{
		Name:    "Jean Dupont",
		Email:   "jean@example.com",
		Message: "Bonjour",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, domain.LeadStatusContacted)

	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusContacted, updated.Status)
}

func TestLeadService_UpdateStatus_UnknownLead(t *testing.T) {
	svc := NewLeadService(&fakeLeadRepo{}, newFakeOfficeRepo())

	_, err := svc.UpdateStatus(context.Background(), 99, domain.LeadStatusClosed)

	assert.ErrorIs(t, err, ErrLeadNotFound)
}
