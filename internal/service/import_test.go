package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository"
)

type fakeImportRepo struct {
	existing map[string]domain.Office
	findErr  error

	createErrs map[string]error
	created    []domain.Office
	amenities  map[string][]string
}

func newFakeImportRepo() *fakeImportRepo {
	return &fakeImportRepo{
		existing:   map[string]domain.Office{},
		createErrs: map[string]error{},
		amenities:  map[string][]string{},
	}
}

func (f *fakeImportRepo) FindBySlug(_ context.Context, slug string, _ uint) (domain.Office, error) {
	if f.findErr != nil {
		return domain.Office{}, f.findErr
	}

	office, ok := f.existing[slug]
	if !ok {
		return domain.Office{}, repository.ErrOfficeNotFound
	}

	return office, nil
}

func (f *fakeImportRepo) CreateWithAmenities(_ context.Context, office domain.Office, amenities []string) (domain.Office, error) {
	if err, ok := f.createErrs[office.Slug]; ok {
		return domain.Office{}, err
	}

	office.ID = uint(len(f.created) + 1)
	f.created = append(f.created, office)
	f.amenities[office.Slug] = amenities
	f.existing[office.Slug] = office

	return office, nil
}

func importRow(slug string) domain.OfficeImport {
	return domain.OfficeImport{
		Title:      "Bureau " + slug,
		Slug:       slug,
		Arr:        2,
		PriceCents: 150000,
		NbPosts:    4,
		Lat:        48.86,
		Lng:        2.34,
	}
}

func TestImportService_ImportOffices_AllCreated(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo)

	rows := []domain.OfficeImport{importRow("a"), importRow("b"), importRow("c")}

	result, err := svc.ImportOffices(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)
	assert.Len(t, repo.created, 3)
}

func TestImportService_ImportOffices_SkipsDuplicates(t *testing.T) {
	repo := newFakeImportRepo()
	repo.existing["taken"] = domain.Office{ID: 9, Slug: "taken"}
	svc := NewImportService(repo)

	rows := []domain.OfficeImport{importRow("fresh"), importRow("taken"), importRow("fresh-2")}

	result, err := svc.ImportOffices(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Error, `duplicate slug "taken"`)
}

func TestImportService_ImportOffices_ContinuesAfterRowFailure(t *testing.T) {
	repo := newFakeImportRepo()
	repo.createErrs["broken"] = errors.New("insert failed")
	svc := NewImportService(repo)

	rows := []domain.OfficeImport{importRow("ok-1"), importRow("broken"), importRow("ok-2")}

	result, err := svc.ImportOffices(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, "insert failed", result.Errors[0].Error)
}

func TestImportService_ImportOffices_ConstraintRaceReportsDuplicate(t *testing.T) {
	repo := newFakeImportRepo()
	repo.createErrs["raced"] = repository.ErrOfficeSlugExists
	svc := NewImportService(repo)

	result, err := svc.ImportOffices(context.Background(), []domain.OfficeImport{importRow("raced")})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error, `duplicate slug "raced"`)
}

func TestImportService_ImportOffices_DuplicateWithinBatch(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo)

	second := importRow("a")
	second.Title = "Bureau B"

	rows := []domain.OfficeImport{importRow("a"), second}

	result, err := svc.ImportOffices(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Error, `duplicate slug "a"`)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Bureau a", repo.created[0].Title)
}

func TestImportService_ImportOffices_RetryIsIdempotent(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo)
	rows := []domain.OfficeImport{importRow("a"), importRow("b")}

	first, err := svc.ImportOffices(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)

	second, err := svc.ImportOffices(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Skipped)
	assert.Len(t, repo.created, 2)
}

func TestImportService_ImportOffices_BatchTooLarge(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo)

	rows := make([]domain.OfficeImport, domain.MaxImportBatch+1)
	for i := range rows {
		rows[i] = importRow(fmt.Sprintf("slug-%d", i))
	}

	_, err := svc.ImportOffices(context.Background(), rows)

	assert.ErrorIs(t, err, ErrImportBatchTooLarge)
	assert.Empty(t, repo.created)
}

func TestImportService_ImportOffices_DefaultsWorkstations(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo)

	row := importRow("no-posts")
	row.NbPosts = 0

	_, err := svc.ImportOffices(context.Background(), []domain.OfficeImport{row})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 1, repo.created[0].NbPosts)
}

func TestImportService_ImportOffices_PassesAmenities(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo)

	row := importRow("with-amenities")
	row.Amenities = []string{"WiFi", "Fibre"}

	_, err := svc.ImportOffices(context.Background(), []domain.OfficeImport{row})

	require.NoError(t, err)
	assert.Equal(t, []string{"WiFi", "Fibre"}, repo.amenities["with-amenities"])
}

func TestImportService_ImportOffices_LookupErrorKeepsCommittedRows(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo)

	rows := []domain.OfficeImport{importRow("first"), importRow("second")}

	// Fail the lookup only once the first row is through.
	committed, err := svc.ImportOffices(context.Background(), rows[:1])
	require.NoError(t, err)
	require.Equal(t, 1, committed.Created)

	repo.findErr = errors.New("connection reset")

	result, err := svc.ImportOffices(context.Background(), rows[1:])
	require.Error(t, err)
	assert.Equal(t, 0, result.Total)
}
