package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository"
)

type fakeOfficeRepo struct {
	offices map[uint]domain.Office
	nextID  uint

	lastFilter domain.OfficeFilter
}

func newFakeOfficeRepo() *fakeOfficeRepo {
	return &fakeOfficeRepo{
		offices: map[uint]domain.Office{},
		nextID:  1,
	}
}

func (f *fakeOfficeRepo) Create(_ context.Context, office domain.Office, _ []uint) (domain.Office, error) {
	office.ID = f.nextID
	f.nextID++
	f.offices[office.ID] = office

	return office, nil
}

func (f *fakeOfficeRepo) FindBySlug(_ context.Context, slug string, excludeID uint) (domain.Office, error) {
	for _, o := range f.offices {
		if o.Slug == slug && o.ID != excludeID {
			return o, nil
		}
	}

	return domain.Office{}, repository.ErrOfficeNotFound
}

func (f *fakeOfficeRepo) FindPublishedBySlug(_ context.Context, slug string) (domain.Office, error) {
	for _, o := range f.offices {
		if o.Slug == slug && o.PublishedAt != nil {
			return o, nil
		}
	}

	return domain.Office{}, repository.ErrOfficeNotFound
}

func (f *fakeOfficeRepo) FindByID(_ context.Context, id uint) (domain.Office, error) {
	o, ok := f.offices[id]
	if !ok {
		return domain.Office{}, repository.ErrOfficeNotFound
	}

	return o, nil
}

func (f *fakeOfficeRepo) List(_ context.Context, filter domain.OfficeFilter) ([]domain.Office, error) {
	f.lastFilter = filter

	var out []domain.Office
	for _, o := range f.offices {
		if filter.PublishedOnly && o.PublishedAt == nil {
			continue
		}
		out = append(out, o)
	}

	return out, nil
}

func (f *fakeOfficeRepo) Update(_ context.Context, office domain.Office, _ []uint) (domain.Office, error) {
	if _, ok := f.offices[office.ID]; !ok {
		return domain.Office{}, repository.ErrOfficeNotFound
	}
	f.offices[office.ID] = office

	return office, nil
}

func (f *fakeOfficeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.offices[id]; !ok {
		return repository.ErrOfficeNotFound
	}
	delete(f.offices, id)

	return nil
}

func (f *fakeOfficeRepo) SetPublishedAt(_ context.Context, id uint, publishedAt *time.Time) error {
	o, ok := f.offices[id]
	if !ok {
		return repository.ErrOfficeNotFound
	}
	o.PublishedAt = publishedAt
	f.offices[id] = o

	return nil
}

func TestOfficeService_ListPublished_ForcesFilter(t *testing.T) {
	repo := newFakeOfficeRepo()
	svc := NewOfficeService(repo)

	_, err := svc.ListPublished(context.Background(), domain.OfficeFilter{Arr: 2})

	require.NoError(t, err)
	assert.True(t, repo.lastFilter.PublishedOnly)
	assert.Equal(t, 2, repo.lastFilter.Arr)
}

func TestOfficeService_PublishAndUnpublish(t *testing.T) {
	repo := newFakeOfficeRepo()
	svc := NewOfficeService(repo)
	pinned := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return pinned }

	created, err := svc.Create(context.Background(), domain.Office{Title: "Bureau", Slug: "bureau"}, nil)
	require.NoError(t, err)
	assert.Nil(t, created.PublishedAt)

	published, err := svc.Publish(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	assert.Equal(t, pinned, *published.PublishedAt)

	unpublished, err := svc.Unpublish(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, unpublished.PublishedAt)
}

func TestOfficeService_Update_PreservesPublication(t *testing.T) {
	repo := newFakeOfficeRepo()
	svc := NewOfficeService(repo)

	created, err := svc.Create(context.Background(), domain.Office{Title: "Bureau", Slug: "bureau"}, nil)
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), created.ID)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), domain.Office{
		ID:    created.ID,
		Title: "Bureau renommé",
		Slug:  "bureau",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Bureau renommé", updated.Title)
	assert.NotNil(t, updated.PublishedAt)
}

func TestOfficeService_Create_DefaultsWorkstations(t *testing.T) {
	repo := newFakeOfficeRepo()
	svc := NewOfficeService(repo)

	created, err := svc.Create(context.Background(), domain.Office{Title: "Bureau", Slug: "bureau"}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, created.NbPosts)
}

func TestOfficeService_Update_UnknownOffice(t *testing.T) {
	svc := NewOfficeService(newFakeOfficeRepo())

	_, err := svc.Update(context.Background(), domain.Office{ID: 99, Title: "x", Slug: "x"}, nil)

	assert.ErrorIs(t, err, repository.ErrOfficeNotFound)
}
