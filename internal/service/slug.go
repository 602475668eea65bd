package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository"
)

var ErrOfficeSlugExists = repository.ErrOfficeSlugExists

type SlugOfficeRepository interface {
	FindBySlug(ctx context.Context, slug string, excludeID uint) (domain.Office, error)
}

// SlugService answers "is this slug available, and if not, what else?".
// It never mutates state. The clock and random source are fields so tests
// can pin them; suggestion generation is otherwise wall-clock dependent.
type SlugService struct {
	repo    SlugOfficeRepository
	now     func() time.Time
	randInt func(n int) int
}

func NewSlugService(repo SlugOfficeRepository) *SlugService {
	return &SlugService{
		repo:    repo,
		now:     time.Now,
		randInt: rand.Intn,
	}
}

// Verify checks candidate against the store. A non-zero excludeOfficeID
// keeps an office from colliding with its own slug when an admin re-saves
// it unchanged. The candidate is expected to already be in canonical slug
// form; no normalization happens here.
func (s *SlugService) Verify(ctx context.Context, candidate string, excludeOfficeID uint) (domain.SlugVerification, error) {
	existing, err := s.repo.FindBySlug(ctx, candidate, excludeOfficeID)
	if err != nil {
		if errors.Is(err, repository.ErrOfficeNotFound) {
			return domain.SlugVerification{
				Available:   true,
				Suggestions: []string{},
			}, nil
		}

		return domain.SlugVerification{}, fmt.Errorf("s.repo.FindBySlug -> %w", err)
	}

	return domain.SlugVerification{
		Available:   false,
		Existing:    &existing,
		Suggestions: s.suggest(candidate),
	}, nil
}

// suggest builds four candidate alternatives and returns the first three.
// Suggestions are not themselves checked against the store, so a collision
// on a suggestion remains possible; the UI contract only relies on getting
// exactly three strings back.
func (s *SlugService) suggest(slug string) []string {
	candidates := []string{
		fmt.Sprintf("%s-%04d", slug, s.now().UnixMilli()%10000),
		fmt.Sprintf("%s-%d", slug, s.randInt(1000)),
		slug + "-nouveau",
		slug + "-2024",
	}

	return candidates[:3]
}
