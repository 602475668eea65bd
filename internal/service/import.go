package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository"
)

var ErrImportBatchTooLarge = fmt.Errorf("import batch exceeds %d rows", domain.MaxImportBatch)

type ImportOfficeRepository interface {
	FindBySlug(ctx context.Context, slug string, excludeID uint) (domain.Office, error)
	CreateWithAmenities(ctx context.Context, office domain.Office, amenities []string) (domain.Office, error)
}

// ImportService runs the bulk office-import pipeline: rows are processed
// strictly sequentially, each in its own short-lived store transaction,
// so one bad row never aborts its siblings.
type ImportService struct {
	repo ImportOfficeRepository
}

func NewImportService(repo ImportOfficeRepository) *ImportService {
	return &ImportService{
		repo: repo,
	}
}

// ImportOffices persists each candidate row as a new office and reports a
// per-row outcome. Rows whose slug already exists are skipped; re-running
// the same batch therefore degenerates to an all-skip report rather than
// duplicate listings. A store failure outside row isolation propagates
// together with the outcomes of the rows already committed.
func (s *ImportService) ImportOffices(ctx context.Context, rows []domain.OfficeImport) (domain.ImportResult, error) {
	if len(rows) > domain.MaxImportBatch {
		return domain.ImportResult{}, ErrImportBatchTooLarge
	}

	outcomes := make([]domain.RowOutcome, 0, len(rows))

	for i, row := range rows {
		rowNum := i + 1

		// The pre-check exists for the friendlier message; the slug's
		// unique constraint inside CreateWithAmenities is the safeguard
		// when two imports race on the same slug.
		_, err := s.repo.FindBySlug(ctx, row.Slug, 0)
		if err == nil {
			outcomes = append(outcomes, domain.RowOutcome{
				Row:    rowNum,
				Status: domain.RowSkipped,
				Reason: duplicateSlugReason(row.Slug),
			})

			continue
		}
		if !errors.Is(err, repository.ErrOfficeNotFound) {
			return domain.Fold(outcomes), fmt.Errorf("s.repo.FindBySlug -> %w", err)
		}

		nbPosts := row.NbPosts
		if nbPosts == 0 {
			nbPosts = 1
		}

		office := domain.Office{
			Title:       row.Title,
			Description: row.Description,
			Slug:        row.Slug,
			Arr:         row.Arr,
			PriceCents:  row.PriceCents,
			NbPosts:     nbPosts,
			Lat:         row.Lat,
			Lng:         row.Lng,
			IsFake:      row.IsFake,
		}

		if _, err = s.repo.CreateWithAmenities(ctx, office, row.Amenities); err != nil {
			reason := err.Error()
			if errors.Is(err, repository.ErrOfficeSlugExists) {
				reason = duplicateSlugReason(row.Slug)
			}

			outcomes = append(outcomes, domain.RowOutcome{
				Row:    rowNum,
				Status: domain.RowSkipped,
				Reason: reason,
			})

			continue
		}

		outcomes = append(outcomes, domain.RowOutcome{
			Row:    rowNum,
			Status: domain.RowCreated,
		})
	}

	result := domain.Fold(outcomes)

	zap.L().Info("office import finished",
		zap.Int("total", result.Total),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

func duplicateSlugReason(slug string) string {
	return fmt.Sprintf("duplicate slug %q: an office with this slug already exists", slug)
}
