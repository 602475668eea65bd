package domain

// MaxImportBatch is the hard ceiling on rows accepted by one bulk-import
// call. Larger batches are rejected before any store access.
const MaxImportBatch = 500

// OfficeImport is one candidate office within a bulk-import batch.
// It is request-scoped and never persisted as its own entity.
type OfficeImport struct {
	Title       string
	Description string
	Slug        string
	Arr         int
	PriceCents  int
	NbPosts     int
	Lat         float64
	Lng         float64
	IsFake      bool
	Amenities   []string
}

type RowStatus string

const (
	RowCreated RowStatus = "created"
	RowSkipped RowStatus = "skipped"
)

// RowOutcome is the tagged per-row result of the import pipeline.
// Reason is empty for created rows.
type RowOutcome struct {
	Row    int
	Status RowStatus
	Reason string
}

type ImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResult summarizes one import invocation. Errors preserve the
// 1-based input positions in row order so a reviewer can match the
// report against their source spreadsheet.
type ImportResult struct {
	Total   int           `json:"total"`
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
	Errors  []ImportError `json:"errors"`
}

// Fold aggregates per-row outcomes into an ImportResult.
func Fold(outcomes []RowOutcome) ImportResult {
	result := ImportResult{
		Total:  len(outcomes),
		Errors: []ImportError{},
	}

	for _, o := range outcomes {
		switch o.Status {
		case RowCreated:
			result.Created++
		case RowSkipped:
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{Row: o.Row, Error: o.Reason})
		}
	}

	return result
}
