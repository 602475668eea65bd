package request

import (
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/parisbureaux/bureaux-api/internal/domain"
)

// Lat and Lng are pointers because 0 is a legitimate coordinate;
// validation.Required would read a zero float as absent.
type OfficeImportRow struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Arr         int      `json:"arr"`
	PriceCents  int      `json:"priceCents"`
	NbPosts     int      `json:"nbPosts"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	IsFake      bool     `json:"isFake"`
	Amenities   []string `json:"amenities"`
}

func (r *OfficeImportRow) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Slug, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Arr, validation.Required, validation.Min(1), validation.Max(20)),
		validation.Field(&r.PriceCents, validation.Min(0)),
		validation.Field(&r.NbPosts, validation.Min(1)),
		validation.Field(&r.Lat, validation.NotNil, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&r.Lng, validation.NotNil, validation.Min(-180.0), validation.Max(180.0)),
	)
}

type ImportOfficesRequest struct {
	Offices []OfficeImportRow `json:"offices"`
}

// ValidationDetails collects every schema violation across the whole
// batch so the caller can fix its spreadsheet in one pass instead of one
// error at a time. A non-empty result means the batch must be rejected
// before any row is processed.
func (req *ImportOfficesRequest) ValidationDetails() []string {
	if len(req.Offices) == 0 {
		return []string{"offices: cannot be blank"}
	}
	if len(req.Offices) > domain.MaxImportBatch {
		return []string{fmt.Sprintf("offices: must contain no more than %d rows", domain.MaxImportBatch)}
	}

	var details []string
	for i := range req.Offices {
		err := req.Offices[i].Validate()
		if err == nil {
			continue
		}

		if fieldErrs, ok := err.(validation.Errors); ok {
			fields := make([]string, 0, len(fieldErrs))
			for field := range fieldErrs {
				fields = append(fields, field)
			}
			sort.Strings(fields)

			for _, field := range fields {
				details = append(details, fmt.Sprintf("offices[%d].%s: %v", i, field, fieldErrs[field]))
			}

			continue
		}

		details = append(details, fmt.Sprintf("offices[%d]: %v", i, err))
	}

	return details
}

// Rows converts the validated batch into domain import rows.
func (req *ImportOfficesRequest) Rows() []domain.OfficeImport {
	rows := make([]domain.OfficeImport, len(req.Offices))
	for i, o := range req.Offices {
		var lat, lng float64
		if o.Lat != nil {
			lat = *o.Lat
		}
		if o.Lng != nil {
			lng = *o.Lng
		}

		rows[i] = domain.OfficeImport{
			Title:       o.Title,
			Description: o.Description,
			Slug:        o.Slug,
			Arr:         o.Arr,
			PriceCents:  o.PriceCents,
			NbPosts:     o.NbPosts,
			Lat:         lat,
			Lng:         lng,
			IsFake:      o.IsFake,
			Amenities:   o.Amenities,
		}
	}

	return rows
}

// RowsFromDomain wraps already-parsed rows so a non-JSON source (the
// XLSX upload) runs through the same batch validation as the JSON body.
func RowsFromDomain(rows []domain.OfficeImport) []OfficeImportRow {
	out := make([]OfficeImportRow, len(rows))
	for i, r := range rows {
		lat, lng := r.Lat, r.Lng
		out[i] = OfficeImportRow{
			Title:       r.Title,
			Description: r.Description,
			Slug:        r.Slug,
			Arr:         r.Arr,
			PriceCents:  r.PriceCents,
			NbPosts:     r.NbPosts,
			Lat:         &lat,
			Lng:         &lng,
			IsFake:      r.IsFake,
			Amenities:   r.Amenities,
		}
	}

	return out
}
