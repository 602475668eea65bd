package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/parisbureaux/bureaux-api/internal/domain"
)

type OfficePhoto struct {
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Position int    `json:"position"`
}

func (p OfficePhoto) Validate() error {
	return validation.ValidateStruct(
		&p,
		validation.Field(&p.URL, validation.Required, validation.Length(1, 2048)),
		validation.Field(&p.Alt, validation.Length(0, 255)),
	)
}

// Lat and Lng are pointers because 0 is a legitimate coordinate;
// validation.Required would read a zero float as absent.
type CreateOfficeRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Slug        string        `json:"slug"`
	Arr         int           `json:"arr"`
	PriceCents  int           `json:"priceCents"`
	NbPosts     int           `json:"nbPosts"`
	Lat         *float64      `json:"lat"`
	Lng         *float64      `json:"lng"`
	IsFake      bool          `json:"isFake"`
	Photos      []OfficePhoto `json:"photos"`
	ServiceIDs  []uint        `json:"serviceIds"`
}

func (req *CreateOfficeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Slug, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Arr, validation.Required, validation.Min(1), validation.Max(20)),
		validation.Field(&req.PriceCents, validation.Min(0)),
		validation.Field(&req.NbPosts, validation.Min(1)),
		validation.Field(&req.Lat, validation.NotNil, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Lng, validation.NotNil, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&req.Photos),
	)
}

func (req *CreateOfficeRequest) ToDomain(id uint) domain.Office {
	photos := make([]domain.Photo, 0, len(req.Photos))
	for _, p := range req.Photos {
		photos = append(photos, domain.Photo{
			URL:      p.URL,
			Alt:      p.Alt,
			Position: p.Position,
		})
	}

	var lat, lng float64
	if req.Lat != nil {
		lat = *req.Lat
	}
	if req.Lng != nil {
		lng = *req.Lng
	}

	return domain.Office{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		Arr:         req.Arr,
		PriceCents:  req.PriceCents,
		NbPosts:     req.NbPosts,
		Lat:         lat,
		Lng:         lng,
		IsFake:      req.IsFake,
		Photos:      photos,
	}
}

type UpdateOfficeRequest struct {
	CreateOfficeRequest
}
