package response

import (
	"github.com/parisbureaux/bureaux-api/internal/domain"
)

type ExistingOffice struct {
	ID    uint   `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type VerifySlugResponse struct {
	Available      bool            `json:"available"`
	ExistingOffice *ExistingOffice `json:"existingOffice,omitempty"`
	Suggestions    []string        `json:"suggestions"`
}

func NewVerifySlugResponse(v domain.SlugVerification) VerifySlugResponse {
	resp := VerifySlugResponse{
		Available:   v.Available,
		Suggestions: v.Suggestions,
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}

	if v.Existing != nil {
		resp.ExistingOffice = &ExistingOffice{
			ID:    v.Existing.ID,
			Slug:  v.Existing.Slug,
			Title: v.Existing.Title,
		}
	}

	return resp
}
