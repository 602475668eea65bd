package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type VerifySlugRequest struct {
	Slug     string `json:"slug"`
	OfficeID uint   `json:"officeId,omitempty"`
}

func (req *VerifySlugRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Slug, validation.Required, validation.Length(1, 255)),
	)
}
