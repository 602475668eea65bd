package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/parisbureaux/bureaux-api/internal/domain"
)

type CreateLeadRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	OfficeID uint   `json:"officeId,omitempty"`
	Source   string `json:"source"`
}

func (req *CreateLeadRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Length(0, 30)),
		validation.Field(&req.Message, validation.Required, validation.Length(1, 5000)),
		validation.Field(&req.Source, validation.Length(0, 255)),
	)
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateLeadStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			domain.LeadStatusNew,
			domain.LeadStatusContacted,
			domain.LeadStatusClosed,
		)),
	)
}
