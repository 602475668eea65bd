package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SaveServiceRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (req *SaveServiceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Icon, validation.Length(0, 100)),
	)
}
