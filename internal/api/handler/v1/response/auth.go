package response

import (
	"github.com/parisbureaux/bureaux-api/internal/domain"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
