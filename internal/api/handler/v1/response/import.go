package response

import (
	"fmt"

	"github.com/parisbureaux/bureaux-api/internal/domain"
)

type ImportResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Results domain.ImportResult `json:"results"`
}

func NewImportResponse(result domain.ImportResult) ImportResponse {
	return ImportResponse{
		Success: true,
		Message: fmt.Sprintf("Import terminé : %d créés, %d ignorés sur %d", result.Created, result.Skipped, result.Total),
		Results: result,
	}
}
