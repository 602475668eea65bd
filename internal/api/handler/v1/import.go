package v1

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parisbureaux/bureaux-api/internal/api/handler/v1/request"
	"github.com/parisbureaux/bureaux-api/internal/api/handler/v1/response"
	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/service"
)

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ImportService interface {
	ImportOffices(ctx context.Context, rows []domain.OfficeImport) (domain.ImportResult, error)
	ParseWorkbook(file io.Reader) ([]domain.OfficeImport, error)
	GenerateTemplate() (*bytes.Buffer, error)
}

type ImportHandler struct {
	svc ImportService
}

func NewImportHandler(svc ImportService) *ImportHandler {
	return &ImportHandler{
		svc: svc,
	}
}

// HandleImportOffices godoc
// @Summary      Bulk import offices from a JSON payload
// @Description  Validates the whole batch first, then imports row by row, skipping duplicate slugs
// @Tags         imports
// @Produce      json
// @Param        request   body      request.ImportOfficesRequest true "request body"
// @Success      200      {object}   response.ImportResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /offices/import [post]
func (h *ImportHandler) HandleImportOffices(ctx *gin.Context) {
	var req request.ImportOfficesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if details := req.ValidationDetails(); len(details) > 0 {
		response.RenderErr(ctx, response.ErrValidationFailed(details))

		return
	}

	h.runImport(ctx, req.Rows())
}

// HandleImportOfficesWorkbook godoc
// @Summary      Bulk import offices from an XLSX workbook
// @Description  Accepts a multipart upload using the downloadable template layout
// @Tags         imports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file   formData   file true "XLSX workbook"
// @Success      200   {object}   response.ImportResponse
// @Failure      400   {object}   response.Err
// @Failure      500   {object}   response.Err
// @Router       /offices/import/xlsx [post]
func (h *ImportHandler) HandleImportOfficesWorkbook(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	defer file.Close()

	rows, err := h.svc.ParseWorkbook(file)
	if err != nil {
		var workbookErr *service.WorkbookError
		if errors.As(err, &workbookErr) {
			response.RenderErr(ctx, response.ErrValidationFailed(workbookErr.Details))

			return
		}

		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.ImportOfficesRequest{Offices: request.RowsFromDomain(rows)}
	if details := req.ValidationDetails(); len(details) > 0 {
		response.RenderErr(ctx, response.ErrValidationFailed(details))

		return
	}

	h.runImport(ctx, rows)
}

// HandleImportTemplate godoc
// @Summary      Download the XLSX import template
// @Tags         imports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      500   {object}   response.Err
// @Router       /offices/import/template [get]
func (h *ImportHandler) HandleImportTemplate(ctx *gin.Context) {
	buf, err := h.svc.GenerateTemplate()
	if err != nil {
		err = fmt.Errorf("v1.HandleImportTemplate -> h.svc.GenerateTemplate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="modele-import-bureaux.xlsx"`)
	ctx.Data(http.StatusOK, workbookContentType, buf.Bytes())
}

func (h *ImportHandler) runImport(ctx *gin.Context, rows []domain.OfficeImport) {
	result, err := h.svc.ImportOffices(ctx.Request.Context(), rows)
	if err != nil {
		err = fmt.Errorf("v1.runImport -> h.svc.ImportOffices -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewImportResponse(result))
}
