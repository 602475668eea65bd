package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parisbureaux/bureaux-api/internal/api/handler/v1/request"
	"github.com/parisbureaux/bureaux-api/internal/api/handler/v1/response"
	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/service"
)

const (
	defaultLeadPageSize = 50
	maxLeadPageSize     = 200
)

type LeadService interface {
	Submit(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Lead, error)
	UpdateStatus(ctx context.Context, id uint, status string) (domain.Lead, error)
}

type LeadHandler struct {
	svc LeadService
}

func NewLeadHandler(svc LeadService) *LeadHandler {
	return &LeadHandler{
		svc: svc,
	}
}

// HandleCreateLead godoc
// @Summary      Submit a contact request
// @Tags         leads
// @Produce      json
// @Param        request   body      request.CreateLeadRequest true "request body"
// @Success      201      {object}   domain.Lead
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /leads [post]
func (h *LeadHandler) HandleCreateLead(ctx *gin.Context) {
	var req request.CreateLeadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var officeID *uint
	if req.OfficeID != 0 {
		officeID = &req.OfficeID
	}

	lead, err := h.svc.Submit(ctx.Request.Context(), domain.Lead{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		OfficeID: officeID,
		Source:   req.Source,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateLead -> h.svc.Submit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, lead)
}

// HandleListLeads godoc
// @Summary      List leads
// @Tags         admin
// @Produce      json
// @Param        status   query     string false "filter by status" Enums(new, contacted, closed)
// @Param        limit    query     int    false "page size"
// @Param        offset   query     int    false "page offset"
// @Success      200  {array}   domain.Lead
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/leads [get]
func (h *LeadHandler) HandleListLeads(ctx *gin.Context) {
	status := ctx.Query("status")
	if status != "" && !domain.IsValidLeadStatus(status) {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid status %q", status)))

		return
	}

	limit, err := queryInt(ctx, "limit", defaultLeadPageSize)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	if limit <= 0 || limit > maxLeadPageSize {
		limit = defaultLeadPageSize
	}

	offset, err := queryInt(ctx, "offset", 0)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	leads, err := h.svc.List(ctx.Request.Context(), status, limit, offset)
	if err != nil {
		err = fmt.Errorf("v1.HandleListLeads -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, leads)
}

// HandleUpdateLeadStatus godoc
// @Summary      Update a lead's status
// @Tags         admin
// @Produce      json
// @Param        leadID    path      int true "lead ID"
// @Param        request   body      request.UpdateLeadStatusRequest true "request body"
// @Success      200      {object}   domain.Lead
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/leads/{leadID}/status [patch]
func (h *LeadHandler) HandleUpdateLeadStatus(ctx *gin.Context) {
	id, err := pathID(ctx, "leadID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateLeadStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	lead, err := h.svc.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrLeadNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateLeadStatus -> h.svc.UpdateStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, lead)
}

func queryInt(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %v", name)
	}

	return v, nil
}
