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

type OfficeService interface {
	ListPublished(ctx context.Context, filter domain.OfficeFilter) ([]domain.Office, error)
	ListAll(ctx context.Context, filter domain.OfficeFilter) ([]domain.Office, error)
	GetPublishedBySlug(ctx context.Context, slug string) (domain.Office, error)
	GetByID(ctx context.Context, id uint) (domain.Office, error)
	Create(ctx context.Context, office domain.Office, serviceIDs []uint) (domain.Office, error)
	Update(ctx context.Context, office domain.Office, serviceIDs []uint) (domain.Office, error)
	Delete(ctx context.Context, id uint) error
	Publish(ctx context.Context, id uint) (domain.Office, error)
	Unpublish(ctx context.Context, id uint) (domain.Office, error)
}

type OfficeHandler struct {
	svc OfficeService
}

func NewOfficeHandler(svc OfficeService) *OfficeHandler {
	return &OfficeHandler{
		svc: svc,
	}
}

// HandleListOffices godoc
// @Summary      List published offices
// @Tags         offices
// @Produce      json
// @Param        arr            query     int false "arrondissement"
// @Param        maxPriceCents  query     int false "maximum monthly price in cents"
// @Param        minPosts       query     int false "minimum workstation count"
// @Success      200  {array}   domain.Office
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /offices [get]
func (h *OfficeHandler) HandleListOffices(ctx *gin.Context) {
	filter, err := filterFromQuery(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	offices, err := h.svc.ListPublished(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListOffices -> h.svc.ListPublished -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, offices)
}

// HandleGetOffice godoc
// @Summary      Get a published office by slug
// @Tags         offices
// @Produce      json
// @Param        slug   path      string true "office slug"
// @Success      200   {object}   domain.Office
// @Failure      404   {object}   response.Err
// @Failure      500   {object}   response.Err
// @Router       /offices/{slug} [get]
func (h *OfficeHandler) HandleGetOffice(ctx *gin.Context) {
	office, err := h.svc.GetPublishedBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrOfficeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrOfficeNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetOffice -> h.svc.GetPublishedBySlug -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, office)
}

// HandleListAllOffices godoc
// @Summary      List every office, drafts included
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Office
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/offices [get]
func (h *OfficeHandler) HandleListAllOffices(ctx *gin.Context) {
	filter, err := filterFromQuery(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	offices, err := h.svc.ListAll(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllOffices -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, offices)
}

// HandleGetOfficeByID godoc
// @Summary      Get an office by ID
// @Tags         admin
// @Produce      json
// @Param        officeID   path      int true "office ID"
// @Success      200       {object}   domain.Office
// @Failure      404       {object}   response.Err
// @Failure      500       {object}   response.Err
// @Router       /admin/offices/{officeID} [get]
func (h *OfficeHandler) HandleGetOfficeByID(ctx *gin.Context) {
	id, err := pathID(ctx, "officeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	office, err := h.svc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOfficeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrOfficeNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetOfficeByID -> h.svc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, office)
}

// HandleCreateOffice godoc
// @Summary      Create an office
// @Tags         admin
// @Produce      json
// @Param        request   body      request.CreateOfficeRequest true "request body"
// @Success      201      {object}   domain.Office
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/offices [post]
func (h *OfficeHandler) HandleCreateOffice(ctx *gin.Context) {
	var req request.CreateOfficeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	office, err := h.svc.Create(ctx.Request.Context(), req.ToDomain(0), req.ServiceIDs)
	if err != nil {
		if errors.Is(err, service.ErrOfficeSlugExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrOfficeSlugExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateOffice -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, office)
}

// HandleUpdateOffice godoc
// @Summary      Update an office
// @Tags         admin
// @Produce      json
// @Param        officeID   path      int true "office ID"
// @Param        request    body      request.UpdateOfficeRequest true "request body"
// @Success      200       {object}   domain.Office
// @Failure      400       {object}   response.Err
// @Failure      404       {object}   response.Err
// @Failure      500       {object}   response.Err
// @Router       /admin/offices/{officeID} [put]
func (h *OfficeHandler) HandleUpdateOffice(ctx *gin.Context) {
	id, err := pathID(ctx, "officeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateOfficeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	office, err := h.svc.Update(ctx.Request.Context(), req.ToDomain(id), req.ServiceIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOfficeNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrOfficeNotFound))
		case errors.Is(err, service.ErrOfficeSlugExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrOfficeSlugExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateOffice -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, office)
}

// HandleDeleteOffice godoc
// @Summary      Delete an office
// @Tags         admin
// @Produce      json
// @Param        officeID   path   int true "office ID"
// @Success      204
// @Failure      404   {object}   response.Err
// @Failure      500   {object}   response.Err
// @Router       /admin/offices/{officeID} [delete]
func (h *OfficeHandler) HandleDeleteOffice(ctx *gin.Context) {
	id, err := pathID(ctx, "officeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrOfficeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrOfficeNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteOffice -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandlePublishOffice godoc
// @Summary      Publish an office
// @Tags         admin
// @Produce      json
// @Param        officeID   path      int true "office ID"
// @Success      200       {object}   domain.Office
// @Failure      404       {object}   response.Err
// @Failure      500       {object}   response.Err
// @Router       /admin/offices/{officeID}/publish [post]
func (h *OfficeHandler) HandlePublishOffice(ctx *gin.Context) {
	h.setPublication(ctx, h.svc.Publish)
}

// HandleUnpublishOffice godoc
// @Summary      Unpublish an office
// @Tags         admin
// @Produce      json
// @Param        officeID   path      int true "office ID"
// @Success      200       {object}   domain.Office
// @Failure      404       {object}   response.Err
// @Failure      500       {object}   response.Err
// @Router       /admin/offices/{officeID}/unpublish [post]
func (h *OfficeHandler) HandleUnpublishOffice(ctx *gin.Context) {
	h.setPublication(ctx, h.svc.Unpublish)
}

func (h *OfficeHandler) setPublication(ctx *gin.Context, op func(ctx context.Context, id uint) (domain.Office, error)) {
	id, err := pathID(ctx, "officeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	office, err := op(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOfficeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrOfficeNotFound))

			return
		}

		err = fmt.Errorf("v1.setPublication -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, office)
}

func pathID(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v", name)
	}

	return uint(id), nil
}

func filterFromQuery(ctx *gin.Context) (domain.OfficeFilter, error) {
	var filter domain.OfficeFilter

	for name, dst := range map[string]*int{
		"arr":           &filter.Arr,
		"maxPriceCents": &filter.MaxPriceCents,
		"minPosts":      &filter.MinPosts,
	} {
		raw := ctx.Query(name)
		if raw == "" {
			continue
		}

		v, err := strconv.Atoi(raw)
		if err != nil {
			return domain.OfficeFilter{}, fmt.Errorf("invalid %v", name)
		}
		*dst = v
	}

	return filter, nil
}
