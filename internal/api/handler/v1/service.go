package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parisbureaux/bureaux-api/internal/api/handler/v1/request"
	"github.com/parisbureaux/bureaux-api/internal/api/handler/v1/response"
	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/service"
)

type CatalogService interface {
	Create(ctx context.Context, svc domain.Service) (domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
	Get(ctx context.Context, id uint) (domain.Service, error)
	Update(ctx context.Context, svc domain.Service) (domain.Service, error)
	Delete(ctx context.Context, id uint) error
}

type ServiceHandler struct {
	svc CatalogService
}

func NewServiceHandler(svc CatalogService) *ServiceHandler {
	return &ServiceHandler{
		svc: svc,
	}
}

// HandleListServices godoc
// @Summary      List amenities
// @Tags         services
// @Produce      json
// @Success      200  {array}   domain.Service
// @Failure      500  {object}  response.Err
// @Router       /services [get]
func (h *ServiceHandler) HandleListServices(ctx *gin.Context) {
	services, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListServices -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, services)
}

// HandleCreateService godoc
// @Summary      Create an amenity
// @Tags         admin
// @Produce      json
// @Param        request   body      request.SaveServiceRequest true "request body"
// @Success      201      {object}   domain.Service
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/services [post]
func (h *ServiceHandler) HandleCreateService(ctx *gin.Context) {
	var req request.SaveServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), domain.Service{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		if errors.Is(err, service.ErrServiceNameExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrServiceNameExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateService -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetService godoc
// @Summary      Get an amenity by ID
// @Tags         admin
// @Produce      json
// @Param        serviceID   path      int true "service ID"
// @Success      200        {object}   domain.Service
// @Failure      404        {object}   response.Err
// @Failure      500        {object}   response.Err
// @Router       /admin/services/{serviceID} [get]
func (h *ServiceHandler) HandleGetService(ctx *gin.Context) {
	id, err := pathID(ctx, "serviceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	svc, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrServiceNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetService -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, svc)
}

// HandleUpdateService godoc
// @Summary      Update an amenity
// @Tags         admin
// @Produce      json
// @Param        serviceID   path      int true "service ID"
// @Param        request     body      request.SaveServiceRequest true "request body"
// @Success      200        {object}   domain.Service
// @Failure      400        {object}   response.Err
// @Failure      404        {object}   response.Err
// @Failure      500        {object}   response.Err
// @Router       /admin/services/{serviceID} [put]
func (h *ServiceHandler) HandleUpdateService(ctx *gin.Context) {
	id, err := pathID(ctx, "serviceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.SaveServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), domain.Service{
		ID:   id,
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrServiceNotFound))
		case errors.Is(err, service.ErrServiceNameExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrServiceNameExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateService -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteService godoc
// @Summary      Delete an amenity
// @Tags         admin
// @Produce      json
// @Param        serviceID   path   int true "service ID"
// @Success      204
// @Failure      404   {object}   response.Err
// @Failure      500   {object}   response.Err
// @Router       /admin/services/{serviceID} [delete]
func (h *ServiceHandler) HandleDeleteService(ctx *gin.Context) {
	id, err := pathID(ctx, "serviceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrServiceNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteService -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
