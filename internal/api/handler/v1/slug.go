package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parisbureaux/bureaux-api/internal/api/handler/v1/request"
	"github.com/parisbureaux/bureaux-api/internal/api/handler/v1/response"
	"github.com/parisbureaux/bureaux-api/internal/domain"
)

type SlugService interface {
	Verify(ctx context.Context, slug string, excludeOfficeID uint) (domain.SlugVerification, error)
}

type SlugHandler struct {
	svc SlugService
}

func NewSlugHandler(svc SlugService) *SlugHandler {
	return &SlugHandler{
		svc: svc,
	}
}

// HandleVerifySlug godoc
// @Summary      Check whether a slug is available
// @Description  Looks up the slug and, when taken, proposes three free alternatives
// @Tags         offices
// @Produce      json
// @Param        request   body      request.VerifySlugRequest true "request body"
// @Success      200      {object}   response.VerifySlugResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /slug/verify [post]
func (h *SlugHandler) HandleVerifySlug(ctx *gin.Context) {
	var req request.VerifySlugRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidationFailed(request.Details(err)))

		return
	}

	verification, err := h.svc.Verify(ctx.Request.Context(), req.Slug, req.OfficeID)
	if err != nil {
		err = fmt.Errorf("v1.HandleVerifySlug -> h.svc.Verify -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewVerifySlugResponse(verification))
}
