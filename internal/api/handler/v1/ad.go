package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odolbodol/adboard/internal/api/handler/v1/request"
	"github.com/odolbodol/adboard/internal/api/handler/v1/response"
	"github.com/odolbodol/adboard/internal/domain"
)

type AdService interface {
	CreateAd(ctx context.Context, ad domain.Ad) (domain.Ad, error)
	ListAds(ctx context.Context) ([]domain.Ad, error)
}

type AdHandler struct {
	svc AdService
}

func NewAdHandler(svc AdService) *AdHandler {
	return &AdHandler{
		svc: svc,
	}
}

// HandleCreateAd godoc
// @Summary      Create a new ad
// @Tags         ads
// @Produce      json
// @Param        request   body      request.CreateAdRequest true "request body"
// @Success      201      {object}   domain.Ad
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /ads [post]
func (h *AdHandler) HandleCreateAd(ctx *gin.Context) {
	var req request.CreateAdRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ad, err := h.svc.CreateAd(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateAd -> h.svc.CreateAd -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, ad)
}

// HandleListAds godoc
// @Summary      List all ads
// @Tags         ads
// @Produce      json
// @Success      200      {object}   []domain.Ad
// @Failure      500      {object}   response.Err
// @Router       /ads [get]
func (h *AdHandler) HandleListAds(ctx *gin.Context) {
	ads, err := h.svc.ListAds(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAds -> h.svc.ListAds -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if ads == nil {
		ads = []domain.Ad{}
	}

	ctx.JSON(http.StatusOK, ads)
}
