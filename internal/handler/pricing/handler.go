package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventosya/marketplace-api/internal/handler"
	"github.com/eventosya/marketplace-api/internal/model"
	pricingService "github.com/eventosya/marketplace-api/internal/service/pricing"
	"github.com/eventosya/marketplace-api/pkg/httputil"
)

type Handler struct {
	service pricingService.PricingServicer
}

func NewHandler(service pricingService.PricingServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/providers/:id/distance-pricing", h.ListByProvider)
	r.POST("/providers/:id/distance-pricing", h.Create)
	r.PUT("/distance-pricing/:id", h.Update)
	r.DELETE("/distance-pricing/:id", h.Delete)
}

func (h *Handler) ListByProvider(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	tiers, err := h.service.ListByProvider(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tiers)
}

type pricingRequest struct {
	DistanceKm int    `json:"distanceKm" binding:"min=0"`
	Price      string `json:"price" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	providerID, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req pricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid distance pricing data", err)
		return
	}

	tier, err := h.service.Create(c.Request.Context(), &model.DistancePricing{
		ProviderID: providerID,
		DistanceKm: req.DistanceKm,
		Price:      req.Price,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tier)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req pricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid distance pricing data", err)
		return
	}

	tier, err := h.service.Update(c.Request.Context(), &model.DistancePricing{
		ID:         id,
		DistanceKm: req.DistanceKm,
		Price:      req.Price,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tier)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
