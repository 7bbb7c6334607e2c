package promotion

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventosya/marketplace-api/internal/handler"
	"github.com/eventosya/marketplace-api/internal/model"
	promotionService "github.com/eventosya/marketplace-api/internal/service/promotion"
	"github.com/eventosya/marketplace-api/pkg/httputil"
)

type Handler struct {
	service promotionService.PromotionServicer
}

func NewHandler(service promotionService.PromotionServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	promotions := r.Group("/promotions")
	{
		promotions.GET("/active", h.ListActive)
		promotions.POST("", h.Create)
		promotions.DELETE("/:id", h.Delete)
	}

	r.GET("/services/:id/promotions", h.ListByService)
	r.GET("/providers/:id/promotions", h.ListByProvider)
}

func (h *Handler) ListActive(c *gin.Context) {
	promotions, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promotions)
}

func (h *Handler) ListByService(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	promotions, err := h.service.ListByService(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promotions)
}

func (h *Handler) ListByProvider(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	promotions, err := h.service.ListByProvider(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promotions)
}

type createRequest struct {
	ServiceID          int64     `json:"serviceId" binding:"required"`
	Title              string    `json:"title" binding:"required"`
	Description        string    `json:"description"`
	DiscountPercentage int       `json:"discountPercentage" binding:"required,min=1,max=100"`
	OriginalPrice      string    `json:"originalPrice" binding:"required"`
	PromotionalPrice   string    `json:"promotionalPrice" binding:"required"`
	ValidFrom          time.Time `json:"validFrom" binding:"required"`
	ValidUntil         time.Time `json:"validUntil" binding:"required"`
	Active             *bool     `json:"active"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid promotion data", err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	promotion, err := h.service.Create(c.Request.Context(), &model.Promotion{
		ServiceID:          req.ServiceID,
		Title:              req.Title,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		OriginalPrice:      req.OriginalPrice,
		PromotionalPrice:   req.PromotionalPrice,
		ValidFrom:          req.ValidFrom,
		ValidUntil:         req.ValidUntil,
		Active:             active,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, promotion)
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
