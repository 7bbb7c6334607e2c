package packages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventosya/marketplace-api/internal/handler"
	"github.com/eventosya/marketplace-api/internal/model"
	packageService "github.com/eventosya/marketplace-api/internal/service/packages"
	"github.com/eventosya/marketplace-api/pkg/httputil"
)

type Handler struct {
	service packageService.PackageServicer
}

func NewHandler(service packageService.PackageServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/providers/:id/packages", h.ListByProvider)
	r.POST("/providers/:id/packages", h.Create)

	pkgs := r.Group("/packages")
	{
		pkgs.GET("/:id", h.Get)
		pkgs.PUT("/:id", h.Update)
		pkgs.DELETE("/:id", h.Delete)
		pkgs.GET("/:id/services", h.ListServices)
		pkgs.POST("/:id/services", h.AddService)
		pkgs.POST("/:id/quote", h.Quote)
	}

	r.PUT("/package-services/:id", h.UpdateService)
	r.DELETE("/package-services/:id", h.RemoveService)
}

func (h *Handler) ListByProvider(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	pkgs, err := h.service.ListByProvider(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	pkg, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

type packageRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   string `json:"basePrice" binding:"required"`
	PriceType   string `json:"priceType" binding:"required,oneof=per_event per_person per_hour"`
	ImageURL    string `json:"imageUrl"`
	Active      *bool  `json:"active"`
}

func (h *Handler) Create(c *gin.Context) {
	providerID, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid package data", err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	pkg, err := h.service.Create(c.Request.Context(), &model.Package{
		ProviderID:  providerID,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		PriceType:   req.PriceType,
		ImageURL:    req.ImageURL,
		Active:      active,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid package data", err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	pkg, err := h.service.Update(c.Request.Context(), &model.Package{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		PriceType:   req.PriceType,
		ImageURL:    req.ImageURL,
		Active:      active,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
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

func (h *Handler) ListServices(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	services, err := h.service.ListServices(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

type addServiceRequest struct {
	ServiceID       int64  `json:"serviceId" binding:"required"`
	Included        bool   `json:"included"`
	AdditionalPrice string `json:"additionalPrice"`
}

func (h *Handler) AddService(c *gin.Context) {
	packageID, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req addServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid package service data", err)
		return
	}
	if req.AdditionalPrice == "" {
		req.AdditionalPrice = "0.00"
	}

	ps, err := h.service.AddService(c.Request.Context(), &model.PackageService{
		PackageID:       packageID,
		ServiceID:       req.ServiceID,
		Included:        req.Included,
		AdditionalPrice: req.AdditionalPrice,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ps)
}

type updateServiceRequest struct {
	Included        bool   `json:"included"`
	AdditionalPrice string `json:"additionalPrice"`
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid package service data", err)
		return
	}
	if req.AdditionalPrice == "" {
		req.AdditionalPrice = "0.00"
	}

	ps, err := h.service.UpdateService(c.Request.Context(), &model.PackageService{
		ID:              id,
		Included:        req.Included,
		AdditionalPrice: req.AdditionalPrice,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

func (h *Handler) RemoveService(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	if err := h.service.RemoveService(c.Request.Context(), id); err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type quoteRequest struct {
	ServiceIDs []int64 `json:"serviceIds"`
}

func (h *Handler) Quote(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid quote data", err)
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), id, req.ServiceIDs)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
