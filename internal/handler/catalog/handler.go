package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventosya/marketplace-api/internal/handler"
	"github.com/eventosya/marketplace-api/internal/model"
	catalogService "github.com/eventosya/marketplace-api/internal/service/catalog"
	"github.com/eventosya/marketplace-api/pkg/apperror"
	"github.com/eventosya/marketplace-api/pkg/httputil"
)

type Handler struct {
	service catalogService.CatalogServicer
}

func NewHandler(service catalogService.CatalogServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	categories := r.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id/services", h.ListServicesByCategory)
	}

	services := r.Group("/services")
	{
		services.GET("/featured", h.ListFeatured)
		services.GET("/search", h.Search)
		services.GET("/:id", h.GetService)
		services.POST("", h.CreateService)
		services.PUT("/:id", h.UpdateService)
		services.POST("/:id/reviews", h.CreateReview)
	}
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) ListServicesByCategory(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	services, err := h.service.ListServicesByCategory(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *Handler) ListFeatured(c *gin.Context) {
	services, err := h.service.ListFeatured(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *Handler) Search(c *gin.Context) {
	filters, err := parseSearchFilters(c)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	services, err := h.service.Search(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func parseSearchFilters(c *gin.Context) (*model.SearchFilters, error) {
	filters := &model.SearchFilters{
		Query:    c.Query("query"),
		Location: c.Query("location"),
		SortBy:   c.Query("sortBy"),
	}

	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, apperror.BadRequest("invalid categoryId")
		}
		filters.CategoryID = &id
	}
	if raw := c.Query("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperror.BadRequest("invalid minPrice")
		}
		filters.MinPrice = &min
	}
	if raw := c.Query("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperror.BadRequest("invalid maxPrice")
		}
		filters.MaxPrice = &max
	}

	return filters, nil
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	service, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

type serviceRequest struct {
	ProviderID  int64  `json:"providerId" binding:"required"`
	CategoryID  int64  `json:"categoryId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	PriceType   string `json:"priceType" binding:"required,oneof=per_event per_person per_hour"`
	MinCapacity *int   `json:"minCapacity"`
	MaxCapacity *int   `json:"maxCapacity"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"featured"`
}

func (h *Handler) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid service data", err)
		return
	}

	service, err := h.service.CreateService(c.Request.Context(), &model.Service{
		ProviderID:  req.ProviderID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		PriceType:   req.PriceType,
		MinCapacity: req.MinCapacity,
		MaxCapacity: req.MaxCapacity,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
		Active:      true,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

type updateServiceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	PriceType   string `json:"priceType" binding:"required,oneof=per_event per_person per_hour"`
	MinCapacity *int   `json:"minCapacity"`
	MaxCapacity *int   `json:"maxCapacity"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"featured"`
	Active      *bool  `json:"active"`
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid service data", err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	service, err := h.service.UpdateService(c.Request.Context(), &model.Service{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		PriceType:   req.PriceType,
		MinCapacity: req.MinCapacity,
		MaxCapacity: req.MaxCapacity,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
		Active:      active,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

type reviewRequest struct {
	UserID  int64  `json:"userId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *Handler) CreateReview(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid review data", err)
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), &model.Review{
		ServiceID: id,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
