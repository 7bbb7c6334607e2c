package provider

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventosya/marketplace-api/internal/handler"
	"github.com/eventosya/marketplace-api/internal/model"
	providerService "github.com/eventosya/marketplace-api/internal/service/provider"
	"github.com/eventosya/marketplace-api/pkg/httputil"
)

type Handler struct {
	service providerService.ProviderServicer
}

func NewHandler(service providerService.ProviderServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	providers := r.Group("/providers")
	{
		providers.POST("/register", h.Register)
		providers.GET("/:id", h.Get)
		providers.PUT("/:id", h.Update)
	}
}

type initialServiceRequest struct {
	CategoryID  int64  `json:"categoryId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	PriceType   string `json:"priceType" binding:"required,oneof=per_event per_person per_hour"`
	MinCapacity *int   `json:"minCapacity"`
	MaxCapacity *int   `json:"maxCapacity"`
	ImageURL    string `json:"imageUrl"`
}

type registerRequest struct {
	UserID       int64  `json:"userId" binding:"required"`
	BusinessName string `json:"businessName" binding:"required"`
	Description  string `json:"description"`
	Location     string `json:"location" binding:"required"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	ImageURL     string `json:"imageUrl"`

	InitialService *initialServiceRequest `json:"initialService"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid provider data", err)
		return
	}

	reg := &model.ProviderRegistration{
		Provider: &model.Provider{
			UserID:       req.UserID,
			BusinessName: req.BusinessName,
			Description:  req.Description,
			Location:     req.Location,
			Phone:        req.Phone,
			Website:      req.Website,
			ImageURL:     req.ImageURL,
		},
	}
	if req.InitialService != nil {
		reg.InitialService = &model.Service{
			CategoryID:  req.InitialService.CategoryID,
			Title:       req.InitialService.Title,
			Description: req.InitialService.Description,
			Price:       req.InitialService.Price,
			PriceType:   req.InitialService.PriceType,
			MinCapacity: req.InitialService.MinCapacity,
			MaxCapacity: req.InitialService.MaxCapacity,
			ImageURL:    req.InitialService.ImageURL,
			Active:      true,
		}
	}

	provider, err := h.service.Register(c.Request.Context(), reg)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, provider)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	provider, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

type updateRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	Description  string `json:"description"`
	Location     string `json:"location" binding:"required"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	ImageURL     string `json:"imageUrl"`
}

func (h *Handler) Update(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid provider data", err)
		return
	}

	provider, err := h.service.Update(c.Request.Context(), &model.Provider{
		ID:           id,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Location:     req.Location,
		Phone:        req.Phone,
		Website:      req.Website,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}
