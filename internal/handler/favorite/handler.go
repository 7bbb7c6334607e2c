package favorite

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventosya/marketplace-api/internal/handler"
	favoriteService "github.com/eventosya/marketplace-api/internal/service/favorite"
	"github.com/eventosya/marketplace-api/pkg/httputil"
)

type Handler struct {
	service favoriteService.FavoriteServicer
}

func NewHandler(service favoriteService.FavoriteServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/favorites", h.Toggle)
	r.GET("/users/:id/favorites", h.ListByUser)
}

type toggleRequest struct {
	UserID    int64 `json:"userId" binding:"required"`
	ServiceID int64 `json:"serviceId" binding:"required"`
}

func (h *Handler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "userId and serviceId are required", err)
		return
	}

	favorited, err := h.service.Toggle(c.Request.Context(), req.UserID, req.ServiceID)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

func (h *Handler) ListByUser(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	favorites, err := h.service.ListByUser(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}
