package payment

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventosya/marketplace-api/internal/handler"
	"github.com/eventosya/marketplace-api/internal/model"
	paymentService "github.com/eventosya/marketplace-api/internal/service/payment"
	"github.com/eventosya/marketplace-api/pkg/apperror"
	"github.com/eventosya/marketplace-api/pkg/httputil"
)

type Handler struct {
	service paymentService.PaymentServicer
}

func NewHandler(service paymentService.PaymentServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	aliases := r.Group("/payment-aliases")
	{
		aliases.GET("", h.ListActive)
		aliases.GET("/by-alias/:alias", h.GetByAlias)
		aliases.POST("", h.Create)
		aliases.PUT("/:id", h.Update)
		aliases.DELETE("/:id", h.Delete)
	}
}

// RegisterRedirect mounts the public redirect route on the engine root, not
// under /api.
func (h *Handler) RegisterRedirect(e *gin.Engine) {
	e.GET("/pay/:alias", h.Redirect)
}

func (h *Handler) ListActive(c *gin.Context) {
	aliases, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, aliases)
}

func (h *Handler) GetByAlias(c *gin.Context) {
	alias, err := h.service.Resolve(c.Request.Context(), c.Param("alias"))
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alias)
}

type aliasRequest struct {
	Alias       string `json:"alias" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	Description string `json:"description"`
	PaymentURL  string `json:"paymentUrl" binding:"required,url"`
	Active      *bool  `json:"active"`
}

func (h *Handler) Create(c *gin.Context) {
	var req aliasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid payment alias data", err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	alias, err := h.service.Create(c.Request.Context(), &model.PaymentAlias{
		Alias:       req.Alias,
		DisplayName: req.DisplayName,
		Description: req.Description,
		PaymentURL:  req.PaymentURL,
		Active:      active,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, alias)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req aliasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid payment alias data", err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	alias, err := h.service.Update(c.Request.Context(), &model.PaymentAlias{
		ID:          id,
		Alias:       req.Alias,
		DisplayName: req.DisplayName,
		Description: req.Description,
		PaymentURL:  req.PaymentURL,
		Active:      active,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alias)
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

// Redirect sends the visitor to the external payment page. Misses render an
// inline HTML page because the caller is a browser following a shared link,
// not an API client.
func (h *Handler) Redirect(c *gin.Context) {
	slug := c.Param("alias")

	alias, err := h.service.Resolve(c.Request.Context(), slug)
	if err != nil {
		if apperror.IsNotFound(err) {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(notFoundPage(slug)))
			return
		}
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(errorPage))
		return
	}

	c.Redirect(http.StatusFound, alias.PaymentURL)
}

func notFoundPage(slug string) string {
	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; text-align: center; padding: 50px;">
    <h1>Enlace de pago no encontrado</h1>
    <p>El alias de pago "%s" no existe o no est&aacute; activo.</p>
    <a href="/" style="color: #007bff;">Volver al inicio</a>
  </body>
</html>`, html.EscapeString(slug))
}

const errorPage = `<html>
  <body style="font-family: Arial, sans-serif; text-align: center; padding: 50px;">
    <h1>Error</h1>
    <p>Hubo un error al procesar el enlace de pago.</p>
    <a href="/" style="color: #007bff;">Volver al inicio</a>
  </body>
</html>`
