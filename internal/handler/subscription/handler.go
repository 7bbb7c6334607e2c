package subscription

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/eventosya/marketplace-api/internal/handler"
	"github.com/eventosya/marketplace-api/internal/model"
	subscriptionService "github.com/eventosya/marketplace-api/internal/service/subscription"
	"github.com/eventosya/marketplace-api/pkg/httputil"
)

type Handler struct {
	service subscriptionService.SubscriptionServicer
}

func NewHandler(service subscriptionService.SubscriptionServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	plans := r.Group("/subscription-plans")
	{
		plans.GET("", h.ListPlans)
		plans.POST("", h.CreatePlan)
		plans.PUT("/:id", h.UpdatePlan)
		plans.DELETE("/:id", h.DeletePlan)
	}

	r.GET("/users/:id/subscriptions", h.ListByUser)
	r.POST("/subscriptions", h.Subscribe)
	r.PUT("/subscriptions/:id", h.UpdateSubscription)
}

func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.service.ListPlans(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

type planRequest struct {
	Name     string   `json:"name" binding:"required"`
	Price    string   `json:"price" binding:"required"`
	Interval string   `json:"interval" binding:"required,oneof=monthly yearly"`
	Features []string `json:"features"`
	Active   *bool    `json:"active"`
}

func (h *Handler) CreatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid subscription plan data", err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	plan, err := h.service.CreatePlan(c.Request.Context(), &model.SubscriptionPlan{
		Name:     req.Name,
		Price:    req.Price,
		Interval: req.Interval,
		Features: pq.StringArray(req.Features),
		Active:   active,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *Handler) UpdatePlan(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid subscription plan data", err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	plan, err := h.service.UpdatePlan(c.Request.Context(), &model.SubscriptionPlan{
		ID:       id,
		Name:     req.Name,
		Price:    req.Price,
		Interval: req.Interval,
		Features: pq.StringArray(req.Features),
		Active:   active,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) DeletePlan(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	if err := h.service.DeletePlan(c.Request.Context(), id); err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ListByUser(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	subs, err := h.service.ListByUser(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

type subscribeRequest struct {
	UserID   int64      `json:"userId" binding:"required"`
	PlanID   int64      `json:"planId" binding:"required"`
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid subscription data", err)
		return
	}

	startsAt := time.Now()
	if req.StartsAt != nil {
		startsAt = *req.StartsAt
	}

	sub, err := h.service.Subscribe(c.Request.Context(), &model.Subscription{
		UserID:   req.UserID,
		PlanID:   req.PlanID,
		Status:   "active",
		StartsAt: startsAt,
		EndsAt:   req.EndsAt,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

type updateSubscriptionRequest struct {
	Status string     `json:"status" binding:"required,oneof=active cancelled expired"`
	EndsAt *time.Time `json:"endsAt"`
}

func (h *Handler) UpdateSubscription(c *gin.Context) {
	id, err := handler.PathID(c, "id")
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	var req updateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid subscription data", err)
		return
	}

	sub, err := h.service.UpdateSubscription(c.Request.Context(), &model.Subscription{
		ID:     id,
		Status: req.Status,
		EndsAt: req.EndsAt,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
