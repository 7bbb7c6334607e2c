package analytics

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventosya/marketplace-api/internal/handler"
	"github.com/eventosya/marketplace-api/internal/model"
	analyticsService "github.com/eventosya/marketplace-api/internal/service/analytics"
	"github.com/eventosya/marketplace-api/pkg/apperror"
	"github.com/eventosya/marketplace-api/pkg/httputil"
)

type Handler struct {
	service analyticsService.AnalyticsServicer
}

func NewHandler(service analyticsService.AnalyticsServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	{
		analytics.POST("/track", h.Track)
		analytics.GET("/user", h.ListEvents)
		analytics.GET("/user/:id", h.ListEvents)
		analytics.GET("/page-views", h.PageViewStats)
		analytics.GET("/popular-pages", h.PopularPages)
	}
}

type trackRequest struct {
	UserID        *int64          `json:"userId"`
	SessionID     string          `json:"sessionId"`
	PagePath      string          `json:"pagePath" binding:"required"`
	ActionType    string          `json:"actionType" binding:"required"`
	ActionDetails json.RawMessage `json:"actionDetails"`
}

// Track accepts the client payload and stamps it with request metadata the
// browser cannot be trusted to supply.
func (h *Handler) Track(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondValidationError(c, "invalid analytics data", err)
		return
	}

	event, err := h.service.Track(c.Request.Context(), &model.AnalyticsEvent{
		UserID:        req.UserID,
		SessionID:     req.SessionID,
		PagePath:      req.PagePath,
		ActionType:    req.ActionType,
		ActionDetails: req.ActionDetails,
		UserAgent:     c.Request.UserAgent(),
		IPAddress:     c.ClientIP(),
		Referrer:      c.Request.Referer(),
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *Handler) ListEvents(c *gin.Context) {
	filter := &model.AnalyticsFilter{}

	if c.Param("id") != "" {
		userID, err := handler.PathID(c, "id")
		if err != nil {
			httputil.RespondError(c, err)
			return
		}
		filter.UserID = &userID
	}

	start, end, err := parseWindow(c)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	filter.StartDate = start
	filter.EndDate = end

	events, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handler) PageViewStats(c *gin.Context) {
	start, end, err := parseWindow(c)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	stats, err := h.service.PageViewStats(c.Request.Context(), c.Query("pagePath"), start, end)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) PopularPages(c *gin.Context) {
	start, end, err := parseWindow(c)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			httputil.RespondError(c, apperror.BadRequest("invalid limit"))
			return
		}
	}

	pages, err := h.service.PopularPages(c.Request.Context(), limit, start, end)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

// parseWindow reads the optional startDate / endDate query params as RFC 3339
// timestamps or YYYY-MM-DD dates.
func parseWindow(c *gin.Context) (*time.Time, *time.Time, error) {
	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		return nil, nil, apperror.BadRequest("invalid startDate")
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		return nil, nil, apperror.BadRequest("invalid endDate")
	}
	return start, end, nil
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
