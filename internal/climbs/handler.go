package climbs

import (
	"errors"
	"net/http"

	"climblog/internal/logger"
	"climblog/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the climb-log routes to an authenticated group.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/sessions", h.Create)
	r.GET("/sessions", h.List)
}

type createRequest struct {
	SessionDate     string `json:"session_date"`
	Location        string `json:"location"`
	RouteGrade      string `json:"route_grade"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

func (h *Handler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.String(http.StatusUnauthorized, "Please login first")
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Missing required fields")
		return
	}

	err := h.service.Create(c.Request.Context(), userID, CreateInput{
		SessionDate:     req.SessionDate,
		Location:        req.Location,
		RouteGrade:      req.RouteGrade,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			c.String(http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidDuration):
			c.String(http.StatusBadRequest, err.Error())
		default:
			logger.Error("failed to add climbing session", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			c.String(http.StatusInternalServerError, "Error adding session")
		}
		return
	}

	c.String(http.StatusOK, "Climbing session added successfully!")
}

func (h *Handler) List(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.String(http.StatusUnauthorized, "Please login first")
		return
	}

	entries, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to fetch climbing sessions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error fetching sessions")
		return
	}

	c.JSON(http.StatusOK, entries)
}
