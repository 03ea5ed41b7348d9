package handler

import (
	"errors"
	"net/http"
	"time"

	"climblog/internal/auth/credentials"
	"climblog/internal/logger"
	"climblog/internal/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := h.credentialService.Authenticate(
		c.Request.Context(),
		req.Email,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrMissingFields):
			c.String(http.StatusBadRequest, "All fields are required")
		case errors.Is(err, credentials.ErrInvalidCredentials):
			// one message for unknown email and wrong password
			c.String(http.StatusUnauthorized, "Invalid credentials")
		default:
			logger.Error("failed to authenticate user", map[string]any{
				"error": err.Error(),
			})
			c.String(http.StatusInternalServerError, "Error logging in")
		}
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error logging in")
		return
	}

	expiresAt := time.Now().Add(h.sessionTTL)

	if err := h.sessionStore.Create(
		c.Request.Context(),
		session.Session{
			SessionID: sessionID,
			UserID:    user.ID,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		logger.Error("failed to persist session", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error logging in")
		return
	}

	session.SetCookie(
		c.Writer,
		h.codec.Encode(sessionID),
		expiresAt,
		h.cookieOpts,
	)

	logger.Info("login", map[string]any{
		"user_id":    user.ID,
		"session_id": sessionID,
	})

	c.String(http.StatusOK, "Logged in successfully, Welcome "+user.Username)
}
