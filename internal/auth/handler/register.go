package handler

import (
	"errors"
	"net/http"

	"climblog/internal/auth/credentials"
	"climblog/internal/logger"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "All fields are required")
		return
	}

	userID, err := h.credentialService.Register(
		c.Request.Context(),
		req.Username,
		req.Email,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrAlreadyRegistered):
			c.String(http.StatusConflict, "Account already exists")
		case errors.Is(err, credentials.ErrMissingFields),
			errors.Is(err, credentials.ErrInvalidEmail),
			errors.Is(err, credentials.ErrPasswordTooShort):
			c.String(http.StatusBadRequest, capitalize(err.Error()))
		default:
			logger.Error("failed to register user", map[string]any{
				"error": err.Error(),
			})
			c.String(http.StatusInternalServerError, "Error registering user")
		}
		return
	}

	logger.Info("user registered", map[string]any{
		"user_id": userID,
	})

	c.String(http.StatusCreated, "User registered successfully")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
