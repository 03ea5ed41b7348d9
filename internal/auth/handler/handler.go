package handler

import (
	"net/http"
	"time"

	"climblog/internal/auth/credentials"
	"climblog/internal/logger"
	"climblog/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	credentialService *credentials.Service
	sessionStore      session.Store
	codec             *session.TokenCodec
	sessionTTL        time.Duration
	cookieOpts        session.CookieOptions
}

func NewHandler(
	credentialService *credentials.Service,
	sessionStore session.Store,
	codec *session.TokenCodec,
	sessionTTL time.Duration,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		credentialService: credentialService,
		sessionStore:      sessionStore,
		codec:             codec,
		sessionTTL:        sessionTTL,
		cookieOpts:        cookieOpts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

// Logout destroys the caller's session and clears the cookie. It is
// idempotent: an absent or unknown session counts as already logged out,
// so the handler sits outside the auth middleware.
func (h *Handler) Logout(c *gin.Context) {

	if token, ok := session.ReadToken(c.Request, h.cookieOpts); ok {
		if sessionID, err := h.codec.Decode(token); err == nil {
			// best-effort delete; the cookie is cleared either way
			if err := h.sessionStore.Delete(c.Request.Context(), sessionID); err != nil {
				logger.Error("failed to delete session", map[string]any{
					"session_id": sessionID,
					"error":      err.Error(),
				})
			} else {
				logger.Info("logout", map[string]any{
					"session_id": sessionID,
				})
			}
		}
	}

	session.ClearCookie(c.Writer, h.cookieOpts)

	c.String(http.StatusOK, "Logged out successfully")
}
