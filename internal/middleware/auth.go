package middleware

import (
	"context"
	"net/http"
	"time"

	"climblog/internal/session"

	"github.com/gin-gonic/gin"
)

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

type AuthMiddleware struct {
	store      session.Store
	codec      *session.TokenCodec
	cookieOpts session.CookieOptions
}

func NewAuthMiddleware(store session.Store, codec *session.TokenCodec, cookieOpts session.CookieOptions) *AuthMiddleware {
	return &AuthMiddleware{store: store, codec: codec, cookieOpts: cookieOpts}
}

// RequireAuth rejects requests without a valid, unexpired session and
// attaches the session's user id to the request context.
func (a *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read session cookie
		token, ok := session.ReadToken(c.Request, a.cookieOpts)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		// 2. Verify token signature before touching the store
		sessionID, err := a.codec.Decode(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		// 3. Load session
		sess, err := a.store.Get(c.Request.Context(), sessionID)
		if err != nil || sess == nil {
			abortUnauthenticated(c)
			return
		}

		// 4. Enforce absolute expiry
		if time.Now().After(sess.ExpiresAt) {
			_ = a.store.Delete(c.Request.Context(), sessionID)
			abortUnauthenticated(c)
			return
		}

		// 5. Attach user_id to the request context
		ctx := context.WithValue(c.Request.Context(), userIDKey, sess.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.String(http.StatusUnauthorized, "Please login first")
	c.Abort()
}
