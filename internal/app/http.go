package app

import (
	"context"
	"errors"
	"net/http"

	"climblog/internal/auth/credentials"
	"climblog/internal/auth/handler"
	"climblog/internal/climbs"
	"climblog/internal/config"
	"climblog/internal/middleware"
	"climblog/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	if cfg.SessionSecret == "" {
		return nil, nil, errors.New("SESSION_SECRET is required")
	}

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	var sessionStore session.Store
	if infra.Redis != nil {
		sessionStore = session.NewRedisStore(infra.Redis.Client)
	} else {
		sessionStore = session.NewMemoryStore()
	}

	codec := session.NewTokenCodec(cfg.SessionSecret)

	cookieOpts := session.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	credentialService := credentials.NewService(infra.DB)
	climbService := climbs.NewService(infra.DB)

	authHandler := handler.NewHandler(
		credentialService,
		sessionStore,
		codec,
		cfg.SessionTTL,
		cookieOpts,
	)
	climbHandler := climbs.NewHandler(climbService)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore, codec, cookieOpts)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	status := func(c *gin.Context) {
		c.String(http.StatusOK, "CLIMB Server Running")
	}
	router.GET("/", status)
	router.GET("/status", status)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Routes
	// ----------------------------

	api := router.Group("/")
	api.Use(authMiddleware.RequireAuth())

	climbHandler.RegisterRoutes(api)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, infra.Close, nil
}
