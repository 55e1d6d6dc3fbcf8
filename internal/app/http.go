package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mbsaloka/AutoEssayGrader/internal/backend"
	"github.com/mbsaloka/AutoEssayGrader/internal/config"
	"github.com/mbsaloka/AutoEssayGrader/internal/handler"
	"github.com/mbsaloka/AutoEssayGrader/internal/middleware"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	api := backend.New(cfg.BackendURL)
	h := handler.NewHandler(api, cfg.WebDir)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.WithSession(infra.Fallback, cfg.IsProduction(), cfg.CookieDomain))

	h.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router, func() error {
		return infra.Fallback.Close()
	}, nil
}
