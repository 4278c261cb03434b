// Package server configures the HTTP server and routes.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleveque/reco-service/internal/config"
	"github.com/fleveque/reco-service/internal/handler"
	"github.com/fleveque/reco-service/internal/middleware"
	"github.com/fleveque/reco-service/internal/model"
)

// Deps holds the service-layer dependencies the routes need.
// In Go, we pass dependencies explicitly — no DI container, no magic.
type Deps struct {
	Recommender handler.Recommender
}

// RegisterRoutes sets up all HTTP routes on the Gin engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps, logger *zap.Logger) {
	healthHandler := handler.NewHealthHandler()
	recHandler := handler.NewRecommendationHandler(
		deps.Recommender,
		model.Selector(cfg.LLM.DefaultProvider),
		logger,
	)

	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/healthz", healthHandler.Healthz)
	r.POST("/get-recommendations", recHandler.GetRecommendations)

	// Pre-built frontend assets are served at "/". Registering them as the
	// NoRoute fallback avoids Gin's wildcard conflict with the routes above.
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.Static.Dir))))
}
