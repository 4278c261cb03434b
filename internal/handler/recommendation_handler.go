package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleveque/reco-service/internal/llm"
	"github.com/fleveque/reco-service/internal/model"
	"github.com/fleveque/reco-service/internal/service"
)

// Recommender is the service dependency of the HTTP layer. Declaring the
// interface at the point of use (not in the service package) keeps the
// handler mockable without importing test doubles from elsewhere.
type Recommender interface {
	Recommend(ctx context.Context, title string, selector model.Selector) (*model.RecommendationSet, error)
}

// RecommendationHandler handles recommendation requests.
// It validates input, delegates to the aggregator, and is the single place
// where internal error kinds become HTTP status codes.
type RecommendationHandler struct {
	recommender     Recommender
	defaultSelector model.Selector
	logger          *zap.Logger
}

// NewRecommendationHandler creates a handler. defaultSelector is used when
// a request doesn't name a provider.
func NewRecommendationHandler(recommender Recommender, defaultSelector model.Selector, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommender:     recommender,
		defaultSelector: defaultSelector,
		logger:          logger,
	}
}

type recommendationRequest struct {
	Title    string `json:"title"`
	Provider string `json:"provider"`
}

// GetRecommendations handles POST /get-recommendations.
// Request body: {"title": "Inception", "provider": "openai"|"claude"|"both"}.
// Validation failures return 400 before any external call is made.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Movie title is required",
		})
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Movie title is required",
		})
		return
	}

	selector := h.defaultSelector
	if req.Provider != "" {
		// Unknown values are rejected by the aggregator before it touches
		// any provider — validated centrally, not here.
		selector = model.Selector(req.Provider)
	}

	set, err := h.recommender.Recommend(c.Request.Context(), title, selector)
	if err != nil {
		h.writeError(c, title, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recommendations": set.Recommendations,
		"requestedMovie":  set.RequestedMovie,
	})
}

// writeError translates aggregator and provider failures into the response
// status table. Provider errors carry a closed kind set, so this is a
// switch over tags — no status-code or message-substring sniffing.
func (h *RecommendationHandler) writeError(c *gin.Context, title string, err error) {
	h.logger.Warn("error fetching recommendations",
		zap.String("title", title),
		zap.Error(err),
	)

	if errors.Is(err, service.ErrInvalidSelector) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": `Invalid provider. Use "openai", "claude", or "both".`,
		})
		return
	}

	var provErr *llm.ProviderError
	if errors.As(err, &provErr) {
		switch provErr.Kind {
		case llm.KindUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
		case llm.KindRateLimited:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
		case llm.KindUpstream:
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI service unavailable. Please try again later."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching recommendations: " + provErr.Message})
		}
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Error fetching recommendations: " + err.Error(),
	})
}
