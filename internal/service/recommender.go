// Package service contains the request orchestration for recommendations.
// RecommendationService is the aggregator: it validates the provider
// selector, runs the (optional) search enrichment, fans out to the chosen
// LLM adapter(s), and collects whichever succeed.
package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/fleveque/reco-service/internal/llm"
	"github.com/fleveque/reco-service/internal/model"
	"github.com/fleveque/reco-service/internal/search"
)

var (
	// ErrInvalidSelector is returned before any external call when the
	// requested provider isn't recognized.
	ErrInvalidSelector = errors.New("invalid provider selector")

	// ErrAllProvidersFailed is returned in "both" mode when neither
	// provider produced a recommendation.
	ErrAllProvidersFailed = errors.New("all AI providers failed")
)

// RecommendationService aggregates recommendations across LLM providers.
// All dependencies are injected — no ambient globals — so tests can swap
// in mock clients and enrichers.
type RecommendationService struct {
	openai   llm.Client
	claude   llm.Client
	enricher search.Enricher // nil disables enrichment
	logger   *zap.Logger
}

// NewRecommendationService wires the aggregator. enricher may be nil when
// search enrichment is disabled.
func NewRecommendationService(openaiClient llm.Client, claudeClient llm.Client, enricher search.Enricher, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		openai:   openaiClient,
		claude:   claudeClient,
		enricher: enricher,
		logger:   logger,
	}
}

// Recommend resolves the selector, enriches the title, and consults the
// chosen provider(s). A single provider's failure passes straight through;
// in "both" mode the call succeeds as long as at least one provider does.
func (s *RecommendationService) Recommend(ctx context.Context, title string, selector model.Selector) (*model.RecommendationSet, error) {
	clients, err := s.clientsFor(selector)
	if err != nil {
		return nil, err
	}

	// One enrichment lookup per request, shared by every adapter invoked.
	// Lookup failures degrade to an empty snippet inside the enricher.
	var movieInfo string
	if s.enricher != nil {
		movieInfo = s.enricher.Enrich(ctx, title)
	}

	// Single provider: its outcome is the request's outcome.
	if len(clients) == 1 {
		rec, err := clients[0].Recommend(ctx, title, movieInfo)
		if err != nil {
			return nil, err
		}
		return &model.RecommendationSet{
			Recommendations: []model.Recommendation{*rec},
			RequestedMovie:  title,
		}, nil
	}

	// "both": fan out concurrently and settle all. Each branch reaches a
	// terminal state before the response is built, and one branch failing
	// never interrupts the other. Indexed slices preserve declaration
	// order (OpenAI before Claude) regardless of completion order.
	results := make([]*model.Recommendation, len(clients))
	errs := make([]error, len(clients))

	var wg sync.WaitGroup
	for i, client := range clients {
		wg.Add(1)
		go func(i int, client llm.Client) {
			defer wg.Done()
			results[i], errs[i] = client.Recommend(ctx, title, movieInfo)
		}(i, client)
	}
	wg.Wait()

	recommendations := make([]model.Recommendation, 0, len(clients))
	for i := range clients {
		if errs[i] != nil {
			s.logger.Warn("provider failed",
				zap.String("provider", clients[i].ProviderName()),
				zap.String("title", title),
				zap.Error(errs[i]),
			)
			continue
		}
		recommendations = append(recommendations, *results[i])
	}

	if len(recommendations) == 0 {
		return nil, ErrAllProvidersFailed
	}

	return &model.RecommendationSet{
		Recommendations: recommendations,
		RequestedMovie:  title,
	}, nil
}

// clientsFor resolves a selector to the adapters it names. This runs before
// any external call — an unknown selector costs nothing.
func (s *RecommendationService) clientsFor(selector model.Selector) ([]llm.Client, error) {
	switch selector {
	case model.SelectorOpenAI:
		return []llm.Client{s.openai}, nil
	case model.SelectorClaude:
		return []llm.Client{s.claude}, nil
	case model.SelectorBoth:
		return []llm.Client{s.openai, s.claude}, nil
	default:
		return nil, ErrInvalidSelector
	}
}
