// Package llm provides a provider-agnostic interface for generating movie
// recommendations. Each backend (OpenAI, Anthropic) builds its own prompt,
// calls its completion API, and normalizes the raw response into a
// model.Recommendation — the rest of the system never sees provider payloads.
package llm

import (
	"context"

	"github.com/fleveque/reco-service/internal/model"
)

// Client is the interface for LLM providers that can recommend movies.
// movieInfo is an optional search snippet about the title; empty means the
// provider should fall back to its simpler, context-free prompt.
//
// Go interface design tip: keep interfaces small. This has one real method —
// that's ideal. The bigger the interface, the harder it is to implement
// and mock. Go proverb: "The bigger the interface, the weaker the abstraction."
type Client interface {
	Recommend(ctx context.Context, title string, movieInfo string) (*model.Recommendation, error)
	ProviderName() string
	ModelName() string
}
