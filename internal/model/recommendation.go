// Package model defines the core data types for the recommendation service.
// In Go, we use structs instead of classes. Struct tags (the `json:"..."`
// annotations) tell serialization libraries how to map fields.
// Everything here is per-request and transient — nothing persists.
package model

// Selector identifies which LLM provider(s) a request wants consulted.
// Go doesn't have enums — we use typed constants with explicit values.
type Selector string

const (
	SelectorOpenAI Selector = "openai"
	SelectorClaude Selector = "claude"
	SelectorBoth   Selector = "both"
)

// ParseSelector converts a raw provider string into a Selector.
// The second return value reports whether the value was recognized —
// the same "comma ok" idiom as map lookups.
func ParseSelector(s string) (Selector, bool) {
	switch Selector(s) {
	case SelectorOpenAI, SelectorClaude, SelectorBoth:
		return Selector(s), true
	default:
		return "", false
	}
}

// Recommendation is one provider's normalized answer.
// Usage is the provider-reported token/cost metadata, passed through as an
// opaque structure — the rest of the system never looks inside it.
type Recommendation struct {
	Provider       string `json:"provider"`
	Content        string `json:"content"`
	Usage          any    `json:"usage,omitempty"`
	SearchEnhanced bool   `json:"searchEnhanced"`
}

// RecommendationSet is the aggregate outcome for one request.
// Recommendations keeps a fixed provider order (OpenAI before Claude in
// "both" mode) regardless of which call finished first.
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	RequestedMovie  string           `json:"requestedMovie"`
}
