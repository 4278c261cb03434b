package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/fleveque/reco-service/internal/model"
)

// AnthropicClient implements the Client interface using Claude's messages API.
type AnthropicClient struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

// NewAnthropicClient creates a Claude-backed recommender.
func NewAnthropicClient(apiKey string, model string, maxTokens int, timeout time.Duration) *AnthropicClient {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	return &AnthropicClient{
		client:    &client,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (a *AnthropicClient) ProviderName() string { return "anthropic" }
func (a *AnthropicClient) ModelName() string    { return a.model }

// Recommend sends a single user message (Claude takes the assistant role
// folded into the user turn) and extracts the first text block.
func (a *AnthropicClient) Recommend(ctx context.Context, title string, movieInfo string) (*model.Recommendation, error) {
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(a.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(claudeUserPrompt(title, movieInfo))),
		},
	})
	if err != nil {
		return nil, a.wrapError(err)
	}

	// Claude responses are a list of content blocks; we want the first text
	// block. A response without one is a distinct "no content" failure.
	var content string
	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			content = text.Text
			break
		}
	}
	if content == "" {
		return nil, &ProviderError{
			Provider: a.ProviderName(),
			Kind:     KindNoContent,
			Message:  "no content returned",
		}
	}

	return &model.Recommendation{
		Provider:       fmt.Sprintf("Claude (%s)", a.model),
		Content:        content,
		Usage:          message.Usage,
		SearchEnhanced: movieInfo != "",
	}, nil
}

// wrapError classifies an SDK error into the closed ProviderError taxonomy.
func (a *AnthropicClient) wrapError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Provider:   a.ProviderName(),
			Kind:       classifyStatus(apiErr.StatusCode),
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Error(),
		}
	}

	return &ProviderError{
		Provider: a.ProviderName(),
		Kind:     KindOther,
		Message:  err.Error(),
	}
}
