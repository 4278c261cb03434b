package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fleveque/reco-service/internal/model"
)

// OpenAIClient implements the Client interface using OpenAI's chat
// completion API.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIClient creates an OpenAI-backed recommender. The timeout bounds
// each completion call at the HTTP client level.
func NewOpenAIClient(apiKey string, model string, maxTokens int, timeout time.Duration) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (o *OpenAIClient) ProviderName() string { return "openai" }
func (o *OpenAIClient) ModelName() string    { return o.model }

// Recommend asks the model for two movie recommendations and normalizes the
// response. The raw completion payload never leaves this method — only the
// extracted text and the opaque usage metadata do.
func (o *OpenAIClient) Recommend(ctx context.Context, title string, movieInfo string) (*model.Recommendation, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openaiSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: openaiUserPrompt(title, movieInfo)},
		},
		MaxTokens: o.maxTokens,
	})
	if err != nil {
		return nil, o.wrapError(err)
	}

	// An empty choice list is a distinct failure, not a panic on index 0.
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{
			Provider: o.ProviderName(),
			Kind:     KindNoContent,
			Message:  "no content returned",
		}
	}

	return &model.Recommendation{
		Provider:       fmt.Sprintf("OpenAI (%s)", o.model),
		Content:        resp.Choices[0].Message.Content,
		Usage:          resp.Usage,
		SearchEnhanced: movieInfo != "",
	}, nil
}

// wrapError classifies an SDK error into the closed ProviderError taxonomy.
// openai.APIError carries the backend's HTTP status; anything else (network,
// context cancellation) becomes KindOther.
func (o *OpenAIClient) wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Provider:   o.ProviderName(),
			Kind:       classifyStatus(apiErr.HTTPStatusCode),
			StatusCode: apiErr.HTTPStatusCode,
			Message:    apiErr.Message,
		}
	}

	return &ProviderError{
		Provider: o.ProviderName(),
		Kind:     KindOther,
		Message:  err.Error(),
	}
}
