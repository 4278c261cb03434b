package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleveque/reco-service/internal/llm"
	"github.com/fleveque/reco-service/internal/model"
	"github.com/fleveque/reco-service/internal/service"
)

// stubRecommender is a canned aggregator for handler tests.
type stubRecommender struct {
	set          *model.RecommendationSet
	err          error
	calls        int
	lastTitle    string
	lastSelector model.Selector
}

func (s *stubRecommender) Recommend(_ context.Context, title string, selector model.Selector) (*model.RecommendationSet, error) {
	s.calls++
	s.lastTitle = title
	s.lastSelector = selector
	if s.err != nil {
		return nil, s.err
	}
	return s.set, nil
}

func newTestRouter(rec *stubRecommender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewRecommendationHandler(rec, model.SelectorOpenAI, zap.NewNop())
	router.POST("/get-recommendations", h.GetRecommendations)
	return router
}

func post(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/get-recommendations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestGetRecommendations_MissingTitle(t *testing.T) {
	rec := &stubRecommender{}
	router := newTestRouter(rec)

	for _, body := range []string{`{}`, `{"title": ""}`, `{"title": "   "}`, `not json`} {
		w := post(router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Equal(t, "Movie title is required", errorBody(t, w), "body: %s", body)
	}

	assert.Zero(t, rec.calls, "no aggregator call for rejected requests")
}

func TestGetRecommendations_DefaultProvider(t *testing.T) {
	rec := &stubRecommender{set: &model.RecommendationSet{
		Recommendations: []model.Recommendation{{Provider: "OpenAI (gpt-4o)", Content: "..."}},
		RequestedMovie:  "Inception",
	}}
	router := newTestRouter(rec)

	w := post(router, `{"title": "Inception"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.SelectorOpenAI, rec.lastSelector)
}

func TestGetRecommendations_HappyPath(t *testing.T) {
	rec := &stubRecommender{set: &model.RecommendationSet{
		Recommendations: []model.Recommendation{{
			Provider:       "OpenAI (gpt-4o)",
			Content:        "**Tenet (2020)** - ...\n**Her (2013)** - ...",
			SearchEnhanced: false,
		}},
		RequestedMovie: "Inception",
	}}
	router := newTestRouter(rec)

	w := post(router, `{"title": "Inception", "provider": "openai"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, "Inception", rec.lastTitle)

	var body struct {
		Success         bool                   `json:"success"`
		Recommendations []model.Recommendation `json:"recommendations"`
		RequestedMovie  string                 `json:"requestedMovie"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Recommendations, 1)
	assert.Equal(t, "OpenAI (gpt-4o)", body.Recommendations[0].Provider)
	assert.False(t, body.Recommendations[0].SearchEnhanced)
	assert.Equal(t, "Inception", body.RequestedMovie)
}

func TestGetRecommendations_InvalidSelector(t *testing.T) {
	rec := &stubRecommender{err: service.ErrInvalidSelector}
	router := newTestRouter(rec)

	w := post(router, `{"title": "Inception", "provider": "bard"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Invalid provider. Use "openai", "claude", or "both".`, errorBody(t, w))
}

func TestGetRecommendations_ProviderErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "unauthorized",
			err:        &llm.ProviderError{Provider: "openai", Kind: llm.KindUnauthorized, StatusCode: 401, Message: "bad key"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid API key",
		},
		{
			name:       "rate limited",
			err:        &llm.ProviderError{Provider: "openai", Kind: llm.KindRateLimited, StatusCode: 429, Message: "slow down"},
			wantStatus: http.StatusTooManyRequests,
			wantError:  "Rate limit exceeded. Please try again later.",
		},
		{
			name:       "upstream down",
			err:        &llm.ProviderError{Provider: "anthropic", Kind: llm.KindUpstream, StatusCode: 503, Message: "overloaded"},
			wantStatus: http.StatusBadGateway,
			wantError:  "AI service unavailable. Please try again later.",
		},
		{
			name:       "no content",
			err:        &llm.ProviderError{Provider: "openai", Kind: llm.KindNoContent, Message: "no content returned"},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Error fetching recommendations: no content returned",
		},
		{
			name:       "all providers failed",
			err:        service.ErrAllProvidersFailed,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Error fetching recommendations: all AI providers failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubRecommender{err: tt.err})

			w := post(router, `{"title": "Inception", "provider": "openai"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, errorBody(t, w))
		})
	}
}
