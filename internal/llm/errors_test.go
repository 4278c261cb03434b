package llm

import (
	"net/http"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		code int
		want ErrorKind
	}{
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindUnauthorized},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusInternalServerError, KindUpstream},
		{http.StatusBadGateway, KindUpstream},
		{http.StatusServiceUnavailable, KindUpstream},
		{http.StatusBadRequest, KindOther},
		{http.StatusNotFound, KindOther},
		{0, KindOther},
	}

	for _, tt := range tests {
		if got := classifyStatus(tt.code); got != tt.want {
			t.Errorf("classifyStatus(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestProviderError_Error(t *testing.T) {
	withStatus := &ProviderError{Provider: "openai", Kind: KindRateLimited, StatusCode: 429, Message: "slow down"}
	if got, want := withStatus.Error(), "openai provider: slow down (status 429)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noStatus := &ProviderError{Provider: "anthropic", Kind: KindNoContent, Message: "no content returned"}
	if got, want := noStatus.Error(), "anthropic provider: no content returned"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
