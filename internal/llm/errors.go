package llm

import (
	"fmt"
	"net/http"
)

// ErrorKind is a closed set of provider failure classes. Adapters classify
// backend errors exactly once; the HTTP layer translates kinds to status
// codes without ever inspecting raw SDK errors or message substrings.
type ErrorKind string

const (
	KindUnauthorized ErrorKind = "unauthorized" // bad or missing API key
	KindRateLimited  ErrorKind = "rate_limited" // backend returned 429
	KindUpstream     ErrorKind = "upstream"     // backend 5xx
	KindNoContent    ErrorKind = "no_content"   // call succeeded but returned nothing usable
	KindOther        ErrorKind = "other"
)

// ProviderError is the normalized failure of a single LLM backend call.
// StatusCode is the backend's reported HTTP status, zero when the failure
// never reached the backend (transport error, empty response).
type ProviderError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s provider: %s (status %d)", e.Provider, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s provider: %s", e.Provider, e.Message)
}

// classifyStatus maps a backend HTTP status to an ErrorKind.
func classifyStatus(code int) ErrorKind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return KindUnauthorized
	case code == http.StatusTooManyRequests:
		return KindRateLimited
	case code >= http.StatusInternalServerError:
		return KindUpstream
	default:
		return KindOther
	}
}
