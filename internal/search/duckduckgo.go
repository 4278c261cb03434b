// Package search provides optional movie-context enrichment from a public
// instant answer API. Enrichment is a nice-to-have: every failure here is
// logged and absorbed, and the caller simply proceeds without context.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Enricher fetches a short factual snippet about a movie title.
// An empty string means "no enrichment available" — implementations must
// never surface an error to the caller.
type Enricher interface {
	Enrich(ctx context.Context, title string) string
}

// DuckDuckGo queries the DuckDuckGo instant answer API — free and
// requiring no API key.
type DuckDuckGo struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewDuckDuckGo creates an enricher with a bounded per-lookup timeout.
func NewDuckDuckGo(baseURL string, timeout time.Duration, logger *zap.Logger) *DuckDuckGo {
	return &DuckDuckGo{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// instantAnswer is the subset of the response payload we care about.
type instantAnswer struct {
	AbstractText string `json:"AbstractText"`
	Answer       string `json:"Answer"`
}

// Enrich looks up current information about a movie title.
// Failure policy: total suppression. Any network error, timeout, bad status
// or malformed payload degrades to "" — never an error.
func (d *DuckDuckGo) Enrich(ctx context.Context, title string) string {
	query := url.Values{}
	query.Set("q", title+" movie cast director plot summary reviews")
	query.Set("format", "json")
	query.Set("no_html", "1")
	query.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		d.suppress(title, err)
		return ""
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.suppress(title, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		d.suppress(title, fmt.Errorf("HTTP %d", resp.StatusCode))
		return ""
	}

	var answer instantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		d.suppress(title, err)
		return ""
	}

	info := answer.AbstractText
	if info == "" {
		info = answer.Answer
	}
	if info == "" {
		// Nothing usable for this title — common for obscure movies.
		return ""
	}

	return fmt.Sprintf("Current information about %s: %s", title, info)
}

func (d *DuckDuckGo) suppress(title string, err error) {
	d.logger.Warn("web search failed, continuing without additional context",
		zap.String("title", title),
		zap.Error(err),
	)
}
