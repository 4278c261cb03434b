package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestEnricher(t *testing.T, handler http.HandlerFunc) *DuckDuckGo {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewDuckDuckGo(srv.URL+"/", 2*time.Second, zap.NewNop())
}

func TestEnrich_UsesAbstractText(t *testing.T) {
	var gotQuery string
	enricher := newTestEnricher(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("no_html"))
		assert.Equal(t, "1", r.URL.Query().Get("skip_disambig"))
		w.Write([]byte(`{"AbstractText": "A thief who steals corporate secrets."}`))
	})

	got := enricher.Enrich(context.Background(), "Inception")

	assert.Equal(t, "Current information about Inception: A thief who steals corporate secrets.", got)
	assert.Contains(t, gotQuery, "Inception")
	assert.Contains(t, gotQuery, "movie cast director plot summary reviews")
}

func TestEnrich_FallsBackToAnswer(t *testing.T) {
	enricher := newTestEnricher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"AbstractText": "", "Answer": "Released in 2010."}`))
	})

	got := enricher.Enrich(context.Background(), "Inception")
	assert.Equal(t, "Current information about Inception: Released in 2010.", got)
}

func TestEnrich_NothingUsable(t *testing.T) {
	enricher := newTestEnricher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"AbstractText": "", "Answer": ""}`))
	})

	assert.Empty(t, enricher.Enrich(context.Background(), "Some Obscure Film"))
}

func TestEnrich_SuppressesBadStatus(t *testing.T) {
	enricher := newTestEnricher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.Empty(t, enricher.Enrich(context.Background(), "Inception"))
}

func TestEnrich_SuppressesMalformedPayload(t *testing.T) {
	enricher := newTestEnricher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	assert.Empty(t, enricher.Enrich(context.Background(), "Inception"))
}

func TestEnrich_SuppressesNetworkError(t *testing.T) {
	// Point at a server that's already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	enricher := NewDuckDuckGo(srv.URL+"/", time.Second, zap.NewNop())
	assert.Empty(t, enricher.Enrich(context.Background(), "Inception"))
}

func TestEnrich_SuppressesTimeout(t *testing.T) {
	enricher := newTestEnricher(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"AbstractText": "too late"}`))
	})
	enricher.httpClient.Timeout = 50 * time.Millisecond

	assert.Empty(t, enricher.Enrich(context.Background(), "Inception"))
}
