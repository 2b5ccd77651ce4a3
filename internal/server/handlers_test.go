package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbellini/landing-optimizer/internal/llm"
	"github.com/mbellini/landing-optimizer/internal/pipeline"
	"github.com/mbellini/landing-optimizer/internal/scrape"
)

// stubGenerator returns the same response for every call.
type stubGenerator struct {
	response string
}

func (s *stubGenerator) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.response, nil
}

func newTestServer(t *testing.T, gen pipeline.Generator) *Server {
	t.Helper()
	runner := pipeline.NewRunner(gen, nil, &scrape.Options{
		Timeout:   5 * time.Second,
		UserAgent: scrape.DefaultUserAgent,
	})
	srv, err := New(Config{Port: 0}, runner)
	require.NoError(t, err)
	return srv
}

func newPageServer(t *testing.T) *httptest.Server {
	t.Helper()
	html := fmt.Sprintf(`<html><head><title>Acme</title></head><body><h1>Hello</h1><p>%s</p></body></html>`,
		strings.Repeat("Acme builds reliable widgets for growing teams. ", 20))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	rec := doRequest(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	rec := doRequest(srv, http.MethodPost, "/analyze", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestHandleAnalyze_ValidationFailure(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	tests := []struct {
		name string
		body string
	}{
		{"missing url", `{"focus_area": "seo"}`},
		{"missing focus area", `{"url": "https://example.com"}`},
		{"malformed url", `{"url": "not a url", "focus_area": "seo"}`},
		{"too many goals", `{"url": "https://example.com", "focus_area": "seo", "goals": ["a","b","c","d","e","f"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(srv, http.MethodPost, "/analyze", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid request")
		})
	}
}

func TestHandleAnalyze_Success(t *testing.T) {
	page := newPageServer(t)
	// An empty report array survives the retry budget and is repaired by
	// per-element defaulting, which still produces a complete report.
	srv := newTestServer(t, &stubGenerator{response: "[]"})

	body := fmt.Sprintf(`{"url": %q, "focus_area": "seo", "industry": "local", "goals": ["leads"]}`, page.URL)
	rec := doRequest(srv, http.MethodPost, "/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "seo", resp.FocusArea)
	assert.Equal(t, "local", resp.Industry)
	assert.True(t, resp.Repaired)
	assert.Empty(t, resp.ReportID)
	assert.Equal(t, 64, resp.Benchmark)
	require.NotNil(t, resp.Report)
	assert.Len(t, resp.Report.Report, 4)
}

func TestHandleAnalyze_PipelineFailure(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	srv := newTestServer(t, &stubGenerator{response: "[]"})
	body := fmt.Sprintf(`{"url": %q, "focus_area": "seo"}`, failing.URL)

	rec := doRequest(srv, http.MethodPost, "/analyze", body)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "analysis failed")
}

func TestHandleListReports_NoArchive(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	rec := doRequest(srv, http.MethodGet, "/reports", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandleGetReport_NoArchive(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	rec := doRequest(srv, http.MethodGet, "/reports/3f1c6f42-9207-4f48-a3c4-1f9a25e2b001", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestHandleDeleteReport_NoArchive(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	rec := doRequest(srv, http.MethodDelete, "/reports/3f1c6f42-9207-4f48-a3c4-1f9a25e2b001", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimiting(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	var last int
	for i := 0; i < 6; i++ {
		last = doRequest(srv, http.MethodGet, "/health", "").Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
