package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlight/insights-engine/internal/insight"
	"github.com/pathlight/insights-engine/internal/llm"
)

// staticCompleter answers every call with the same content.
type staticCompleter struct {
	content string
}

func (s staticCompleter) Complete(context.Context, llm.Request) (llm.RawCompletion, error) {
	return llm.RawCompletion{Content: s.content}, nil
}

func newTestHandler(t *testing.T, content string) http.Handler {
	t.Helper()
	v, err := insight.NewValidator(nil)
	require.NoError(t, err)
	orch := insight.NewOrchestrator(staticCompleter{content: content}, v, nil, time.Second, nil)
	return NewHandler(Deps{Orchestrator: orch})
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var decoded map[string]any
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	}
	return rr, decoded
}

func translationContent(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(map[string]any{"translatedText": "bonjour"})
	require.NoError(t, err)
	return string(b)
}

func TestHandleGenerate_UnknownKind(t *testing.T) {
	h := newTestHandler(t, "{}")

	rr, body := doJSON(t, h, http.MethodPost, "/insights/horoscope", `{"profile": {}}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "unknown insight kind", body["error"])
	assert.Contains(t, body["details"], "career_roadmap")
}

func TestHandleGenerate_MissingParameter(t *testing.T) {
	h := newTestHandler(t, "{}")

	rr, body := doJSON(t, h, http.MethodPost, "/insights/roi_analysis", `{"profile": {}, "parameters": {}}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "missing required parameter", body["error"])
	assert.Contains(t, body["details"], "targetCountry")
}

func TestHandleGenerate_InvalidBody(t *testing.T) {
	h := newTestHandler(t, "{}")

	rr, body := doJSON(t, h, http.MethodPost, "/insights/translation", `{"profile": `)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid request body", body["error"])
}

func TestHandleGenerate_Success(t *testing.T) {
	h := newTestHandler(t, translationContent(t))

	rr, body := doJSON(t, h, http.MethodPost, "/insights/translation",
		`{"parameters": {"text": "hello", "targetLang": "fr"}}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "bonjour", body["translatedText"])
	assert.Equal(t, "model", body["origin"])
	assert.Contains(t, body, "confidence")
	assert.Contains(t, body, "human_review_needed")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestHandleGenerate_KindIsCaseInsensitive(t *testing.T) {
	h := newTestHandler(t, translationContent(t))

	rr, _ := doJSON(t, h, http.MethodPost, "/insights/TRANSLATION",
		`{"parameters": {"text": "hello", "targetLang": "fr"}}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func roiContent(t *testing.T) string {
	t.Helper()
	path := func(p string) map[string]any {
		return map[string]any{
			"path":            p,
			"country":         "Germany",
			"total_cost":      18000,
			"duration_months": 24,
			"expected_salary": 52000,
		}
	}
	b, err := json.Marshal(map[string]any{
		"original":          path("Home-country degree"),
		"alternative":       path("MSc abroad"),
		"roi_percentage":    41.5,
		"break_even_months": 30,
		"starting_salary":   48000,
		"risk_score":        35,
		"analysis_text":     "The alternative pays back within three years.",
	})
	require.NoError(t, err)
	return string(b)
}

func TestHandleGenerate_ROIWithoutUserID(t *testing.T) {
	h := newTestHandler(t, roiContent(t))

	rr, body := doJSON(t, h, http.MethodPost, "/insights/roi_analysis",
		`{"profile": {"name": "Amina"}, "parameters": {"targetCountry": "Germany", "userBudget": 20000}}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "model", body["origin"])
	assert.Contains(t, body, "roi_percentage")
	assert.Contains(t, body, "analysis_text")
}

func TestRecordsEndpoints_WithoutDatabase(t *testing.T) {
	h := newTestHandler(t, "{}")

	rr, body := doJSON(t, h, http.MethodGet, "/insights/roi/records", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "persistence disabled", body["error"])

	rr, body = doJSON(t, h, http.MethodGet, "/insights/roi/export", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "persistence disabled", body["error"])
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(t, "{}")

	rr, body := doJSON(t, h, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["persistence"])
	assert.Len(t, body["kinds"], 6)
}

func TestRequestID_HonorsCallerHeader(t *testing.T) {
	h := newTestHandler(t, "{}")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-me-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "trace-me-123", rr.Header().Get("X-Request-ID"))
}
