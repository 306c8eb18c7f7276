package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlight/insights-engine/internal/common"
	"github.com/pathlight/insights-engine/internal/llm"
)

func chatResponse(content string) map[string]any {
	return map[string]any{
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
		"usage": map[string]any{
			"prompt_tokens":     120,
			"completion_tokens": 40,
		},
	}
}

func TestComplete_Success(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatResponse(`{"translatedText": "hola"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
	out, err := c.Complete(context.Background(), llm.Request{
		System:    "translate",
		User:      "hello",
		MaxTokens: 800,
		JSONMode:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, `{"translatedText": "hola"}`, out.Content)
	assert.Equal(t, "gpt-4o-mini", out.Model)
	assert.Equal(t, 120, out.PromptTokens)
	assert.Equal(t, 40, out.CompletionTokens)

	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, gotBody["response_format"])
	assert.Equal(t, 800.0, gotBody["max_tokens"])
}

func TestComplete_MissingAPIKeyIsUnavailable(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	c := NewClient(Config{BaseURL: "http://localhost:1"}, nil)
	_, err := c.Complete(context.Background(), llm.Request{System: "s", User: "u"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)
}

func TestComplete_ServerErrorIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "overloaded"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
	_, err := c.Complete(context.Background(), llm.Request{System: "s", User: "u"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpstreamError)
}

func TestComplete_EmptyChoicesIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"model": "gpt-4o-mini", "choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
	_, err := c.Complete(context.Background(), llm.Request{System: "s", User: "u"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpstreamError)
}

func TestComplete_SlowProviderIsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(chatResponse("{}"))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
	_, err := c.Complete(context.Background(), llm.Request{System: "s", User: "u"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpstreamTimeout)
}
