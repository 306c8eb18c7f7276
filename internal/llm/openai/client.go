package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pathlight/insights-engine/internal/common"
	"github.com/pathlight/insights-engine/internal/llm"
)

// Complete implements llm.Completer against a chat/completions endpoint with
// bearer-token auth. No retries happen here; the orchestrator owns that.
func (c *Client) Complete(ctx context.Context, req llm.Request) (llm.RawCompletion, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return llm.RawCompletion{}, common.NewAppError(
			"UPSTREAM_UNAVAILABLE",
			"no API credential configured; set OPENAI_API_KEY",
			common.ErrUpstreamUnavailable,
		)
	}

	rid := uuid.New().String()
	start := time.Now()

	model := req.Model
	if model == "" {
		model = c.cfg.Model
	}

	c.logger.Info("llm.complete.start",
		"req_id", rid,
		"model", model,
		"temp", req.Temperature,
		"max_tokens", req.MaxTokens,
		"json_mode", req.JSONMode,
		"system_len", len(req.System),
		"user_len", len(req.User),
	)

	body := map[string]any{
		"model":       model,
		"temperature": req.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": req.System},
			{"role": "user", "content": req.User},
		},
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}
	if req.JSONMode {
		body["response_format"] = map[string]any{"type": "json_object"}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, status, err := llm.SendJSON(callCtx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		if isTimeout(err) {
			c.logger.Error("llm.complete.timeout", "req_id", rid, "elapsed_ms", time.Since(start).Milliseconds())
			return llm.RawCompletion{}, common.NewAppError("UPSTREAM_TIMEOUT", "completion call timed out", common.ErrUpstreamTimeout)
		}
		c.logger.Error("llm.complete.upstream_error",
			"req_id", rid, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawCompletion{}, common.NewAppError("UPSTREAM_ERROR", fmt.Sprintf("provider call failed (status %d)", status), common.ErrUpstreamError)
	}

	var cc struct {
		Model   string `json:"model"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.complete.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return llm.RawCompletion{}, common.NewAppError("UPSTREAM_ERROR", "undecodable provider response", common.ErrUpstreamError)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.complete.no_choices", "req_id", rid, "raw_bytes", len(raw))
		return llm.RawCompletion{}, common.NewAppError("UPSTREAM_ERROR", "no choices in provider response", common.ErrUpstreamError)
	}

	out := llm.RawCompletion{
		Content:          strings.TrimSpace(cc.Choices[0].Message.Content),
		Model:            cc.Model,
		PromptTokens:     cc.Usage.PromptTokens,
		CompletionTokens: cc.Usage.CompletionTokens,
		Elapsed:          time.Since(start),
	}

	c.logger.Info("llm.complete.ok",
		"req_id", rid,
		"model", out.Model,
		"content_len", len(out.Content),
		"prompt_tokens", out.PromptTokens,
		"completion_tokens", out.CompletionTokens,
		"elapsed_ms", out.Elapsed.Milliseconds(),
	)
	return out, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
