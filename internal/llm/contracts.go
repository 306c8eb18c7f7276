package llm

import (
	"context"
	"time"
)

// Request carries everything for a single completion call.
type Request struct {
	System      string
	User        string
	Model       string // empty means the client's default
	Temperature float32
	MaxTokens   int
	JSONMode    bool // ask the provider for a JSON-only response
}

// RawCompletion is the unparsed text returned by the model plus call metadata.
// It is ephemeral: discarded once the validator has classified it.
type RawCompletion struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	Elapsed          time.Duration
}

// Completer is the interface the insight pipeline depends on. Implementations
// must not retry internally; retry policy belongs to the orchestrator.
type Completer interface {
	Complete(ctx context.Context, req Request) (RawCompletion, error)
}
