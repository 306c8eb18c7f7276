package insight

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pathlight/insights-engine/constants"
	"github.com/pathlight/insights-engine/internal/common"
	"github.com/pathlight/insights-engine/internal/entity"
	"github.com/pathlight/insights-engine/internal/llm"
)

// RecordStore is the slice of persistence the orchestrator needs. Writes are
// best effort; a failing store never fails a request.
type RecordStore interface {
	SaveInsight(ctx context.Context, rec *entity.InsightRecord) (*entity.InsightRecord, error)
}

// Request is one generation request. Profile is the raw caller payload; the
// orchestrator normalizes it and never mutates the original.
type Request struct {
	Kind       constants.InsightKind
	Profile    map[string]any
	Parameters map[string]any
}

// Orchestrator drives a request through
// Building -> Calling -> Validating -> (one retry) -> Finalizing -> Done.
// It always terminates in a schema-conformant envelope; only MissingParameter,
// UnknownKind and UpstreamUnavailable surface as errors.
type Orchestrator struct {
	completer      llm.Completer
	validator      *Validator
	store          RecordStore // nil disables persistence
	logger         *slog.Logger
	persistTimeout time.Duration
}

func NewOrchestrator(completer llm.Completer, validator *Validator, store RecordStore, persistTimeout time.Duration, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if persistTimeout <= 0 {
		persistTimeout = 10 * time.Second
	}
	return &Orchestrator{
		completer:      completer,
		validator:      validator,
		store:          store,
		logger:         logger,
		persistTimeout: persistTimeout,
	}
}

func (o *Orchestrator) Generate(ctx context.Context, req Request) (Envelope, error) {
	desc, ok := Lookup(req.Kind)
	if !ok {
		return Envelope{}, common.UnknownKindError(string(req.Kind))
	}

	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()
	prof := NormalizeProfile(req.Profile)

	o.logger.Info("insight.generate.start",
		"req_id", rid, "kind", desc.Kind, "state", constants.StateBuilding,
	)

	system, user, err := desc.BuildPrompt(prof, req.Parameters, false)
	if err != nil {
		o.logger.Warn("insight.generate.bad_request", "req_id", rid, "kind", desc.Kind, "error", err)
		return Envelope{}, err
	}

	// No-op translation never spends a model call: translating into the
	// source language must return the input unchanged.
	if desc.Kind == constants.KindTranslation && isNoopTranslation(req.Parameters) {
		o.logger.Info("insight.generate.noop_translation", "req_id", rid)
		return Envelope{
			Kind:       desc.Kind,
			Origin:     constants.OriginModel,
			Payload:    map[string]any{"translatedText": paramString(req.Parameters, "text")},
			Confidence: 100,
		}, nil
	}

	lreq := llm.Request{
		System:      system,
		User:        user,
		Model:       desc.Model,
		Temperature: desc.Temperature,
		MaxTokens:   desc.MaxTokens,
		JSONMode:    true,
	}

	var (
		vi      *ValidatedInsight
		retried bool
	)
	for {
		o.logger.Info("insight.generate.call", "req_id", rid, "kind", desc.Kind, "state", constants.StateCalling, "retry", retried)
		raw, err := o.completer.Complete(ctx, lreq)
		if err != nil {
			if errors.Is(err, common.ErrUpstreamUnavailable) {
				// Configuration problem, not a model hiccup: surface it.
				return Envelope{}, err
			}
			if errors.Is(err, common.ErrUpstreamTimeout) && !retried {
				// Transient; one retry with the identical prompt.
				retried = true
				o.logger.Warn("insight.generate.retry_timeout", "req_id", rid, "kind", desc.Kind, "state", constants.StateRetrying)
				continue
			}
			// UpstreamError is likely deterministic (malformed request,
			// quota); retrying it would burn tokens for nothing.
			o.logger.Warn("insight.generate.upstream_failed", "req_id", rid, "kind", desc.Kind, "error", err)
			return o.finalize(rid, desc, req, o.fallbackEnvelope(desc), start), nil
		}

		o.logger.Info("insight.generate.validating", "req_id", rid, "kind", desc.Kind, "state", constants.StateValidating, "content_len", len(raw.Content))
		vi, err = o.validator.Validate(desc.Kind, []byte(raw.Content))
		if err == nil {
			break
		}
		if !retried {
			retried = true
			o.logger.Warn("insight.generate.retry_validation", "req_id", rid, "kind", desc.Kind, "state", constants.StateRetrying, "error", err)
			// Re-prompt with stricter formatting instructions. Parameters
			// were already validated, so a builder error here is impossible.
			if sys2, user2, berr := desc.BuildPrompt(prof, req.Parameters, true); berr == nil {
				lreq.System, lreq.User = sys2, user2
			}
			continue
		}
		o.logger.Warn("insight.generate.validation_exhausted", "req_id", rid, "kind", desc.Kind, "error", err)
		return o.finalize(rid, desc, req, o.fallbackEnvelope(desc), start), nil
	}

	env := Envelope{
		Kind:              desc.Kind,
		Origin:            constants.OriginModel,
		Payload:           vi.Payload,
		Confidence:        vi.Confidence,
		HumanReviewNeeded: vi.HumanReviewNeeded,
	}
	return o.finalize(rid, desc, req, env, start), nil
}

func (o *Orchestrator) fallbackEnvelope(desc Descriptor) Envelope {
	return Envelope{
		Kind:              desc.Kind,
		Origin:            constants.OriginFallback,
		Payload:           desc.Fallback(),
		Confidence:        0,
		HumanReviewNeeded: true,
	}
}

// finalize fires the best-effort persistence write and returns the envelope.
// The response does not wait for the write.
func (o *Orchestrator) finalize(rid string, desc Descriptor, req Request, env Envelope, start time.Time) Envelope {
	o.logger.Debug("insight.generate.finalizing",
		"req_id", rid, "kind", desc.Kind, "state", constants.StateFinalizing,
		"persist", desc.RequiresPersistence && o.store != nil,
	)
	o.logger.Info("insight.generate.done",
		"req_id", rid, "kind", desc.Kind, "state", constants.StateDone,
		"origin", env.Origin, "confidence", env.Confidence,
		"human_review_needed", env.HumanReviewNeeded,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if !desc.RequiresPersistence || o.store == nil {
		return env
	}

	rec := &entity.InsightRecord{
		ID:            uuid.New(),
		UserID:        optionalUserID(req.Parameters),
		Kind:          string(desc.Kind),
		RequestParams: req.Parameters,
		Payload:       env.Payload,
		Origin:        string(env.Origin),
		Confidence:    env.Confidence,
		CreatedAt:     time.Now().UTC(),
	}
	go o.persist(rid, rec)
	return env
}

func (o *Orchestrator) persist(rid string, rec *entity.InsightRecord) {
	// Detached from the request context: the caller may already have its
	// response by the time this write starts.
	ctx, cancel := context.WithTimeout(context.Background(), o.persistTimeout)
	defer cancel()

	if _, err := o.store.SaveInsight(ctx, rec); err != nil {
		o.logger.Error("insight.persist.failed",
			"req_id", rid, "kind", rec.Kind, "record_id", rec.ID,
			"error", common.WrapError(err, "save insight"),
		)
		return
	}
	o.logger.Info("insight.persist.ok", "req_id", rid, "kind", rec.Kind, "record_id", rec.ID)
}

func isNoopTranslation(params map[string]any) bool {
	target := paramString(params, "targetLang")
	source := paramString(params, "sourceLang")
	if source == "" {
		source = "en" // product copy is authored in English
	}
	return strings.EqualFold(target, source)
}

func optionalUserID(params map[string]any) *string {
	if id := paramString(params, "userId"); id != "" {
		return &id
	}
	return nil
}
