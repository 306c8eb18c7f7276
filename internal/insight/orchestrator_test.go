package insight

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlight/insights-engine/constants"
	"github.com/pathlight/insights-engine/internal/common"
	"github.com/pathlight/insights-engine/internal/entity"
	"github.com/pathlight/insights-engine/internal/llm"
)

type completion struct {
	content string
	err     error
}

// scriptedCompleter replays a fixed sequence of completions and records every
// request it saw.
type scriptedCompleter struct {
	mu       sync.Mutex
	script   []completion
	requests []llm.Request
}

func (s *scriptedCompleter) Complete(_ context.Context, req llm.Request) (llm.RawCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if len(s.script) == 0 {
		return llm.RawCompletion{}, common.NewAppError("UPSTREAM_ERROR", "script exhausted", common.ErrUpstreamError)
	}
	next := s.script[0]
	s.script = s.script[1:]
	if next.err != nil {
		return llm.RawCompletion{}, next.err
	}
	return llm.RawCompletion{Content: next.content}, nil
}

func (s *scriptedCompleter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *scriptedCompleter) request(i int) llm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[i]
}

type captureStore struct {
	saved chan *entity.InsightRecord
}

func newCaptureStore() *captureStore {
	return &captureStore{saved: make(chan *entity.InsightRecord, 4)}
}

func (c *captureStore) SaveInsight(_ context.Context, rec *entity.InsightRecord) (*entity.InsightRecord, error) {
	c.saved <- rec
	return rec, nil
}

func newTestOrchestrator(t *testing.T, completer llm.Completer, store RecordStore) *Orchestrator {
	t.Helper()
	v, err := NewValidator(nil)
	require.NoError(t, err)
	return NewOrchestrator(completer, v, store, time.Second, nil)
}

func validBody(t *testing.T, payload map[string]any) string {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(b)
}

func timeoutErr() error {
	return common.NewAppError("UPSTREAM_TIMEOUT", "completion call timed out", common.ErrUpstreamTimeout)
}

func TestGenerate_TwoInvalidResponsesFallBack(t *testing.T) {
	sc := &scriptedCompleter{script: []completion{
		{content: "this is not json"},
		{content: "still not json"},
	}}
	orch := newTestOrchestrator(t, sc, nil)

	env, err := orch.Generate(context.Background(), Request{Kind: constants.KindDashboardAnalysis})
	require.NoError(t, err)

	assert.Equal(t, 2, sc.callCount())
	assert.Equal(t, constants.OriginFallback, env.Origin)
	assert.Equal(t, 0, env.Confidence)
	assert.True(t, env.HumanReviewNeeded)
	assert.Contains(t, env.Payload, "skill_gaps")
}

func TestGenerate_ValidationRetryUsesStrictPrompt(t *testing.T) {
	doc := dashboardFallback()
	doc["confidence_score"] = 90
	sc := &scriptedCompleter{script: []completion{
		{content: "garbage"},
		{content: validBody(t, doc)},
	}}
	orch := newTestOrchestrator(t, sc, nil)

	env, err := orch.Generate(context.Background(), Request{Kind: constants.KindDashboardAnalysis})
	require.NoError(t, err)

	require.Equal(t, 2, sc.callCount())
	assert.NotContains(t, sc.request(0).System, strictFormattingRules)
	assert.Contains(t, sc.request(1).System, strictFormattingRules)

	assert.Equal(t, constants.OriginModel, env.Origin)
	assert.Equal(t, 90, env.Confidence)
	assert.False(t, env.HumanReviewNeeded)
}

func TestGenerate_TimeoutRetriesWithSamePrompt(t *testing.T) {
	doc := dashboardFallback()
	doc["confidence_score"] = 80
	sc := &scriptedCompleter{script: []completion{
		{err: timeoutErr()},
		{content: validBody(t, doc)},
	}}
	orch := newTestOrchestrator(t, sc, nil)

	env, err := orch.Generate(context.Background(), Request{Kind: constants.KindDashboardAnalysis})
	require.NoError(t, err)

	require.Equal(t, 2, sc.callCount())
	assert.Equal(t, sc.request(0).System, sc.request(1).System)
	assert.Equal(t, sc.request(0).User, sc.request(1).User)
	assert.Equal(t, constants.OriginModel, env.Origin)
}

func TestGenerate_SecondTimeoutFallsBack(t *testing.T) {
	sc := &scriptedCompleter{script: []completion{
		{err: timeoutErr()},
		{err: timeoutErr()},
	}}
	orch := newTestOrchestrator(t, sc, nil)

	env, err := orch.Generate(context.Background(), Request{Kind: constants.KindCareerDiscovery})
	require.NoError(t, err)

	assert.Equal(t, 2, sc.callCount())
	assert.Equal(t, constants.OriginFallback, env.Origin)
}

func TestGenerate_UpstreamErrorNeverRetries(t *testing.T) {
	sc := &scriptedCompleter{script: []completion{
		{err: common.NewAppError("UPSTREAM_ERROR", "provider call failed (status 500)", common.ErrUpstreamError)},
	}}
	orch := newTestOrchestrator(t, sc, nil)

	env, err := orch.Generate(context.Background(), Request{Kind: constants.KindCareerDiscovery})
	require.NoError(t, err)

	assert.Equal(t, 1, sc.callCount())
	assert.Equal(t, constants.OriginFallback, env.Origin)
	assert.True(t, env.HumanReviewNeeded)
}

func TestGenerate_UpstreamUnavailableSurfaces(t *testing.T) {
	sc := &scriptedCompleter{script: []completion{
		{err: common.NewAppError("UPSTREAM_UNAVAILABLE", "no API credential configured", common.ErrUpstreamUnavailable)},
	}}
	orch := newTestOrchestrator(t, sc, nil)

	_, err := orch.Generate(context.Background(), Request{Kind: constants.KindDashboardAnalysis})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)
	assert.Equal(t, 1, sc.callCount())
}

func TestGenerate_UnknownKind(t *testing.T) {
	sc := &scriptedCompleter{}
	orch := newTestOrchestrator(t, sc, nil)

	_, err := orch.Generate(context.Background(), Request{Kind: constants.InsightKind("horoscope")})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownKind)
	assert.Equal(t, 0, sc.callCount())
}

func TestGenerate_MissingParameterSkipsModelCall(t *testing.T) {
	sc := &scriptedCompleter{}
	orch := newTestOrchestrator(t, sc, nil)

	_, err := orch.Generate(context.Background(), Request{Kind: constants.KindROIAnalysis})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingParameter)
	assert.Equal(t, 0, sc.callCount())
}

func TestGenerate_NoopTranslationShortCircuits(t *testing.T) {
	sc := &scriptedCompleter{}
	orch := newTestOrchestrator(t, sc, nil)

	env, err := orch.Generate(context.Background(), Request{
		Kind: constants.KindTranslation,
		Parameters: map[string]any{
			"text":       "Hello there",
			"targetLang": "EN",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, sc.callCount())
	assert.Equal(t, constants.OriginModel, env.Origin)
	assert.Equal(t, 100, env.Confidence)
	assert.False(t, env.HumanReviewNeeded)
	assert.Equal(t, "Hello there", env.Payload["translatedText"])
}

func TestGenerate_NoopTranslationStillValidatesParams(t *testing.T) {
	sc := &scriptedCompleter{}
	orch := newTestOrchestrator(t, sc, nil)

	_, err := orch.Generate(context.Background(), Request{
		Kind:       constants.KindTranslation,
		Parameters: map[string]any{"targetLang": "en"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingParameter)
	assert.Equal(t, 0, sc.callCount())
}

func TestGenerate_ROIPersistsRecord(t *testing.T) {
	sc := &scriptedCompleter{script: []completion{
		{content: validBody(t, roiFallback())},
	}}
	store := newCaptureStore()
	orch := newTestOrchestrator(t, sc, store)

	params := map[string]any{
		"targetCountry": "Germany",
		"userBudget":    "20000",
		"userId":        "user-7",
	}
	env, err := orch.Generate(context.Background(), Request{
		Kind:       constants.KindROIAnalysis,
		Parameters: params,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.OriginModel, env.Origin)

	select {
	case rec := <-store.saved:
		assert.Equal(t, string(constants.KindROIAnalysis), rec.Kind)
		assert.Equal(t, string(constants.OriginModel), rec.Origin)
		require.NotNil(t, rec.UserID)
		assert.Equal(t, "user-7", *rec.UserID)
		assert.Equal(t, params, rec.RequestParams)
		assert.Equal(t, env.Confidence, rec.Confidence)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a persisted record")
	}
}

func TestGenerate_ROIFallbackPersistsToo(t *testing.T) {
	sc := &scriptedCompleter{script: []completion{
		{content: "broken"},
		{content: "broken again"},
	}}
	store := newCaptureStore()
	orch := newTestOrchestrator(t, sc, store)

	env, err := orch.Generate(context.Background(), Request{
		Kind:       constants.KindROIAnalysis,
		Parameters: map[string]any{"targetCountry": "Germany", "userBudget": "20000"},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.OriginFallback, env.Origin)

	select {
	case rec := <-store.saved:
		assert.Equal(t, string(constants.OriginFallback), rec.Origin)
		assert.Equal(t, 0, rec.Confidence)
		assert.Nil(t, rec.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a persisted fallback record")
	}
}

func TestGenerate_NonROIKindsDoNotPersist(t *testing.T) {
	doc := dashboardFallback()
	doc["confidence_score"] = 90
	sc := &scriptedCompleter{script: []completion{
		{content: validBody(t, doc)},
	}}
	store := newCaptureStore()
	orch := newTestOrchestrator(t, sc, store)

	_, err := orch.Generate(context.Background(), Request{Kind: constants.KindDashboardAnalysis})
	require.NoError(t, err)
	assert.Empty(t, store.saved)
}

func TestGenerate_ProfileFlowsIntoPrompt(t *testing.T) {
	doc := discoveryFallback()
	sc := &scriptedCompleter{script: []completion{
		{content: validBody(t, doc)},
	}}
	orch := newTestOrchestrator(t, sc, nil)

	_, err := orch.Generate(context.Background(), Request{
		Kind:    constants.KindCareerDiscovery,
		Profile: map[string]any{"name": "Amina", "skills": []any{"python"}},
	})
	require.NoError(t, err)

	require.Equal(t, 1, sc.callCount())
	user := sc.request(0).User
	assert.True(t, strings.Contains(user, "Amina"))
	assert.True(t, strings.Contains(user, "python"))
}
