package insight

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlight/insights-engine/constants"
	"github.com/pathlight/insights-engine/internal/common"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator(nil)
	require.NoError(t, err)
	return v
}

func marshalPayload(t *testing.T, payload map[string]any) []byte {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return b
}

// Every fallback must survive its own kind's validation: callers never branch
// on origin, so fallbacks and model payloads have to share one shape.
func TestFallbacks_ValidateAgainstOwnSchemas(t *testing.T) {
	v := newTestValidator(t)

	for _, desc := range Descriptors() {
		body := marshalPayload(t, desc.Fallback())
		vi, err := v.Validate(desc.Kind, body)
		require.NoError(t, err, "kind %s", desc.Kind)
		assert.Equal(t, desc.Kind, vi.Kind)
	}
}

func TestValidate_UnparsableBody(t *testing.T) {
	v := newTestValidator(t)

	for _, body := range []string{"", "not json at all", "[1, 2, 3]", "null"} {
		_, err := v.Validate(constants.KindDashboardAnalysis, []byte(body))
		require.Error(t, err, "body %q", body)
		assert.ErrorIs(t, err, common.ErrUnparsableResponse, "body %q", body)
	}
}

func TestValidate_StripsMarkdownFences(t *testing.T) {
	v := newTestValidator(t)

	fenced := "```json\n" + string(marshalPayload(t, translationFallback())) + "\n```"
	vi, err := v.Validate(constants.KindTranslation, []byte(fenced))
	require.NoError(t, err)
	assert.Equal(t, "", vi.Payload["translatedText"])
}

func TestValidate_ExtractsObjectFromProse(t *testing.T) {
	v := newTestValidator(t)

	body := "Here is your translation:\n" + `{"translatedText": "bonjour"}` + "\nHope that helps!"
	vi, err := v.Validate(constants.KindTranslation, []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "bonjour", vi.Payload["translatedText"])
}

func TestValidate_MissingRequiredFieldIsViolation(t *testing.T) {
	v := newTestValidator(t)

	doc := dashboardFallback()
	delete(doc, "skill_gaps")
	_, err := v.Validate(constants.KindDashboardAnalysis, marshalPayload(t, doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSchemaViolation)
}

func TestValidate_MistypedFieldIsViolation(t *testing.T) {
	v := newTestValidator(t)

	doc := dashboardFallback()
	doc["confidence_score"] = "very high"
	_, err := v.Validate(constants.KindDashboardAnalysis, marshalPayload(t, doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSchemaViolation)
}

func TestValidate_SelfReportedConfidenceBelowThresholdForcesReview(t *testing.T) {
	v := newTestValidator(t)

	doc := dashboardFallback()
	doc["confidence_score"] = 55
	doc["human_review_needed"] = false
	vi, err := v.Validate(constants.KindDashboardAnalysis, marshalPayload(t, doc))
	require.NoError(t, err)

	assert.Equal(t, 55, vi.Confidence)
	assert.True(t, vi.SelfReported)
	assert.True(t, vi.HumanReviewNeeded)
	// the payload copy of the flag is overridden too
	assert.Equal(t, true, vi.Payload["human_review_needed"])
}

func TestValidate_HighSelfReportedConfidenceSkipsReview(t *testing.T) {
	v := newTestValidator(t)

	doc := dashboardFallback()
	doc["confidence_score"] = 85
	doc["human_review_needed"] = false
	vi, err := v.Validate(constants.KindDashboardAnalysis, marshalPayload(t, doc))
	require.NoError(t, err)

	assert.Equal(t, 85, vi.Confidence)
	assert.False(t, vi.HumanReviewNeeded)
}

func TestValidate_DerivedConfidenceFromEnrichment(t *testing.T) {
	v := newTestValidator(t)

	// reasons present: full enrichment, but still capped below a free pass
	doc := discoveryFallback()
	for _, opt := range doc["options"].([]any) {
		opt.(map[string]any)["reason"] = "strong quantitative background"
	}
	vi, err := v.Validate(constants.KindCareerDiscovery, marshalPayload(t, doc))
	require.NoError(t, err)
	assert.Equal(t, 70, vi.Confidence)
	assert.False(t, vi.SelfReported)
	assert.True(t, vi.HumanReviewNeeded)

	// reasons absent: defaults fill the hole but don't count as enrichment
	bare := map[string]any{
		"options": []any{
			map[string]any{"title": "Software Developer", "match_score": 72, "market_outlook": "growing"},
		},
	}
	vi, err = v.Validate(constants.KindCareerDiscovery, marshalPayload(t, bare))
	require.NoError(t, err)
	assert.Equal(t, 20, vi.Confidence)
	assert.True(t, vi.HumanReviewNeeded)
	assert.Equal(t, "", vi.Payload["options"].([]any)[0].(map[string]any)["reason"])
}

func TestValidate_OptionalDefaultsApplied(t *testing.T) {
	v := newTestValidator(t)

	doc := roiFallback()
	delete(doc["original"].(map[string]any), "reason")
	delete(doc["alternative"].(map[string]any), "reason")
	vi, err := v.Validate(constants.KindROIAnalysis, marshalPayload(t, doc))
	require.NoError(t, err)

	assert.Equal(t, "", vi.Payload["original"].(map[string]any)["reason"])
	assert.Equal(t, "", vi.Payload["alternative"].(map[string]any)["reason"])
}

func TestDerivedConfidence_Cap(t *testing.T) {
	assert.Equal(t, 50, derivedConfidence(0, 0))
	assert.Equal(t, 20, derivedConfidence(0, 2))
	assert.Equal(t, 45, derivedConfidence(1, 2))
	assert.Equal(t, 70, derivedConfidence(2, 2))
	assert.Equal(t, 70, derivedConfidence(5, 2))
}

func TestEnvelopeBody_OverridesPayloadFlags(t *testing.T) {
	env := Envelope{
		Kind:   constants.KindDashboardAnalysis,
		Origin: constants.OriginModel,
		Payload: map[string]any{
			"human_review_needed": false,
			"skill_gaps":          []any{},
		},
		Confidence:        55,
		HumanReviewNeeded: true,
	}
	body := env.Body()

	assert.Equal(t, "model", body["origin"])
	assert.Equal(t, 55, body["confidence"])
	assert.Equal(t, true, body["human_review_needed"])
	assert.Contains(t, body, "skill_gaps")
}
