package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlight/insights-engine/internal/common"
)

func TestPromptBuilders_EmbedSchemaAndRules(t *testing.T) {
	p := NormalizeProfile(map[string]any{"name": "Jo", "skills": []any{"go"}})

	for _, desc := range Descriptors() {
		params := map[string]any{
			"targetCountry": "Germany",
			"userBudget":    20000.0,
			"text":          "hello",
			"targetLang":    "fr",
		}
		system, user, err := desc.BuildPrompt(p, params, false)
		require.NoError(t, err, "kind %s", desc.Kind)

		assert.Contains(t, system, "JSON Schema:", "kind %s", desc.Kind)
		assert.Contains(t, system, formattingRules, "kind %s", desc.Kind)
		assert.NotContains(t, system, strictFormattingRules, "kind %s", desc.Kind)
		assert.NotEmpty(t, user, "kind %s", desc.Kind)
	}
}

func TestPromptBuilders_StrictRetryAddsRules(t *testing.T) {
	p := NormalizeProfile(nil)
	system, _, err := dashboardPrompt(p, nil, true)
	require.NoError(t, err)
	assert.Contains(t, system, strictFormattingRules)
}

func TestPromptBuilders_Deterministic(t *testing.T) {
	p := NormalizeProfile(map[string]any{"name": "Jo", "marks": map[string]any{"math": 90.0}})
	s1, u1, err := discoveryPrompt(p, nil, false)
	require.NoError(t, err)
	s2, u2, err := discoveryPrompt(p, nil, false)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Equal(t, u1, u2)
}

func TestRoiPrompt_RequiresCountryAndBudget(t *testing.T) {
	p := NormalizeProfile(nil)

	_, _, err := roiPrompt(p, map[string]any{"userBudget": 10000.0}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingParameter)
	assert.Contains(t, err.Error(), "targetCountry")

	_, _, err = roiPrompt(p, nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingParameter)

	system, _, err := roiPrompt(p, map[string]any{"targetCountry": "Germany", "userBudget": 20000.0}, false)
	require.NoError(t, err)
	assert.Contains(t, system, "Germany")
	assert.Contains(t, system, "20000")
}

func TestTranslationPrompt_RequiresTextAndTargetLang(t *testing.T) {
	p := NormalizeProfile(nil)

	_, _, err := translationPrompt(p, map[string]any{"text": "hello"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingParameter)
	assert.Contains(t, err.Error(), "targetLang")

	system, user, err := translationPrompt(p, map[string]any{"text": "hello", "targetLang": "de"}, false)
	require.NoError(t, err)
	assert.Contains(t, system, "'de'")
	assert.True(t, strings.Contains(user, "hello"))
}

func TestRoadmapPrompt_SelectedPathFocus(t *testing.T) {
	p := NormalizeProfile(nil)
	system, user, err := roadmapPrompt(p, map[string]any{"selectedPath": "Data Science"}, false)
	require.NoError(t, err)
	assert.Contains(t, system, "Data Science")
	assert.Contains(t, user, "selected_path")
}
