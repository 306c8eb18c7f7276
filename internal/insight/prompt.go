package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pathlight/insights-engine/internal/common"
)

// Prompt builders are pure: given the same profile, parameters and strict
// flag they always render the same system/user message pair. Each system
// message embeds the exact target JSON shape; this is the one place caller
// input is validated before spending a model call.

const formattingRules = "Return ONLY a single valid JSON object that matches the provided JSON Schema. " +
	"No markdown, no code fences, no prose before or after the JSON. " +
	"Never output null. If an optional field is unknown, omit it."

const strictFormattingRules = "Your previous reply was not valid against the schema. " +
	"Respond again with EXACTLY one JSON object and nothing else: no markdown fences, no commentary, " +
	"no trailing text, every required field present with the declared type."

func dashboardPrompt(p Profile, params map[string]any, strict bool) (string, string, error) {
	parts := []string{
		"You are a career counselor analyzing a student's profile for a progress dashboard.",
		"Grade skill levels on a 0-10 scale and radar axes on a 0-100 scale.",
		"Report your own certainty in 'confidence_score' (0-100) and set 'human_review_needed' honestly.",
		"Include at least one skill gap and at least four radar axes.",
		"Deadlines must use ISO-8601 dates (YYYY-MM-DD); return an empty array if none apply.",
	}
	return renderSystem(parts, dashboardSchema(), strict), renderUser("Student profile:", p, nil), nil
}

func roadmapPrompt(p Profile, params map[string]any, strict bool) (string, string, error) {
	parts := []string{
		"You are a career planner generating XP-gamified career roadmaps for a student.",
		"Produce one roadmap per pace: 'safe', 'balanced' and 'ambitious' where sensible.",
		"Each milestone carries an 'xp' reward; the roadmap's 'total_xp' MUST equal the sum of its milestone xp values.",
		"Durations are human-readable strings such as '6 months'.",
	}
	extra := map[string]any{}
	if sel := paramString(params, "selectedPath"); sel != "" {
		parts = append(parts, "Focus every roadmap on the career path: "+sel+".")
		extra["selected_path"] = sel
	}
	return renderSystem(parts, roadmapSchema(), strict), renderUser("Student profile:", p, extra), nil
}

func roadmapDetailedPrompt(p Profile, params map[string]any, strict bool) (string, string, error) {
	parts := []string{
		"You are a career planner generating detailed, resource-backed career roadmaps for a student.",
		"Produce one roadmap per pace: 'safe', 'balanced' and 'ambitious' where sensible.",
		"Each milestone names a 'difficulty' of intro, core or advanced and lists concrete learning resources.",
		"The roadmap's 'total_xp' MUST equal the sum of its milestone xp values.",
	}
	extra := map[string]any{}
	if sel := paramString(params, "selectedPath"); sel != "" {
		parts = append(parts, "Focus every roadmap on the career path: "+sel+".")
		extra["selected_path"] = sel
	}
	return renderSystem(parts, roadmapDetailedSchema(), strict), renderUser("Student profile:", p, extra), nil
}

func discoveryPrompt(p Profile, params map[string]any, strict bool) (string, string, error) {
	parts := []string{
		"You are a career counselor proposing career options matched to a student's profile.",
		"Score each option's fit in 'match_score' (0-100) and judge 'market_outlook' over the next five years.",
		"Propose between three and six options, ordered best match first.",
	}
	return renderSystem(parts, discoverySchema(), strict), renderUser("Student profile:", p, nil), nil
}

func roiPrompt(p Profile, params map[string]any, strict bool) (string, string, error) {
	if err := requireParams(params, "targetCountry", "userBudget"); err != nil {
		return "", "", err
	}
	country := paramString(params, "targetCountry")
	budget := paramString(params, "userBudget")

	parts := []string{
		"You are a financial analyst comparing a student's home-country education path ('original') against studying in " + country + " ('alternative').",
		"All monetary values are in USD. 'roi_percentage' compares lifetime value of the alternative against the original.",
		"'risk_score' (0-100) reflects visa, cost and employability risk of the alternative path.",
		"Stay within the student's stated budget of " + budget + " USD when costing the alternative; flag overruns in 'analysis_text'.",
	}
	extra := map[string]any{
		"target_country": country,
		"budget_usd":     budget,
	}
	return renderSystem(parts, roiSchema(), strict), renderUser("Student profile:", p, extra), nil
}

func translationPrompt(_ Profile, params map[string]any, strict bool) (string, string, error) {
	if err := requireParams(params, "text", "targetLang"); err != nil {
		return "", "", err
	}
	lang := paramString(params, "targetLang")

	parts := []string{
		"You are a translator for a student-facing product. Translate the given text into the language with ISO 639-1 code '" + lang + "'.",
		"Preserve meaning, tone and any placeholders exactly. Do not add explanations.",
	}
	user := "Text to translate:\n" + paramString(params, "text")
	return renderSystem(parts, translationSchema(), strict), user, nil
}

func renderSystem(parts []string, schema map[string]any, strict bool) string {
	parts = append(parts, formattingRules)
	if strict {
		parts = append(parts, strictFormattingRules)
	}
	return strings.Join(parts, " ") + "\n\nJSON Schema:\n" + mustJSON(schema)
}

func renderUser(heading string, p Profile, extra map[string]any) string {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(mustJSON(p.document()))
	if len(extra) > 0 {
		b.WriteString("\n\nRequest parameters:\n")
		b.WriteString(mustJSON(extra))
	}
	return b.String()
}

// requireParams rejects before any model call when a kind-required parameter
// is absent (a client error, not an upstream one).
func requireParams(params map[string]any, names ...string) error {
	v := common.NewValidator()
	for _, name := range names {
		v.Field(name, params[name], common.Required)
	}
	if v.HasErrors() {
		return common.MissingParameterError(strings.Join(v.Fields(), ", "))
	}
	return nil
}

func paramString(params map[string]any, key string) string {
	if params == nil {
		return ""
	}
	if s, ok := coerceString(params[key]); ok {
		return s
	}
	return ""
}

func mustJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
