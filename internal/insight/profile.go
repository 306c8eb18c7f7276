package insight

import (
	"fmt"
	"strconv"
	"strings"
)

// Profile is the canonical internal shape of a caller-supplied profile
// payload. Every attribute is optional; absence is a legitimate state.
type Profile struct {
	Name          string
	Education     string
	Marks         map[string]float64
	Skills        []string
	Interests     []string
	Strengths     []string
	Weaknesses    []string
	TargetCountry string
	Budget        float64
	CareerGoal    string
}

// NormalizeProfile coerces an arbitrary JSON object into a Profile. It never
// fails: unknown keys are ignored and malformed values degrade to zero values,
// because downstream prompt rendering must always succeed.
func NormalizeProfile(raw map[string]any) Profile {
	p := Profile{
		Marks:      map[string]float64{},
		Skills:     []string{},
		Interests:  []string{},
		Strengths:  []string{},
		Weaknesses: []string{},
	}
	if raw == nil {
		return p
	}

	p.Name = firstString(raw, "name", "fullName", "full_name")
	p.Education = firstString(raw, "education", "academicLevel", "academic_level", "grade")
	p.TargetCountry = firstString(raw, "targetCountry", "target_country", "country")
	p.CareerGoal = firstString(raw, "careerGoal", "career_goal", "goal")
	p.Budget = firstFloat(raw, "budget", "userBudget", "user_budget")

	p.Skills = firstStringSlice(raw, "skills")
	p.Interests = firstStringSlice(raw, "interests")
	p.Strengths = firstStringSlice(raw, "strengths")
	p.Weaknesses = firstStringSlice(raw, "weaknesses")

	if m, ok := raw["marks"].(map[string]any); ok {
		for subject, v := range m {
			if f, ok := coerceFloat(v); ok {
				p.Marks[subject] = f
			}
		}
	}
	return p
}

// document renders the non-empty profile attributes as a plain map suitable
// for embedding into a user prompt as JSON.
func (p Profile) document() map[string]any {
	doc := map[string]any{}
	set := func(key, val string) {
		if strings.TrimSpace(val) != "" {
			doc[key] = val
		}
	}
	set("name", p.Name)
	set("education", p.Education)
	set("target_country", p.TargetCountry)
	set("career_goal", p.CareerGoal)
	if p.Budget > 0 {
		doc["budget"] = p.Budget
	}
	if len(p.Marks) > 0 {
		doc["marks"] = p.Marks
	}
	if len(p.Skills) > 0 {
		doc["skills"] = p.Skills
	}
	if len(p.Interests) > 0 {
		doc["interests"] = p.Interests
	}
	if len(p.Strengths) > 0 {
		doc["strengths"] = p.Strengths
	}
	if len(p.Weaknesses) > 0 {
		doc["weaknesses"] = p.Weaknesses
	}
	return doc
}

func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s, ok := coerceString(v); ok {
				return s
			}
		}
	}
	return ""
}

func firstFloat(raw map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if f, ok := coerceFloat(v); ok {
				return f
			}
		}
	}
	return 0
}

func firstStringSlice(raw map[string]any, keys ...string) []string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case []any:
			out := make([]string, 0, len(t))
			for _, item := range t {
				if s, ok := coerceString(item); ok && s != "" {
					out = append(out, s)
				}
			}
			return out
		case string:
			// tolerate comma-separated strings from sloppy clients
			parts := strings.Split(t, ",")
			out := make([]string, 0, len(parts))
			for _, part := range parts {
				if s := strings.TrimSpace(part); s != "" {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return []string{}
}

func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return fmt.Sprintf("%t", t), true
	default:
		return "", false
	}
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
