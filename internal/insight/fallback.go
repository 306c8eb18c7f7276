package insight

// Static fallback payloads, one per kind. Each must validate against its
// kind's schema: callers never branch on model failure, so a fallback has to
// be indistinguishable in shape from a model result. Values are deliberately
// neutral placeholders; the envelope around them carries confidence 0 and the
// human-review flag.

func dashboardFallback() map[string]any {
	return map[string]any{
		"confidence_score":    0,
		"human_review_needed": true,
		"skill_gaps": []any{
			map[string]any{
				"skill":          "Core academics",
				"current_level":  3,
				"required_level": 7,
				"priority":       "medium",
				"reason":         "",
			},
		},
		"deadlines": []any{},
		"daily_intel": map[string]any{
			"headline": "Personalized analysis is temporarily unavailable",
			"summary":  "A counselor should review this profile manually.",
			"source":   "",
		},
		"radar_analysis": []any{
			map[string]any{"axis": "Academics", "score": 50},
			map[string]any{"axis": "Technical", "score": 50},
			map[string]any{"axis": "Communication", "score": 50},
			map[string]any{"axis": "Leadership", "score": 50},
			map[string]any{"axis": "Creativity", "score": 50},
			map[string]any{"axis": "Discipline", "score": 50},
		},
	}
}

// Milestone XP sums to total_xp so the placeholder stays internally
// consistent with the UI's progress math.
func roadmapFallback() map[string]any {
	return map[string]any{
		"roadmaps": []any{
			map[string]any{
				"type":        "balanced",
				"duration":    "12 months",
				"total_xp":    300,
				"description": "",
				"milestones": []any{
					map[string]any{"title": "Build foundations", "duration": "4 months", "xp": 100, "skills": []any{}},
					map[string]any{"title": "Apply skills on a project", "duration": "4 months", "xp": 100, "skills": []any{}},
					map[string]any{"title": "Prepare for applications", "duration": "4 months", "xp": 100, "skills": []any{}},
				},
			},
		},
	}
}

func roadmapDetailedFallback() map[string]any {
	return map[string]any{
		"roadmaps": []any{
			map[string]any{
				"type":        "balanced",
				"duration":    "12 months",
				"total_xp":    300,
				"description": "",
				"milestones": []any{
					map[string]any{"name": "Build foundations", "timeline": "Months 1-4", "difficulty": "intro", "xp": 100, "resources": []any{}},
					map[string]any{"name": "Apply skills on a project", "timeline": "Months 5-8", "difficulty": "core", "xp": 100, "resources": []any{}},
					map[string]any{"name": "Prepare for applications", "timeline": "Months 9-12", "difficulty": "advanced", "xp": 100, "resources": []any{}},
				},
			},
		},
	}
}

func discoveryFallback() map[string]any {
	return map[string]any{
		"options": []any{
			map[string]any{"title": "Software Developer", "match_score": 50, "reason": "", "market_outlook": "growing"},
			map[string]any{"title": "Data Analyst", "match_score": 50, "reason": "", "market_outlook": "stable"},
			map[string]any{"title": "Business Associate", "match_score": 50, "reason": "", "market_outlook": "stable"},
		},
	}
}

func roiFallback() map[string]any {
	return map[string]any{
		"original": map[string]any{
			"path":            "Home-country degree",
			"country":         "",
			"total_cost":      0,
			"duration_months": 48,
			"expected_salary": 0,
			"reason":          "",
		},
		"alternative": map[string]any{
			"path":            "Study abroad",
			"country":         "",
			"total_cost":      0,
			"duration_months": 24,
			"expected_salary": 0,
			"reason":          "",
		},
		"roi_percentage":    0,
		"break_even_months": 0,
		"starting_salary":   0,
		"risk_score":        50,
		"analysis_text":     "Automated analysis was unavailable. Figures are placeholders pending manual review.",
	}
}

func translationFallback() map[string]any {
	return map[string]any{"translatedText": ""}
}
