package insight

// Per-kind JSON Schemas (draft 2020-12 subset) as generic maps. They are
// embedded into prompts as structured-output constraints and compiled once at
// startup to validate every model response locally. Fallback payloads must
// validate against these too.

func dashboardSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"confidence_score":    scoreProp(),
			"human_review_needed": map[string]any{"type": "boolean"},
			"skill_gaps": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"skill":          map[string]any{"type": "string", "minLength": 1},
						"current_level":  levelProp(),
						"required_level": levelProp(),
						"priority":       map[string]any{"type": "string", "enum": []string{"low", "medium", "high"}},
						"reason":         map[string]any{"type": "string"},
					},
					"required": []string{"skill", "current_level", "required_level", "priority"},
				},
			},
			"deadlines": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"title":   map[string]any{"type": "string", "minLength": 1},
						"date":    map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
						"urgency": map[string]any{"type": "string", "enum": []string{"low", "medium", "high"}},
					},
					"required": []string{"title", "date"},
				},
			},
			"daily_intel": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"headline": map[string]any{"type": "string", "minLength": 1},
					"summary":  map[string]any{"type": "string"},
					"source":   map[string]any{"type": "string"},
				},
				"required": []string{"headline"},
			},
			"radar_analysis": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"axis":  map[string]any{"type": "string", "minLength": 1},
						"score": scoreProp(),
					},
					"required": []string{"axis", "score"},
				},
			},
		},
		"required": []string{
			"confidence_score", "human_review_needed", "skill_gaps",
			"deadlines", "daily_intel", "radar_analysis",
		},
	}
}

func roadmapSchema() map[string]any {
	return roadmapSetSchema(map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "minLength": 1},
			"duration": map[string]any{"type": "string", "minLength": 1},
			"xp":       map[string]any{"type": "number", "minimum": 0},
			"skills": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"title", "duration", "xp"},
	})
}

// roadmapDetailedSchema preserves the second, divergent milestone contract
// from the product's detailed roadmap endpoint. Both contracts stay live
// until the product owner confirms consolidation.
func roadmapDetailedSchema() map[string]any {
	return roadmapSetSchema(map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":       map[string]any{"type": "string", "minLength": 1},
			"timeline":   map[string]any{"type": "string", "minLength": 1},
			"difficulty": map[string]any{"type": "string", "enum": []string{"intro", "core", "advanced"}},
			"xp":         map[string]any{"type": "number", "minimum": 0},
			"resources": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"name", "timeline", "difficulty", "xp"},
	})
}

func roadmapSetSchema(milestone map[string]any) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"roadmaps": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"type":        map[string]any{"type": "string", "enum": []string{"safe", "balanced", "ambitious"}},
						"duration":    map[string]any{"type": "string", "minLength": 1},
						"total_xp":    map[string]any{"type": "number", "minimum": 0},
						"description": map[string]any{"type": "string"},
						"milestones": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items":    milestone,
						},
					},
					"required": []string{"type", "duration", "total_xp", "milestones"},
				},
			},
		},
		"required": []string{"roadmaps"},
	}
}

func discoverySchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"options": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"title":          map[string]any{"type": "string", "minLength": 1},
						"match_score":    scoreProp(),
						"reason":         map[string]any{"type": "string"},
						"market_outlook": map[string]any{"type": "string", "enum": []string{"declining", "stable", "growing", "booming"}},
					},
					"required": []string{"title", "match_score", "market_outlook"},
				},
			},
		},
		"required": []string{"options"},
	}
}

func roiSchema() map[string]any {
	pathProp := func() map[string]any {
		return map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"path":            map[string]any{"type": "string", "minLength": 1},
				"country":         map[string]any{"type": "string"},
				"total_cost":      map[string]any{"type": "number", "minimum": 0},
				"duration_months": map[string]any{"type": "number", "minimum": 0},
				"expected_salary": map[string]any{"type": "number", "minimum": 0},
				"reason":          map[string]any{"type": "string"},
			},
			"required": []string{"path", "country", "total_cost", "duration_months", "expected_salary"},
		}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"original":          pathProp(),
			"alternative":       pathProp(),
			"roi_percentage":    map[string]any{"type": "number"},
			"break_even_months": map[string]any{"type": "number", "minimum": 0},
			"starting_salary":   map[string]any{"type": "number", "minimum": 0},
			"risk_score":        scoreProp(),
			"analysis_text":     map[string]any{"type": "string"},
		},
		"required": []string{
			"original", "alternative", "roi_percentage",
			"break_even_months", "starting_salary", "risk_score", "analysis_text",
		},
	}
}

func translationSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"translatedText": map[string]any{"type": "string"},
		},
		"required": []string{"translatedText"},
	}
}

func scoreProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0}
}

func levelProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 10.0}
}
