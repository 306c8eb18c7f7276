package insight

import (
	"github.com/pathlight/insights-engine/constants"
)

// PromptBuilder renders the system/user message pair for one kind. The strict
// flag is set on the retry attempt after a validation failure.
type PromptBuilder func(p Profile, params map[string]any, strict bool) (system, user string, err error)

// Descriptor is everything the orchestrator needs to serve one insight kind.
// Adding a kind means adding a descriptor; the orchestrator stays kind-agnostic.
type Descriptor struct {
	Kind        constants.InsightKind
	BuildPrompt PromptBuilder
	Schema      map[string]any
	Fallback    func() map[string]any

	// RequiresPersistence marks kinds whose envelopes are written (best
	// effort) to durable storage.
	RequiresPersistence bool

	// Model call tuning. Model empty means the client default.
	Model       string
	Temperature float32
	MaxTokens   int

	// ConfidenceKey names the payload field where the model self-reports
	// confidence (0-100). Empty when the kind's schema has none.
	ConfidenceKey string

	// EnrichmentKeys are optional decorative field paths whose presence
	// raises the derived confidence when no trusted self-report exists.
	// Paths use dots; "[]" marks array traversal ("options[].reason").
	EnrichmentKeys []string

	// OptionalDefaults maps optional field paths to the value substituted
	// when the model omits them.
	OptionalDefaults map[string]any
}

// The registry is process-wide, read-only and initialized once at startup.
var registry = map[constants.InsightKind]Descriptor{
	constants.KindDashboardAnalysis: {
		Kind:          constants.KindDashboardAnalysis,
		BuildPrompt:   dashboardPrompt,
		Schema:        dashboardSchema(),
		Fallback:      dashboardFallback,
		Temperature:   0.4,
		MaxTokens:     1200,
		ConfidenceKey: "confidence_score",
		OptionalDefaults: map[string]any{
			"daily_intel.summary": "",
			"daily_intel.source":  "",
			"skill_gaps[].reason": "",
			"deadlines[].urgency": "medium",
		},
	},
	constants.KindCareerRoadmap: {
		Kind:           constants.KindCareerRoadmap,
		BuildPrompt:    roadmapPrompt,
		Schema:         roadmapSchema(),
		Fallback:       roadmapFallback,
		Temperature:    0.8, // creative breadth
		MaxTokens:      2000,
		EnrichmentKeys: []string{"roadmaps[].description", "roadmaps[].milestones[].skills"},
		OptionalDefaults: map[string]any{
			"roadmaps[].description":         "",
			"roadmaps[].milestones[].skills": []any{},
		},
	},
	constants.KindCareerRoadmapDetailed: {
		Kind:           constants.KindCareerRoadmapDetailed,
		BuildPrompt:    roadmapDetailedPrompt,
		Schema:         roadmapDetailedSchema(),
		Fallback:       roadmapDetailedFallback,
		Temperature:    0.8,
		MaxTokens:      2200,
		EnrichmentKeys: []string{"roadmaps[].description", "roadmaps[].milestones[].resources"},
		OptionalDefaults: map[string]any{
			"roadmaps[].description":            "",
			"roadmaps[].milestones[].resources": []any{},
		},
	},
	constants.KindCareerDiscovery: {
		Kind:           constants.KindCareerDiscovery,
		BuildPrompt:    discoveryPrompt,
		Schema:         discoverySchema(),
		Fallback:       discoveryFallback,
		Temperature:    0.7,
		MaxTokens:      1200,
		EnrichmentKeys: []string{"options[].reason"},
		OptionalDefaults: map[string]any{
			"options[].reason": "",
		},
	},
	constants.KindROIAnalysis: {
		Kind:                constants.KindROIAnalysis,
		BuildPrompt:         roiPrompt,
		Schema:              roiSchema(),
		Fallback:            roiFallback,
		RequiresPersistence: true,
		Temperature:         0.3,
		MaxTokens:           1000,
		EnrichmentKeys:      []string{"original.reason", "alternative.reason"},
		OptionalDefaults: map[string]any{
			"original.reason":    "",
			"alternative.reason": "",
		},
	},
	constants.KindTranslation: {
		Kind:        constants.KindTranslation,
		BuildPrompt: translationPrompt,
		Schema:      translationSchema(),
		Fallback:    translationFallback,
		Temperature: 0.0, // determinism over flair
		MaxTokens:   800,
	},
}

// Lookup resolves a kind's descriptor.
func Lookup(kind constants.InsightKind) (Descriptor, bool) {
	d, ok := registry[kind]
	return d, ok
}

// Descriptors returns every registered descriptor (test and startup use).
func Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(registry))
	for _, k := range constants.AllKinds() {
		if d, ok := registry[k]; ok {
			out = append(out, d)
		}
	}
	return out
}
