package constants

import "strings"

// InsightKind is the canonical identifier for an AI-generated artifact type.
type InsightKind string

// Stable values (used in URLs and stored in DB rows).
const (
	KindDashboardAnalysis     InsightKind = "dashboard_analysis"
	KindCareerRoadmap         InsightKind = "career_roadmap"
	KindCareerRoadmapDetailed InsightKind = "career_roadmap_detailed"
	KindCareerDiscovery       InsightKind = "career_discovery"
	KindROIAnalysis           InsightKind = "roi_analysis"
	KindTranslation           InsightKind = "translation"
)

var allKinds = []InsightKind{
	KindDashboardAnalysis,
	KindCareerRoadmap,
	KindCareerRoadmapDetailed,
	KindCareerDiscovery,
	KindROIAnalysis,
	KindTranslation,
}

func AllKinds() []InsightKind {
	out := make([]InsightKind, len(allKinds))
	copy(out, allKinds)
	return out
}

func KindsAsStringSlice() []string {
	result := make([]string, len(allKinds))
	for i, k := range allKinds {
		result[i] = string(k)
	}
	return result
}

// ParseKind resolves a URL/path segment to a known kind. Hyphens are accepted
// as separators so "/insights/career-roadmap" and "career_roadmap" both work.
func ParseKind(input string) (InsightKind, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(input)), "-", "_")
	for _, k := range allKinds {
		if string(k) == normalized {
			return k, true
		}
	}
	return "", false
}
