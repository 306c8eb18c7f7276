package constants

// Origin tags an insight envelope with where its payload came from.
type Origin string

const (
	OriginModel    Origin = "model"    // validated model output
	OriginFallback Origin = "fallback" // static schema-conformant placeholder
)

// Confidence policy knobs shared by the validator and the fallback policy.
const (
	// ReviewThreshold: any confidence below this forces human_review_needed,
	// regardless of what the model claims.
	ReviewThreshold = 70

	// DerivedConfidenceCap bounds confidence derived for responses the model
	// did not explicitly grade.
	DerivedConfidenceCap = 70
)
