package insight

import (
	"github.com/pathlight/insights-engine/constants"
)

// ValidatedInsight is a parsed, schema-conformant model payload plus the
// confidence verdict. Immutable once produced.
type ValidatedInsight struct {
	Kind              constants.InsightKind
	Payload           map[string]any
	Confidence        int
	HumanReviewNeeded bool

	// SelfReported is true when Confidence came from the model's own grade
	// rather than the derived heuristic.
	SelfReported bool
}

// Envelope is the value returned to callers: either a validated model payload
// or a deterministic fallback of the same shape. Its payload always satisfies
// the kind's schema regardless of origin.
type Envelope struct {
	Kind              constants.InsightKind
	Origin            constants.Origin
	Payload           map[string]any
	Confidence        int
	HumanReviewNeeded bool
}

// Body flattens the envelope into the wire shape: the payload's own keys at
// the top level, tagged with origin and the (possibly overridden) confidence
// verdict. The envelope's human_review_needed wins over any value the model
// put in the payload.
func (e Envelope) Body() map[string]any {
	out := make(map[string]any, len(e.Payload)+3)
	for k, v := range e.Payload {
		out[k] = v
	}
	out["origin"] = string(e.Origin)
	out["confidence"] = e.Confidence
	out["human_review_needed"] = e.HumanReviewNeeded
	return out
}
