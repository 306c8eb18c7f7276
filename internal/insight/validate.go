package insight

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pathlight/insights-engine/constants"
	"github.com/pathlight/insights-engine/internal/common"
)

// Validator turns untrusted model text into a ValidatedInsight or a
// classified failure. Schemas are compiled once at construction; the registry
// never changes after startup.
type Validator struct {
	schemas map[constants.InsightKind]*jsonschema.Schema
	logger  *slog.Logger
}

func NewValidator(logger *slog.Logger) (*Validator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	schemas := make(map[constants.InsightKind]*jsonschema.Schema, len(registry))
	for kind, desc := range registry {
		compiled, err := compileSchema(desc.Schema)
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", kind, err)
		}
		schemas[kind] = compiled
	}
	return &Validator{schemas: schemas, logger: logger}, nil
}

func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("schema.json")
}

// Validate classifies a raw completion body for the given kind.
//
// Classification: ErrUnparsableResponse when the body is not JSON;
// ErrSchemaViolation when required fields are missing or mistyped. Optional
// decorative fields are defaulted, never grounds for rejection. No partial
// object is ever synthesized from a violator.
func (v *Validator) Validate(kind constants.InsightKind, body []byte) (*ValidatedInsight, error) {
	desc, ok := registry[kind]
	if !ok {
		return nil, common.UnknownKindError(string(kind))
	}
	schema := v.schemas[kind]

	cleaned := extractJSON(body)
	var doc map[string]any
	if err := json.Unmarshal(cleaned, &doc); err != nil || doc == nil {
		v.logger.Warn("insight.validate.unparsable", "kind", kind, "bytes", len(body), "error", err)
		return nil, common.NewAppError("UNPARSABLE_RESPONSE", "model output is not a JSON object", common.ErrUnparsableResponse)
	}

	// Grade before defaulting so substituted values don't inflate the count.
	selfConf, selfReported := selfConfidence(doc, desc.ConfidenceKey)
	enriched := countPresent(doc, desc.EnrichmentKeys)

	applyDefaults(doc, desc.OptionalDefaults)

	if err := schema.Validate(any(doc)); err != nil {
		v.logger.Warn("insight.validate.schema_violation", "kind", kind, "error", err)
		return nil, common.NewAppError("SCHEMA_VIOLATION", "model output violates the kind's schema", common.ErrSchemaViolation)
	}

	conf := selfConf
	if !selfReported {
		conf = derivedConfidence(enriched, len(desc.EnrichmentKeys))
	}

	// Below-threshold or ungraded results always get flagged, even when the
	// model claims otherwise.
	review := conf < constants.ReviewThreshold || !selfReported
	if review {
		if hr, ok := doc["human_review_needed"]; ok {
			if b, isBool := hr.(bool); !isBool || !b {
				doc["human_review_needed"] = true
			}
		}
	}

	return &ValidatedInsight{
		Kind:              kind,
		Payload:           doc,
		Confidence:        conf,
		HumanReviewNeeded: review,
		SelfReported:      selfReported,
	}, nil
}

// extractJSON strips markdown fences and surrounding prose, leaving the
// first JSON object in the body. Models in JSON mode usually comply, but the
// validator treats every body as hostile.
func extractJSON(body []byte) []byte {
	s := strings.TrimSpace(string(body))
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	if !strings.HasPrefix(s, "{") {
		start := strings.Index(s, "{")
		end := strings.LastIndex(s, "}")
		if start >= 0 && end > start {
			s = s[start : end+1]
		}
	}
	return []byte(s)
}

// selfConfidence reads the model's own grade. Out-of-range values are
// distrusted entirely and treated as absent.
func selfConfidence(doc map[string]any, key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	f, ok := doc[key].(float64)
	if !ok {
		return 0, false
	}
	if f < 0 || f > 100 {
		return 0, false
	}
	return int(f), true
}

// derivedConfidence grades an ungraded response by optional-field coverage,
// capped so an ungraded object can never clear the review threshold.
func derivedConfidence(present, expected int) int {
	if expected == 0 {
		return 50
	}
	conf := 20 + (50*present)/expected
	if conf > constants.DerivedConfidenceCap {
		conf = constants.DerivedConfidenceCap
	}
	return conf
}

// countPresent counts enrichment paths with at least one non-empty match.
func countPresent(doc map[string]any, paths []string) int {
	n := 0
	for _, path := range paths {
		if hasNonEmpty(doc, strings.Split(path, ".")) {
			n++
		}
	}
	return n
}

func hasNonEmpty(node any, segs []string) bool {
	if len(segs) == 0 {
		return nonEmptyValue(node)
	}
	seg := segs[0]
	if name, isArray := strings.CutSuffix(seg, "[]"); isArray {
		m, ok := node.(map[string]any)
		if !ok {
			return false
		}
		arr, ok := m[name].([]any)
		if !ok {
			return false
		}
		for _, item := range arr {
			if hasNonEmpty(item, segs[1:]) {
				return true
			}
		}
		return false
	}
	m, ok := node.(map[string]any)
	if !ok {
		return false
	}
	child, ok := m[seg]
	if !ok {
		return false
	}
	return hasNonEmpty(child, segs[1:])
}

func nonEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// applyDefaults fills in absent optional fields in place so downstream
// consumers never see a hole where the schema allows one.
func applyDefaults(doc map[string]any, defaults map[string]any) {
	for path, val := range defaults {
		setDefault(doc, strings.Split(path, "."), val)
	}
}

func setDefault(node any, segs []string, val any) {
	if len(segs) == 0 {
		return
	}
	seg := segs[0]
	if name, isArray := strings.CutSuffix(seg, "[]"); isArray {
		m, ok := node.(map[string]any)
		if !ok {
			return
		}
		arr, ok := m[name].([]any)
		if !ok {
			return
		}
		for _, item := range arr {
			if len(segs) == 1 {
				continue // a bare "xs[]" path has nothing to set
			}
			setDefault(item, segs[1:], val)
		}
		return
	}
	m, ok := node.(map[string]any)
	if !ok {
		return
	}
	if len(segs) == 1 {
		if _, exists := m[seg]; !exists {
			m[seg] = val
		}
		return
	}
	setDefault(m[seg], segs[1:], val)
}
