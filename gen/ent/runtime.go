// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/pathlight/insights-engine/db/ent/schema"
	"github.com/pathlight/insights-engine/gen/ent/insightrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	insightrecordFields := schema.InsightRecord{}.Fields()
	_ = insightrecordFields
	// insightrecordDescKind is the schema descriptor for kind field.
	insightrecordDescKind := insightrecordFields[2].Descriptor()
	// insightrecord.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	insightrecord.KindValidator = func() func(string) error {
		validators := insightrecordDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// insightrecordDescOrigin is the schema descriptor for origin field.
	insightrecordDescOrigin := insightrecordFields[5].Descriptor()
	// insightrecord.OriginValidator is a validator for the "origin" field. It is called by the builders before save.
	insightrecord.OriginValidator = func() func(string) error {
		validators := insightrecordDescOrigin.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(origin string) error {
			for _, fn := range fns {
				if err := fn(origin); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// insightrecordDescConfidence is the schema descriptor for confidence field.
	insightrecordDescConfidence := insightrecordFields[6].Descriptor()
	// insightrecord.DefaultConfidence holds the default value on creation for the confidence field.
	insightrecord.DefaultConfidence = insightrecordDescConfidence.Default.(int)
	// insightrecord.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	insightrecord.ConfidenceValidator = func() func(int) error {
		validators := insightrecordDescConfidence.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence int) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// insightrecordDescCreatedAt is the schema descriptor for created_at field.
	insightrecordDescCreatedAt := insightrecordFields[7].Descriptor()
	// insightrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	insightrecord.DefaultCreatedAt = insightrecordDescCreatedAt.Default.(func() time.Time)
	// insightrecordDescID is the schema descriptor for id field.
	insightrecordDescID := insightrecordFields[0].Descriptor()
	// insightrecord.DefaultID holds the default value on creation for the id field.
	insightrecord.DefaultID = insightrecordDescID.Default.(func() uuid.UUID)
}
