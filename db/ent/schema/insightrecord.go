package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/pathlight/insights-engine/constants"
	"github.com/pathlight/insights-engine/db/ent/schema/utils"
)

type InsightRecord struct{ ent.Schema }

func (InsightRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "insight_records"},
	}
}

func (InsightRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// nil for anonymous callers
		field.String("user_id").Optional().Nillable(),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.KindsAsStringSlice()...)),
		field.JSON("request_params", map[string]any{}).
			Optional(),
		field.JSON("payload", map[string]any{}),
		field.String("origin").NotEmpty().
			Validate(utils.EnumValidator(string(constants.OriginModel), string(constants.OriginFallback))),
		field.Int("confidence").Default(0).
			Min(0).Max(100),
		field.Time("created_at").Default(time.Now).Immutable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
	}
}

func (InsightRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "created_at"),
		index.Fields("user_id"),
	}
}
