// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InsightRecordsColumns holds the columns for the "insight_records" table.
	InsightRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "request_params", Type: field.TypeJSON, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "origin", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// InsightRecordsTable holds the schema information for the "insight_records" table.
	InsightRecordsTable = &schema.Table{
		Name:       "insight_records",
		Columns:    InsightRecordsColumns,
		PrimaryKey: []*schema.Column{InsightRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "insightrecord_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{InsightRecordsColumns[2], InsightRecordsColumns[7]},
			},
			{
				Name:    "insightrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{InsightRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InsightRecordsTable,
	}
)

func init() {
	InsightRecordsTable.Annotation = &entsql.Annotation{
		Table: "insight_records",
	}
}
