// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InsightRecord is the predicate function for insightrecord builders.
type InsightRecord func(*sql.Selector)
