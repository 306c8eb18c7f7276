package utils

import (
	"github.com/pathlight/insights-engine/gen/ent"
	"github.com/pathlight/insights-engine/internal/entity"
)

func ToInsightRecord(e *ent.InsightRecord) *entity.InsightRecord {
	return &entity.InsightRecord{
		ID:            e.ID,
		UserID:        e.UserID,
		Kind:          e.Kind,
		RequestParams: e.RequestParams,
		Payload:       e.Payload,
		Origin:        e.Origin,
		Confidence:    e.Confidence,
		CreatedAt:     e.CreatedAt.UTC(),
	}
}
