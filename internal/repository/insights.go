package repository

import (
	"context"
	"log/slog"

	"github.com/pathlight/insights-engine/gen/ent"
	"github.com/pathlight/insights-engine/gen/ent/insightrecord"
	"github.com/pathlight/insights-engine/internal/common"
	"github.com/pathlight/insights-engine/internal/entity"
	"github.com/pathlight/insights-engine/internal/utils"
)

type InsightRepository interface {
	SaveInsight(ctx context.Context, rec *entity.InsightRecord) (*entity.InsightRecord, error)
	ListInsights(ctx context.Context, kind string, userID *string) ([]*entity.InsightRecord, error)
}

type insightRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInsightRepository(client *ent.Client, logger *slog.Logger) InsightRepository {
	return &insightRepository{
		client: client,
		logger: logger,
	}
}

func (r *insightRepository) SaveInsight(ctx context.Context, rec *entity.InsightRecord) (*entity.InsightRecord, error) {
	builder := r.client.InsightRecord.Create().
		SetKind(rec.Kind).
		SetOrigin(rec.Origin).
		SetConfidence(rec.Confidence).
		SetPayload(rec.Payload).
		SetNillableUserID(rec.UserID)

	if rec.RequestParams != nil {
		builder = builder.SetRequestParams(rec.RequestParams)
	}

	saved, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to save insight record", "kind", rec.Kind, "error", err)
		return nil, common.NewAppError("DATABASE_ERROR", "failed to save insight record", err)
	}
	return utils.ToInsightRecord(saved), nil
}

func (r *insightRepository) ListInsights(ctx context.Context, kind string, userID *string) ([]*entity.InsightRecord, error) {
	q := r.client.InsightRecord.Query().
		Where(insightrecord.Kind(kind))
	if userID != nil {
		q = q.Where(insightrecord.UserID(*userID))
	}
	recs, err := q.Order(ent.Desc(insightrecord.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list insight records", "kind", kind, "error", err)
		return nil, common.NewAppError("DATABASE_ERROR", "failed to list insight records", err)
	}

	result := make([]*entity.InsightRecord, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToInsightRecord(rec)
	}
	return result, nil
}
