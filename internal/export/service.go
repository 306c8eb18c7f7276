package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pathlight/insights-engine/constants"
	"github.com/pathlight/insights-engine/internal/entity"
	"github.com/pathlight/insights-engine/internal/repository"
)

// Service is a tiny façade over the insight repository that produces XLSX
// bytes for exports.
type Service struct {
	repo   repository.InsightRepository
	logger *slog.Logger
}

func NewService(repo repository.InsightRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportROIXLSX returns an XLSX workbook (as bytes) of the stored ROI
// analyses, newest first, optionally scoped to one user.
func (s *Service) ExportROIXLSX(ctx context.Context, userID *string) ([]byte, error) {
	start := time.Now()

	recs, err := s.repo.ListInsights(ctx, string(constants.KindROIAnalysis), userID)
	if err != nil {
		return nil, fmt.Errorf("query roi records: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "ROI Analyses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Created At",
		"User ID",
		"Target Country",
		"Budget",
		"ROI %",
		"Break-even Months",
		"Starting Salary",
		"Risk Score",
		"Origin",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.CreatedAt.Format(time.RFC3339))
		if r.UserID != nil {
			write(2, *r.UserID)
		} else {
			write(2, "")
		}
		write(3, paramValue(r, "targetCountry"))
		write(4, paramValue(r, "userBudget"))
		write(5, payloadValue(r, "roi_percentage"))
		write(6, payloadValue(r, "break_even_months"))
		write(7, payloadValue(r, "starting_salary"))
		write(8, payloadValue(r, "risk_score"))
		write(9, r.Origin)
		write(10, r.Confidence)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 22) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 28) // user
	_ = f.SetColWidth(sheet, "C", "C", 18) // country
	_ = f.SetColWidth(sheet, "D", "H", 14) // numbers
	_ = f.SetColWidth(sheet, "I", "J", 12) // verdict

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func paramValue(r *entity.InsightRecord, key string) string {
	if r.RequestParams == nil {
		return ""
	}
	if v, ok := r.RequestParams[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func payloadValue(r *entity.InsightRecord, key string) string {
	if r.Payload == nil {
		return ""
	}
	if v, ok := r.Payload[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}
