package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/model"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/repository"
)

var ErrInvalidDateRange = errors.New("start and end must both be YYYY-MM-DD dates, or both omitted")

const (
	exportSheet      = "BP Readings"
	exportDateLayout = "2006-01-02"
	// Timestamps are rendered zone-free; readings are stored in UTC.
	exportTimeLayout = "2006-01-02T15:04:05"
)

// ExportService renders a user's readings into a spreadsheet. It is a pure
// read path over the reading store.
type ExportService struct {
	repo *repository.ReadingRepository
}

// NewExportService creates a new ExportService.
func NewExportService(repo *repository.ReadingRepository) *ExportService {
	return &ExportService{repo: repo}
}

// Export returns the user's readings as xlsx bytes. Date bounds are
// both-or-neither: with both present, readings whose created_at falls on
// [start, end] (whole days, inclusive) are kept; with neither, everything is.
// A single bound or an unparseable date is rejected.
func (s *ExportService) Export(ctx context.Context, userID int64, start, end string) ([]byte, error) {
	readings, err := s.fetch(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return encodeWorkbook(readings)
}

func (s *ExportService) fetch(ctx context.Context, userID int64, start, end string) ([]model.Reading, error) {
	if start == "" && end == "" {
		return s.repo.ListByUser(ctx, userID)
	}
	if start == "" || end == "" {
		return nil, ErrInvalidDateRange
	}

	from, err := time.ParseInLocation(exportDateLayout, start, time.UTC)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	until, err := time.ParseInLocation(exportDateLayout, end, time.UTC)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	// Half-open upper bound one day past end keeps the whole end day in range.
	return s.repo.ListByUserBetween(ctx, userID, from, until.AddDate(0, 0, 1))
}

func encodeWorkbook(readings []model.Reading) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	header := []any{"Systolic", "Diastolic", "Date/Time"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range readings {
		row := []any{r.Systolic, r.Diastolic, r.CreatedAt.Format(exportTimeLayout)}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
