package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"fpl-price-tracker/internal/entity"
)

// SummaryRepository maintains the point-in-time summary view. The file is a
// projection of the latest run only, so it is fully replaced on every write.
type SummaryRepository interface {
	Overwrite(ctx context.Context, rows []entity.SummaryRow) error
	GetAll(ctx context.Context) ([]entity.SummaryRow, error)
}

type summaryRepository struct {
	path string
}

// NewSummaryRepository creates a new SummaryRepository at path.
func NewSummaryRepository(path string) SummaryRepository {
	return &summaryRepository{path: path}
}

func (r *summaryRepository) Overwrite(_ context.Context, rows []entity.SummaryRow) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(entity.SummaryHeader); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush summary file: %w", err)
	}

	return nil
}

func (r *summaryRepository) GetAll(_ context.Context) ([]entity.SummaryRow, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open summary file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read summary file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]entity.SummaryRow, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := entity.ParseSummaryRecord(record)
		if err != nil {
			return nil, fmt.Errorf("summary row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
