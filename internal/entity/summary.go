package entity

import (
	"fmt"
	"strconv"
)

// SummaryRow is one row of the point-in-time summary view. Progress is
// signed: positive toward a rise, negative toward a drop. The file is fully
// overwritten each run.
type SummaryRow struct {
	Name         string
	Price        float64
	HourlyChange float64
	Progress     float64
	Timestamp    string
}

// SummaryHeader is the summary CSV header.
var SummaryHeader = []string{"Name", "Price", "Hourly Change", "Progress", "Timestamp"}

// Record renders the row as a CSV record matching SummaryHeader.
// Price keeps 1 decimal, the hourly rate is rounded to whole transfers,
// progress keeps 2 decimals.
func (s SummaryRow) Record() []string {
	return []string{
		s.Name,
		strconv.FormatFloat(s.Price, 'f', 1, 64),
		strconv.FormatFloat(s.HourlyChange, 'f', 0, 64),
		strconv.FormatFloat(s.Progress, 'f', 2, 64),
		s.Timestamp,
	}
}

// ParseSummaryRecord parses a CSV record matching SummaryHeader.
func ParseSummaryRecord(record []string) (SummaryRow, error) {
	if len(record) != len(SummaryHeader) {
		return SummaryRow{}, fmt.Errorf("summary record has %d fields, want %d", len(record), len(SummaryHeader))
	}

	price, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return SummaryRow{}, fmt.Errorf("invalid price %q: %w", record[1], err)
	}
	hourly, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return SummaryRow{}, fmt.Errorf("invalid hourly change %q: %w", record[2], err)
	}
	progress, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return SummaryRow{}, fmt.Errorf("invalid progress %q: %w", record[3], err)
	}

	return SummaryRow{
		Name:         record[0],
		Price:        price,
		HourlyChange: hourly,
		Progress:     progress,
		Timestamp:    record[4],
	}, nil
}
