package service

import (
	"math"
	"sort"

	"fpl-price-tracker/internal/entity"
)

// projectSummary folds the run's predictions into the compact summary view:
// progress becomes a signed magnitude (positive rise, negative drop), rows
// are ordered by absolute progress descending (stable) and capped at size.
// Rounding happens at render time in SummaryRow.Record.
func projectSummary(predictions []entity.Prediction, size int) []entity.SummaryRow {
	rows := make([]entity.SummaryRow, 0, len(predictions))
	for _, p := range predictions {
		rows = append(rows, entity.SummaryRow{
			Name:         p.Name,
			Price:        p.NowCost,
			HourlyChange: p.NetDeltaPerHr,
			Progress:     p.SignedProgress(),
			Timestamp:    p.Timestamp,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return math.Abs(rows[i].Progress) > math.Abs(rows[j].Progress)
	})
	if len(rows) > size {
		rows = rows[:size]
	}
	return rows
}
