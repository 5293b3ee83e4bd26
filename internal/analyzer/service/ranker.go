package service

import (
	"sort"

	"fpl-price-tracker/internal/entity"
)

// topByProgress returns the n deltas with the largest score, descending.
// The sort is stable, so equal scores keep their newer-snapshot order. When
// fewer than n deltas exist the result is shorter, never padded.
func topByProgress(deltas []entity.TransferDelta, n int, score func(entity.TransferDelta) float64) []entity.TransferDelta {
	ranked := make([]entity.TransferDelta, len(deltas))
	copy(ranked, deltas)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func riseScore(d entity.TransferDelta) float64 { return d.RiseProgress }
func dropScore(d entity.TransferDelta) float64 { return d.DropProgress }

// buildPredictions stamps ranked deltas with the run timestamp and
// direction, carrying the progress score for that direction.
func buildPredictions(ranked []entity.TransferDelta, timestamp string, predictionType entity.PredictionType) []entity.Prediction {
	predictions := make([]entity.Prediction, 0, len(ranked))
	for _, d := range ranked {
		progress := d.RiseProgress
		if predictionType == entity.PredictionTypeFaller {
			progress = d.DropProgress
		}
		predictions = append(predictions, entity.Prediction{
			Name:          d.Name,
			NowCost:       d.NowCost,
			NetDeltaPerHr: d.NetDeltaPerHr,
			Progress:      progress,
			Timestamp:     timestamp,
			Type:          predictionType,
		})
	}
	return predictions
}
