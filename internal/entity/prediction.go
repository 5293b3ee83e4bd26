package entity

import "strconv"

// PredictionType labels the direction of a predicted price change.
type PredictionType string

const (
	PredictionTypeRiser  PredictionType = "riser"
	PredictionTypeFaller PredictionType = "faller"
)

// Prediction is one persisted riser/faller row for a run. Progress holds the
// score for the row's own direction; the opposite direction is implicitly
// zero.
type Prediction struct {
	Name          string
	NowCost       float64
	NetDeltaPerHr float64
	Progress      float64
	Timestamp     string
	Type          PredictionType
}

// PredictionHeader is the prediction log CSV header, written once per file.
var PredictionHeader = []string{"name", "now_cost", "net_delta_per_hr", "progress", "timestamp", "type"}

// SignedProgress folds the direction into the sign: positive for risers,
// negative for fallers.
func (p Prediction) SignedProgress() float64 {
	if p.Type == PredictionTypeFaller {
		return -p.Progress
	}
	return p.Progress
}

// Record renders the prediction as a CSV record matching PredictionHeader.
func (p Prediction) Record() []string {
	return []string{
		p.Name,
		strconv.FormatFloat(p.NowCost, 'f', 1, 64),
		strconv.FormatFloat(p.NetDeltaPerHr, 'f', -1, 64),
		strconv.FormatFloat(p.Progress, 'f', 2, 64),
		p.Timestamp,
		string(p.Type),
	}
}
