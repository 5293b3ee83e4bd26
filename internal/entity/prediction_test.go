package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrediction_SignedProgress(t *testing.T) {
	riser := Prediction{Progress: 0.25, Type: PredictionTypeRiser}
	faller := Prediction{Progress: 0.40, Type: PredictionTypeFaller}

	assert.Equal(t, 0.25, riser.SignedProgress())
	assert.Equal(t, -0.40, faller.SignedProgress())
}

func TestPrediction_Record(t *testing.T) {
	p := Prediction{
		Name:          "Alpha One",
		NowCost:       7.5,
		NetDeltaPerHr: 333.3333333333333,
		Progress:      0.5,
		Timestamp:     "2025-08-24 12:00:00",
		Type:          PredictionTypeRiser,
	}

	assert.Equal(t, []string{"Alpha One", "7.5", "333.3333333333333", "0.50", "2025-08-24 12:00:00", "riser"}, p.Record())
}

func TestSummaryRow_Record_Rounding(t *testing.T) {
	row := SummaryRow{
		Name:         "Alpha One",
		Price:        7.84,
		HourlyChange: 333.6,
		Progress:     -0.125,
		Timestamp:    "2025-08-24 12:00:00",
	}

	record := row.Record()
	assert.Equal(t, "7.8", record[1])
	assert.Equal(t, "334", record[2])
	assert.Equal(t, "-0.12", record[3])
}
