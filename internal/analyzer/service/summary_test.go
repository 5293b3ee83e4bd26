package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpl-price-tracker/internal/entity"
)

func TestProjectSummary_SignsProgressByDirection(t *testing.T) {
	predictions := []entity.Prediction{
		{Name: "Riser", Progress: 0.30, Type: entity.PredictionTypeRiser},
		{Name: "Faller", Progress: 0.40, Type: entity.PredictionTypeFaller},
	}

	rows := projectSummary(predictions, 20)

	require.Len(t, rows, 2)
	// Ordered by absolute progress, faller first.
	assert.Equal(t, "Faller", rows[0].Name)
	assert.Equal(t, -0.40, rows[0].Progress)
	assert.Equal(t, "Riser", rows[1].Name)
	assert.Equal(t, 0.30, rows[1].Progress)
}

func TestProjectSummary_CapsRowCount(t *testing.T) {
	predictions := make([]entity.Prediction, 0, 30)
	for i := 0; i < 30; i++ {
		predictions = append(predictions, entity.Prediction{
			Name:     "Player",
			Progress: float64(i) / 100,
			Type:     entity.PredictionTypeRiser,
		})
	}

	rows := projectSummary(predictions, 20)

	assert.Len(t, rows, 20)
}

func TestProjectSummary_FewerRowsThanCap(t *testing.T) {
	predictions := []entity.Prediction{
		{Name: "Only", Progress: 0.10, Type: entity.PredictionTypeRiser},
	}

	rows := projectSummary(predictions, 20)

	assert.Len(t, rows, 1)
}
