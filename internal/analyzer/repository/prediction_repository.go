package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"fpl-price-tracker/internal/entity"
)

// PredictionRepository appends a run's predictions to the durable prediction
// log.
type PredictionRepository interface {
	// Append writes the prediction rows, creating the log with a header row
	// on first use. It reports whether the log was newly created.
	Append(ctx context.Context, predictions []entity.Prediction) (bool, error)
}

type predictionRepository struct {
	path string
}

// NewPredictionRepository creates a new PredictionRepository writing to path.
func NewPredictionRepository(path string) PredictionRepository {
	return &predictionRepository{path: path}
}

func (r *predictionRepository) Append(_ context.Context, predictions []entity.Prediction) (bool, error) {
	_, statErr := os.Stat(r.path)
	created := os.IsNotExist(statErr)
	if statErr != nil && !created {
		return false, fmt.Errorf("failed to stat prediction log: %w", statErr)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("failed to open prediction log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if created {
		if err := w.Write(entity.PredictionHeader); err != nil {
			return created, fmt.Errorf("failed to write prediction header: %w", err)
		}
	}
	for _, prediction := range predictions {
		if err := w.Write(prediction.Record()); err != nil {
			return created, fmt.Errorf("failed to write prediction row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return created, fmt.Errorf("failed to flush prediction log: %w", err)
	}

	return created, nil
}
