package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"fpl-price-tracker/internal/entity"
)

// SnapshotRepository appends player snapshots to the append-only snapshot
// store. Rows are never mutated or deleted.
type SnapshotRepository interface {
	// Append writes the snapshot rows, creating the store with a header row
	// on first use. It reports whether the store was newly created.
	Append(ctx context.Context, snapshots []entity.PlayerSnapshot) (bool, error)
}

type snapshotRepository struct {
	path string
}

// NewSnapshotRepository creates a new SnapshotRepository writing to path.
func NewSnapshotRepository(path string) SnapshotRepository {
	return &snapshotRepository{path: path}
}

func (r *snapshotRepository) Append(_ context.Context, snapshots []entity.PlayerSnapshot) (bool, error) {
	_, statErr := os.Stat(r.path)
	created := os.IsNotExist(statErr)
	if statErr != nil && !created {
		return false, fmt.Errorf("failed to stat snapshot store: %w", statErr)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if created {
		if err := w.Write(entity.SnapshotHeader); err != nil {
			return created, fmt.Errorf("failed to write snapshot header: %w", err)
		}
	}
	for _, snapshot := range snapshots {
		if err := w.Write(snapshot.Record()); err != nil {
			return created, fmt.Errorf("failed to write snapshot row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return created, fmt.Errorf("failed to flush snapshot store: %w", err)
	}

	return created, nil
}
