package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"fpl-price-tracker/internal/entity"
)

// SnapshotRepository reads the snapshot store written by the tracker
// service. The store is shared through the filesystem; this side never
// writes it.
type SnapshotRepository interface {
	GetAll(ctx context.Context) ([]entity.PlayerSnapshot, error)
}

type snapshotRepository struct {
	path string
}

// NewSnapshotRepository creates a new SnapshotRepository reading from path.
func NewSnapshotRepository(path string) SnapshotRepository {
	return &snapshotRepository{path: path}
}

func (r *snapshotRepository) GetAll(_ context.Context) ([]entity.PlayerSnapshot, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot store: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// First row is the header written by the tracker.
	snapshots := make([]entity.PlayerSnapshot, 0, len(records)-1)
	for i, record := range records[1:] {
		snapshot, err := entity.ParseSnapshotRecord(record)
		if err != nil {
			return nil, fmt.Errorf("snapshot store row %d: %w", i+2, err)
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}
