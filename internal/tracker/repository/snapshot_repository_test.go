package repository

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpl-price-tracker/internal/entity"
)

func TestSnapshotRepository_AppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpl_transfers_log.csv")
	repo := NewSnapshotRepository(path)
	ctx := context.Background()

	first := []entity.PlayerSnapshot{{
		Timestamp:         "2025-08-24 10:00:00",
		ID:                1,
		FirstName:         "Alpha",
		SecondName:        "One",
		NowCost:           7.5,
		TransfersInEvent:  1000,
		TransfersOutEvent: 200,
		SelectedByPercent: "12.5",
	}}
	created, err := repo.Append(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := []entity.PlayerSnapshot{{
		Timestamp:         "2025-08-24 11:00:00",
		ID:                1,
		FirstName:         "Alpha",
		SecondName:        "One",
		NowCost:           7.5,
		TransfersInEvent:  1500,
		TransfersOutEvent: 200,
		SelectedByPercent: "12.6",
	}}
	created, err = repo.Append(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, entity.SnapshotHeader, records[0])
	assert.Equal(t, []string{"2025-08-24 10:00:00", "1", "Alpha", "One", "7.5", "1000", "200", "12.5"}, records[1])
	assert.Equal(t, []string{"2025-08-24 11:00:00", "1", "Alpha", "One", "7.5", "1500", "200", "12.6"}, records[2])
}
