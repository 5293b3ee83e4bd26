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

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestSnapshotRepository_GetAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpl_transfers_log.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := csv.NewWriter(f)
	require.NoError(t, w.Write(entity.SnapshotHeader))
	require.NoError(t, w.Write([]string{"2025-08-24 10:00:00", "1", "Alpha", "One", "7.5", "1000", "200", "12.5"}))
	w.Flush()
	require.NoError(t, f.Close())

	snapshots, err := NewSnapshotRepository(path).GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	s := snapshots[0]
	assert.Equal(t, "2025-08-24 10:00:00", s.Timestamp)
	assert.Equal(t, 1, s.ID)
	assert.Equal(t, "Alpha One", s.Name())
	assert.Equal(t, 7.5, s.NowCost)
	assert.Equal(t, 1000, s.TransfersInEvent)
	assert.Equal(t, 200, s.TransfersOutEvent)
	assert.Equal(t, "12.5", s.SelectedByPercent)
}

func TestSnapshotRepository_GetAll_MissingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := NewSnapshotRepository(path).GetAll(context.Background())

	require.Error(t, err)
}

func TestSnapshotRepository_GetAll_MalformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpl_transfers_log.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"timestamp,id,first_name,second_name,now_cost,transfers_in_event,transfers_out_event,selected_by_percent\n"+
			"2025-08-24 10:00:00,not-an-id,Alpha,One,7.5,1000,200,12.5\n"), 0o644))

	_, err := NewSnapshotRepository(path).GetAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestPredictionRepository_AppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpl_predictions_log.csv")
	repo := NewPredictionRepository(path)

	prediction := entity.Prediction{
		Name:          "Alpha One",
		NowCost:       7.5,
		NetDeltaPerHr: 500,
		Progress:      0.01,
		Timestamp:     "2025-08-24 12:00:00",
		Type:          entity.PredictionTypeRiser,
	}

	created, err := repo.Append(context.Background(), []entity.Prediction{prediction})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Append(context.Background(), []entity.Prediction{prediction})
	require.NoError(t, err)
	assert.False(t, created)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, entity.PredictionHeader, records[0])
	assert.Equal(t, []string{"Alpha One", "7.5", "500", "0.01", "2025-08-24 12:00:00", "riser"}, records[1])
	assert.Equal(t, records[1], records[2])
}

func TestSummaryRepository_OverwriteReplacesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpl_summary.csv")
	repo := NewSummaryRepository(path)
	ctx := context.Background()

	first := []entity.SummaryRow{
		{Name: "Alpha One", Price: 7.5, HourlyChange: 500, Progress: 0.01, Timestamp: "2025-08-24 11:00:00"},
		{Name: "Beta Two", Price: 5.0, HourlyChange: -300, Progress: -0.01, Timestamp: "2025-08-24 11:00:00"},
	}
	require.NoError(t, repo.Overwrite(ctx, first))

	second := []entity.SummaryRow{
		{Name: "Gamma Three", Price: 9.0, HourlyChange: 1200, Progress: 0.05, Timestamp: "2025-08-24 12:00:00"},
	}
	require.NoError(t, repo.Overwrite(ctx, second))

	rows, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gamma Three", rows[0].Name)
	assert.Equal(t, 9.0, rows[0].Price)
	assert.Equal(t, 1200.0, rows[0].HourlyChange)
	assert.Equal(t, 0.05, rows[0].Progress)
	assert.Equal(t, "2025-08-24 12:00:00", rows[0].Timestamp)
}
