package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpl-price-tracker/internal/entity"
)

func TestTopByProgress_OrdersDescendingAndTruncates(t *testing.T) {
	deltas := []entity.TransferDelta{
		{ID: 1, RiseProgress: 0.10},
		{ID: 2, RiseProgress: 0.50},
		{ID: 3, RiseProgress: 0.25},
		{ID: 4, RiseProgress: 0.40},
	}

	top := topByProgress(deltas, 3, riseScore)

	require.Len(t, top, 3)
	assert.Equal(t, 2, top[0].ID)
	assert.Equal(t, 4, top[1].ID)
	assert.Equal(t, 3, top[2].ID)
}

func TestTopByProgress_FewerEntriesThanN(t *testing.T) {
	deltas := []entity.TransferDelta{
		{ID: 1, DropProgress: 0.10},
		{ID: 2, DropProgress: 0.20},
	}

	top := topByProgress(deltas, 10, dropScore)

	require.Len(t, top, 2)
	assert.Equal(t, 2, top[0].ID)
}

func TestTopByProgress_StableOnTies(t *testing.T) {
	// Equal scores keep the newer-snapshot order.
	deltas := []entity.TransferDelta{
		{ID: 7, RiseProgress: 0.10},
		{ID: 3, RiseProgress: 0.10},
		{ID: 9, RiseProgress: 0.10},
	}

	top := topByProgress(deltas, 3, riseScore)

	assert.Equal(t, []int{top[0].ID, top[1].ID, top[2].ID}, []int{7, 3, 9})
}

func TestTopByProgress_DoesNotMutateInput(t *testing.T) {
	deltas := []entity.TransferDelta{
		{ID: 1, RiseProgress: 0.10},
		{ID: 2, RiseProgress: 0.50},
	}

	_ = topByProgress(deltas, 1, riseScore)

	assert.Equal(t, 1, deltas[0].ID)
	assert.Equal(t, 2, deltas[1].ID)
}

func TestBuildPredictions_CarriesDirectionProgress(t *testing.T) {
	deltas := []entity.TransferDelta{
		{ID: 1, Name: "Player One", NowCost: 7.5, NetDeltaPerHr: -400, RiseProgress: 0, DropProgress: 0.25},
	}

	predictions := buildPredictions(deltas, "2025-08-24 12:00:00", entity.PredictionTypeFaller)

	require.Len(t, predictions, 1)
	p := predictions[0]
	assert.Equal(t, "Player One", p.Name)
	assert.Equal(t, 7.5, p.NowCost)
	assert.Equal(t, -400.0, p.NetDeltaPerHr)
	assert.Equal(t, 0.25, p.Progress)
	assert.Equal(t, "2025-08-24 12:00:00", p.Timestamp)
	assert.Equal(t, entity.PredictionTypeFaller, p.Type)
}
