package service

import (
	"math"

	"fpl-price-tracker/internal/entity"
)

// computeDeltas inner-joins the two snapshot slices on player id and derives
// transfer deltas, per-hour rates and threshold progress. Players missing
// from either side are dropped without error; that is expected for players
// added to or removed from the game between snapshots. Row order follows
// the newer snapshot.
func computeDeltas(oldRows, newRows []entity.PlayerSnapshot, hoursElapsed float64, threshold int) []entity.TransferDelta {
	oldByID := make(map[int]entity.PlayerSnapshot, len(oldRows))
	for _, row := range oldRows {
		oldByID[row.ID] = row
	}

	deltas := make([]entity.TransferDelta, 0, len(newRows))
	for _, newRow := range newRows {
		oldRow, ok := oldByID[newRow.ID]
		if !ok {
			continue
		}

		deltaIn := newRow.TransfersInEvent - oldRow.TransfersInEvent
		deltaOut := newRow.TransfersOutEvent - oldRow.TransfersOutEvent
		netDelta := deltaIn - deltaOut
		netPerHr := float64(netDelta) / hoursElapsed

		deltas = append(deltas, entity.TransferDelta{
			ID:            newRow.ID,
			Name:          newRow.Name(),
			NowCost:       newRow.NowCost,
			DeltaIn:       deltaIn,
			DeltaOut:      deltaOut,
			NetDelta:      netDelta,
			DeltaInPerHr:  float64(deltaIn) / hoursElapsed,
			DeltaOutPerHr: float64(deltaOut) / hoursElapsed,
			NetDeltaPerHr: netPerHr,
			RiseProgress:  round2(math.Max(0, netPerHr) / float64(threshold)),
			DropProgress:  round2(math.Max(0, -netPerHr) / float64(threshold)),
		})
	}

	return deltas
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
