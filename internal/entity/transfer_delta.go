package entity

// TransferDelta is derived in memory for a player present in both compared
// snapshots. Raw deltas cover the whole interval; the per-hour rates are
// normalized by the elapsed hours shared across the run.
type TransferDelta struct {
	ID            int
	Name          string
	NowCost       float64
	DeltaIn       int
	DeltaOut      int
	NetDelta      int
	DeltaInPerHr  float64
	DeltaOutPerHr float64
	NetDeltaPerHr float64

	// Progress toward a price step, as a fraction of the configured
	// threshold, rounded to 2 decimals. At most one of the two is nonzero.
	RiseProgress float64
	DropProgress float64
}
