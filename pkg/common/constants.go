package common

const (
	DefaultSnapshotFile   = "fpl_transfers_log.csv"
	DefaultPredictionFile = "fpl_predictions_log.csv"
	DefaultSummaryFile    = "fpl_summary.csv"

	// DefaultTransferThreshold is the net-transfer magnitude empirically
	// associated with one price step. A static approximation, not derived
	// from data.
	DefaultTransferThreshold = 100000

	DefaultTopN        = 10
	DefaultSummarySize = 20

	DefaultFPLBaseURL = "https://fantasy.premierleague.com/api/"
)
