package service

import "errors"

var (
	// ErrInsufficientHistory is returned when the snapshot store holds fewer
	// than two distinct timestamps. Terminal for the run; more collection
	// runs are needed first.
	ErrInsufficientHistory = errors.New("need at least two snapshots to analyze trends")

	// ErrDegenerateInterval is returned when the two selected snapshots span
	// zero elapsed time, which would make the per-hour rates undefined.
	ErrDegenerateInterval = errors.New("selected snapshots span zero elapsed time")
)
