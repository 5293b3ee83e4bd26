package service

import (
	"fmt"
	"sort"

	"fpl-price-tracker/internal/entity"
	"fpl-price-tracker/pkg/utils"
)

// latestTimestamps returns the two most recent distinct timestamps present
// in the store, oldest first. The timestamp layout sorts lexicographically
// in chronological order.
func latestTimestamps(snapshots []entity.PlayerSnapshot) (string, string, error) {
	seen := make(map[string]struct{})
	timestamps := make([]string, 0)
	for _, snapshot := range snapshots {
		if _, ok := seen[snapshot.Timestamp]; ok {
			continue
		}
		seen[snapshot.Timestamp] = struct{}{}
		timestamps = append(timestamps, snapshot.Timestamp)
	}

	if len(timestamps) < 2 {
		return "", "", ErrInsufficientHistory
	}

	sort.Strings(timestamps)
	return timestamps[len(timestamps)-2], timestamps[len(timestamps)-1], nil
}

// elapsedHours computes the comparison window in hours, guarding the
// per-hour normalization against a zero-length interval.
func elapsedHours(tOld, tNew string) (float64, error) {
	oldTime, err := utils.ParseTimestamp(tOld)
	if err != nil {
		return 0, fmt.Errorf("invalid snapshot timestamp %q: %w", tOld, err)
	}
	newTime, err := utils.ParseTimestamp(tNew)
	if err != nil {
		return 0, fmt.Errorf("invalid snapshot timestamp %q: %w", tNew, err)
	}

	hours := newTime.Sub(oldTime).Hours()
	if hours <= 0 {
		return 0, ErrDegenerateInterval
	}
	return hours, nil
}

// filterByTimestamp returns the snapshot rows captured at the given
// timestamp, in store order.
func filterByTimestamp(snapshots []entity.PlayerSnapshot, timestamp string) []entity.PlayerSnapshot {
	filtered := make([]entity.PlayerSnapshot, 0)
	for _, snapshot := range snapshots {
		if snapshot.Timestamp == timestamp {
			filtered = append(filtered, snapshot)
		}
	}
	return filtered
}
