package entity

import (
	"fmt"
	"strconv"
)

// PlayerSnapshot is one row of the append-only snapshot store: a single
// player's transfer state captured at one timestamp. The id is unique within
// a timestamp; timestamps are non-decreasing across appends.
type PlayerSnapshot struct {
	Timestamp         string
	ID                int
	FirstName         string
	SecondName        string
	NowCost           float64
	TransfersInEvent  int
	TransfersOutEvent int
	SelectedByPercent string
}

// SnapshotHeader is the snapshot store CSV header, written once per file.
var SnapshotHeader = []string{
	"timestamp", "id", "first_name", "second_name", "now_cost",
	"transfers_in_event", "transfers_out_event", "selected_by_percent",
}

// Name returns the player's display name.
func (p PlayerSnapshot) Name() string {
	return p.FirstName + " " + p.SecondName
}

// Record renders the snapshot as a CSV record matching SnapshotHeader.
func (p PlayerSnapshot) Record() []string {
	return []string{
		p.Timestamp,
		strconv.Itoa(p.ID),
		p.FirstName,
		p.SecondName,
		strconv.FormatFloat(p.NowCost, 'f', 1, 64),
		strconv.Itoa(p.TransfersInEvent),
		strconv.Itoa(p.TransfersOutEvent),
		p.SelectedByPercent,
	}
}

// ParseSnapshotRecord parses a CSV record matching SnapshotHeader.
func ParseSnapshotRecord(record []string) (PlayerSnapshot, error) {
	if len(record) != len(SnapshotHeader) {
		return PlayerSnapshot{}, fmt.Errorf("snapshot record has %d fields, want %d", len(record), len(SnapshotHeader))
	}

	id, err := strconv.Atoi(record[1])
	if err != nil {
		return PlayerSnapshot{}, fmt.Errorf("invalid player id %q: %w", record[1], err)
	}
	nowCost, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return PlayerSnapshot{}, fmt.Errorf("invalid now_cost %q: %w", record[4], err)
	}
	transfersIn, err := strconv.Atoi(record[5])
	if err != nil {
		return PlayerSnapshot{}, fmt.Errorf("invalid transfers_in_event %q: %w", record[5], err)
	}
	transfersOut, err := strconv.Atoi(record[6])
	if err != nil {
		return PlayerSnapshot{}, fmt.Errorf("invalid transfers_out_event %q: %w", record[6], err)
	}

	return PlayerSnapshot{
		Timestamp:         record[0],
		ID:                id,
		FirstName:         record[2],
		SecondName:        record[3],
		NowCost:           nowCost,
		TransfersInEvent:  transfersIn,
		TransfersOutEvent: transfersOut,
		SelectedByPercent: record[7],
	}, nil
}
