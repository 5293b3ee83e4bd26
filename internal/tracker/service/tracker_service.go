package service

import (
	"context"
	"fmt"
	"time"

	"fpl-price-tracker/internal/entity"
	"fpl-price-tracker/internal/tracker/repository"
	"fpl-price-tracker/pkg/logger"
	"fpl-price-tracker/pkg/utils"
)

// TrackerService captures one snapshot of all players' transfer stats.
type TrackerService interface {
	Track(ctx context.Context) error
}

type trackerService struct {
	fplRepo      repository.FPLRepository
	snapshotRepo repository.SnapshotRepository
	logger       *logger.Logger
	now          func() time.Time
}

// NewTrackerService creates a new tracker service.
func NewTrackerService(fplRepo repository.FPLRepository, snapshotRepo repository.SnapshotRepository, log *logger.Logger) TrackerService {
	return &trackerService{
		fplRepo:      fplRepo,
		snapshotRepo: snapshotRepo,
		logger:       log,
		now:          utils.TimeNowUTC,
	}
}

// Track fetches the current player data and appends it to the snapshot
// store, stamped with a single UTC timestamp shared by the whole snapshot.
func (s *trackerService) Track(ctx context.Context) error {
	elements, err := s.fplRepo.GetPlayers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch player data: %w", err)
	}

	timestamp := utils.FormatTimestamp(s.now())
	snapshots := make([]entity.PlayerSnapshot, 0, len(elements))
	for _, e := range elements {
		snapshots = append(snapshots, entity.PlayerSnapshot{
			Timestamp:  timestamp,
			ID:         e.ID,
			FirstName:  e.FirstName,
			SecondName: e.SecondName,
			// The API serves now_cost in tenths of £m.
			NowCost:           float64(e.NowCost) / 10,
			TransfersInEvent:  e.TransfersInEvent,
			TransfersOutEvent: e.TransfersOutEvent,
			SelectedByPercent: e.SelectedByPercent,
		})
	}

	created, err := s.snapshotRepo.Append(ctx, snapshots)
	if err != nil {
		return fmt.Errorf("failed to append snapshot: %w", err)
	}

	if created {
		s.logger.Info("Created snapshot store", logger.IntField("players", len(snapshots)), logger.StringField("timestamp", timestamp))
	} else {
		s.logger.Info("Appended snapshot", logger.IntField("players", len(snapshots)), logger.StringField("timestamp", timestamp))
	}

	return nil
}
