package service

import (
	"context"
	"fmt"
	"time"

	"fpl-price-tracker/internal/analyzer/config"
	"fpl-price-tracker/internal/analyzer/repository"
	"fpl-price-tracker/internal/entity"
	"fpl-price-tracker/pkg/logger"
	"fpl-price-tracker/pkg/telegram"
	"fpl-price-tracker/pkg/utils"
)

// AnalyzerService runs one snapshot-delta analysis: compare the two most
// recent snapshots, rank risers and fallers, append the prediction log and
// overwrite the summary view.
type AnalyzerService interface {
	Analyze(ctx context.Context) error
}

type analyzerService struct {
	cfg            *config.Config
	snapshotRepo   repository.SnapshotRepository
	predictionRepo repository.PredictionRepository
	summaryRepo    repository.SummaryRepository
	notifier       telegram.Notifier
	logger         *logger.Logger
	now            func() time.Time
}

// NewAnalyzerService creates a new analyzer service. notifier may be nil to
// disable the Telegram digest.
func NewAnalyzerService(cfg *config.Config, snapshotRepo repository.SnapshotRepository, predictionRepo repository.PredictionRepository, summaryRepo repository.SummaryRepository, notifier telegram.Notifier, log *logger.Logger) AnalyzerService {
	return &analyzerService{
		cfg:            cfg,
		snapshotRepo:   snapshotRepo,
		predictionRepo: predictionRepo,
		summaryRepo:    summaryRepo,
		notifier:       notifier,
		logger:         log,
		now:            utils.TimeNowUTC,
	}
}

// Analyze performs one full run. It fails before writing any output when
// history is insufficient or the comparison interval is degenerate.
func (s *analyzerService) Analyze(ctx context.Context) error {
	snapshots, err := s.snapshotRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read snapshot store: %w", err)
	}

	tOld, tNew, err := latestTimestamps(snapshots)
	if err != nil {
		return err
	}
	s.logger.Info("Comparing snapshots", logger.StringField("from", tOld), logger.StringField("to", tNew))

	hoursElapsed, err := elapsedHours(tOld, tNew)
	if err != nil {
		return err
	}

	deltas := computeDeltas(
		filterByTimestamp(snapshots, tOld),
		filterByTimestamp(snapshots, tNew),
		hoursElapsed,
		s.cfg.Analyzer.Threshold,
	)

	runTimestamp := utils.FormatTimestamp(s.now())
	risers := buildPredictions(topByProgress(deltas, s.cfg.Analyzer.TopN, riseScore), runTimestamp, entity.PredictionTypeRiser)
	fallers := buildPredictions(topByProgress(deltas, s.cfg.Analyzer.TopN, dropScore), runTimestamp, entity.PredictionTypeFaller)
	s.logTopList("Top rising candidates", risers)
	s.logTopList("Top falling candidates", fallers)

	predictions := make([]entity.Prediction, 0, len(risers)+len(fallers))
	predictions = append(predictions, risers...)
	predictions = append(predictions, fallers...)

	created, err := s.predictionRepo.Append(ctx, predictions)
	if err != nil {
		return fmt.Errorf("failed to append predictions: %w", err)
	}
	if created {
		s.logger.Info("Created prediction log", logger.IntField("rows", len(predictions)))
	} else {
		s.logger.Info("Appended predictions", logger.IntField("rows", len(predictions)))
	}

	summary := projectSummary(predictions, s.cfg.Analyzer.SummarySize)
	if err := s.summaryRepo.Overwrite(ctx, summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	s.logger.Info("Updated summary", logger.IntField("rows", len(summary)))

	// The digest is best effort; a notification failure does not fail a run
	// whose files are already written.
	if s.notifier != nil {
		if err := s.notifier.SendMessage(telegram.FormatPredictionsForTelegram(risers, fallers)); err != nil {
			s.logger.Error("Failed to send Telegram digest", logger.ErrorField(err))
		}
	}

	return nil
}

func (s *analyzerService) logTopList(title string, predictions []entity.Prediction) {
	for i, p := range predictions {
		s.logger.Info(title,
			logger.IntField("rank", i+1),
			logger.StringField("name", p.Name),
			logger.Float64Field("now_cost", p.NowCost),
			logger.Float64Field("net_delta_per_hr", p.NetDeltaPerHr),
			logger.Float64Field("progress", p.Progress),
		)
	}
}
