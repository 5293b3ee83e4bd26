package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fpl-price-tracker/internal/tracker/config"
	"fpl-price-tracker/internal/tracker/dto"
	"fpl-price-tracker/pkg/logger"

	"golang.org/x/time/rate"
)

// FPLRepository fetches player data from the Fantasy Premier League API.
type FPLRepository interface {
	GetPlayers(ctx context.Context) ([]dto.Element, error)
}

type fplRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewFPLRepository creates a new FPLRepository.
func NewFPLRepository(cfg *config.Config, log *logger.Logger) FPLRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.FPL.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	return &fplRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.FPL.Timeout,
		},
		requestLimiter: requestLimiter,
	}
}

// GetPlayers fetches the bootstrap-static document and returns its player
// elements.
func (r *fplRepository) GetPlayers(ctx context.Context) ([]dto.Element, error) {
	url := r.cfg.FPL.BaseURL + "bootstrap-static/"
	body, err := r.sendRequest(ctx, http.MethodGet, url)
	if err != nil {
		return nil, err
	}

	var response dto.BootstrapResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode bootstrap-static response: %w", err)
	}

	r.log.DebugContext(ctx, "Fetched FPL players", logger.IntField("count", len(response.Elements)))

	return response.Elements, nil
}

func (r *fplRepository) sendRequest(ctx context.Context, method, url string) ([]byte, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Error("FPL request failed", logger.ErrorField(err), logger.StringField("url", url))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("fpl request failed with status code %d", resp.StatusCode)
		r.log.Error("FPL request failed", logger.ErrorField(err), logger.StringField("url", url))
		return nil, err
	}

	return body, nil
}
