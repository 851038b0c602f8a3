package suitability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"outdoorcast/internal/classify"
	"outdoorcast/internal/types"
	"outdoorcast/internal/weather"
)

// DefaultFetchTimeout bounds the combined upstream fetch. Both upstream
// services are third-party and rate-limited, so every computation carries an
// explicit deadline.
const DefaultFetchTimeout = 10 * time.Second

// WeatherFetcher retrieves the raw forecast fields for a coordinate.
// Implementations live in internal/external; the engine never sees them.
type WeatherFetcher interface {
	FetchForecast(ctx context.Context, lat, lon float64) (weather.RawForecast, error)
}

// PlaceFetcher retrieves the raw place record for a coordinate.
type PlaceFetcher interface {
	FetchPlace(ctx context.Context, lat, lon float64) (*classify.PlaceRecord, error)
}

// PlaceQuery identifies the place being scored: the coordinate the fetchers
// resolve, plus the caller-supplied display name and tags the classifier
// treats as its strongest signal.
type PlaceQuery struct {
	Lat  float64
	Lon  float64
	Name string
	Tags []string
}

// Service composes the external fetchers with the normalizer, classifier, and
// engine. It is the single scoring path for every caller; a second divergent
// path would let scores drift between surfaces.
type Service struct {
	weather WeatherFetcher
	places  PlaceFetcher
	logger  *slog.Logger
	timeout time.Duration
}

// NewService creates the orchestrator. A nil logger falls back to
// slog.Default; a non-positive timeout falls back to DefaultFetchTimeout.
func NewService(wf WeatherFetcher, pf PlaceFetcher, logger *slog.Logger, timeout time.Duration) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Service{
		weather: wf,
		places:  pf,
		logger:  logger,
		timeout: timeout,
	}
}

// Compute resolves the activity label, fetches weather and place data
// concurrently, and scores the result.
//
// Failure semantics are all-or-nothing: if either upstream fetch fails, no
// partial or degraded result is produced and the error surfaces as a single
// upstream_incomplete_data AppError wrapping the cause. An unrecognized
// activity label fails fast before any network call.
func (s *Service) Compute(ctx context.Context, q PlaceQuery, activityLabel string) (*types.SuitabilityResult, error) {
	activity, ok := types.NormalizeActivity(activityLabel)
	if !ok {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidActivity,
			fmt.Sprintf("unknown activity %q", activityLabel),
			nil,
			map[string]any{"activity": activityLabel},
		)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		raw   weather.RawForecast
		place *classify.PlaceRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = s.weather.FetchForecast(gctx, q.Lat, q.Lon)
		if err != nil {
			return fmt.Errorf("weather fetch: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		place, err = s.places.FetchPlace(gctx, q.Lat, q.Lon)
		if err != nil {
			return fmt.Errorf("place fetch: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, types.NewAppError(
			types.ErrCodeUpstreamIncomplete,
			"upstream weather or location data unavailable",
			err,
		)
	}

	result := s.evaluate(activity, place, q.Name, q.Tags, raw)
	return &result, nil
}

// ComputeSafe is the non-throwing variant: any failure yields nil. Callers
// that render best-effort UI use this; the score itself is identical to
// Compute because both run the same evaluation path.
func (s *Service) ComputeSafe(ctx context.Context, q PlaceQuery, activityLabel string) *types.SuitabilityResult {
	result, err := s.Compute(ctx, q, activityLabel)
	if err != nil {
		s.logger.WarnContext(ctx, "suitability computation failed",
			"activity", activityLabel,
			"lat", q.Lat,
			"lon", q.Lon,
			"error", err,
		)
		return nil
	}
	return result
}

// Preview scores caller-supplied raw inputs without any upstream fetch. It
// shares the evaluation path with Compute so previews cannot drift from live
// scores. The activity label still fails fast when unrecognized.
func (s *Service) Preview(activityLabel string, place *classify.PlaceRecord, name string, tags []string, raw weather.RawForecast) (*types.SuitabilityResult, error) {
	activity, ok := types.NormalizeActivity(activityLabel)
	if !ok {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidActivity,
			fmt.Sprintf("unknown activity %q", activityLabel),
			nil,
			map[string]any{"activity": activityLabel},
		)
	}
	result := s.evaluate(activity, place, name, tags, raw)
	return &result, nil
}

// evaluate is the one normalize -> classify -> score leg shared by every
// entry point.
func (s *Service) evaluate(activity types.Activity, place *classify.PlaceRecord, name string, tags []string, raw weather.RawForecast) types.SuitabilityResult {
	snapshot := weather.Normalize(raw)
	location := classify.Classify(place, name, tags)
	return Score(activity, location, snapshot)
}
