package core

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"outdoorcast/internal/classify"
	"outdoorcast/internal/suitability"
	"outdoorcast/internal/types"
	"outdoorcast/internal/weather"
)

// HandleListActivities returns the closed set of scoreable activities.
// Mounted at GET /v1/activities.
func (s *Server) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	JSON(w, r, http.StatusOK, APIResponse{Data: types.AllActivities})
}

// HandleGetSuitability computes a live suitability score for a coordinate.
// Mounted at GET /v1/suitability.
//
// Query parameters: lat, lon, activity (required); name, tags (optional,
// tags comma-separated or repeated).
func (s *Server) HandleGetSuitability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	activityLabel := q.Get("activity")
	if activityLabel == "" {
		Error(w, r, types.NewAppErrorWithDetails(
			types.ErrCodeValidationMissingField,
			"activity query parameter is required",
			nil,
			map[string]any{"field": "activity"},
		))
		return
	}

	lat, err := parseCoordinate(q.Get("lat"), -90, 90, types.ErrCodeValidationInvalidLat)
	if err != nil {
		Error(w, r, err)
		return
	}
	lon, err := parseCoordinate(q.Get("lon"), -180, 180, types.ErrCodeValidationInvalidLon)
	if err != nil {
		Error(w, r, err)
		return
	}

	query := suitability.PlaceQuery{
		Lat:  lat,
		Lon:  lon,
		Name: q.Get("name"),
		Tags: parseTags(q["tags"]),
	}

	result, err := s.Suitability.Compute(r.Context(), query, activityLabel)
	if err != nil {
		s.recordUpstreamError(err)
		Error(w, r, err)
		return
	}

	s.recordScore(result)
	JSON(w, r, http.StatusOK, APIResponse{Data: result})
}

// previewRequest carries caller-supplied raw inputs for offline scoring.
type previewRequest struct {
	Activity string                `json:"activity"`
	Name     string                `json:"name,omitempty"`
	Tags     []string              `json:"tags,omitempty"`
	Place    *classify.PlaceRecord `json:"place,omitempty"`
	Weather  weather.RawForecast   `json:"weather"`
}

// HandlePreviewSuitability scores caller-supplied raw place and weather
// fields without any upstream fetch. Mounted at POST /v1/suitability/preview.
func (s *Server) HandlePreviewSuitability(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		Error(w, r, err)
		return
	}

	if req.Activity == "" {
		Error(w, r, types.NewAppErrorWithDetails(
			types.ErrCodeValidationMissingField,
			"activity field is required",
			nil,
			map[string]any{"field": "activity"},
		))
		return
	}

	result, err := s.Suitability.Preview(req.Activity, req.Place, req.Name, req.Tags, req.Weather)
	if err != nil {
		Error(w, r, err)
		return
	}

	s.recordScore(result)
	JSON(w, r, http.StatusOK, APIResponse{Data: result})
}

// parseCoordinate parses and range-checks one coordinate query parameter.
func parseCoordinate(raw string, min, max float64, code types.ErrorCode) (float64, error) {
	if raw == "" {
		return 0, types.NewAppError(code, "coordinate query parameter is required", nil)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < min || v > max {
		return 0, types.NewAppErrorWithDetails(
			code,
			"coordinate out of range",
			err,
			map[string]any{"value": raw},
		)
	}
	return v, nil
}

// parseTags accepts both repeated tags params and comma-separated values.
func parseTags(values []string) []string {
	var tags []string
	for _, v := range values {
		for _, tag := range strings.Split(v, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

func (s *Server) recordScore(result *types.SuitabilityResult) {
	if s.Metrics == nil || result == nil {
		return
	}
	s.Metrics.ScoresComputed.WithLabelValues(string(result.Activity), string(result.Label)).Inc()
}

func (s *Server) recordUpstreamError(err error) {
	if s.Metrics == nil {
		return
	}
	// The orchestrator wraps the failing fetch with a "weather fetch" or
	// "place fetch" prefix inside the AppError cause.
	msg := err.Error()
	var appErr *types.AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		msg = appErr.Err.Error()
	}
	switch {
	case strings.Contains(msg, "weather fetch"):
		s.Metrics.UpstreamErrors.WithLabelValues("weather").Inc()
	case strings.Contains(msg, "place fetch"):
		s.Metrics.UpstreamErrors.WithLabelValues("geocode").Inc()
	}
}
