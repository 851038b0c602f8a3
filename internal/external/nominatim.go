package external

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"outdoorcast/internal/classify"
)

// DefaultNominatimBaseURL is the public OSM Nominatim reverse endpoint.
const DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org/reverse"

// NominatimClient resolves a coordinate to a raw place record via OSM
// Nominatim reverse geocoding. It implements suitability.PlaceFetcher.
//
// Nominatim's terms require a descriptive User-Agent and at most one request
// per second; the retry policy is kept conservative for that reason.
type NominatimClient struct {
	base    *BaseClient
	baseURL string
	logger  *slog.Logger
}

// NewNominatimClient creates a Nominatim reverse-geocode client. An empty
// base URL falls back to the public endpoint.
func NewNominatimClient(httpClient *http.Client, baseURL, userAgent string, logger *slog.Logger) *NominatimClient {
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	policy := DefaultRetryPolicy()
	policy.MaxRetries = 1
	return &NominatimClient{
		base:    NewBaseClient(httpClient, "nominatim", policy, userAgent),
		baseURL: baseURL,
		logger:  logger,
	}
}

// nominatimResponse mirrors the jsonv2 reverse-geocode payload subset the
// classifier reads.
type nominatimResponse struct {
	Category    string `json:"category"`
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Suburb      string `json:"suburb"`
		County      string `json:"county"`
		State       string `json:"state"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
	ExtraTags map[string]string `json:"extratags"`
}

// FetchPlace reverse-geocodes the coordinate into a raw place record.
func (c *NominatimClient) FetchPlace(ctx context.Context, lat, lon float64) (*classify.PlaceRecord, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%.6f", lat))
	values.Set("lon", fmt.Sprintf("%.6f", lon))
	values.Set("format", "jsonv2")
	values.Set("extratags", "1")
	values.Set("zoom", "14")

	var payload nominatimResponse
	if err := c.base.GetJSON(ctx, c.baseURL+"?"+values.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("nominatim reverse: %w", err)
	}

	return &classify.PlaceRecord{
		Category:    payload.Category,
		Type:        payload.Type,
		DisplayName: payload.DisplayName,
		CountryCode: payload.Address.CountryCode,
		Address: classify.PlaceAddress{
			City:    payload.Address.City,
			Town:    payload.Address.Town,
			Village: payload.Address.Village,
			Suburb:  payload.Address.Suburb,
			County:  payload.Address.County,
			State:   payload.Address.State,
		},
		ExtraTags: payload.ExtraTags,
	}, nil
}
