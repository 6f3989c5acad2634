// Package maps implements the Google Distance Matrix route provider.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobsearch/config"
	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

type distanceMatrixClient struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	trafficModel string
}

// NewDistanceMatrixClient creates the distance-matrix route provider. The
// per-request deadline is the caller's responsibility via ctx; the embedded
// client timeout is only a safety net.
func NewDistanceMatrixClient(cfg *config.Config) service.RouteProvider {
	client := &distanceMatrixClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
	}

	if cfg != nil && cfg.Maps != nil {
		client.apiKey = cfg.Maps.APIKey
		client.trafficModel = cfg.Maps.TrafficModel
		if cfg.Maps.BaseURL != "" {
			client.baseURL = cfg.Maps.BaseURL
		}
	}
	if client.trafficModel == "" {
		client.trafficModel = "best_guess"
	}

	return client
}

// matrixResponse mirrors the provider's JSON payload. Only the fields the
// matcher consumes are decoded.
type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"` // seconds
			} `json:"duration"`
			DurationInTraffic *struct {
				Value int `json:"value"` // seconds
			} `json:"duration_in_traffic"`
		} `json:"elements"`
	} `json:"rows"`
	ErrorMessage string `json:"error_message"`
}

func (c *distanceMatrixClient) DistanceMatrix(ctx context.Context, origin entity.GeoPoint, destinations []entity.GeoPoint, useTraffic bool) ([]service.RouteLeg, error) {
	if len(destinations) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("origins", formatPoint(origin))
	params.Set("destinations", joinPoints(destinations))
	params.Set("mode", "driving")
	params.Set("units", "imperial")
	params.Set("key", c.apiKey)
	if useTraffic {
		params.Set("departure_time", "now")
		params.Set("traffic_model", c.trafficModel)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build distance matrix request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "distance matrix request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("distance matrix returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read distance matrix response")
	}

	var payload matrixResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decode distance matrix response")
	}

	if payload.Status != "OK" {
		if payload.ErrorMessage != "" {
			return nil, errors.Errorf("distance matrix status %s: %s", payload.Status, payload.ErrorMessage)
		}

		return nil, errors.Errorf("distance matrix status %s", payload.Status)
	}

	// A single origin yields a single row with one element per destination.
	if len(payload.Rows) != 1 || len(payload.Rows[0].Elements) != len(destinations) {
		return nil, errors.Errorf("distance matrix shape mismatch: want 1x%d", len(destinations))
	}

	legs := make([]service.RouteLeg, len(destinations))
	for i, element := range payload.Rows[0].Elements {
		leg := service.RouteLeg{
			Status:          element.Status,
			DistanceMeters:  element.Distance.Value,
			DurationSeconds: element.Duration.Value,
		}
		if element.DurationInTraffic != nil {
			seconds := element.DurationInTraffic.Value
			leg.DurationInTrafficSeconds = &seconds
		}
		legs[i] = leg
	}

	return legs, nil
}

func formatPoint(p entity.GeoPoint) string {
	return fmt.Sprintf("%f,%f", p.Latitude, p.Longitude)
}

func joinPoints(points []entity.GeoPoint) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = formatPoint(p)
	}

	return strings.Join(parts, "|")
}
