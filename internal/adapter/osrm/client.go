package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/flood-risk-service/internal/domain"
	"github.com/couchcryptid/flood-risk-service/internal/observability"
)

// Client implements domain.RoutePlanner against an OSRM-compatible routing
// API. Failures are returned to the caller; the service layer decides how to
// degrade.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OSRM routing client with a short request timeout.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Plan requests a driving route between two coordinates.
func (c *Client) Plan(ctx context.Context, start, end domain.Geo) (domain.RoutePlan, error) {
	// OSRM uses lng,lat order.
	u := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.baseURL, start.Lng, start.Lat, end.Lng, end.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.RoutePlan{}, fmt.Errorf("create request: %w", err)
	}

	began := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.RouteAPIDuration.Observe(time.Since(began).Seconds())
	}
	if err != nil {
		return domain.RoutePlan{}, fmt.Errorf("route request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.RoutePlan{}, fmt.Errorf("routing API error: status %d: %s", resp.StatusCode, body)
	}

	var osrmResp response
	if err := json.NewDecoder(resp.Body).Decode(&osrmResp); err != nil {
		return domain.RoutePlan{}, fmt.Errorf("decode response: %w", err)
	}

	if osrmResp.Code != "Ok" || len(osrmResp.Routes) == 0 {
		return domain.RoutePlan{}, fmt.Errorf("routing API returned code %q with %d routes", osrmResp.Code, len(osrmResp.Routes))
	}

	r := osrmResp.Routes[0]
	points := make([]domain.Geo, 0, len(r.Geometry.Coordinates))
	for _, coord := range r.Geometry.Coordinates {
		if len(coord) != 2 {
			return domain.RoutePlan{}, fmt.Errorf("malformed coordinate pair in route geometry")
		}
		points = append(points, domain.Geo{Lat: coord[1], Lng: coord[0]})
	}

	return domain.RoutePlan{
		Points:      points,
		DistanceKm:  r.Distance / 1000,
		DurationMin: r.Duration / 60,
	}, nil
}

// OSRM API response types.

type response struct {
	Code   string  `json:"code"`
	Routes []route `json:"routes"`
}

type route struct {
	Geometry geometry `json:"geometry"`
	Distance float64  `json:"distance"` // meters
	Duration float64  `json:"duration"` // seconds
}

type geometry struct {
	Coordinates [][]float64 `json:"coordinates"` // [lng, lat]
}
