package osrm

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/flood-risk-service/internal/domain"
	"github.com/couchcryptid/flood-risk-service/internal/observability"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, 2*time.Second, observability.NewMetricsForTesting(), testLogger())
}

func TestPlan_Success(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"geometry": {"coordinates": [[77.2197, 28.6328], [77.2188, 28.6324]]},
				"distance": 1234.0,
				"duration": 300.0
			}]
		}`))
	}))
	defer ts.Close()

	plan, err := newTestClient(ts.URL).Plan(context.Background(),
		domain.Geo{Lat: 28.6328, Lng: 77.2197},
		domain.Geo{Lat: 28.6324, Lng: 77.2188},
	)
	require.NoError(t, err)

	// Coordinates come back lng,lat and must flip to lat,lng.
	assert.Equal(t, []domain.Geo{
		{Lat: 28.6328, Lng: 77.2197},
		{Lat: 28.6324, Lng: 77.2188},
	}, plan.Points)
	assert.InDelta(t, 1.234, plan.DistanceKm, 1e-9)
	assert.InDelta(t, 5.0, plan.DurationMin, 1e-9)
	assert.Equal(t, "/route/v1/driving/77.219700,28.632800;77.218800,28.632400", gotPath)
}

func TestPlan_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "try again later", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Plan(context.Background(), domain.Geo{}, domain.Geo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestPlan_ErrorCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Plan(context.Background(), domain.Geo{}, domain.Geo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"NoRoute"`)
}

func TestPlan_NoRoutes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "Ok", "routes": []}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Plan(context.Background(), domain.Geo{}, domain.Geo{})
	assert.Error(t, err)
}

func TestPlan_MalformedGeometry(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "Ok", "routes": [{"geometry": {"coordinates": [[77.2197]]}}]}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Plan(context.Background(), domain.Geo{}, domain.Geo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed coordinate")
}

func TestPlan_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Plan(context.Background(), domain.Geo{}, domain.Geo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestPlan_ServerUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	_, err := newTestClient(ts.URL).Plan(context.Background(), domain.Geo{}, domain.Geo{})
	assert.Error(t, err)
}
