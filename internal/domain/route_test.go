package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateRoute_WarnsNearHotspot(t *testing.T) {
	points := []Geo{{Lat: 28.6000, Lng: 77.2000}, {Lat: 28.6330, Lng: 77.2190}}
	hotspots := []Hotspot{
		{ID: 1, Name: "Minto Bridge", Lat: 28.6324, Lng: 77.2188},
	}

	warnings := AnnotateRoute(points, hotspots)

	require.Len(t, warnings, 1)
	assert.Equal(t, "Route passes near Minto Bridge (known flood zone)", warnings[0])
}

func TestAnnotateRoute_FarRouteIsClean(t *testing.T) {
	points := []Geo{{Lat: 28.5000, Lng: 77.0000}, {Lat: 28.5100, Lng: 77.0100}}
	hotspots := []Hotspot{
		{ID: 1, Name: "Minto Bridge", Lat: 28.6324, Lng: 77.2188},
	}

	assert.Empty(t, AnnotateRoute(points, hotspots))
}

func TestAnnotateRoute_OneWarningPerHotspot(t *testing.T) {
	// Several route points inside the hazard radius of the same hotspot
	// still produce a single warning for it.
	points := []Geo{
		{Lat: 28.6320, Lng: 77.2185},
		{Lat: 28.6325, Lng: 77.2190},
		{Lat: 28.6328, Lng: 77.2192},
	}
	hotspots := []Hotspot{
		{ID: 1, Name: "Minto Bridge", Lat: 28.6324, Lng: 77.2188},
		{ID: 2, Name: "ITO Crossing", Lat: 28.6280, Lng: 77.2410},
	}

	warnings := AnnotateRoute(points, hotspots)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Minto Bridge")
}

func TestAnnotateRoute_WarningsFollowHotspotOrder(t *testing.T) {
	points := []Geo{
		{Lat: 28.6324, Lng: 77.2188},
		{Lat: 28.6569, Lng: 77.2078},
	}
	hotspots := []Hotspot{
		{ID: 1, Name: "Zakhira Underpass", Lat: 28.6569, Lng: 77.2078},
		{ID: 2, Name: "Minto Bridge", Lat: 28.6324, Lng: 77.2188},
	}

	warnings := AnnotateRoute(points, hotspots)

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "Zakhira Underpass")
	assert.Contains(t, warnings[1], "Minto Bridge")
}

func TestAnnotateRoute_EmptyRoute(t *testing.T) {
	hotspots := []Hotspot{{ID: 1, Name: "Minto Bridge", Lat: 28.6324, Lng: 77.2188}}
	assert.Empty(t, AnnotateRoute(nil, hotspots))
}

func TestFallbackRoute(t *testing.T) {
	origin := Geo{Lat: 28.6139, Lng: 77.2090}
	dest := Geo{Lat: 28.6324, Lng: 77.2188}

	plan := FallbackRoute(origin, dest)

	assert.Equal(t, []Geo{origin, dest}, plan.Points)
	assert.Equal(t, 5.0, plan.DistanceKm)
	assert.Equal(t, 15.0, plan.DurationMin)
}

func TestDegreeDistanceKm(t *testing.T) {
	// 0.01 degrees of separation on one axis is roughly 1.11 km.
	d := degreeDistanceKm(Geo{Lat: 28.60, Lng: 77.20}, Geo{Lat: 28.61, Lng: 77.20})
	assert.InDelta(t, 1.11, d, 1e-9)

	assert.Zero(t, degreeDistanceKm(Geo{Lat: 28.6, Lng: 77.2}, Geo{Lat: 28.6, Lng: 77.2}))
}
