package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskLevel_String(t *testing.T) {
	assert.Equal(t, "safe", LevelSafe.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "critical", LevelCritical.String())
	assert.Equal(t, "unknown", RiskLevel(9).String())
}

func TestFindLandmark(t *testing.T) {
	catalog := DelhiCatalog()

	t.Run("known landmark", func(t *testing.T) {
		g, ok := catalog.FindLandmark("Minto Bridge")
		assert.True(t, ok)
		assert.Equal(t, Geo{Lat: 28.6324, Lng: 77.2188}, g)
	})

	t.Run("unknown landmark falls back to city center", func(t *testing.T) {
		g, ok := catalog.FindLandmark("Atlantis")
		assert.False(t, ok)
		assert.Equal(t, DefaultLandmark, g)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, ok := catalog.FindLandmark("minto bridge")
		assert.False(t, ok)
	})
}

func TestFindWard(t *testing.T) {
	catalog := DelhiCatalog()

	ward, ok := catalog.FindWard("WARD_005")
	require.True(t, ok)
	assert.Equal(t, "Laxmi Nagar", ward.Name)
	assert.Equal(t, 1, ward.PumpsAvailable)
	assert.Equal(t, 3, ward.PumpsTotal)
	assert.False(t, ward.DrainsDesilted)

	_, ok = catalog.FindWard("WARD_999")
	assert.False(t, ok)
}

func TestDelhiCatalog_ReferenceData(t *testing.T) {
	catalog := DelhiCatalog()

	hotspots := catalog.Hotspots()
	wards := catalog.Wards()
	require.Len(t, hotspots, 12)
	require.Len(t, wards, 6)

	seenIDs := make(map[int]bool, len(hotspots))
	for _, h := range hotspots {
		assert.False(t, seenIDs[h.ID], "duplicate hotspot id %d", h.ID)
		seenIDs[h.ID] = true
		assert.NotEmpty(t, h.Name)
		assert.Positive(t, h.Elevation)
		assert.Positive(t, h.DrainageScore)
	}

	for _, w := range wards {
		require.GreaterOrEqual(t, len(w.Bounds), 4, "ward %s bounds too short", w.ID)
		assert.Equal(t, w.Bounds[0], w.Bounds[len(w.Bounds)-1], "ward %s ring not closed", w.ID)
		assert.LessOrEqual(t, w.PumpsAvailable, w.PumpsTotal, "ward %s has more pumps than capacity", w.ID)
		assert.Positive(t, w.EmergencyContacts, "ward %s has no contacts", w.ID)
	}
}

func TestWardContains_EmptyBounds(t *testing.T) {
	w := Ward{ID: "WARD_X"}
	assert.False(t, w.Contains(Geo{Lat: 28.6, Lng: 77.2}))
}
