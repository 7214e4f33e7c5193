package domain

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededGenerator(seed int64) *ReportGenerator {
	return NewReportGenerator(rand.New(rand.NewSource(seed)))
}

func riskySpots() []RiskAssessment {
	return []RiskAssessment{
		{Hotspot: Hotspot{ID: 1, Name: "Minto Bridge", Lat: 28.6324, Lng: 77.2188}, Level: LevelCritical},
		{Hotspot: Hotspot{ID: 2, Name: "Zakhira Underpass", Lat: 28.6569, Lng: 77.2078}, Level: LevelWarning},
		{Hotspot: Hotspot{ID: 3, Name: "Civil Lines", Lat: 28.6875, Lng: 77.2281}, Level: LevelSafe},
	}
}

func TestGenerate_ReportCountScalesWithRainfall(t *testing.T) {
	tests := []struct {
		name     string
		rainfall float64
		want     int
	}{
		{"dry", 0, 2},
		{"light", 15, 3},
		{"moderate", 59, 7},
		{"heavy hits the cap", 100, 8},
		{"extreme stays capped", 250, 8},
		{"negative clamps to dry", -30, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := seededGenerator(1).Generate(tt.rainfall, riskySpots())
			assert.Len(t, reports, tt.want)
		})
	}
}

func TestGenerate_ExactCountWithAllSafeHotspots(t *testing.T) {
	safe := []RiskAssessment{
		{Hotspot: Hotspot{ID: 1, Name: "High Ground", Lat: 28.7, Lng: 77.1}, Level: LevelSafe},
	}

	// Resampling keeps the count exact even when every pick can be rejected.
	reports := seededGenerator(7).Generate(100, safe)
	assert.Len(t, reports, 8)
}

func TestGenerate_NoHotspots(t *testing.T) {
	reports := seededGenerator(1).Generate(80, nil)
	assert.Empty(t, reports)
}

func TestGenerate_ReportFields(t *testing.T) {
	frozen := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	spots := riskySpots()
	reports := seededGenerator(3).Generate(60, spots)
	require.NotEmpty(t, reports)

	byID := make(map[int]RiskAssessment, len(spots))
	for _, s := range spots {
		byID[s.Hotspot.ID] = s
	}

	for _, report := range reports {
		assert.True(t, strings.HasPrefix(report.ID, "report-"))
		assert.Equal(t, frozen.Unix(), report.Timestamp)
		assert.NotEmpty(t, report.Message)
		assert.NotContains(t, report.Message, "{location}")
		assert.NotContains(t, report.Message, "{depth}")

		// The report must sit within jitter range of exactly one hotspot,
		// and carry that hotspot's risk level as severity.
		var source *RiskAssessment
		for _, s := range spots {
			if withinJitter(report.Lat, s.Hotspot.Lat) && withinJitter(report.Lng, s.Hotspot.Lng) {
				source = &s
				break
			}
		}
		require.NotNil(t, source, "report coordinate (%v, %v) matches no hotspot", report.Lat, report.Lng)
		assert.Equal(t, source.Level, report.Severity)
	}
}

func withinJitter(got, center float64) bool {
	d := got - center
	return d >= -coordJitter && d <= coordJitter
}

func TestGenerate_BiasPrefersAtRiskHotspots(t *testing.T) {
	spots := riskySpots()
	generator := seededGenerator(11)

	atRisk, safe := 0, 0
	for range 200 {
		for _, report := range generator.Generate(60, spots) {
			if report.Severity == LevelSafe {
				safe++
			} else {
				atRisk++
			}
		}
	}

	assert.GreaterOrEqual(t, atRisk, safe,
		"at-risk hotspots should be represented at least as often as safe ones")
}
