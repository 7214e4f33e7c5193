package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePreparedness(t *testing.T) {
	tests := []struct {
		name           string
		pumpsAvailable int
		pumpsTotal     int
		drainsDesilted bool
		worstRisk      RiskLevel
		wantScore      int
		wantLevel      string
		wantGap        bool
		wantMessage    string
	}{
		{
			name:      "no infrastructure no hazard",
			wantScore: 0, wantLevel: "Poor", wantGap: false, wantMessage: "",
		},
		{
			name:      "no infrastructure under hazard",
			worstRisk: LevelWarning,
			wantScore: 0, wantLevel: "Poor", wantGap: true,
			wantMessage: "Preparedness GAP: Drains not desilted",
		},
		{
			name:           "full readiness under critical hazard",
			pumpsAvailable: 5, pumpsTotal: 5, drainsDesilted: true, worstRisk: LevelCritical,
			wantScore: 100, wantLevel: "Excellent", wantGap: false, wantMessage: "",
		},
		{
			name:           "pump shortfall alone",
			pumpsAvailable: 1, pumpsTotal: 4, drainsDesilted: true, worstRisk: LevelCritical,
			wantScore: 55, wantLevel: "Fair", wantGap: true,
			wantMessage: "Preparedness GAP: Only 1/4 pumps deployed",
		},
		{
			name:           "pump shortfall and silted drains",
			pumpsAvailable: 1, pumpsTotal: 3, drainsDesilted: false, worstRisk: LevelWarning,
			wantScore: 20, wantLevel: "Poor", wantGap: true,
			wantMessage: "Preparedness GAP: Only 1/3 pumps deployed, Drains not desilted",
		},
		{
			name:           "well prepared high-risk ward is not flagged",
			pumpsAvailable: 4, pumpsTotal: 5, drainsDesilted: true, worstRisk: LevelCritical,
			wantScore: 88, wantLevel: "Excellent", wantGap: false, wantMessage: "",
		},
		{
			name:           "under-prepared but safe ward is not flagged",
			pumpsAvailable: 1, pumpsTotal: 3, drainsDesilted: false, worstRisk: LevelSafe,
			wantScore: 20, wantLevel: "Poor", wantGap: false, wantMessage: "",
		},
		{
			name:           "good band lower bound",
			pumpsAvailable: 2, pumpsTotal: 6, drainsDesilted: true, worstRisk: LevelWarning,
			wantScore: 60, wantLevel: "Good", wantGap: false, wantMessage: "",
		},
		{
			name:           "fair band lower bound",
			pumpsAvailable: 0, pumpsTotal: 4, drainsDesilted: true, worstRisk: LevelSafe,
			wantScore: 40, wantLevel: "Fair", wantGap: false, wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScorePreparedness(tt.pumpsAvailable, tt.pumpsTotal, tt.drainsDesilted, tt.worstRisk)

			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantLevel, result.Level)
			assert.Equal(t, tt.wantGap, result.HasGap)
			assert.Equal(t, tt.wantMessage, result.GapMessage)
		})
	}
}

func TestScorePreparedness_SubScores(t *testing.T) {
	result := ScorePreparedness(3, 4, true, LevelSafe)

	assert.Equal(t, 45, result.PumpScore)
	assert.Equal(t, 40, result.DrainScore)
	assert.Equal(t, 85, result.Score)
}

func TestScorePreparedness_ZeroPumpsTotalIsNotAnError(t *testing.T) {
	result := ScorePreparedness(0, 0, false, LevelCritical)

	assert.Equal(t, 0, result.PumpScore)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "Poor", result.Level)
	assert.True(t, result.HasGap)
	assert.Equal(t, "Preparedness GAP: Drains not desilted", result.GapMessage)
}
