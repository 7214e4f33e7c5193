package domain

import (
	"fmt"
	"math"
	"strings"
)

// PreparednessResult is the 0-100 infrastructure readiness measure for a
// ward, with the two component sub-scores kept for explainability.
type PreparednessResult struct {
	Score      int    `json:"score"`
	Level      string `json:"level"`
	HasGap     bool   `json:"has_gap"`
	GapMessage string `json:"gap_message"`
	PumpScore  int    `json:"pump_score"`
	DrainScore int    `json:"drain_score"`
}

// ScorePreparedness combines ward pump coverage and drain desilting into a
// readiness score, then flags a preparedness gap when the ward faces a
// non-trivial hazard (worst contained hotspot at warning or above) while
// scoring below 60. A well-prepared ward is never flagged regardless of risk.
//
// Pump coverage contributes up to 60 points, desilted drains a flat 40.
// A ward with zero pumps total simply scores zero on the pump component.
func ScorePreparedness(pumpsAvailable, pumpsTotal int, drainsDesilted bool, worstRisk RiskLevel) PreparednessResult {
	pumpScore := 0.0
	if pumpsTotal > 0 {
		pumpScore = float64(pumpsAvailable) / float64(pumpsTotal) * 60
	}

	drainScore := 0
	if drainsDesilted {
		drainScore = 40
	}

	total := pumpScore + float64(drainScore)

	var level string
	switch {
	case total >= 80:
		level = "Excellent"
	case total >= 60:
		level = "Good"
	case total >= 40:
		level = "Fair"
	default:
		level = "Poor"
	}

	hasGap := worstRisk >= LevelWarning && total < 60

	var gapMessage string
	if hasGap {
		var clauses []string
		if pumpsAvailable < pumpsTotal {
			clauses = append(clauses, fmt.Sprintf("Preparedness GAP: Only %d/%d pumps deployed", pumpsAvailable, pumpsTotal))
		}
		if !drainsDesilted {
			if len(clauses) > 0 {
				clauses = append(clauses, "Drains not desilted")
			} else {
				clauses = append(clauses, "Preparedness GAP: Drains not desilted")
			}
		}
		gapMessage = strings.Join(clauses, ", ")
	}

	return PreparednessResult{
		Score:      int(math.Round(total)),
		Level:      level,
		HasGap:     hasGap,
		GapMessage: gapMessage,
		PumpScore:  int(math.Round(pumpScore)),
		DrainScore: drainScore,
	}
}
