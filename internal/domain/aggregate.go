package domain

// WardRiskSummary is the per-ward reduction of hotspot assessments combined
// with the ward's preparedness result. Recomputed per request.
type WardRiskSummary struct {
	Ward          Ward               `json:"ward"`
	Level         RiskLevel          `json:"risk_level"`
	CriticalCount int                `json:"critical_count"`
	WarningCount  int                `json:"warning_count"`
	SafeCount     int                `json:"safe_count"`
	Contained     []RiskAssessment   `json:"contained,omitempty"`
	Preparedness  PreparednessResult `json:"preparedness"`
}

// TotalCount returns the number of hotspots contained in the ward.
func (s WardRiskSummary) TotalCount() int {
	return len(s.Contained)
}

// SummarizeWards buckets classified hotspots into wards by bounding-rectangle
// containment and reduces each ward's hotspot levels into a single ward-level
// risk. A hotspot claimed by overlapping wards counts toward each of them.
func SummarizeWards(assessments []RiskAssessment, wards []Ward) []WardRiskSummary {
	summaries := make([]WardRiskSummary, 0, len(wards))
	for _, w := range wards {
		s := WardRiskSummary{Ward: w}

		worst := LevelSafe
		for _, a := range assessments {
			if !w.Contains(a.Hotspot.Point()) {
				continue
			}
			s.Contained = append(s.Contained, a)
			switch a.Level {
			case LevelCritical:
				s.CriticalCount++
			case LevelWarning:
				s.WarningCount++
			default:
				s.SafeCount++
			}
			if a.Level > worst {
				worst = a.Level
			}
		}

		s.Level = reduceWardLevel(s.CriticalCount, s.WarningCount)
		s.Preparedness = ScorePreparedness(w.PumpsAvailable, w.PumpsTotal, w.DrainsDesilted, worst)
		summaries = append(summaries, s)
	}
	return summaries
}

// reduceWardLevel maps per-level hotspot counts onto one ward risk level,
// first match wins: two criticals escalate the whole ward, a single critical
// or any warnings put it on alert, and a ward with no affected hotspots is
// safe.
func reduceWardLevel(critical, warning int) RiskLevel {
	switch {
	case critical >= 2:
		return LevelCritical
	case critical >= 1 || warning >= 2:
		return LevelWarning
	case warning >= 1:
		return LevelWarning
	default:
		return LevelSafe
	}
}
