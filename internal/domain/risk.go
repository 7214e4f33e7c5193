package domain

import (
	"context"
	"log/slog"
)

// RiskAssessment is the classification result for a single hotspot.
// Assessments are recomputed on every request and never persisted.
type RiskAssessment struct {
	Hotspot     Hotspot   `json:"hotspot"`
	Level       RiskLevel `json:"risk_level"`
	Probability float64   `json:"probability"`
}

// RiskScorer classifies flood risk for one hotspot observation.
type RiskScorer interface {
	// Score maps (rainfall mm/h, elevation m, drainage score) to a risk
	// level and a confidence probability in [0, 1].
	Score(ctx context.Context, rainfall, elevation, drainage float64) (RiskLevel, float64, error)
}

// ClassifyRisk is the deterministic rule-based classifier. It defines the
// ground-truth semantics the trained model approximates and is always
// available as a fallback.
//
// An additive risk score accumulates threshold contributions:
//
//	rainfall  >100 +0.6 | >60 +0.4 | >30 +0.2
//	elevation <210 +0.3 | <215 +0.15
//	drainage  <2.0 +0.3 | <2.5 +0.15
//
// Score >= 0.7 is critical, >= 0.4 is warning, otherwise safe. The function
// is pure: identical inputs always produce identical outputs. Negative
// rainfall clears no threshold and simply contributes nothing.
func ClassifyRisk(rainfall, elevation, drainage float64) (RiskLevel, float64) {
	score := 0.0

	switch {
	case rainfall > 100:
		score += 0.6
	case rainfall > 60:
		score += 0.4
	case rainfall > 30:
		score += 0.2
	}

	switch {
	case elevation < 210:
		score += 0.3
	case elevation < 215:
		score += 0.15
	}

	switch {
	case drainage < 2.0:
		score += 0.3
	case drainage < 2.5:
		score += 0.15
	}

	switch {
	case score >= 0.7:
		return LevelCritical, min(0.95, score)
	case score >= 0.4:
		return LevelWarning, score
	default:
		return LevelSafe, max(0.1, score)
	}
}

// RuleScorer adapts ClassifyRisk to the RiskScorer interface. It never
// returns an error.
type RuleScorer struct{}

func (RuleScorer) Score(_ context.Context, rainfall, elevation, drainage float64) (RiskLevel, float64, error) {
	level, probability := ClassifyRisk(rainfall, elevation, drainage)
	return level, probability, nil
}

// FallbackScorer tries a primary scorer (typically the trained model client)
// and silently falls back to the deterministic rule when the primary errors
// or returns an out-of-range result. Callers never see the failure; it is
// logged and reported through the optional OnFallback hook.
type FallbackScorer struct {
	primary RiskScorer
	logger  *slog.Logger

	// OnFallback, when set, is invoked once per fallback. Wired to a
	// metrics counter in production.
	OnFallback func()
}

// NewFallbackScorer creates the composition wrapper. A nil primary means
// the rule classifier is used directly.
func NewFallbackScorer(primary RiskScorer, logger *slog.Logger) *FallbackScorer {
	return &FallbackScorer{primary: primary, logger: logger}
}

func (s *FallbackScorer) Score(ctx context.Context, rainfall, elevation, drainage float64) (RiskLevel, float64, error) {
	if s.primary == nil {
		level, probability := ClassifyRisk(rainfall, elevation, drainage)
		return level, probability, nil
	}

	level, probability, err := s.primary.Score(ctx, rainfall, elevation, drainage)
	if err == nil && validScore(level, probability) {
		return level, probability, nil
	}

	s.logger.Warn("model scorer failed, using rule classifier",
		"error", err,
		"level", int(level),
		"probability", probability,
	)
	if s.OnFallback != nil {
		s.OnFallback()
	}

	level, probability = ClassifyRisk(rainfall, elevation, drainage)
	return level, probability, nil
}

func validScore(level RiskLevel, probability float64) bool {
	return level >= LevelSafe && level <= LevelCritical && probability >= 0 && probability <= 1
}

// AssessHotspots classifies every hotspot for the given rainfall intensity.
// Scorer errors degrade to the rule classifier, so the returned slice always
// holds one assessment per hotspot.
func AssessHotspots(ctx context.Context, rainfall float64, hotspots []Hotspot, scorer RiskScorer) []RiskAssessment {
	assessments := make([]RiskAssessment, 0, len(hotspots))
	for _, h := range hotspots {
		level, probability, err := scorer.Score(ctx, rainfall, h.Elevation, h.DrainageScore)
		if err != nil || !validScore(level, probability) {
			level, probability = ClassifyRisk(rainfall, h.Elevation, h.DrainageScore)
		}
		assessments = append(assessments, RiskAssessment{
			Hotspot:     h,
			Level:       level,
			Probability: probability,
		})
	}
	return assessments
}
