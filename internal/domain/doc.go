// Package domain models urban flood risk for Delhi from a single rainfall
// intensity signal and a static geospatial catalog.
//
// # Reference Data
//
// The catalog holds three immutable collections loaded at process start:
// twelve historical flood hotspots (point, elevation, drainage score), six
// municipal wards (bounding ring plus pump/drain infrastructure counters),
// and a handful of routable landmarks. Unknown landmark lookups resolve to
// the city-center default (28.6139, 77.2090) rather than failing. All three
// collections are shared read-only across concurrent requests.
//
// # Risk Classification
//
// Per-hotspot classification maps (rainfall, elevation, drainage) to an
// ordinal level: 0 safe, 1 warning, 2 critical, plus a confidence
// probability. Two interchangeable strategies exist behind [RiskScorer]:
// the trained model served by an external scoring API, and the always
// available deterministic rule in [ClassifyRisk]. [FallbackScorer] composes
// the two, degrading silently to the rule on any model failure. The rule's
// additive thresholds:
//
//	rainfall:  >100 mm/h +0.6 | >60 +0.4 | >30 +0.2
//	elevation: <210 m    +0.3 | <215 +0.15
//	drainage:  <2.0      +0.3 | <2.5 +0.15
//
//	score >= 0.7 -> critical (probability capped at 0.95)
//	score >= 0.4 -> warning
//	otherwise    -> safe (probability floored at 0.1)
//
// Rainfall, elevation, and drainage cut points are strict comparisons; only
// the final level boundaries are inclusive.
//
// # Ward Aggregation
//
// A hotspot belongs to a ward when its coordinate falls inside the
// axis-aligned min/max rectangle of the ward's bounding ring, inclusive on
// both edges. The rectangle deliberately over-includes area for
// non-rectangular wards, and overlapping wards may each claim the same
// hotspot. Ward counts reduce to one level, first match wins:
//
//	critical >= 2                -> critical
//	critical >= 1 or warning >= 2 -> warning
//	warning >= 1                 -> warning
//	otherwise                    -> safe
//
// # Preparedness
//
// [ScorePreparedness] grades ward infrastructure 0-100: pump coverage
// contributes up to 60 points, desilted drains a flat 40. Bands are
// inclusive lower bounds: >=80 Excellent, >=60 Good, >=40 Fair, else Poor.
// A preparedness gap is flagged only when the ward both faces hazard (worst
// contained hotspot at warning or above) and scores below 60.
//
// # Crowd Reports and Routes
//
// [ReportGenerator] synthesizes plausible public flood reports: volume is
// floor(rainfall/10)+2 capped at 8, sources are drawn uniformly from the
// classified hotspots with at-risk ones twice as likely as safe ones, and
// coordinates get +-0.005 degree jitter. [AnnotateRoute] flags route
// proximity to hotspots within 0.5 km using flat-earth degree distance,
// one warning per hotspot.
package domain
