package domain

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CrowdReport is a synthetically generated incident message simulating a
// public flood report near a hotspot.
type CrowdReport struct {
	ID        string    `json:"id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Message   string    `json:"message"`
	Timestamp int64     `json:"timestamp"`
	Severity  RiskLevel `json:"severity"`
}

// reportTemplates use {location} and {depth} placeholders filled per report.
var reportTemplates = []string{
	"User reported {depth}ft water here",
	"Car stuck at {location}",
	"Traffic moving very slowly",
	"Water level rising rapidly",
	"Avoid this area",
	"Drain overflow reported",
	"Pedestrians wading through water",
	"Shop flooded on {location}",
}

// reportDepths are the plausible reported water depths in feet.
var reportDepths = []string{"1", "2", "3", "1.5", "2.5"}

// maxReports caps report volume regardless of rainfall intensity.
const maxReports = 8

// coordJitter is the half-width of the uniform coordinate noise in degrees.
const coordJitter = 0.005

// ReportGenerator produces biased-random crowd reports. The random source is
// injected so tests can seed it for deterministic output; it is not safe for
// concurrent use by multiple goroutines.
type ReportGenerator struct {
	rng *rand.Rand
}

// NewReportGenerator creates a generator around the given random source.
// A nil source gets a time-seeded one.
func NewReportGenerator(rng *rand.Rand) *ReportGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ReportGenerator{rng: rng}
}

// Generate produces synthetic crowd reports for the given rainfall intensity.
// Report volume scales with rainfall: floor(rainfall/10)+2, capped at
// maxReports, with negative rainfall treated as zero. Source hotspots are
// drawn uniformly but biased toward at-risk ones: a safe hotspot is accepted
// only half the time and resampled otherwise. Each report jitters the source
// coordinate and copies the source's risk level as its severity.
func (g *ReportGenerator) Generate(rainfall float64, assessments []RiskAssessment) []CrowdReport {
	if len(assessments) == 0 {
		return nil
	}

	if rainfall < 0 {
		rainfall = 0
	}
	count := int(rainfall/10) + 2
	if count > maxReports {
		count = maxReports
	}

	now := clock.Now().Unix()
	reports := make([]CrowdReport, 0, count)
	for len(reports) < count {
		src := assessments[g.rng.Intn(len(assessments))]
		if src.Level == LevelSafe && g.rng.Float64() < 0.5 {
			continue
		}

		template := reportTemplates[g.rng.Intn(len(reportTemplates))]
		depth := reportDepths[g.rng.Intn(len(reportDepths))]
		message := strings.NewReplacer(
			"{location}", src.Hotspot.Name,
			"{depth}", depth,
		).Replace(template)

		reports = append(reports, CrowdReport{
			ID:        "report-" + uuid.NewString(),
			Lat:       src.Hotspot.Lat + g.jitter(),
			Lng:       src.Hotspot.Lng + g.jitter(),
			Message:   message,
			Timestamp: now,
			Severity:  src.Level,
		})
	}
	return reports
}

// jitter returns uniform noise in [-coordJitter, +coordJitter].
func (g *ReportGenerator) jitter() float64 {
	return (g.rng.Float64()*2 - 1) * coordJitter
}
