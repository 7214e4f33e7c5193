// Command genfixtures renders hotspot predictions, ward risk summaries, and
// seeded crowd reports for a sweep of rainfall intensities using the actual
// domain package, so dashboard and contract-test fixtures always match real
// service behavior.
//
// Usage:
//
//	go run ./cmd/genfixtures -out data/fixtures/risk_sweep.json -seed 42
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/flood-risk-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

// baseTime pins report timestamps so regenerated fixtures stay diffable.
var baseTime = time.Date(2024, time.July, 15, 9, 0, 0, 0, time.UTC)

// rainfallSweep covers the interesting classifier regimes: dry, each rule
// threshold, and the report-count cap.
var rainfallSweep = []float64{0, 20, 35, 50, 65, 85, 105, 150}

type fixture struct {
	RainfallIntensity float64                  `json:"rainfall_intensity"`
	Predictions       []prediction             `json:"predictions"`
	WardRisks         []domain.WardRiskSummary `json:"ward_risks"`
	Reports           []domain.CrowdReport     `json:"reports"`
}

type prediction struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	RiskLevel   int     `json:"risk_level"`
	Probability float64 `json:"probability"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/fixtures/risk_sweep.json", "output JSON path")
	seed := flag.Int64("seed", 42, "random seed for crowd reports")
	flag.Parse()

	domain.SetClock(clockwork.NewFakeClockAt(baseTime))
	defer domain.SetClock(nil)

	catalog := domain.DelhiCatalog()
	generator := domain.NewReportGenerator(rand.New(rand.NewSource(*seed)))

	fixtures := make([]fixture, 0, len(rainfallSweep))
	for _, rainfall := range rainfallSweep {
		assessments := domain.AssessHotspots(context.Background(), rainfall, catalog.Hotspots(), domain.RuleScorer{})

		predictions := make([]prediction, 0, len(assessments))
		for _, a := range assessments {
			predictions = append(predictions, prediction{
				ID:          a.Hotspot.ID,
				Name:        a.Hotspot.Name,
				RiskLevel:   int(a.Level),
				Probability: a.Probability,
			})
		}

		fixtures = append(fixtures, fixture{
			RainfallIntensity: rainfall,
			Predictions:       predictions,
			WardRisks:         domain.SummarizeWards(assessments, catalog.Wards()),
			Reports:           generator.Generate(rainfall, assessments),
		})
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(fixtures, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixtures: %w", err)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}

	fmt.Printf("wrote %d fixtures to %s\n", len(fixtures), *out)
	return nil
}
