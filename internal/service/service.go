package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/flood-risk-service/internal/domain"
	"github.com/couchcryptid/flood-risk-service/internal/observability"
)

// ErrWardNotFound is returned when an SOS broadcast names an unknown ward.
// It is the only caller-visible domain error in the service.
var ErrWardNotFound = errors.New("ward not found")

// whatsappGroups is the fixed count of community WhatsApp groups reached by
// a broadcast, reported for dashboard display.
const whatsappGroups = 15

// RouteResult is a planned route with its hazard annotations.
type RouteResult struct {
	Plan     domain.RoutePlan
	Warnings []string
	Degraded bool
}

// SOSResult summarizes a ward broadcast hand-off.
type SOSResult struct {
	WardName          string
	Message           string
	SMSSent           int
	WhatsAppGroups    int
	ResidentsNotified int
	Timestamp         int64
}

// Service orchestrates the flood-risk derivations over the immutable catalog
// and the external collaborators. Every method degrades collaborator
// failures to deterministic results; none of them fail except BroadcastSOS
// on an unknown ward.
type Service struct {
	catalog *domain.Catalog
	scorer  domain.RiskScorer
	planner domain.RoutePlanner
	alerts  domain.AlertPublisher // nil when publishing is disabled
	logger  *slog.Logger
	metrics *observability.Metrics

	// reports' random source is not goroutine-safe.
	reportsMu sync.Mutex
	reports   *domain.ReportGenerator
}

// New assembles the service. A nil planner forces straight-line fallback
// routes; a nil alerts publisher skips broadcast hand-off.
func New(
	catalog *domain.Catalog,
	scorer domain.RiskScorer,
	reports *domain.ReportGenerator,
	planner domain.RoutePlanner,
	alerts domain.AlertPublisher,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		catalog: catalog,
		scorer:  scorer,
		reports: reports,
		planner: planner,
		alerts:  alerts,
		logger:  logger,
		metrics: metrics,
	}
}

// Hotspots returns the hotspot catalog.
func (s *Service) Hotspots() []domain.Hotspot {
	return s.catalog.Hotspots()
}

// Wards returns the ward catalog.
func (s *Service) Wards() []domain.Ward {
	return s.catalog.Wards()
}

// CheckReadiness reports whether the reference catalog is loaded.
func (s *Service) CheckReadiness(_ context.Context) error {
	if len(s.catalog.Hotspots()) == 0 || len(s.catalog.Wards()) == 0 {
		return errors.New("reference catalog is empty")
	}
	return nil
}

// PredictRisk classifies every hotspot for the given rainfall intensity.
func (s *Service) PredictRisk(ctx context.Context, rainfall float64) []domain.RiskAssessment {
	s.metrics.PredictionRequests.Inc()
	return domain.AssessHotspots(ctx, rainfall, s.catalog.Hotspots(), s.scorer)
}

// WardRisks classifies hotspots and aggregates them into per-ward summaries
// with preparedness scoring.
func (s *Service) WardRisks(ctx context.Context, rainfall float64) []domain.WardRiskSummary {
	s.metrics.WardRiskRequests.Inc()
	assessments := domain.AssessHotspots(ctx, rainfall, s.catalog.Hotspots(), s.scorer)
	return domain.SummarizeWards(assessments, s.catalog.Wards())
}

// CrowdReports synthesizes crowd-sourced incident reports for the given
// rainfall intensity, biased toward at-risk hotspots.
func (s *Service) CrowdReports(ctx context.Context, rainfall float64) []domain.CrowdReport {
	assessments := domain.AssessHotspots(ctx, rainfall, s.catalog.Hotspots(), s.scorer)

	s.reportsMu.Lock()
	reports := s.reports.Generate(rainfall, assessments)
	s.reportsMu.Unlock()

	s.metrics.ReportsGenerated.Add(float64(len(reports)))
	s.metrics.ReportBatchSize.Observe(float64(len(reports)))
	return reports
}

// PlanRoute resolves two landmark keys and plans a route between them,
// annotated with hotspot proximity warnings. Unknown keys substitute the
// city-center default; any routing collaborator failure degrades to the
// straight-line fallback route. PlanRoute never fails.
func (s *Service) PlanRoute(ctx context.Context, startKey, endKey string) RouteResult {
	start, ok := s.catalog.FindLandmark(startKey)
	if !ok {
		s.logger.Debug("unknown start landmark, using default", "key", startKey)
	}
	end, ok := s.catalog.FindLandmark(endKey)
	if !ok {
		s.logger.Debug("unknown end landmark, using default", "key", endKey)
	}

	result := RouteResult{}
	if s.planner != nil {
		plan, err := s.planner.Plan(ctx, start, end)
		if err == nil && len(plan.Points) > 0 {
			result.Plan = plan
		} else {
			s.logger.Warn("route planning failed, using straight-line fallback",
				"error", err,
				"start", startKey,
				"end", endKey,
			)
			result.Plan = domain.FallbackRoute(start, end)
			result.Degraded = true
		}
	} else {
		result.Plan = domain.FallbackRoute(start, end)
		result.Degraded = true
	}

	outcome := "ok"
	if result.Degraded {
		outcome = "fallback"
	}
	s.metrics.RouteRequests.WithLabelValues(outcome).Inc()

	result.Warnings = domain.AnnotateRoute(result.Plan.Points, s.catalog.Hotspots())
	return result
}

// BroadcastSOS hands a ward-wide alert to the notification pipeline. The
// broadcast summary does not depend on publish success; delivery failures
// are logged and counted, never surfaced.
func (s *Service) BroadcastSOS(ctx context.Context, wardID, message string) (SOSResult, error) {
	ward, ok := s.catalog.FindWard(wardID)
	if !ok {
		return SOSResult{}, ErrWardNotFound
	}

	now := time.Now().Unix()
	alert := domain.Alert{
		WardID:    ward.ID,
		WardName:  ward.Name,
		Message:   message,
		Contacts:  ward.EmergencyContacts,
		Timestamp: now,
	}

	switch {
	case s.alerts == nil:
		s.metrics.AlertsPublished.WithLabelValues("disabled").Inc()
	default:
		if err := s.alerts.Publish(ctx, alert); err != nil {
			s.logger.Error("alert publish failed", "error", err, "ward", ward.ID)
			s.metrics.AlertsPublished.WithLabelValues("error").Inc()
		} else {
			s.metrics.AlertsPublished.WithLabelValues("ok").Inc()
		}
	}

	return SOSResult{
		WardName:          ward.Name,
		Message:           message,
		SMSSent:           ward.EmergencyContacts,
		WhatsAppGroups:    whatsappGroups,
		ResidentsNotified: ward.EmergencyContacts,
		Timestamp:         now,
	}, nil
}
