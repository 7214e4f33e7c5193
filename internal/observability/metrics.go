package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the flood risk
// service.
type Metrics struct {
	PredictionRequests prometheus.Counter
	WardRiskRequests   prometheus.Counter
	ModelFallbacks     prometheus.Counter

	// Crowd report metrics.
	ReportsGenerated prometheus.Counter
	ReportBatchSize  prometheus.Histogram

	// Routing metrics.
	RouteRequests     *prometheus.CounterVec // labels: outcome={ok,fallback}
	RouteCacheLookups *prometheus.CounterVec // labels: result={hit,miss}
	RouteAPIDuration  prometheus.Histogram

	// Alert publishing metrics.
	AlertsPublished *prometheus.CounterVec // labels: outcome={ok,error,disabled}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		PredictionRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_risk",
			Name:      "prediction_requests_total",
			Help:      "Total hotspot risk prediction requests served.",
		}),
		WardRiskRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_risk",
			Name:      "ward_risk_requests_total",
			Help:      "Total ward risk aggregation requests served.",
		}),
		ModelFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_risk",
			Name:      "model_fallbacks_total",
			Help:      "Times the trained model was bypassed for the rule classifier.",
		}),
		ReportsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_risk",
			Name:      "crowd_reports_generated_total",
			Help:      "Total synthetic crowd reports generated.",
		}),
		ReportBatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flood_risk",
			Name:      "crowd_report_batch_size",
			Help:      "Reports generated per crowdsource request.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
		}),
		RouteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_risk",
			Name:      "route_requests_total",
			Help:      "Route planning requests by outcome.",
		}, []string{"outcome"}),
		RouteCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_risk",
			Name:      "route_cache_total",
			Help:      "Route cache lookups by result.",
		}, []string{"result"}),
		RouteAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flood_risk",
			Name:      "route_api_duration_seconds",
			Help:      "Routing API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		AlertsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_risk",
			Name:      "alerts_published_total",
			Help:      "SOS alert broadcasts by publish outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.PredictionRequests,
		m.WardRiskRequests,
		m.ModelFallbacks,
		m.ReportsGenerated,
		m.ReportBatchSize,
		m.RouteRequests,
		m.RouteCacheLookups,
		m.RouteAPIDuration,
		m.AlertsPublished,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		PredictionRequests: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flood_risk", Name: "prediction_requests_total"}),
		WardRiskRequests:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flood_risk", Name: "ward_risk_requests_total"}),
		ModelFallbacks:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flood_risk", Name: "model_fallbacks_total"}),
		ReportsGenerated:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flood_risk", Name: "crowd_reports_generated_total"}),
		ReportBatchSize:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "flood_risk", Name: "crowd_report_batch_size"}),
		RouteRequests:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flood_risk", Name: "route_requests_total"}, []string{"outcome"}),
		RouteCacheLookups:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flood_risk", Name: "route_cache_total"}, []string{"result"}),
		RouteAPIDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "flood_risk", Name: "route_api_duration_seconds"}),
		AlertsPublished:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flood_risk", Name: "alerts_published_total"}, []string{"outcome"}),
	}
}
