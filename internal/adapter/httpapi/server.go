package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/flood-risk-service/internal/domain"
	"github.com/couchcryptid/flood-risk-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// defaultRainfall is assumed when a request omits rainfall intensity.
const defaultRainfall = 50.0

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the flood-risk API plus health, readiness, and metrics
// endpoints.
type Server struct {
	httpServer *http.Server
	svc        *service.Service
	logger     *slog.Logger
}

// NewServer creates the API server and registers all routes.
func NewServer(addr string, svc *service.Service, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		svc:    svc,
		logger: logger,
	}

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /predict", s.handlePredict)
	mux.HandleFunc("GET /hotspots", s.handleHotspots)
	mux.HandleFunc("GET /wards", s.handleWards)
	mux.HandleFunc("GET /wards/risk", s.handleWardRisks)
	mux.HandleFunc("GET /crowdsource", s.handleCrowdsource)
	mux.HandleFunc("POST /route", s.handleRoute)
	mux.HandleFunc("POST /sos/broadcast", s.handleSOS)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "FloodWatch Delhi API",
		"status":  "running",
	})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessments := s.svc.PredictRisk(r.Context(), req.RainfallIntensity)
	writeJSON(w, http.StatusOK, predictResponse{Hotspots: toHotspotPredictions(assessments)})
}

func (s *Server) handleHotspots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"hotspots": s.svc.Hotspots()})
}

func (s *Server) handleWards(w http.ResponseWriter, r *http.Request) {
	wards := s.svc.Wards()
	out := make([]wardResponse, 0, len(wards))
	for _, ward := range wards {
		out = append(out, toWardResponse(ward))
	}
	writeJSON(w, http.StatusOK, map[string]any{"wards": out})
}

func (s *Server) handleWardRisks(w http.ResponseWriter, r *http.Request) {
	rainfall, err := rainfallParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rainfall_intensity")
		return
	}

	summaries := s.svc.WardRisks(r.Context(), rainfall)
	out := make([]wardRiskResponse, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, toWardRiskResponse(summary))
	}
	writeJSON(w, http.StatusOK, map[string]any{"ward_risks": out})
}

func (s *Server) handleCrowdsource(w http.ResponseWriter, r *http.Request) {
	rainfall, err := rainfallParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rainfall_intensity")
		return
	}

	reports := s.svc.CrowdReports(r.Context(), rainfall)
	if reports == nil {
		reports = []domain.CrowdReport{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := s.svc.PlanRoute(r.Context(), req.Start, req.End)

	route := make([][2]float64, 0, len(result.Plan.Points))
	for _, p := range result.Plan.Points {
		route = append(route, [2]float64{p.Lat, p.Lng})
	}
	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	writeJSON(w, http.StatusOK, routeResponse{
		Route:       route,
		Warnings:    warnings,
		DistanceKm:  roundTo(result.Plan.DistanceKm, 2),
		DurationMin: roundTo(result.Plan.DurationMin, 1),
	})
}

func (s *Server) handleSOS(w http.ResponseWriter, r *http.Request) {
	var req sosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.svc.BroadcastSOS(r.Context(), req.WardID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrWardNotFound) {
			writeError(w, http.StatusNotFound, "ward not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "broadcast failed")
		return
	}

	writeJSON(w, http.StatusOK, sosResponse{
		Success:                true,
		Message:                result.Message,
		Ward:                   result.WardName,
		SMSSent:                result.SMSSent,
		WhatsAppGroupsNotified: result.WhatsAppGroups,
		ResidentsNotified:      result.ResidentsNotified,
		Timestamp:              result.Timestamp,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// rainfallParam reads the rainfall_intensity query parameter, applying the
// default when absent.
func rainfallParam(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("rainfall_intensity")
	if raw == "" {
		return defaultRainfall, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
