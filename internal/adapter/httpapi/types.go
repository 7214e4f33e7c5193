package httpapi

import (
	"github.com/couchcryptid/flood-risk-service/internal/domain"
)

// Request/response wire types. Field names follow the established API
// contract consumed by the dashboard frontend.

type predictRequest struct {
	RainfallIntensity float64 `json:"rainfall_intensity"`
}

type hotspotPrediction struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	RiskLevel   int     `json:"risk_level"`
	Probability float64 `json:"probability"`
}

type predictResponse struct {
	Hotspots []hotspotPrediction `json:"hotspots"`
}

type wardResponse struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Bounds            [][2]float64 `json:"bounds"`
	PumpsAvailable    int          `json:"pumps_available"`
	PumpsTotal        int          `json:"pumps_total"`
	DrainsDesilted    bool         `json:"drains_desilted"`
	EmergencyContacts int          `json:"emergency_contacts"`
}

type wardRiskResponse struct {
	WardID                 string `json:"ward_id"`
	WardName               string `json:"ward_name"`
	RiskLevel              int    `json:"risk_level"`
	CriticalHotspots       int    `json:"critical_hotspots"`
	WarningHotspots        int    `json:"warning_hotspots"`
	SafeHotspots           int    `json:"safe_hotspots"`
	TotalHotspots          int    `json:"total_hotspots"`
	PreparednessScore      int    `json:"preparedness_score"`
	PreparednessLevel      string `json:"preparedness_level"`
	HasPreparednessGap     bool   `json:"has_preparedness_gap"`
	PreparednessGapMessage string `json:"preparedness_gap_message"`
	PumpsAvailable         int    `json:"pumps_available"`
	PumpsTotal             int    `json:"pumps_total"`
	DrainsDesilted         bool   `json:"drains_desilted"`
}

type routeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type routeResponse struct {
	Route       [][2]float64 `json:"route"` // [lat, lng] pairs
	Warnings    []string     `json:"warnings"`
	DistanceKm  float64      `json:"distance_km"`
	DurationMin float64      `json:"duration_min"`
}

type sosRequest struct {
	WardID  string `json:"ward_id"`
	Message string `json:"message"`
}

type sosResponse struct {
	Success                bool   `json:"success"`
	Message                string `json:"message"`
	Ward                   string `json:"ward"`
	SMSSent                int    `json:"sms_sent"`
	WhatsAppGroupsNotified int    `json:"whatsapp_groups_notified"`
	ResidentsNotified      int    `json:"residents_notified"`
	Timestamp              int64  `json:"timestamp"`
}

func toHotspotPredictions(assessments []domain.RiskAssessment) []hotspotPrediction {
	out := make([]hotspotPrediction, 0, len(assessments))
	for _, a := range assessments {
		out = append(out, hotspotPrediction{
			ID:          a.Hotspot.ID,
			Name:        a.Hotspot.Name,
			Lat:         a.Hotspot.Lat,
			Lng:         a.Hotspot.Lng,
			RiskLevel:   int(a.Level),
			Probability: a.Probability,
		})
	}
	return out
}

func toWardResponse(w domain.Ward) wardResponse {
	bounds := make([][2]float64, 0, len(w.Bounds))
	for _, p := range w.Bounds {
		bounds = append(bounds, [2]float64{p.Lat, p.Lng})
	}
	return wardResponse{
		ID:                w.ID,
		Name:              w.Name,
		Bounds:            bounds,
		PumpsAvailable:    w.PumpsAvailable,
		PumpsTotal:        w.PumpsTotal,
		DrainsDesilted:    w.DrainsDesilted,
		EmergencyContacts: w.EmergencyContacts,
	}
}

func toWardRiskResponse(s domain.WardRiskSummary) wardRiskResponse {
	return wardRiskResponse{
		WardID:                 s.Ward.ID,
		WardName:               s.Ward.Name,
		RiskLevel:              int(s.Level),
		CriticalHotspots:       s.CriticalCount,
		WarningHotspots:        s.WarningCount,
		SafeHotspots:           s.SafeCount,
		TotalHotspots:          s.TotalCount(),
		PreparednessScore:      s.Preparedness.Score,
		PreparednessLevel:      s.Preparedness.Level,
		HasPreparednessGap:     s.Preparedness.HasGap,
		PreparednessGapMessage: s.Preparedness.GapMessage,
		PumpsAvailable:         s.Ward.PumpsAvailable,
		PumpsTotal:             s.Ward.PumpsTotal,
		DrainsDesilted:         s.Ward.DrainsDesilted,
	}
}
