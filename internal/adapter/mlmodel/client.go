package mlmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/flood-risk-service/internal/domain"
)

// Client implements domain.RiskScorer against the trained flood classifier
// served by the model API sidecar. Callers wrap it in a
// domain.FallbackScorer; the client itself just reports failures.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a scoring-service client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// Score sends one feature vector to the model API and returns the predicted
// risk level and its confidence.
func (c *Client) Score(ctx context.Context, rainfall, elevation, drainage float64) (domain.RiskLevel, float64, error) {
	payload, err := json.Marshal(scoreRequest{
		RainfallIntensity: rainfall,
		Elevation:         elevation,
		DrainageScore:     drainage,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("encode score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return 0, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("score request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, 0, fmt.Errorf("model API error: status %d: %s", resp.StatusCode, body)
	}

	var sr scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return 0, 0, fmt.Errorf("decode response: %w", err)
	}

	level := domain.RiskLevel(sr.RiskLevel)
	if level < domain.LevelSafe || level > domain.LevelCritical {
		return 0, 0, fmt.Errorf("model returned out-of-range risk level %d", sr.RiskLevel)
	}
	if sr.Probability < 0 || sr.Probability > 1 {
		return 0, 0, fmt.Errorf("model returned out-of-range probability %g", sr.Probability)
	}

	return level, sr.Probability, nil
}

// Model API request/response types.

type scoreRequest struct {
	RainfallIntensity float64 `json:"rainfall_intensity"`
	Elevation         float64 `json:"elevation"`
	DrainageScore     float64 `json:"drainage_score"`
}

type scoreResponse struct {
	RiskLevel   int     `json:"risk_level"`
	Probability float64 `json:"probability"`
}
