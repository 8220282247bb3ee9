package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/welcome-api/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "http://127.0.0.1:8000"
	defaultTimeout = 3 * time.Second

	healthPath = "/api/health"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpHealthAdapter struct {
	client *resty.Client
}

func NewHTTPHealthAdapter(cfg HTTPClientConfig) HealthAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpHealthAdapter{client: cli}
}

func (h *httpHealthAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	var health models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("health decode response: %w", err)
	}

	return health, nil
}
