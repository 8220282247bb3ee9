package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/welcome-api/internal/adapter"
	"github.com/MKhiriev/welcome-api/internal/logger"
	"github.com/MKhiriev/welcome-api/models"
)

type probeService struct {
	adapter adapter.HealthAdapter

	logger *logger.Logger
}

func NewProbeService(adapter adapter.HealthAdapter, logger *logger.Logger) ProbeService {
	return &probeService{
		adapter: adapter,
		logger:  logger,
	}
}

func (s *probeService) Probe(ctx context.Context) error {
	health, err := s.adapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("probe health endpoint: %w", err)
	}

	if health.Status != models.StatusHealthy {
		return fmt.Errorf("%w: %q", ErrUnhealthy, health.Status)
	}

	s.logger.Debug().Str("status", health.Status).Msg("probe succeeded")
	return nil
}
