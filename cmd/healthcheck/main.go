// Command healthcheck probes the welcome-api server running on the same
// host. It exits 0 when GET /api/health reports healthy and 1 otherwise,
// which makes it suitable as a container HEALTHCHECK.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/welcome-api/internal/adapter"
	"github.com/MKhiriev/welcome-api/internal/config"
	"github.com/MKhiriev/welcome-api/internal/logger"
	"github.com/MKhiriev/welcome-api/internal/service"
)

const probeTimeout = 3 * time.Second

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("welcome-api-healthcheck", config.DefaultLogLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("welcome-api-healthcheck", cfg.Log.Level)

	healthAdapter := adapter.NewHTTPHealthAdapter(adapter.HTTPClientConfig{
		BaseURL: fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port),
		Timeout: probeTimeout,
	})
	probe := service.NewProbeService(healthAdapter, log)

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err = probe.Probe(ctx); err != nil {
		log.Fatal().Err(err).Msg("server is not healthy")
	}

	log.Info().Int("port", cfg.Server.Port).Msg("server is healthy")
}
