package handler

import (
	"github.com/MKhiriev/welcome-api/internal/config"
	"github.com/MKhiriev/welcome-api/internal/handler/grpc"
	"github.com/MKhiriev/welcome-api/internal/handler/http"
	"github.com/MKhiriev/welcome-api/internal/logger"
)

// Handlers groups the transport handlers built for one process. HTTP is
// always present; GRPC is nil unless a gRPC address is configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(cfg config.Server, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		HTTP: http.NewHandler(logger),
	}

	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	return handlers
}
