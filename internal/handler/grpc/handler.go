// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the service health over the standard
// grpc.health.v1.Health protocol for orchestrators that probe over gRPC.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/welcome-api/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the health service name reported alongside the overall
// server status (the empty service name).
const ServiceName = "welcome-api"

// Handler is the root gRPC transport handler.
//
// It owns a grpc.health.v1 server that reports SERVING from construction
// until Shutdown is called. A handler instance is created once at startup
// and shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health server already reports
// SERVING for both the overall server and [ServiceName].
func NewHandler(logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: hs,
		logger: logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every registered status to NOT_SERVING so that watchers
// stop routing traffic before the listener closes.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health status set to NOT_SERVING")
	h.health.Shutdown()
}

// LoggingInterceptor writes one log entry per unary call.
func (h *Handler) LoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
