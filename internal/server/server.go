// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/welcome-api/internal/config"
	"github.com/MKhiriev/welcome-api/internal/handler"
	"github.com/MKhiriev/welcome-api/internal/logger"

	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer builds the HTTP server from handlers.HTTP and, when cfg names a
// gRPC address, the gRPC health server. cfg is copied; nothing in the
// server reads the environment afterwards.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	servers := &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}

	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server
	s.httpServer.Shutdown()

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

func (s *server) run(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}

	return s.serve(ctx)
}

// listen binds every listener before anything is served. On failure the
// listeners bound so far are released.
func (s *server) listen() error {
	if err := s.httpServer.Listen(); err != nil {
		return err
	}

	if s.gRPCServer != nil {
		if err := s.gRPCServer.Listen(); err != nil {
			s.httpServer.Close()
			return err
		}
	}

	return nil
}

// serve runs the bound servers until ctx is done or one of them fails, then
// shuts all of them down.
func (s *server) serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	// listen for stop signals
	g.Go(func() error {
		<-gctx.Done()

		// finish started servers
		s.Shutdown()
		return nil
	})

	s.logger.Info().Msg("Launching HTTP server")
	g.Go(s.httpServer.RunServer)

	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		g.Go(s.gRPCServer.RunServer)
	}

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
