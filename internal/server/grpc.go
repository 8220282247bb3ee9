package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/welcome-api/internal/config"
	myGRPC "github.com/MKhiriev/welcome-api/internal/handler/grpc"
	"github.com/MKhiriev/welcome-api/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	address         string
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.UnaryInterceptor(handler.LoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) Listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w: grpc %s: %w", ErrBind, g.address, err)
	}

	g.gRPCNetListener = lis
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) RunServer() error {
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}

	return nil
}

// Shutdown reports NOT_SERVING, then stops gracefully. Open health Watch
// streams would keep GracefulStop waiting forever, so it is bounded by
// shutdownTimeout and followed by a hard Stop.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		g.logger.Warn().Msg("GRPC graceful stop timed out, forcing stop")
		g.server.Stop()
	}
}

// Close releases a listener that was bound but never served.
func (g *grpcServer) Close() {
	if g.gRPCNetListener != nil {
		_ = g.gRPCNetListener.Close()
	}
}
