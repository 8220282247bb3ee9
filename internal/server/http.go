package server

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/welcome-api/internal/config"
	"github.com/MKhiriev/welcome-api/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress(),
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
			ErrorLog:          stdlog.New(logger, "", 0),
		},
		logger: logger,
	}
}

func (h *httpServer) Listen() error {
	lis, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: http %s: %w", ErrBind, h.server.Addr, err)
	}

	h.listener = lis
	h.logger.Info().Str("address", lis.Addr().String()).Msg("HTTP server listening")
	return nil
}

func (h *httpServer) RunServer() error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}

	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}

// Close releases a listener that was bound but never served.
func (h *httpServer) Close() {
	if h.listener != nil {
		_ = h.listener.Close()
	}
}
