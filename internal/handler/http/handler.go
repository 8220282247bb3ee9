// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/welcome-api/internal/logger"
	"github.com/MKhiriev/welcome-api/internal/utils"
)

// Handler owns the HTTP route table and the middleware that wraps it.
// It holds no per-request state; one Handler serves all requests.
type Handler struct {
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
