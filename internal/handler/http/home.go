// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/welcome-api/internal/logger"
	"github.com/MKhiriev/welcome-api/internal/utils"
	"github.com/MKhiriev/welcome-api/models"
)

// home serves GET /.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, models.NewWelcomeResponse(), http.StatusOK)
}

// healthCheck serves GET /api/health. The process answering at all is the
// health signal, so the body is constant.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, models.NewHealthResponse(), http.StatusOK)
}

// notFound serves every request that matches no route, whatever its method.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Err(ErrRouteNotFound).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Send()

	writeResponse(w, r, models.NewNotFoundResponse(), http.StatusNotFound)
}

func writeResponse(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing response")
	}
}
