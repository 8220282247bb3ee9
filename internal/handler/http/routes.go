// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Paths served by the API.
const (
	rootPath   = "/"
	healthPath = "/api/health"
)

// route binds one (method, path) pair to exactly one handler.
type route struct {
	method  string
	path    string
	handler http.HandlerFunc
}

// routes is the complete dispatch table. Paths are unique per method and
// carry no parameters or wildcards.
func (h *Handler) routes() []route {
	return []route{
		{method: http.MethodGet, path: rootPath, handler: h.home},
		{method: http.MethodGet, path: healthPath, handler: h.healthCheck},
	}
}

// Init builds the chi router serving the dispatch table. Every request that
// matches no (method, path) pair gets 404; chi's 405 is collapsed into it.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	for _, rt := range h.routes() {
		router.Method(rt.method, rt.path, rt.handler)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
