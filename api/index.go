// Package handler is the serverless entry point of welcome-api. The
// platform owns the listener and invokes [Handler] once per request, so
// PORT is ignored here.
package handler

import (
	"net/http"
	"sync"

	"github.com/MKhiriev/welcome-api/internal/config"
	myHTTP "github.com/MKhiriev/welcome-api/internal/handler/http"
	"github.com/MKhiriev/welcome-api/internal/logger"
)

var (
	routerOnce sync.Once
	router     http.Handler
)

// Handler serves one request with the same route table as the standalone
// server. The router is built on the first invocation and reused by warm
// instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	routerOnce.Do(func() {
		router = newRouter()
	})

	router.ServeHTTP(w, r)
}

func newRouter() http.Handler {
	level := config.DefaultLogLevel
	if cfg, err := config.GetStructuredConfig(); err == nil {
		level = cfg.Log.Level
	}

	return myHTTP.NewHandler(logger.NewLogger("welcome-api-serverless", level)).Init()
}
