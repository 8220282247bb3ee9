package main

import (
	"fmt"

	"github.com/MKhiriev/welcome-api/internal/config"
	"github.com/MKhiriev/welcome-api/internal/handler"
	"github.com/MKhiriev/welcome-api/internal/logger"
	"github.com/MKhiriev/welcome-api/internal/server"
	"github.com/MKhiriev/welcome-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("welcome-api-server", config.DefaultLogLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("welcome-api-server", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	handlers := handler.NewHandlers(cfg.Server, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
