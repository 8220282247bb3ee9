// Package config resolves the runtime configuration of the application.
//
// Configuration is assembled from the following sources (earlier sources
// override later ones for non-zero fields):
//  1. Environment variables (PORT, GRPC_ADDRESS, LOG_LEVEL)
//  2. Built-in defaults (0.0.0.0:8000, level "info")
//
// A missing or malformed PORT is not an error: it silently resolves to 8000.
// The main entry point is [GetStructuredConfig].
package config
