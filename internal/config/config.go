// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
)

// Defaults applied to every field the environment leaves unset or invalid.
const (
	// DefaultHost binds the listener on all interfaces.
	DefaultHost = "0.0.0.0"

	// DefaultPort is the HTTP port used when PORT is absent or unusable.
	DefaultPort = 8000

	// DefaultLogLevel is the zerolog level name used when LOG_LEVEL is unset.
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration container for the
// welcome-api application. It is resolved once at process start and passed
// by value afterwards; nothing mutates it once built.
type StructuredConfig struct {
	// Server holds the bind settings of the HTTP listener and the optional
	// gRPC health listener.
	Server Server

	// Log holds logging settings.
	Log Log
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// Host is the interface the HTTP listener binds to. It is always
	// [DefaultHost]; the environment does not override it.
	Host string

	// Port is the TCP port of the HTTP listener.
	// Env: PORT
	Port int

	// GRPCAddress is the optional "host:port" the gRPC health service
	// listens on. Empty disables the gRPC listener.
	// Env: GRPC_ADDRESS
	GRPCAddress string
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info", "warn").
	// Env: LOG_LEVEL
	Level string
}

// HTTPAddress returns the "host:port" the HTTP listener binds to.
func (s Server) HTTPAddress() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Default returns the configuration used when the environment provides
// nothing at all.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads and merges the application configuration in the
// following priority order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Built-in defaults
//
// Missing or invalid values never fail: they resolve to the defaults.
// An error is returned only when the environment cannot be read at all.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}
