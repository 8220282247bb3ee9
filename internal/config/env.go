// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	minPort = 1
	maxPort = 65535
)

// envConfig mirrors the raw environment. Every field is a string so that a
// malformed value is resolved by the builder instead of failing env.Parse.
type envConfig struct {
	// Env: PORT
	Port string `env:"PORT"`

	// Env: GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags.
//
// Returns a wrapped error if env.Parse fails.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// toStructured converts the raw environment into a partial
// [StructuredConfig]. Fields that are absent or invalid stay zero so the
// defaults fill them in during the merge.
func (e envConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Port:        parsePort(e.Port),
			GRPCAddress: strings.TrimSpace(e.GRPCAddress),
		},
		Log: Log{
			Level: strings.TrimSpace(e.LogLevel),
		},
	}
}

// parsePort returns the numeric port held by raw, or 0 when raw is empty,
// not a number or outside 1..65535.
func parsePort(raw string) int {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}

	if port < minPort || port > maxPort {
		return 0
	}

	return port
}
