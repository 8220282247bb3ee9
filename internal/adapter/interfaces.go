// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the welcome-api HTTP
// interface, used by the healthcheck binary to probe a running server.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/welcome-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/health_adapter_mock.go -package=mock

// HealthAdapter fetches the health payload of a welcome-api server.
type HealthAdapter interface {
	// Health calls GET /api/health and decodes the JSON body. A non-2xx
	// status is returned as an error.
	Health(ctx context.Context) (models.HealthResponse, error)
}
