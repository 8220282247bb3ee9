// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Fixed response payloads served by the API.
const (
	// WelcomeMessage is the value of the "msgs" key returned by GET /.
	WelcomeMessage = "Welcome to my api."

	// StatusHealthy is the value of the "status" key returned by
	// GET /api/health while the process is able to serve requests.
	StatusHealthy = "healthy"

	// DetailNotFound is the value of the "detail" key returned for every
	// unmatched method and path combination.
	DetailNotFound = "Not Found"
)

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Msgs string `json:"msgs"`
}

// HealthResponse is the body of GET /api/health. It is also decoded by the
// health probe client.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body written for requests that match no route.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewWelcomeResponse returns the welcome payload.
func NewWelcomeResponse() WelcomeResponse {
	return WelcomeResponse{Msgs: WelcomeMessage}
}

// NewHealthResponse returns the healthy status payload.
func NewHealthResponse() HealthResponse {
	return HealthResponse{Status: StatusHealthy}
}

// NewNotFoundResponse returns the payload written for unmatched routes.
func NewNotFoundResponse() ErrorResponse {
	return ErrorResponse{Detail: DetailNotFound}
}
