package service

import "context"

// ProbeService checks whether a running welcome-api server reports itself
// healthy.
type ProbeService interface {
	// Probe returns nil when the server answers GET /api/health with 200 and
	// {"status":"healthy"}, and an error describing the failure otherwise.
	Probe(ctx context.Context) error
}
