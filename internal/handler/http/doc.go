// Package http implements the HTTP transport layer of the application.
//
// It holds the static route table (GET / and GET /api/health), the JSON
// response writers and the middleware wrapped around them: panic recovery,
// request tracing and access logging. Every unmatched method and path is
// answered with 404 and a JSON error body.
package http
