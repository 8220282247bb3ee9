package adapter

import "errors"

var (
	// ErrNotFound is returned when the server answers 404, e.g. when the
	// base URL points at something other than welcome-api.
	ErrNotFound = errors.New("resource not found")

	// ErrUnexpectedStatus is returned for any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
