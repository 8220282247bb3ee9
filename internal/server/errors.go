// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrBind is returned when a listener cannot bind its configured
	// address, e.g. because the port is already in use. It is the only
	// startup failure of the process.
	ErrBind = errors.New("unable to bind listener")
)
