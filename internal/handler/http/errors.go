// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrRouteNotFound describes the only failure a request can hit: no route is
// bound to its (method, path) pair. It is never returned to callers; it
// names the condition answered with 404 in logs.
var ErrRouteNotFound = errors.New("route not found")
