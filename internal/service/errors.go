// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// ErrUnhealthy is returned by [ProbeService.Probe] when the server answers
// but reports a status other than "healthy".
var ErrUnhealthy = errors.New("server reported unhealthy status")
