package config

import "errors"

// ErrInvalidServerConfigs is returned by [StructuredConfig.validate] when the
// merged configuration has no usable host or port.
var ErrInvalidServerConfigs = errors.New("invalid server configuration")
