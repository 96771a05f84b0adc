package client

import "errors"

// ErrNotConfigured is returned by [NewApp] when a dependency is missing.
var ErrNotConfigured = errors.New("client is not configured")
