package domain

import "errors"

// Sentinel errors for catalog and auth operations
var (
	// ErrShowNotFound indicates the requested show does not exist
	ErrShowNotFound = errors.New("show not found")

	// ErrServerOffline indicates the catalog API is unreachable
	ErrServerOffline = errors.New("server is unreachable")

	// ErrUnauthorized indicates the request was rejected for missing or
	// invalid credentials
	ErrUnauthorized = errors.New("authentication required")
)
