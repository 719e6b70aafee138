// Package errors defines sentinel errors for consistent error handling across
// both CLI tools. Every failure ultimately maps to process exit code 1; the
// sentinels exist so callers can distinguish failure classes in messages and
// tests without parsing strings.
package errors

import "errors"

// Sentinel errors for consistent error handling
var (
	// ErrAuthFailed indicates Taegis authentication failed, either because
	// CLIENT_ID/CLIENT_SECRET were rejected or the device-code flow was
	// abandoned.
	ErrAuthFailed = errors.New("taegis authentication failed")

	// ErrTenantNotFound indicates the tenant does not exist or the
	// authenticated principal has no access to it.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrRateLimit indicates the Taegis API rejected the request due to
	// rate limiting.
	ErrRateLimit = errors.New("taegis rate limit exceeded")

	// ErrNetworkFailure indicates a network connection problem.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrQueryFailed indicates the event query was rejected or failed
	// server-side.
	ErrQueryFailed = errors.New("event query failed")

	// ErrNoSources indicates aggregation produced no log sources to select
	// from.
	ErrNoSources = errors.New("no log sources found")
)
