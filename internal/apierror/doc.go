// Package apierror classifies errors returned by the Taegis API and the
// underlying transport into broad categories (auth, not-found, rate limit,
// network) so they can be mapped to sentinel errors with useful messages.
package apierror
