// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("authentication credentials were not provided")

	// ErrUnauthenticated is returned when a handler that needs a caller runs
	// without one in the request context.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned by the admin middleware for non-staff callers.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned for a path id that is not a positive integer.
	// Such a path does not name any object, so it is reported as not found.
	ErrInvalidID = errors.New("not found")
)
