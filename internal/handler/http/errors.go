// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the API key middleware when reading the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyAPIKey is returned when the header names a scheme but no key
	// follows it.
	ErrEmptyAPIKey = errors.New("empty api key in `Authorization` header")

	// ErrInvalidAPIKey is returned when the presented key differs from the
	// configured one.
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// errInvalidJSON is reported on the "body" property when a request body
// cannot be decoded into a book.
var errInvalidJSON = errors.New("Invalid JSON was passed") //nolint:staticcheck
