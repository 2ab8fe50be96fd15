// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValidationFailure describes one rejected field of a request payload.
// A list of failures is the body of every 400 response.
type ValidationFailure struct {
	// PropertyName is the Go field name of the offending property
	// (e.g. "Isbn", "ShortDescription").
	PropertyName string `json:"propertyName"`

	// ErrorMessage is the human-readable reason.
	ErrorMessage string `json:"errorMessage"`
}
