// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the catalog.
//
// Validators never fail fast: every rule of the requested fields is
// evaluated and all failures are returned together as [ValidationErrors].
// Malformed input is reported, never panicked on.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
