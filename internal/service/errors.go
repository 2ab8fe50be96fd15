// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// MsgBookAlreadyExists is the Isbn failure reported when a create targets a
// stored ISBN.
const MsgBookAlreadyExists = "A book with this ISBN-13 already exists"

var (
	// ErrBookNotCreated, ErrBookNotUpdated and ErrBookNotDeleted wrap
	// unexpected store failures on writes. Their text is safe to show to
	// API clients.
	ErrBookNotCreated = errors.New("Failed to create book") //nolint:staticcheck
	ErrBookNotUpdated = errors.New("Failed to update book") //nolint:staticcheck
	ErrBookNotDeleted = errors.New("Failed to delete book") //nolint:staticcheck

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStoreIsNotReachable   = errors.New("store is not reachable")
)
