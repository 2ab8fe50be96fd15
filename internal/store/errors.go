// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// outcomes. Callers should use [errors.Is] to match against these values.
var (
	// ErrBookNotFound is returned when a lookup, update or delete addresses
	// an ISBN that is not stored.
	ErrBookNotFound = errors.New("book was not found")

	// ErrBookAlreadyExists is returned when an insert hits the unique
	// constraint on isbn.
	ErrBookAlreadyExists = errors.New("book with this isbn already exists")

	// ErrBookNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrBookNotSaved = errors.New("book was not saved")

	// ErrStoreBusy wraps driver errors classified as transient (lock
	// contention, lost connection). The operation had no effect.
	ErrStoreBusy = errors.New("store is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan book row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan book rows")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrSearchIndexUnavailable is returned by [DB.EnsureSearchIndex] when the
	// database already holds an FTS5 title index but the linked SQLite has no
	// fts5 module. Writes to books would fail through the sync triggers.
	ErrSearchIndexUnavailable = errors.New("existing fts5 title index cannot be opened; rebuild with the sqlite_fts5 tag")
)
