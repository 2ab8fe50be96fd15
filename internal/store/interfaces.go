// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-library/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BookRepository is the only code allowed to issue SQL against the books
// table. Every method is a single statement.
type BookRepository interface {
	// Create inserts a new book. A duplicate isbn yields [ErrBookAlreadyExists].
	Create(ctx context.Context, book models.Book) error
	// GetByIsbn returns the stored book or [ErrBookNotFound].
	GetByIsbn(ctx context.Context, isbn string) (models.Book, error)
	// GetAll returns books in insertion order. A non-empty searchTerm keeps
	// only books whose title contains it, ignoring case.
	GetAll(ctx context.Context, searchTerm string) ([]models.Book, error)
	// Update overwrites every mutable field of the book with the same isbn,
	// or returns [ErrBookNotFound].
	Update(ctx context.Context, book models.Book) error
	// Delete removes the book or returns [ErrBookNotFound].
	Delete(ctx context.Context, isbn string) error
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
