// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the library REST API.
//
// [BookAPI] decouples the command-line client from the transport. The package
// ships an HTTP implementation ([NewHTTPBookAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can use [errors.Is] regardless of the transport
// (e.g. [ErrBookNotFound] for 404, [ErrUnauthorized] for 401). A 400 carrying
// a failure list is returned as *[APIValidationError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-library/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/book_api_mock.go -package=mock

// BookAPI defines the operations the library server exposes. Implementations
// attach the API key to write requests and forward the trace id found in the
// context.
type BookAPI interface {
	// CreateBook sends POST /books and returns the stored book.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)

	// GetBook sends GET /books/{isbn}. A missing book yields [ErrBookNotFound].
	GetBook(ctx context.Context, isbn string) (models.Book, error)

	// ListBooks sends GET /books, adding searchTerm when it is not empty.
	ListBooks(ctx context.Context, searchTerm string) ([]models.Book, error)

	// UpdateBook sends PUT /books/{isbn} with the replacement fields.
	UpdateBook(ctx context.Context, isbn string, book models.Book) (models.Book, error)

	// DeleteBook sends DELETE /books/{isbn}.
	DeleteBook(ctx context.Context, isbn string) error

	// GetVersion returns the server version string.
	GetVersion(ctx context.Context) (string, error)
}
