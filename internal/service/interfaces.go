// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-library/models"
)

// BookService holds the catalog use cases. Each method issues at most two
// repository calls and never retries.
type BookService interface {
	// CreateBook stores a new book. An already used ISBN is reported as a
	// validation failure on Isbn.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	GetBook(ctx context.Context, isbn string) (models.Book, error)
	// ListBooks returns every book, or only those whose title contains
	// searchTerm when it is not empty. The result is never nil.
	ListBooks(ctx context.Context, searchTerm string) ([]models.Book, error)
	// UpdateBook overwrites the book stored under isbn. The ISBN in book is
	// ignored.
	UpdateBook(ctx context.Context, isbn string, book models.Book) (models.Book, error)
	DeleteBook(ctx context.Context, isbn string) error
}

// BookServiceWrapper defines middleware composition for BookService.
// Implementations wrap an existing BookService to add behavior such as
// logging or validating.
type BookServiceWrapper interface {
	Wrap(BookService) BookService // returns a decorated BookService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the backing store is reachable.
type HealthService interface {
	Ping(ctx context.Context) error
}
