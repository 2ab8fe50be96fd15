// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-library/internal/logger"
	"github.com/MKhiriev/go-library/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
)

// searchMode selects how GetAll filters titles.
type searchMode int

const (
	// searchLike scans books.title with LIKE, which SQLite compares
	// case-insensitively for ASCII.
	searchLike searchMode = iota
	// searchFTS matches through the books_fts trigram index.
	searchFTS
	// searchILike uses PostgreSQL ILIKE backed by a pg_trgm GIN index.
	searchILike
)

// dialect captures the differences between supported databases.
type dialect struct {
	goose       goose.Dialect
	placeholder sq.PlaceholderFormat
}

var (
	sqliteDialect   = dialect{goose: goose.DialectSQLite3, placeholder: sq.Question}
	postgresDialect = dialect{goose: goose.DialectPostgres, placeholder: sq.Dollar}
)

// DB is a *sql.DB bound to a dialect, error classifier and logger.
type DB struct {
	*sql.DB
	dialect            dialect
	search             searchMode
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect.goose)
}

// builder returns a squirrel statement builder using the dialect's
// placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}

// classify falls back to [Unclassified] when no classifier is configured.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
