// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
)

const (
	findBooksFTS = `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'books_fts'`

	createBooksFTS = `CREATE VIRTUAL TABLE books_fts USING fts5(
		title,
		content = 'books',
		content_rowid = 'id',
		tokenize = 'trigram'
	)`

	rebuildBooksFTS = `INSERT INTO books_fts(books_fts) VALUES ('rebuild')`

	probeBooksFTS = `SELECT count(*) FROM books_fts WHERE rowid = 0`
)

// booksFTSTriggers keep the external-content index in sync with books.
var booksFTSTriggers = []string{
	`CREATE TRIGGER IF NOT EXISTS books_fts_ai AFTER INSERT ON books BEGIN
		INSERT INTO books_fts(rowid, title) VALUES (new.id, new.title);
	END`,
	`CREATE TRIGGER IF NOT EXISTS books_fts_ad AFTER DELETE ON books BEGIN
		INSERT INTO books_fts(books_fts, rowid, title) VALUES ('delete', old.id, old.title);
	END`,
	`CREATE TRIGGER IF NOT EXISTS books_fts_au AFTER UPDATE OF title ON books BEGIN
		INSERT INTO books_fts(books_fts, rowid, title) VALUES ('delete', old.id, old.title);
		INSERT INTO books_fts(rowid, title) VALUES (new.id, new.title);
	END`,
}

// EnsureSearchIndex prepares the title index used by GetAll.
//
// On SQLite it creates a trigram FTS5 table over books.title together with
// its sync triggers, and backfills it when created for the first time. Builds
// of go-sqlite3 without the sqlite_fts5 tag lack the module; title search
// then falls back to LIKE, unless the index already exists from an fts5
// build, which is reported as [ErrSearchIndexUnavailable]. PostgreSQL gets
// its pg_trgm index from migrations.
func (db *DB) EnsureSearchIndex(ctx context.Context) error {
	if db.dialect.goose != goose.DialectSQLite3 {
		return nil
	}

	var found int
	if err := db.QueryRowContext(ctx, findBooksFTS).Scan(&found); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if found == 1 {
		var n int
		if err := db.QueryRowContext(ctx, probeBooksFTS).Scan(&n); err != nil {
			if isFTSUnavailable(err) {
				db.logger.Error().Err(err).Str("func", "*DB.EnsureSearchIndex").Msg("books_fts exists but fts5 is not available")
				return fmt.Errorf("%w: %w", ErrSearchIndexUnavailable, err)
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning search index transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if found == 0 {
		if _, err = tx.ExecContext(ctx, createBooksFTS); err != nil {
			if isFTSUnavailable(err) {
				db.logger.Warn().Err(err).Str("func", "*DB.EnsureSearchIndex").Msg("fts5 is not available, title search falls back to LIKE")
				db.search = searchLike
				return nil
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err = tx.ExecContext(ctx, rebuildBooksFTS); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	for _, trigger := range booksFTSTriggers {
		if _, err = tx.ExecContext(ctx, trigger); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing search index: %w", err)
	}

	db.search = searchFTS
	db.logger.Debug().Str("func", "*DB.EnsureSearchIndex").Bool("created", found == 0).Msg("fts5 title index is ready")
	return nil
}

func isFTSUnavailable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "no such module: fts5") || strings.Contains(msg, "no such tokenizer")
}

// titleFilter returns the WHERE predicate for a case-insensitive substring
// match of term on the title column.
func (db *DB) titleFilter(column, term string) sq.Sqlizer {
	pattern, escaped := likePattern(term)

	op := "LIKE"
	if db.search == searchILike {
		op = "ILIKE"
	}

	// the FTS5 trigram index is only used by LIKE without ESCAPE
	if escaped {
		return sq.Expr(column+" "+op+` ? ESCAPE '\'`, pattern)
	}
	return sq.Expr(column+" "+op+" ?", pattern)
}

// likePattern wraps term in % wildcards, escaping LIKE metacharacters so they
// match literally. escaped reports whether an ESCAPE clause is required.
func likePattern(term string) (pattern string, escaped bool) {
	if strings.ContainsAny(term, `%_\`) {
		escaped = true
		r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
		term = r.Replace(term)
	}

	return "%" + term + "%", escaped
}
