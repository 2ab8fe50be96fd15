// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library/internal/logger"
	"github.com/MKhiriev/go-library/models"
)

// bookRepository is the SQL implementation of [BookRepository] for both
// SQLite and PostgreSQL. Statements are built with squirrel using the
// placeholder format of the connection's dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type bookRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by db.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bookRepository) Create(ctx context.Context, book models.Book) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertBookQuery(book).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Create").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Create").Str("isbn", book.Isbn).Msg("error inserting book")
		return r.statementError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotSaved
	}

	return nil
}

func (r *bookRepository) GetByIsbn(ctx context.Context, isbn string) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectBookByIsbnQuery(isbn).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetByIsbn").Msg("error building select query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	book, err := scanBook(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetByIsbn").Str("isbn", isbn).Msg("error scanning book")
		if r.db.classify(err) == Transient {
			return models.Book{}, fmt.Errorf("%w: %w", ErrStoreBusy, err)
		}
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

func (r *bookRepository) GetAll(ctx context.Context, searchTerm string) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectBooksQuery(searchTerm).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetAll").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetAll").Str("search_term", searchTerm).Msg("error selecting books")
		if r.db.classify(err) == Transient {
			return nil, fmt.Errorf("%w: %w", ErrStoreBusy, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			log.Err(err).Str("func", "*bookRepository.GetAll").Msg("error scanning book")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.GetAll").Msg("error iterating books")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

func (r *bookRepository) Update(ctx context.Context, book models.Book) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.updateBookQuery(book).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Update").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Update").Str("isbn", book.Isbn).Msg("error updating book")
		return r.statementError(err)
	}

	return requireAffected(result)
}

func (r *bookRepository) Delete(ctx context.Context, isbn string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteBookQuery(isbn).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Delete").Str("isbn", isbn).Msg("error deleting book")
		return r.statementError(err)
	}

	return requireAffected(result)
}

// statementError turns a failed INSERT/UPDATE/DELETE into a sentinel.
func (r *bookRepository) statementError(err error) error {
	switch r.db.classify(err) {
	case UniqueViolation:
		return ErrBookAlreadyExists
	case Transient:
		return fmt.Errorf("%w: %w", ErrStoreBusy, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// requireAffected reports [ErrBookNotFound] when the statement matched no row.
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}
