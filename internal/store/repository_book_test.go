// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-library/internal/logger"
	"github.com/MKhiriev/go-library/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookColumnNames = []string{"isbn", "title", "author", "short_description", "page_count", "release_date"}

func newMockDB(t *testing.T, d dialect, search searchMode, classifier ErrorClassificator) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{
		DB:                 db,
		dialect:            d,
		search:             search,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}, mock
}

func newSQLiteMockRepo(t *testing.T) (BookRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, sqliteDialect, searchLike, NewSQLiteErrorClassifier())
	return NewBookRepository(db, logger.Nop()), mock
}

func newPostgresMockRepo(t *testing.T) (BookRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, postgresDialect, searchILike, NewPostgresErrorClassifier())
	return NewBookRepository(db, logger.Nop()), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func sampleBook() models.Book {
	return models.Book{
		Isbn:             "123-4567890123",
		Title:            "Integration Testing",
		Author:           "Chris Lapraille",
		ShortDescription: "My Best Book",
		PageCount:        450,
		ReleaseDate:      models.NewDate(2024, time.August, 22),
	}
}

func bookRow(b models.Book) []driver.Value {
	return []driver.Value{b.Isbn, b.Title, b.Author, b.ShortDescription, b.PageCount, b.ReleaseDate.String()}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestBookRepository_Create_Success(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	book := sampleBook()

	mock.ExpectExec(`INSERT INTO books \(isbn,title,author,short_description,page_count,release_date\) VALUES \(\?,\?,\?,\?,\?,\?\)`).
		WithArgs(book.Isbn, book.Title, book.Author, book.ShortDescription, book.PageCount, "2024-08-22").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(testContext(), book))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Create_PostgresPlaceholders(t *testing.T) {
	repo, mock := newPostgresMockRepo(t)

	mock.ExpectExec(`INSERT INTO books .* VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(testContext(), sampleBook()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Create_UniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		newRepo func(t *testing.T) (BookRepository, sqlmock.Sqlmock)
		err     error
	}{
		{
			name:    "sqlite unique",
			newRepo: newSQLiteMockRepo,
			err:     sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
		},
		{
			name:    "sqlite primary key",
			newRepo: newSQLiteMockRepo,
			err:     sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
		},
		{
			name:    "postgres unique",
			newRepo: newPostgresMockRepo,
			err:     &pgconn.PgError{Code: pgerrcode.UniqueViolation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := tt.newRepo(t)
			mock.ExpectExec("INSERT INTO books").WillReturnError(tt.err)

			err := repo.Create(testContext(), sampleBook())
			assert.ErrorIs(t, err, ErrBookAlreadyExists)
		})
	}
}

func TestBookRepository_Create_TransientError(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectExec("INSERT INTO books").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	err := repo.Create(testContext(), sampleBook())
	assert.ErrorIs(t, err, ErrStoreBusy)
}

func TestBookRepository_Create_UnexpectedError(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectExec("INSERT INTO books").WillReturnError(errors.New("disk I/O error"))

	err := repo.Create(testContext(), sampleBook())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrBookAlreadyExists)
}

func TestBookRepository_Create_NoRowsAffected(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectExec("INSERT INTO books").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Create(testContext(), sampleBook())
	assert.ErrorIs(t, err, ErrBookNotSaved)
}

// ---------------------------------------------------------------------------
// GetByIsbn
// ---------------------------------------------------------------------------

func TestBookRepository_GetByIsbn_Found(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	book := sampleBook()

	mock.ExpectQuery(`SELECT b\.isbn, b\.title, b\.author, b\.short_description, b\.page_count, b\.release_date FROM books b WHERE b\.isbn = \?`).
		WithArgs(book.Isbn).
		WillReturnRows(sqlmock.NewRows(bookColumnNames).AddRow(bookRow(book)...))

	got, err := repo.GetByIsbn(testContext(), book.Isbn)
	require.NoError(t, err)
	assert.Equal(t, book, got)
}

func TestBookRepository_GetByIsbn_NotFound(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM books b").
		WithArgs("000-0000000000").
		WillReturnRows(sqlmock.NewRows(bookColumnNames))

	_, err := repo.GetByIsbn(testContext(), "000-0000000000")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookRepository_GetByIsbn_ScanError(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM books b").
		WillReturnRows(sqlmock.NewRows([]string{"isbn"}).AddRow("123-4567890123")) // wrong shape

	_, err := repo.GetByIsbn(testContext(), "123-4567890123")
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestBookRepository_GetByIsbn_Busy(t *testing.T) {
	repo, mock := newPostgresMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM books b WHERE b\.isbn = \$1`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	_, err := repo.GetByIsbn(testContext(), "123-4567890123")
	assert.ErrorIs(t, err, ErrStoreBusy)
}

// ---------------------------------------------------------------------------
// GetAll
// ---------------------------------------------------------------------------

func TestBookRepository_GetAll_NoSearchTerm(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	first, second := sampleBook(), sampleBook()
	second.Isbn = "978-0132350884"
	second.Title = "Clean Code"

	mock.ExpectQuery(`SELECT (.+) FROM books b ORDER BY b\.id$`).
		WillReturnRows(sqlmock.NewRows(bookColumnNames).
			AddRow(bookRow(first)...).
			AddRow(bookRow(second)...))

	books, err := repo.GetAll(testContext(), "")
	require.NoError(t, err)
	assert.Equal(t, []models.Book{first, second}, books)
}

func TestBookRepository_GetAll_EmptyIsNotNil(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM books b").WillReturnRows(sqlmock.NewRows(bookColumnNames))

	books, err := repo.GetAll(testContext(), "")
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestBookRepository_GetAll_SearchLike(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM books b WHERE b\.title LIKE \? ORDER BY b\.id`).
		WithArgs("%arch%").
		WillReturnRows(sqlmock.NewRows(bookColumnNames))

	_, err := repo.GetAll(testContext(), "arch")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_GetAll_SearchFTS(t *testing.T) {
	db, mock := newMockDB(t, sqliteDialect, searchFTS, NewSQLiteErrorClassifier())
	repo := NewBookRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM books b JOIN books_fts f ON f\.rowid = b\.id WHERE f\.title LIKE \? ORDER BY b\.id`).
		WithArgs("%arch%").
		WillReturnRows(sqlmock.NewRows(bookColumnNames))

	_, err := repo.GetAll(testContext(), "arch")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_GetAll_SearchPostgres(t *testing.T) {
	repo, mock := newPostgresMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM books b WHERE b\.title ILIKE \$1 ESCAPE '\\' ORDER BY b\.id`).
		WithArgs(`%50\%%`).
		WillReturnRows(sqlmock.NewRows(bookColumnNames))

	_, err := repo.GetAll(testContext(), "50%")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_GetAll_QueryError(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM books b").WillReturnError(errors.New("boom"))

	_, err := repo.GetAll(testContext(), "")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestBookRepository_GetAll_ScanError(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM books b").
		WillReturnRows(sqlmock.NewRows(bookColumnNames).
			AddRow("123-4567890123", "t", "a", "d", "not-a-number", "2024-08-22"))

	_, err := repo.GetAll(testContext(), "")
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestBookRepository_GetAll_RowError(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM books b").
		WillReturnRows(sqlmock.NewRows(bookColumnNames).
			AddRow(bookRow(sampleBook())...).
			RowError(0, errors.New("row failure")))

	_, err := repo.GetAll(testContext(), "")
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestBookRepository_Update_Success(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	book := sampleBook()
	book.PageCount = 1000

	mock.ExpectExec(`UPDATE books SET title = \?, author = \?, short_description = \?, page_count = \?, release_date = \? WHERE isbn = \?`).
		WithArgs(book.Title, book.Author, book.ShortDescription, 1000, "2024-08-22", book.Isbn).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(testContext(), book))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Update_NotFound(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectExec("UPDATE books").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(testContext(), sampleBook())
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookRepository_Update_ExecError(t *testing.T) {
	repo, mock := newPostgresMockRepo(t)
	mock.ExpectExec(`UPDATE books SET (.+) WHERE isbn = \$6`).WillReturnError(errors.New("boom"))

	err := repo.Update(testContext(), sampleBook())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestBookRepository_Update_RowsAffectedError(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectExec("UPDATE books").WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))

	err := repo.Update(testContext(), sampleBook())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestBookRepository_Delete_Success(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)

	mock.ExpectExec(`DELETE FROM books WHERE isbn = \?`).
		WithArgs("123-4567890123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(testContext(), "123-4567890123"))
}

func TestBookRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectExec("DELETE FROM books").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(testContext(), "123-4567890123")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookRepository_Delete_ClosedDB(t *testing.T) {
	db, mock := newMockDB(t, sqliteDialect, searchLike, NewSQLiteErrorClassifier())
	mock.ExpectClose()
	require.NoError(t, db.Close())
	repo := NewBookRepository(db, logger.Nop())

	err := repo.Delete(testContext(), "123-4567890123")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestBookRepository_GetByIsbn_NoRowsIsNotFound(t *testing.T) {
	repo, mock := newSQLiteMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM books b").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIsbn(testContext(), "123-4567890123")
	assert.ErrorIs(t, err, ErrBookNotFound)
}
