// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePattern(t *testing.T) {
	tests := []struct {
		term        string
		wantPattern string
		wantEscaped bool
	}{
		{term: "arch", wantPattern: "%arch%", wantEscaped: false},
		{term: "Clean Code", wantPattern: "%Clean Code%", wantEscaped: false},
		{term: "100%", wantPattern: `%100\%%`, wantEscaped: true},
		{term: "snake_case", wantPattern: `%snake\_case%`, wantEscaped: true},
		{term: `C:\books`, wantPattern: `%C:\\books%`, wantEscaped: true},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			pattern, escaped := likePattern(tt.term)
			assert.Equal(t, tt.wantPattern, pattern)
			assert.Equal(t, tt.wantEscaped, escaped)
		})
	}
}

func TestTitleFilter(t *testing.T) {
	tests := []struct {
		name     string
		db       *DB
		term     string
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "like without metacharacters",
			db:       &DB{dialect: sqliteDialect, search: searchLike},
			term:     "arch",
			wantSQL:  "b.title LIKE ?",
			wantArgs: []any{"%arch%"},
		},
		{
			name:     "like with escape",
			db:       &DB{dialect: sqliteDialect, search: searchLike},
			term:     "a_b",
			wantSQL:  `b.title LIKE ? ESCAPE '\'`,
			wantArgs: []any{`%a\_b%`},
		},
		{
			name:     "ilike",
			db:       &DB{dialect: postgresDialect, search: searchILike},
			term:     "arch",
			wantSQL:  "b.title ILIKE ?",
			wantArgs: []any{"%arch%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.db.titleFilter("b.title", tt.term).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSelectBooksQuery(t *testing.T) {
	db := &DB{dialect: postgresDialect, search: searchILike}

	sql, args, err := db.selectBooksQuery("").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT b.isbn, b.title, b.author, b.short_description, b.page_count, b.release_date FROM books b ORDER BY b.id", sql)
	assert.Empty(t, args)

	sql, args, err = db.selectBooksQuery("go").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT b.isbn, b.title, b.author, b.short_description, b.page_count, b.release_date FROM books b WHERE b.title ILIKE $1 ORDER BY b.id", sql)
	assert.Equal(t, []any{"%go%"}, args)
}

func TestEnsureSearchIndex_ExistingIndexWithoutModule(t *testing.T) {
	db, mock := newMockDB(t, sqliteDialect, searchLike, NewSQLiteErrorClassifier())

	mock.ExpectQuery(regexp.QuoteMeta(findBooksFTS)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(probeBooksFTS)).
		WillReturnError(errors.New("no such module: fts5"))

	err := db.EnsureSearchIndex(context.Background())

	require.ErrorIs(t, err, ErrSearchIndexUnavailable)
	assert.Equal(t, searchLike, db.search)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSearchIndex_ExistingIndex(t *testing.T) {
	db, mock := newMockDB(t, sqliteDialect, searchLike, NewSQLiteErrorClassifier())

	mock.ExpectQuery(regexp.QuoteMeta(findBooksFTS)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(probeBooksFTS)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	for range booksFTSTriggers {
		mock.ExpectExec(`CREATE TRIGGER IF NOT EXISTS books_fts_`).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, db.EnsureSearchIndex(context.Background()))
	assert.Equal(t, searchFTS, db.search)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSearchIndex_FreshDatabaseWithoutModule(t *testing.T) {
	db, mock := newMockDB(t, sqliteDialect, searchLike, NewSQLiteErrorClassifier())

	mock.ExpectQuery(regexp.QuoteMeta(findBooksFTS)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE VIRTUAL TABLE books_fts`).
		WillReturnError(errors.New("no such module: fts5"))
	mock.ExpectRollback()

	require.NoError(t, db.EnsureSearchIndex(context.Background()))
	assert.Equal(t, searchLike, db.search)
	assert.NoError(t, mock.ExpectationsWereMet())
}
