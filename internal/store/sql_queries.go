// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-library/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	booksTable = "books"
	booksAlias = "books b"
	ftsJoin    = "books_fts f ON f.rowid = b.id"
)

// bookColumns is the scan order of [scanBook].
var bookColumns = []string{
	"b.isbn",
	"b.title",
	"b.author",
	"b.short_description",
	"b.page_count",
	"b.release_date",
}

func (db *DB) insertBookQuery(book models.Book) sq.InsertBuilder {
	return db.builder().
		Insert(booksTable).
		Columns("isbn", "title", "author", "short_description", "page_count", "release_date").
		Values(book.Isbn, book.Title, book.Author, book.ShortDescription, book.PageCount, book.ReleaseDate)
}

func (db *DB) selectBookByIsbnQuery(isbn string) sq.SelectBuilder {
	return db.builder().
		Select(bookColumns...).
		From(booksAlias).
		Where(sq.Eq{"b.isbn": isbn})
}

// selectBooksQuery lists books in insertion order, optionally filtered by a
// title substring.
func (db *DB) selectBooksQuery(searchTerm string) sq.SelectBuilder {
	query := db.builder().
		Select(bookColumns...).
		From(booksAlias).
		OrderBy("b.id")

	if searchTerm == "" {
		return query
	}

	if db.search == searchFTS {
		return query.Join(ftsJoin).Where(db.titleFilter("f.title", searchTerm))
	}

	return query.Where(db.titleFilter("b.title", searchTerm))
}

func (db *DB) updateBookQuery(book models.Book) sq.UpdateBuilder {
	return db.builder().
		Update(booksTable).
		Set("title", book.Title).
		Set("author", book.Author).
		Set("short_description", book.ShortDescription).
		Set("page_count", book.PageCount).
		Set("release_date", book.ReleaseDate).
		Where(sq.Eq{"isbn": book.Isbn})
}

func (db *DB) deleteBookQuery(isbn string) sq.DeleteBuilder {
	return db.builder().
		Delete(booksTable).
		Where(sq.Eq{"isbn": isbn})
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (models.Book, error) {
	var book models.Book
	err := row.Scan(
		&book.Isbn,
		&book.Title,
		&book.Author,
		&book.ShortDescription,
		&book.PageCount,
		&book.ReleaseDate,
	)
	return book, err
}
