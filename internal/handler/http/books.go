// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-library/internal/logger"
	"github.com/MKhiriev/go-library/internal/utils"
	"github.com/MKhiriev/go-library/internal/validators"
	"github.com/MKhiriev/go-library/models"
	"github.com/go-chi/chi/v5"
)

const (
	maxBookBodySize = 1 << 20

	searchTermParam = "searchTerm"
	bodyProperty    = "body"
)

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	book, ok := decodeBook(w, r)
	if !ok {
		return
	}

	created, err := h.services.BookService.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("isbn", book.Isbn).Msg("book was not created")
		writeError(w, err)
		return
	}

	w.Header().Set("Location", bookLocation(created.Isbn))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	isbn := isbnParam(r)

	book, err := h.services.BookService.GetBook(r.Context(), isbn)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("isbn", isbn).Msg("book was not fetched")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	searchTerm := r.URL.Query().Get(searchTermParam)

	books, err := h.services.BookService.ListBooks(r.Context(), searchTerm)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("search_term", searchTerm).Msg("books were not listed")
		writeError(w, err)
		return
	}
	if books == nil {
		books = []models.Book{}
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	isbn := isbnParam(r)

	book, ok := decodeBook(w, r)
	if !ok {
		return
	}

	updated, err := h.services.BookService.UpdateBook(ctx, isbn, book)
	if err != nil {
		log.Err(err).Str("isbn", isbn).Msg("book was not updated")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	isbn := isbnParam(r)

	if err := h.services.BookService.DeleteBook(r.Context(), isbn); err != nil {
		logger.FromRequest(r).Err(err).Str("isbn", isbn).Msg("book was not deleted")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBook reads the request body. On failure it answers 400 with a single
// failure on the "body" property and reports false.
func decodeBook(w http.ResponseWriter, r *http.Request) (models.Book, bool) {
	var book models.Book

	r.Body = http.MaxBytesReader(w, r.Body, maxBookBodySize)
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		logger.FromRequest(r).Err(err).Msg(errInvalidJSON.Error())
		utils.WriteJSON(w, validators.NewValidationErrors(bodyProperty, errInvalidJSON.Error()).Failures(), http.StatusBadRequest)
		return models.Book{}, false
	}

	return book, true
}

// writeError answers with the status bound to err. Validation failures are
// sent as a JSON list, a missing book gets an empty body.
func writeError(w http.ResponseWriter, err error) {
	if vErr, ok := validators.AsValidationErrors(err); ok {
		utils.WriteJSON(w, vErr.Failures(), http.StatusBadRequest)
		return
	}

	es := lookupError(err)
	switch {
	case es.status == http.StatusNotFound:
		w.WriteHeader(http.StatusNotFound)
	case es.expose:
		http.Error(w, es.target.Error(), es.status)
	default:
		http.Error(w, http.StatusText(es.status), es.status)
	}
}

// isbnParam returns the decoded {isbn} path value. chi routes on RawPath when
// it is set, otherwise the value is already decoded from URL.Path.
func isbnParam(r *http.Request) string {
	raw := chi.URLParam(r, "isbn")
	if r.URL.RawPath == "" {
		return raw
	}
	if isbn, err := url.PathUnescape(raw); err == nil {
		return isbn
	}
	return raw
}

func bookLocation(isbn string) string {
	return "/books/" + url.PathEscape(isbn)
}
