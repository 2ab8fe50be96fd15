// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without api key
	router.Group(func(r chi.Router) {
		r.Get("/books", h.listBooks)
		r.Get("/books/{isbn}", h.getBook)
		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.health)
	})

	// writes
	router.Group(func(r chi.Router) {
		r.Use(h.requireAPIKey)
		r.Post("/books", h.createBook)
		r.Put("/books/{isbn}", h.updateBook)
		r.Delete("/books/{isbn}", h.deleteBook)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
