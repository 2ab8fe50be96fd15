// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the book catalog.
//
// Routes:
//
//	GET    /books?searchTerm=  list books, optionally filtered by title
//	GET    /books/{isbn}       fetch one book
//	POST   /books              create (API key required)
//	PUT    /books/{isbn}       update (API key required)
//	DELETE /books/{isbn}       delete (API key required)
//	GET    /version            server version, text/plain
//	GET    /health             store reachability
//
// Request tracing, access logging, gzip and request timeouts are applied to
// every route before the request reaches the service layer. Handlers are the
// only place where service outcomes become HTTP status codes.
package http
