// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the library service.
//
// Each invocation runs one command against the server through
// [adapter.BookAPI]:
//
//	create [file]          POST /books, book JSON from file or stdin
//	get <isbn>             GET /books/{isbn}
//	list [searchTerm]      GET /books
//	update <isbn> [file]   PUT /books/{isbn}, book JSON from file or stdin
//	delete <isbn>          DELETE /books/{isbn}
//	version                GET /version
//
// Books are printed as indented JSON. A file argument of "-" means stdin.
package client
