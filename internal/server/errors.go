// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	ErrListening    = errors.New("cannot listen on address")
	ErrServing      = errors.New("http server stopped unexpectedly")
	ErrShuttingDown = errors.New("graceful shutdown failed")
)
