// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-library/internal/service"
	"github.com/MKhiriev/go-library/internal/store"
	"github.com/MKhiriev/go-library/internal/validators"
)

// errorStatus binds a sentinel to its status. When expose is set the
// sentinel's text is sent as the plain-text body.
type errorStatus struct {
	target error
	status int
	expose bool
}

// errorStatuses is matched in order: write failures wrap store errors, so
// they must be tested before the store sentinels.
var errorStatuses = []errorStatus{
	{target: validators.ErrValidationFailed, status: http.StatusBadRequest},

	{target: service.ErrBookNotCreated, status: http.StatusBadRequest, expose: true},
	{target: service.ErrBookNotUpdated, status: http.StatusBadRequest, expose: true},
	{target: service.ErrBookNotDeleted, status: http.StatusBadRequest, expose: true},
	{target: service.ErrStoreIsNotReachable, status: http.StatusServiceUnavailable},

	{target: store.ErrBookNotFound, status: http.StatusNotFound},
	{target: store.ErrBookAlreadyExists, status: http.StatusBadRequest},
	{target: store.ErrStoreBusy, status: http.StatusServiceUnavailable},
	{target: context.DeadlineExceeded, status: http.StatusServiceUnavailable},

	{target: store.ErrBuildingSQLQuery, status: http.StatusInternalServerError},
	{target: store.ErrExecutingQuery, status: http.StatusInternalServerError},
	{target: store.ErrExecutingStatement, status: http.StatusInternalServerError},
	{target: store.ErrScanningRow, status: http.StatusInternalServerError},
	{target: store.ErrScanningRows, status: http.StatusInternalServerError},
}

func statusFromError(err error) int {
	return lookupError(err).status
}

func lookupError(err error) errorStatus {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es
		}
	}
	return errorStatus{status: http.StatusInternalServerError}
}
