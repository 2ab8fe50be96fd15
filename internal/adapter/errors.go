// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-library/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrBookNotFound        = errors.New("book not found")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrInvalidAddress   = errors.New("invalid adapter http address")
	ErrDecodingResponse = errors.New("cannot decode response")
)

// APIValidationError is the client view of a 400 response carrying a list of
// field failures. It matches [ErrBadRequest] with errors.Is.
type APIValidationError struct {
	Failures []models.ValidationFailure
}

func (e *APIValidationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.PropertyName+": "+f.ErrorMessage)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *APIValidationError) Is(target error) bool {
	return target == ErrBadRequest
}
