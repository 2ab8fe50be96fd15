// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-library/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidationFailed is matched by every [ValidationErrors] value through
	// errors.Is, so callers can branch without unpacking the failures.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationErrors is a list of field failures returned as a single error.
// It is never empty when returned by a validator.
type ValidationErrors []models.ValidationFailure

// NewValidationErrors builds a single-failure [ValidationErrors].
func NewValidationErrors(propertyName, errorMessage string) ValidationErrors {
	return ValidationErrors{{PropertyName: propertyName, ErrorMessage: errorMessage}}
}

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e {
		parts = append(parts, f.PropertyName+": "+f.ErrorMessage)
	}

	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

// Failures returns the failures as a plain slice, never nil.
func (e ValidationErrors) Failures() []models.ValidationFailure {
	if e == nil {
		return []models.ValidationFailure{}
	}

	return []models.ValidationFailure(e)
}

// AsValidationErrors unwraps err into [ValidationErrors] if it carries any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var vErr ValidationErrors
	if errors.As(err, &vErr) {
		return vErr, true
	}

	return nil, false
}
