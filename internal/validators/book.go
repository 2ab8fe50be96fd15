// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-library/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the Go field names of [models.Book] and the PropertyName of
// reported failures.
const (
	FieldIsbn             = "Isbn"
	FieldTitle            = "Title"
	FieldAuthor           = "Author"
	FieldShortDescription = "ShortDescription"
	FieldPageCount        = "PageCount"
)

const (
	tagISBN13   = "isbn13"
	tagNotBlank = "notblank"

	MessageInvalidIsbn = "Value was not a valide ISBN 13"
)

// bookFields lists the validated fields in the order failures are reported.
var bookFields = []string{FieldIsbn, FieldTitle, FieldShortDescription, FieldPageCount, FieldAuthor}

// isbnPattern accepts exactly 10 or 13 digits with any non-digit separators
// between them, e.g. "978-0-13-235088-4" or "123-4567890123".
var isbnPattern = regexp.MustCompile(`^(?:\D*\d){10}(?:(?:\D*\d){3})?$`)

// BookValidator checks [models.Book] payloads using the struct tags declared
// on the model.
type BookValidator struct {
	validate *validator.Validate
}

// NewBookValidator constructs a [BookValidator] with the catalog's custom
// rules registered.
func NewBookValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails on an empty tag or nil func
	if err := v.RegisterValidation(tagISBN13, isISBN13); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(tagNotBlank, isNotBlank); err != nil {
		panic(err)
	}

	return &BookValidator{validate: v}
}

func (v *BookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Book:
		return v.validateBook(ctx, value, fields...)
	case *models.Book:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateBook(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BookValidator) validateBook(ctx context.Context, book models.Book, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, book)
	} else {
		for _, f := range fields {
			if !slices.Contains(bookFields, f) {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = v.validate.StructPartialCtx(ctx, book, fields...)
	}

	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	failures := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		failures = append(failures, models.ValidationFailure{
			PropertyName: fe.StructField(),
			ErrorMessage: messageFor(fe),
		})
	}

	slices.SortStableFunc(failures, func(a, b models.ValidationFailure) int {
		return slices.Index(bookFields, a.PropertyName) - slices.Index(bookFields, b.PropertyName)
	})

	return failures
}

func messageFor(fe validator.FieldError) string {
	name := displayName(fe.StructField())

	switch fe.Tag() {
	case tagISBN13:
		return MessageInvalidIsbn
	case tagNotBlank, "required":
		return fmt.Sprintf("'%s' must not be empty.", name)
	case "gt":
		return fmt.Sprintf("'%s' must be greater than '%s'.", name, fe.Param())
	default:
		return fmt.Sprintf("'%s' is not valid.", name)
	}
}

// displayName splits a Go field name into words: "ShortDescription" becomes
// "Short Description".
func displayName(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	return b.String()
}

func isISBN13(fl validator.FieldLevel) bool {
	return isbnPattern.MatchString(fl.Field().String())
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
