// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library/internal/validators"
	"github.com/MKhiriev/go-library/models"
)

// bookValidationService rejects invalid books before they reach the wrapped
// service. Reads pass through unchanged.
type bookValidationService struct {
	inner     BookService
	validator validators.Validator
}

func NewBookValidationService() BookServiceWrapper {
	return &bookValidationService{
		validator: validators.NewBookValidator(),
	}
}

func (v *bookValidationService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	if err := v.validator.Validate(ctx, book); err != nil {
		return models.Book{}, fmt.Errorf("error during book validation before creating: %w", err)
	}

	return v.inner.CreateBook(ctx, book)
}

func (v *bookValidationService) GetBook(ctx context.Context, isbn string) (models.Book, error) {
	return v.inner.GetBook(ctx, isbn)
}

func (v *bookValidationService) ListBooks(ctx context.Context, searchTerm string) ([]models.Book, error) {
	return v.inner.ListBooks(ctx, searchTerm)
}

// UpdateBook validates the body with the ISBN taken from the path.
func (v *bookValidationService) UpdateBook(ctx context.Context, isbn string, book models.Book) (models.Book, error) {
	book.Isbn = isbn
	if err := v.validator.Validate(ctx, book); err != nil {
		return models.Book{}, fmt.Errorf("error during book validation before updating: %w", err)
	}

	return v.inner.UpdateBook(ctx, isbn, book)
}

func (v *bookValidationService) DeleteBook(ctx context.Context, isbn string) error {
	return v.inner.DeleteBook(ctx, isbn)
}

func (v *bookValidationService) Wrap(wrapper BookService) BookService {
	v.inner = wrapper
	return v
}
