// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library/internal/logger"
	"github.com/MKhiriev/go-library/internal/store"
	"github.com/MKhiriev/go-library/internal/validators"
	"github.com/MKhiriev/go-library/models"
)

type bookService struct {
	bookRepository store.BookRepository

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

// CreateBook checks the ISBN before inserting. The check is not atomic, so a
// unique violation from a concurrent insert is reported the same way.
func (s *bookService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	_, err := s.bookRepository.GetByIsbn(ctx, book.Isbn)
	switch {
	case err == nil:
		return models.Book{}, alreadyExists()
	case !errors.Is(err, store.ErrBookNotFound):
		log.Err(err).Str("func", "*bookService.CreateBook").Str("isbn", book.Isbn).Msg("error checking isbn")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBookNotCreated, err)
	}

	if err = s.bookRepository.Create(ctx, book); err != nil {
		if errors.Is(err, store.ErrBookAlreadyExists) {
			log.Debug().Str("func", "*bookService.CreateBook").Str("isbn", book.Isbn).Msg("isbn was taken concurrently")
			return models.Book{}, alreadyExists()
		}
		log.Err(err).Str("func", "*bookService.CreateBook").Str("isbn", book.Isbn).Msg("error creating book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBookNotCreated, err)
	}

	return book, nil
}

func (s *bookService) GetBook(ctx context.Context, isbn string) (models.Book, error) {
	return s.bookRepository.GetByIsbn(ctx, isbn)
}

func (s *bookService) ListBooks(ctx context.Context, searchTerm string) ([]models.Book, error) {
	books, err := s.bookRepository.GetAll(ctx, searchTerm)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}

func (s *bookService) UpdateBook(ctx context.Context, isbn string, book models.Book) (models.Book, error) {
	book.Isbn = isbn

	if err := s.bookRepository.Update(ctx, book); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return models.Book{}, err
		}
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.UpdateBook").Str("isbn", isbn).Msg("error updating book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBookNotUpdated, err)
	}

	return book, nil
}

func (s *bookService) DeleteBook(ctx context.Context, isbn string) error {
	if err := s.bookRepository.Delete(ctx, isbn); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return err
		}
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.DeleteBook").Str("isbn", isbn).Msg("error deleting book")
		return fmt.Errorf("%w: %w", ErrBookNotDeleted, err)
	}

	return nil
}

func alreadyExists() error {
	return validators.NewValidationErrors(validators.FieldIsbn, MsgBookAlreadyExists)
}
