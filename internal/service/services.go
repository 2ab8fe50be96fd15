// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-library/internal/config"
	"github.com/MKhiriev/go-library/internal/logger"
	"github.com/MKhiriev/go-library/internal/store"
)

type Services struct {
	BookService    BookService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	bookService := NewBookValidationService().Wrap(
		NewBookService(storages.BookRepository, logger),
	)

	return &Services{
		BookService:    bookService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages, logger),
	}, nil
}
