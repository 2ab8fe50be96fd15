// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library/internal/logger"
)

// Pinger is implemented by *store.Storages.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	pinger Pinger

	logger *logger.Logger
}

func NewHealthService(pinger Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

func (s *healthService) Ping(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Ping").Msg("store ping failed")
		return fmt.Errorf("%w: %w", ErrStoreIsNotReachable, err)
	}
	return nil
}
