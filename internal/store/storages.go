// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library/internal/config"
	"github.com/MKhiriev/go-library/internal/logger"
)

// Storages groups the repositories handed to the service layer and owns the
// underlying connection.
type Storages struct {
	BookRepository BookRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. connects to the database selected by cfg.Driver;
//  2. applies pending migrations;
//  3. prepares the title search index;
//  4. constructs the repositories.
//
// The schema steps are idempotent and run on every start.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, logger)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	storages, err := newStoragesFromDB(ctx, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return storages, nil
}

func newStoragesFromDB(ctx context.Context, db *DB, logger *logger.Logger) (*Storages, error) {
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if err := db.EnsureSearchIndex(ctx); err != nil {
		return nil, fmt.Errorf("search index initialization failed: %w", err)
	}

	return &Storages{
		BookRepository: NewBookRepository(db, logger),
		db:             db,
	}, nil
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
