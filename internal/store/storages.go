// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/parts-registry/internal/config"
	"github.com/MKhiriev/parts-registry/internal/logger"
)

// Storages groups every repository the service layer depends on, all sharing
// one connection pool.
type Storages struct {
	Transactor           Transactor
	EntryRepository      EntryRepository
	FolderRepository     FolderRepository
	AccountRepository    AccountRepository
	PermissionRepository PermissionRepository
	FilterRepository     FilterRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and builds
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		logger.Err(err).Str("func", "store.NewStorages").Msg("error connecting to database")
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		logger.Err(err).Str("func", "store.NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories on top of an existing pool.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Transactor:           db,
		EntryRepository:      NewEntryRepository(db, logger),
		FolderRepository:     NewFolderRepository(db, logger),
		AccountRepository:    NewAccountRepository(db, logger),
		PermissionRepository: NewPermissionRepository(db, logger),
		FilterRepository:     NewFilterRepository(db, logger),
		db:                   db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
