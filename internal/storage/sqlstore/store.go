// store.go
//
// Local multi-tenant record store for seed distribution, logistics and farmer payments
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of seedledger.
// seedledger is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// seedledger is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with seedledger.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package sqlstore implements storage.Store on a gorm-managed storage_entries table.
package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store persists every key as one row, replacing the row on each Put.
type Store struct {
	db *gorm.DB
}

// New wraps an open gorm connection. Migrate must have run against db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the storage_entries table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.StorageEntry{})
}

// Driver returns the storage driver identifier.
func (s *Store) Driver() storage.Driver { return storage.DriverSQL }

// quiet keeps blob traffic out of the SQL log
func (s *Store) quiet(ctx context.Context) *gorm.DB {
	return s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).WithContext(ctx)
}

// Get returns the value at key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.StorageEntry
	err := s.quiet(ctx).Where("storage_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return []byte(entry.Value.JSON), nil
}

// Put upserts the row for key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	entry := models.StorageEntry{StorageKey: key}
	entry.Value.JSON = value
	err := s.quiet(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Delete removes the row for key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.quiet(ctx).Where("storage_key = ?", key).Delete(&models.StorageEntry{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Keys lists every stored key, ordered.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := s.quiet(ctx).Model(&models.StorageEntry{}).Order("storage_key").Pluck("storage_key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
