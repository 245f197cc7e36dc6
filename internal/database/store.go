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

package database

import (
	"context"
	"fmt"
	"log"

	"github.com/localnerve/seedledger/internal/config"
	"github.com/localnerve/seedledger/internal/storage"
	"github.com/localnerve/seedledger/internal/storage/memory"
	"github.com/localnerve/seedledger/internal/storage/redisstore"
	"github.com/localnerve/seedledger/internal/storage/s3store"
	"github.com/localnerve/seedledger/internal/storage/sqlstore"
)

// OpenStore opens the persistence boundary selected by STORE_DRIVER.
// The returned close function releases any connection the store holds.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, func() error, error) {
	noop := func() error { return nil }

	switch storage.Driver(cfg.StoreDriver) {
	case storage.DriverMemory:
		log.Printf("Using in-memory storage; data is lost on exit")
		return memory.New(), noop, nil

	case storage.DriverSQL:
		db, err := Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlstore.Migrate(db); err != nil {
			_ = Close(db)
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return sqlstore.New(db), func() error { return Close(db) }, nil

	case storage.DriverRedis:
		s, err := redisstore.New(ctx, redisstore.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Connected to redis storage: %s", cfg.RedisAddr)
		return s, s.Close, nil

	case storage.DriverS3:
		s, err := s3store.New(ctx, s3store.Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PathStyle:       cfg.S3PathStyle,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Using s3 storage: bucket=%s prefix=%s", cfg.S3Bucket, cfg.S3Prefix)
		return s, noop, nil
	}

	return nil, nil, fmt.Errorf("unsupported storage driver: %s", cfg.StoreDriver)
}
