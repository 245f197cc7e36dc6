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

// Package storage defines the key/value persistence boundary the record store and
// account directory write through. Each value is a complete JSON document.
package storage

import (
	"context"
	"errors"
)

// Driver identifies a concrete storage backend implementation.
type Driver string

const (
	// DriverMemory keeps values in process memory (tests, throwaway runs).
	DriverMemory Driver = "memory"
	// DriverSQL stores values in a gorm-managed table.
	DriverSQL Driver = "sql"
	// DriverRedis stores values as redis strings.
	DriverRedis Driver = "redis"
	// DriverS3 stores values as objects in an S3 / MinIO bucket.
	DriverS3 Driver = "s3"
)

// Well-known keys.
const (
	KeyUsersDirectory        = "usersDirectory"
	KeyCurrentSessionPointer = "currentSessionPointer"
	DataKeyPrefix            = "data_"
	DefaultDataKey           = "data"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a flat key/value map of JSON documents.
// Put replaces the whole value in a single write; Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Driver() Driver
}

// DataKey returns the key holding username's record set.
func DataKey(username string) string {
	if username == "" {
		return DefaultDataKey
	}
	return DataKeyPrefix + username
}
