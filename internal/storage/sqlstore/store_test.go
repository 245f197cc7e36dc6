// store_test.go
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

package sqlstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/seedledger/internal/storage"
	"github.com/localnerve/seedledger/internal/storage/sqlstore"
	"github.com/localnerve/seedledger/internal/storage/storetest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates a file-backed SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := sqlstore.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestContract(t *testing.T) {
	storetest.Run(t, sqlstore.New(setupTestDB(t)))
}

func TestUpsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	s := sqlstore.New(setupTestDB(t))

	for _, v := range []string{`{"v":1}`, `{"v":2}`, `{"v":3}`} {
		if err := s.Put(ctx, storage.KeyUsersDirectory, []byte(v)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}
	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 1 || keys[0] != storage.KeyUsersDirectory {
		t.Errorf("Expected a single usersDirectory row, got %v", keys)
	}
	got, _ := s.Get(ctx, storage.KeyUsersDirectory)
	if string(got) != `{"v":3}` {
		t.Errorf("Expected latest value, got %s", got)
	}
}
