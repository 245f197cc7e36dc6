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

package database_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/localnerve/seedledger/internal/config"
	"github.com/localnerve/seedledger/internal/database"
	"github.com/localnerve/seedledger/internal/storage"
	"github.com/localnerve/seedledger/internal/storage/storetest"
	"github.com/localnerve/seedledger/internal/testutil"
)

func TestOpenStoreDrivers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		cfg    *config.Config
		driver storage.Driver
	}{
		{"memory", &config.Config{StoreDriver: "memory"}, storage.DriverMemory},
		{"sqlite", &config.Config{
			StoreDriver:       "sql",
			DBType:            "sqlite",
			DBDatabase:        filepath.Join(t.TempDir(), "seedledger.db"),
			DBConnectionLimit: 5,
		}, storage.DriverSQL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, closeStore, err := database.OpenStore(ctx, tt.cfg)
			if err != nil {
				t.Fatalf("OpenStore failed: %v", err)
			}
			defer closeStore()

			if store.Driver() != tt.driver {
				t.Errorf("Expected driver %s, got %s", tt.driver, store.Driver())
			}
			storetest.Run(t, store)
		})
	}
}

func TestOpenStoreRejectsUnknown(t *testing.T) {
	if _, _, err := database.OpenStore(context.Background(), &config.Config{StoreDriver: "floppy"}); err == nil {
		t.Error("Expected error for unknown driver")
	}
	if _, err := database.Dialector(&config.Config{DBType: "oracle"}); err == nil {
		t.Error("Expected error for unknown database type")
	}
}

// TestWithDatabaseContainer runs the store contract against DB_IMAGE (postgres or mariadb)
func TestWithDatabaseContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("DB_IMAGE") == "" {
		t.Skip("DB_IMAGE not set")
	}

	containers, err := testutil.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start containers: %v", err)
	}
	defer containers.Terminate(t)

	store, closeStore, err := database.OpenStore(context.Background(), containers.Config())
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	defer closeStore()

	storetest.Run(t, store)
}
