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

package redisstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/localnerve/seedledger/internal/storage/redisstore"
	"github.com/localnerve/seedledger/internal/storage/storetest"
	"github.com/localnerve/seedledger/internal/testutil"
)

// TestWithRedis runs the store contract against a real redis container
func TestWithRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("REDIS_IMAGE") == "" {
		t.Skip("REDIS_IMAGE not set")
	}

	containers, err := testutil.StartRedisContainer(t)
	if err != nil {
		t.Fatalf("Failed to start redis: %v", err)
	}
	defer containers.Terminate(t)

	store, err := redisstore.New(context.Background(), redisstore.Config{
		Addr:   containers.RedisAddr,
		Prefix: testutil.UniquePrefix(),
	})
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer store.Close()

	storetest.Run(t, store)
}

func TestNewFailsWithoutServer(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping dial timeout in short mode")
	}
	_, err := redisstore.New(context.Background(), redisstore.Config{Addr: "127.0.0.1:1"})
	if err == nil {
		t.Error("Expected an error when nothing listens")
	}
}
