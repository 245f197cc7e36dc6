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

package s3store

import (
	"context"
	"testing"

	"github.com/localnerve/seedledger/internal/storage"
	"github.com/localnerve/seedledger/internal/storage/storetest"
)

func TestContract(t *testing.T) {
	s, _ := newMockStore("seedledger/")
	storetest.Run(t, s)
}

func TestObjectKeys(t *testing.T) {
	s, bucket := newMockStore("tenant/")
	if err := s.Put(context.Background(), storage.DataKey("asha"), []byte(`{}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	keys := bucket.keys()
	if len(keys) != 1 || keys[0] != "tenant/data_asha.json" {
		t.Errorf("Expected tenant/data_asha.json, got %v", keys)
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{Region: "us-east-1"}); err == nil {
		t.Error("Expected an error without a bucket")
	}
}
