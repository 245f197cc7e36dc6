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

package memory

import (
	"context"
	"testing"

	"github.com/localnerve/seedledger/internal/storage/storetest"
)

func TestContract(t *testing.T) {
	storetest.Run(t, New())
}

func TestValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := New()
	value := []byte(`{"a":1}`)
	_ = s.Put(ctx, "k", value)
	value[2] = 'b'

	got, _ := s.Get(ctx, "k")
	if string(got) != `{"a":1}` {
		t.Errorf("Stored value aliased the caller's slice: %s", got)
	}

	if keys := s.Keys(); len(keys) != 1 || keys[0] != "k" {
		t.Errorf("Unexpected keys %v", keys)
	}
}
