// Package storetest checks that a storage.Store honours the key/value contract.
package storetest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/localnerve/seedledger/internal/storage"
)

// Run exercises store with the well-known keys. The store should start empty.
func Run(t *testing.T, store storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("ping", func(t *testing.T) {
		if err := store.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, err := store.Get(ctx, storage.KeyCurrentSessionPointer); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("put replaces value", func(t *testing.T) {
		key := storage.DataKey("asha")
		first := []byte(`{"farmers":[]}`)
		second := []byte(`{"farmers":[{"id":1,"name":"Ravi"}]}`)

		if err := store.Put(ctx, key, first); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Put(ctx, key, second); err != nil {
			t.Fatalf("second Put failed: %v", err)
		}
		got, err := store.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !jsonEqual(got, second) {
			t.Errorf("Expected %s, got %s", second, got)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		if err := store.Put(ctx, storage.DataKey("bala"), []byte(`{"payments":[]}`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := store.Get(ctx, storage.DataKey("asha"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if bytes.Contains(got, []byte("payments")) {
			t.Errorf("Write to bala leaked into asha: %s", got)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		key := storage.KeyUsersDirectory
		if err := store.Put(ctx, key, []byte(`[]`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Delete(ctx, key); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := store.Delete(ctx, key); err != nil {
			t.Fatalf("second Delete failed: %v", err)
		}
		if _, err := store.Get(ctx, key); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})
}

// jsonEqual ignores whitespace, which some backends (postgres JSONB) rewrite
func jsonEqual(a, b []byte) bool {
	strip := func(p []byte) []byte {
		return bytes.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' {
				return -1
			}
			return r
		}, p)
	}
	return bytes.Equal(strip(a), strip(b))
}
