// manager.go
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

package services

import (
	"context"
	"slices"

	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/records"
	"github.com/localnerve/seedledger/internal/types"
)

// ListOptions narrows a List call. Zero values match everything.
type ListOptions struct {
	Search string
	Status string // logistics only, exact match
	Method string // payments only, exact match
}

// kind describes one collection of the record set to the generic manager.
type kind[T models.Identified] struct {
	name       string
	collection string
	slot       func(rs *models.RecordSet) *[]T
	parse      func(f Fields) (T, error)
	withID     func(rec T, id int) T
	match      func(rec T, opts ListOptions) bool
}

// Manager provides create, update, delete and list for one entity kind.
type Manager[T models.Identified] struct {
	store *records.Store
	kind  kind[T]
}

func newManager[T models.Identified](store *records.Store, k kind[T]) *Manager[T] {
	return &Manager[T]{store: store, kind: k}
}

// Kind returns the entity name used in errors, e.g. "farmer".
func (m *Manager[T]) Kind() string { return m.kind.name }

// Create validates fields, assigns the next id and persists the new record.
func (m *Manager[T]) Create(ctx context.Context, fields Fields) (T, error) {
	var created T
	rec, err := m.kind.parse(fields)
	if err != nil {
		return created, err
	}

	err = m.store.Mutate(ctx, func(rs *models.RecordSet) error {
		items := m.kind.slot(rs)
		created = m.kind.withID(rec, models.NextID(*items))
		*items = append(*items, created)
		return nil
	})
	if err != nil {
		return created, err
	}
	recordMutations.WithLabelValues(m.kind.collection, "create").Inc()
	return created, nil
}

// Update replaces every field of record id except the id itself.
func (m *Manager[T]) Update(ctx context.Context, id int, fields Fields) (T, error) {
	var updated T
	err := m.store.Mutate(ctx, func(rs *models.RecordSet) error {
		items := m.kind.slot(rs)
		idx := models.IndexOf(*items, id)
		if idx < 0 {
			return &types.NotFoundError{Kind: m.kind.name, ID: id}
		}
		rec, err := m.kind.parse(fields)
		if err != nil {
			return err
		}
		updated = m.kind.withID(rec, id)
		(*items)[idx] = updated
		return nil
	})
	if err != nil {
		return updated, err
	}
	recordMutations.WithLabelValues(m.kind.collection, "update").Inc()
	return updated, nil
}

// Delete removes record id. Records naming it by natural key are left alone.
func (m *Manager[T]) Delete(ctx context.Context, id int) error {
	err := m.store.Mutate(ctx, func(rs *models.RecordSet) error {
		items := m.kind.slot(rs)
		idx := models.IndexOf(*items, id)
		if idx < 0 {
			return &types.NotFoundError{Kind: m.kind.name, ID: id}
		}
		*items = slices.Delete(*items, idx, idx+1)
		return nil
	})
	if err != nil {
		return err
	}
	recordMutations.WithLabelValues(m.kind.collection, "delete").Inc()
	return nil
}

// Get returns record id from the committed set.
func (m *Manager[T]) Get(id int) (T, error) {
	return m.GetFrom(m.store.Snapshot(), id)
}

// GetFrom looks id up in the collection held by rs.
func (m *Manager[T]) GetFrom(rs models.RecordSet, id int) (T, error) {
	items := *m.kind.slot(&rs)
	if idx := models.IndexOf(items, id); idx >= 0 {
		return items[idx], nil
	}
	var zero T
	return zero, &types.NotFoundError{Kind: m.kind.name, ID: id}
}

// List returns the matching records in collection order.
func (m *Manager[T]) List(opts ListOptions) []T {
	return m.ListFrom(m.store.Snapshot(), opts)
}

// ListFrom filters the collection held by rs, so callers can derive more views
// from the same snapshot.
func (m *Manager[T]) ListFrom(rs models.RecordSet, opts ListOptions) []T {
	out := []T{}
	for _, rec := range *m.kind.slot(&rs) {
		if m.kind.match(rec, opts) {
			out = append(out, rec)
		}
	}
	return out
}

// Snapshot returns a copy of the committed record set.
func (m *Manager[T]) Snapshot() models.RecordSet {
	return m.store.Snapshot()
}
