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

// Package records owns the in-memory RecordSet of the signed-in account and is the
// only writer of data_<username> keys.
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/storage"
	"github.com/localnerve/seedledger/internal/types"
)

// Store holds the committed RecordSet for at most one active session.
// All writers go through Mutate, which serialises them.
type Store struct {
	backend storage.Store

	mu         sync.RWMutex
	session    *models.Session
	set        models.RecordSet
	diagnostic error
}

// New returns a store with no active session.
func New(backend storage.Store) *Store {
	return &Store{backend: backend, set: models.NewRecordSet()}
}

// CurrentKey returns the storage key for session, or the shared default key when nil.
func CurrentKey(session *models.Session) string {
	if session == nil {
		return storage.DefaultDataKey
	}
	return storage.DataKey(session.Username)
}

// Load reads the persisted set for username.
// Missing data, malformed data and read failures all produce an empty set; the
// latter two are logged and kept as the last diagnostic.
func (s *Store) Load(ctx context.Context, username string) models.RecordSet {
	key := storage.DataKey(username)
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.diagnose(fmt.Errorf("read %s: %w", key, err))
		}
		return models.NewRecordSet()
	}

	var set models.RecordSet
	if err := json.Unmarshal(raw, &set); err != nil {
		s.diagnose(fmt.Errorf("%w at %s: %v", types.ErrMalformedData, key, err))
		return models.NewRecordSet()
	}
	return set
}

// Save writes the whole set for username in one Put.
func (s *Store) Save(ctx context.Context, set models.RecordSet, username string) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode record set: %w", err)
	}
	if err := s.backend.Put(ctx, storage.DataKey(username), raw); err != nil {
		return fmt.Errorf("save record set: %w", err)
	}
	return nil
}

// Activate loads session's set and makes it the committed set, replacing any previous one.
func (s *Store) Activate(ctx context.Context, session models.Session) {
	set := s.Load(ctx, session.Username)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	s.set = set
}

// Discard drops the in-memory set. Persisted data is untouched.
func (s *Store) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.set = models.NewRecordSet()
}

// Active returns the session whose set is loaded.
func (s *Store) Active() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

// Snapshot returns a copy of the committed set.
func (s *Store) Snapshot() models.RecordSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Clone()
}

// Mutate applies fn to a copy of the committed set and persists the result.
// The copy replaces the committed set only when fn and the save both succeed.
func (s *Store) Mutate(ctx context.Context, fn func(*models.RecordSet) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return types.ErrNoSession
	}

	next := s.set.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.Save(ctx, next, s.session.Username); err != nil {
		return err
	}
	s.set = next
	return nil
}

// LastDiagnostic returns the most recent recovered load problem, if any.
func (s *Store) LastDiagnostic() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.diagnostic
}

func (s *Store) diagnose(err error) {
	log.Printf("records: resetting to empty record set: %v", err)
	s.mu.Lock()
	s.diagnostic = err
	s.mu.Unlock()
}
