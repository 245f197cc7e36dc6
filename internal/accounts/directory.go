// directory.go
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

// Package accounts keeps the registered operators and the signed-in session.
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/records"
	"github.com/localnerve/seedledger/internal/storage"
	"github.com/localnerve/seedledger/internal/types"
)

// Directory owns the usersDirectory and currentSessionPointer keys and drives the
// record store through sign in and sign out.
type Directory struct {
	backend storage.Store
	records *records.Store
	codec   PasswordCodec

	mu sync.Mutex
}

// NewDirectory builds a directory over backend. A nil codec means DemoCodec.
func NewDirectory(backend storage.Store, rec *records.Store, codec PasswordCodec) *Directory {
	if codec == nil {
		codec = DemoCodec{}
	}
	return &Directory{backend: backend, records: rec, codec: codec}
}

// ListAccounts returns every registered account. Missing or malformed directories read as empty.
func (d *Directory) ListAccounts(ctx context.Context) ([]models.Account, error) {
	raw, err := d.backend.Get(ctx, storage.KeyUsersDirectory)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}

	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		log.Printf("accounts: ignoring %v in %s: %v", types.ErrMalformedData, storage.KeyUsersDirectory, err)
		return []models.Account{}, nil
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// HasAccounts reports whether anyone has signed up yet.
func (d *Directory) HasAccounts(ctx context.Context) (bool, error) {
	accounts, err := d.ListAccounts(ctx)
	if err != nil {
		return false, err
	}
	return len(accounts) > 0, nil
}

// Signup registers username and signs it in.
func (d *Directory) Signup(ctx context.Context, username, password string) (models.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Session{}, types.ErrInvalidInput
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.ListAccounts(ctx)
	if err != nil {
		return models.Session{}, err
	}
	for _, a := range accounts {
		if a.Username == username {
			return models.Session{}, types.ErrDuplicateUsername
		}
	}

	encoded, err := d.codec.Encode(password)
	if err != nil {
		return models.Session{}, err
	}
	account := models.Account{
		ID:       models.NextID(accounts),
		Username: username,
		Password: encoded,
	}
	previous, err := d.backend.Get(ctx, storage.KeyUsersDirectory)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.Session{}, fmt.Errorf("read accounts: %w", err)
	}
	if err := d.putJSON(ctx, storage.KeyUsersDirectory, append(accounts, account)); err != nil {
		return models.Session{}, err
	}

	session := models.SessionFor(account)
	if err := d.establish(ctx, session); err != nil {
		d.restoreDirectory(ctx, previous)
		return models.Session{}, err
	}
	log.Printf("accounts: signed up %s (id %d)", session.Username, session.ID)
	return session, nil
}

// Login signs in an existing account. The username must match exactly as registered.
func (d *Directory) Login(ctx context.Context, username, password string) (models.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.ListAccounts(ctx)
	if err != nil {
		return models.Session{}, err
	}

	idx := -1
	for i, a := range accounts {
		if a.Username == username {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Session{}, types.ErrUserNotFound
	}
	if !d.codec.Matches(accounts[idx].Password, password) {
		return models.Session{}, types.ErrInvalidCredentials
	}

	session := models.SessionFor(accounts[idx])
	if err := d.establish(ctx, session); err != nil {
		return models.Session{}, err
	}
	log.Printf("accounts: %s logged in", session.Username)
	return session, nil
}

// Logout clears the session pointer and drops the in-memory record set.
func (d *Directory) Logout(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.backend.Delete(ctx, storage.KeyCurrentSessionPointer); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	d.records.Discard()
	return nil
}

// Current returns the signed-in session, if any.
func (d *Directory) Current() (models.Session, bool) {
	return d.records.Active()
}

// Resume restores the session recorded by a previous process.
// A pointer naming an account that no longer exists is ignored.
func (d *Directory) Resume(ctx context.Context) (models.Session, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	raw, err := d.backend.Get(ctx, storage.KeyCurrentSessionPointer)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, fmt.Errorf("read session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil || session.Username == "" {
		log.Printf("accounts: ignoring %v in %s", types.ErrMalformedData, storage.KeyCurrentSessionPointer)
		return models.Session{}, false, nil
	}

	accounts, err := d.ListAccounts(ctx)
	if err != nil {
		return models.Session{}, false, err
	}
	for _, a := range accounts {
		if a.Username == session.Username {
			d.records.Activate(ctx, models.SessionFor(a))
			log.Printf("accounts: resumed session for %s", a.Username)
			return models.SessionFor(a), true, nil
		}
	}
	return models.Session{}, false, nil
}

// establish persists the pointer and swaps the record store to session's data.
func (d *Directory) establish(ctx context.Context, session models.Session) error {
	if err := d.putJSON(ctx, storage.KeyCurrentSessionPointer, session); err != nil {
		return err
	}
	d.records.Activate(ctx, session)
	return nil
}

// restoreDirectory puts back the directory blob read before a failed signup.
// A nil blob means there was no directory.
func (d *Directory) restoreDirectory(ctx context.Context, previous []byte) {
	var err error
	if previous == nil {
		err = d.backend.Delete(ctx, storage.KeyUsersDirectory)
	} else {
		err = d.backend.Put(ctx, storage.KeyUsersDirectory, previous)
	}
	if err != nil {
		log.Printf("accounts: failed to restore %s after signup error: %v", storage.KeyUsersDirectory, err)
	}
}

func (d *Directory) putJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := d.backend.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
