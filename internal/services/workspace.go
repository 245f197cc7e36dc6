// workspace.go
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

// Package services implements the entity operations that mutate the signed-in
// account's records, plus service health reporting.
package services

import (
	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/records"
)

// Workspace is the session-scoped entry point for entity operations.
// Every manager it hands out reads and writes the record store's active set.
type Workspace struct {
	store         *records.Store
	farmers       *Manager[models.Farmer]
	inventory     *Manager[models.InventoryItem]
	distributions *Manager[models.Distribution]
	logistics     *Manager[models.LogisticsEntry]
	payments      *Manager[models.Payment]
}

// NewWorkspace wires one manager per collection to store.
func NewWorkspace(store *records.Store) *Workspace {
	return &Workspace{
		store:         store,
		farmers:       newManager(store, farmerKind),
		inventory:     newManager(store, inventoryKind),
		distributions: newManager(store, distributionKind),
		logistics:     newManager(store, logisticsKind),
		payments:      newManager(store, paymentKind),
	}
}

func (w *Workspace) Farmers() *Manager[models.Farmer]             { return w.farmers }
func (w *Workspace) Inventory() *Manager[models.InventoryItem]    { return w.inventory }
func (w *Workspace) Distributions() *Manager[models.Distribution] { return w.distributions }
func (w *Workspace) Logistics() *Manager[models.LogisticsEntry]   { return w.logistics }
func (w *Workspace) Payments() *Manager[models.Payment]           { return w.payments }

// Snapshot returns a copy of the active record set for derived views.
func (w *Workspace) Snapshot() models.RecordSet {
	return w.store.Snapshot()
}

// Session returns the session the workspace is operating on.
func (w *Workspace) Session() (models.Session, bool) {
	return w.store.Active()
}
