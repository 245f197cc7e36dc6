// recordset.go
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

package models

import (
	"encoding/json"
	"slices"
)

// Collection names as they appear in the persisted blob and in search results.
const (
	CollectionFarmers       = "farmers"
	CollectionInventory     = "inventory"
	CollectionDistributions = "distributions"
	CollectionLogistics     = "logistics"
	CollectionPayments      = "payments"
)

// RecordSet is everything one account owns.
type RecordSet struct {
	Farmers       []Farmer         `json:"farmers"`
	Inventory     []InventoryItem  `json:"inventory"`
	Distributions []Distribution   `json:"distributions"`
	Logistics     []LogisticsEntry `json:"logistics"`
	Payments      []Payment        `json:"payments"`
}

// NewRecordSet returns a set with all five collections empty (not nil).
func NewRecordSet() RecordSet {
	return RecordSet{
		Farmers:       []Farmer{},
		Inventory:     []InventoryItem{},
		Distributions: []Distribution{},
		Logistics:     []LogisticsEntry{},
		Payments:      []Payment{},
	}
}

// Clone returns a copy that shares no slice storage with rs.
// Records hold only strings, ints and immutable decimals, so copying the slices is enough.
func (rs RecordSet) Clone() RecordSet {
	out := RecordSet{
		Farmers:       slices.Clone(rs.Farmers),
		Inventory:     slices.Clone(rs.Inventory),
		Distributions: slices.Clone(rs.Distributions),
		Logistics:     slices.Clone(rs.Logistics),
		Payments:      slices.Clone(rs.Payments),
	}
	out.normalize()
	return out
}

// IsEmpty reports whether all five collections are empty.
func (rs RecordSet) IsEmpty() bool {
	return len(rs.Farmers) == 0 && len(rs.Inventory) == 0 && len(rs.Distributions) == 0 &&
		len(rs.Logistics) == 0 && len(rs.Payments) == 0
}

// UnmarshalJSON decodes a persisted blob; absent or null collections become empty.
func (rs *RecordSet) UnmarshalJSON(data []byte) error {
	type plain RecordSet
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*rs = RecordSet(p)
	rs.normalize()
	return nil
}

func (rs *RecordSet) normalize() {
	if rs.Farmers == nil {
		rs.Farmers = []Farmer{}
	}
	if rs.Inventory == nil {
		rs.Inventory = []InventoryItem{}
	}
	if rs.Distributions == nil {
		rs.Distributions = []Distribution{}
	}
	if rs.Logistics == nil {
		rs.Logistics = []LogisticsEntry{}
	}
	if rs.Payments == nil {
		rs.Payments = []Payment{}
	}
}
