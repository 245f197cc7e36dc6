// search.go
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

package derive

import (
	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/utils"
)

// SearchMatch is one record found by GlobalSearch.
type SearchMatch struct {
	Category string `json:"category"`
	Record   any    `json:"record"`
}

// SearchResult carries every match and the first category that had one.
// Category is empty when nothing matched.
type SearchResult struct {
	Term     string        `json:"term"`
	Category string        `json:"category"`
	Matches  []SearchMatch `json:"matches"`
}

// GlobalSearch scans farmers, inventory, logistics and payments in that order.
// Distributions are not searched.
func GlobalSearch(term string, rs models.RecordSet) SearchResult {
	result := SearchResult{Term: term, Matches: []SearchMatch{}}
	if term == "" {
		return result
	}

	add := func(category string, rec any) {
		if result.Category == "" {
			result.Category = category
		}
		result.Matches = append(result.Matches, SearchMatch{Category: category, Record: rec})
	}

	for _, f := range rs.Farmers {
		if utils.ContainsFold(term, f.Name, f.Contact, f.Address) {
			add(models.CollectionFarmers, f)
		}
	}
	for _, item := range rs.Inventory {
		if utils.ContainsFold(term, item.Type, item.Supplier) {
			add(models.CollectionInventory, item)
		}
	}
	for _, l := range rs.Logistics {
		if utils.ContainsFold(term, l.TractorNumber, l.DriverName) {
			add(models.CollectionLogistics, l)
		}
	}
	for _, p := range rs.Payments {
		if utils.ContainsFold(term, p.FarmerName, p.AccountNumber) {
			add(models.CollectionPayments, p)
		}
	}
	return result
}

// Options are the values offered by the distribution and payment forms.
type Options struct {
	FarmerNames []string `json:"farmerNames"`
	SeedTypes   []string `json:"seedTypes"`
}

// ReferenceOptions lists farmer names and inventory types in collection order.
func ReferenceOptions(rs models.RecordSet) Options {
	opts := Options{FarmerNames: []string{}, SeedTypes: []string{}}
	for _, f := range rs.Farmers {
		opts.FarmerNames = append(opts.FarmerNames, f.Name)
	}
	for _, item := range rs.Inventory {
		opts.SeedTypes = append(opts.SeedTypes, item.Type)
	}
	return opts
}
