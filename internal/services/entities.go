// entities.go
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
	"strings"

	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/utils"
)

var farmerKind = kind[models.Farmer]{
	name:       "farmer",
	collection: models.CollectionFarmers,
	slot:       func(rs *models.RecordSet) *[]models.Farmer { return &rs.Farmers },
	parse: func(f Fields) (models.Farmer, error) {
		p := parseFields(f)
		rec := models.Farmer{
			Name:     p.text("name"),
			Contact:  p.optional("contact"),
			Address:  p.text("address"),
			FarmSize: p.text("farmSize"),
			Crops:    p.text("crops"),
		}
		return rec, p.err()
	},
	withID: func(rec models.Farmer, id int) models.Farmer { rec.ID = id; return rec },
	match: func(rec models.Farmer, opts ListOptions) bool {
		return utils.ContainsFold(opts.Search, rec.Name, rec.Contact, rec.Address)
	},
}

var inventoryKind = kind[models.InventoryItem]{
	name:       "inventory item",
	collection: models.CollectionInventory,
	slot:       func(rs *models.RecordSet) *[]models.InventoryItem { return &rs.Inventory },
	parse: func(f Fields) (models.InventoryItem, error) {
		p := parseFields(f)
		rec := models.InventoryItem{
			Type:     p.text("type"),
			Quantity: p.count("quantity"),
			Unit:     choice(p, "unit", models.Units),
			Price:    p.money("price"),
			Supplier: p.text("supplier"),
			Expiry:   p.date("expiry"),
		}
		return rec, p.err()
	},
	withID: func(rec models.InventoryItem, id int) models.InventoryItem { rec.ID = id; return rec },
	match: func(rec models.InventoryItem, opts ListOptions) bool {
		return utils.ContainsFold(opts.Search, rec.Type, rec.Supplier)
	},
}

var distributionKind = kind[models.Distribution]{
	name:       "distribution",
	collection: models.CollectionDistributions,
	slot:       func(rs *models.RecordSet) *[]models.Distribution { return &rs.Distributions },
	parse: func(f Fields) (models.Distribution, error) {
		p := parseFields(f)
		rec := models.Distribution{
			Farmer:   p.text("farmer"),
			SeedType: p.text("seedType"),
			Quantity: p.count("quantity"),
			Date:     p.date("date"),
			Status:   choice(p, "status", models.DistributionStatuses),
		}
		return rec, p.err()
	},
	withID: func(rec models.Distribution, id int) models.Distribution { rec.ID = id; return rec },
	match: func(rec models.Distribution, opts ListOptions) bool {
		// dates match on their literal text
		return utils.ContainsFold(opts.Search, rec.Farmer, rec.SeedType) ||
			strings.Contains(rec.Date, opts.Search)
	},
}

var logisticsKind = kind[models.LogisticsEntry]{
	name:       "logistics entry",
	collection: models.CollectionLogistics,
	slot:       func(rs *models.RecordSet) *[]models.LogisticsEntry { return &rs.Logistics },
	parse: func(f Fields) (models.LogisticsEntry, error) {
		p := parseFields(f)
		rec := models.LogisticsEntry{
			TractorNumber: p.text("tractorNumber"),
			DriverName:    p.text("driverName"),
			BagsLoaded:    p.count("bagsLoaded"),
			LoadingTeam:   p.text("loadingTeam"),
			Destination:   p.text("destination"),
			Date:          p.date("date"),
			Status:        choice(p, "status", models.LogisticsStatuses),
		}
		return rec, p.err()
	},
	withID: func(rec models.LogisticsEntry, id int) models.LogisticsEntry { rec.ID = id; return rec },
	match: func(rec models.LogisticsEntry, opts ListOptions) bool {
		if opts.Status != "" && string(rec.Status) != opts.Status {
			return false
		}
		return utils.ContainsFold(opts.Search, rec.TractorNumber, rec.DriverName, rec.Destination)
	},
}

var paymentKind = kind[models.Payment]{
	name:       "payment",
	collection: models.CollectionPayments,
	slot:       func(rs *models.RecordSet) *[]models.Payment { return &rs.Payments },
	parse: func(f Fields) (models.Payment, error) {
		p := parseFields(f)
		rec := models.Payment{
			FarmerName:    p.text("farmerName"),
			AccountNumber: p.text("accountNumber"),
			Amount:        p.money("amount"),
			PaymentDate:   p.date("paymentDate"),
			Method:        choice(p, "method", models.PaymentMethods),
			Status:        choice(p, "status", models.PaymentStatuses),
			Notes:         p.optional("notes"),
		}
		return rec, p.err()
	},
	withID: func(rec models.Payment, id int) models.Payment { rec.ID = id; return rec },
	match: func(rec models.Payment, opts ListOptions) bool {
		if opts.Method != "" && string(rec.Method) != opts.Method {
			return false
		}
		return utils.ContainsFold(opts.Search, rec.FarmerName, rec.AccountNumber, string(rec.Method))
	},
}
