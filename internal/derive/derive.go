// derive.go
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

// Package derive computes read-only views over a RecordSet. Nothing here is cached:
// every call joins the collections as they are now.
package derive

import (
	"fmt"
	"slices"

	"github.com/localnerve/seedledger/internal/models"
	"github.com/shopspring/decimal"
)

// Summary holds the dashboard totals.
type Summary struct {
	TotalFarmers         int             `json:"totalFarmers"`
	TotalBagsDistributed int             `json:"totalBagsDistributed"`
	TotalBagsInInventory int             `json:"totalBagsInInventory"`
	PendingSettlements   int             `json:"pendingSettlements"`
	InventoryValue       decimal.Decimal `json:"inventoryValue"`
}

// DashboardSummary totals the record set.
func DashboardSummary(rs models.RecordSet) Summary {
	s := Summary{
		TotalFarmers:   len(rs.Farmers),
		InventoryValue: decimal.Zero,
	}
	for _, d := range rs.Distributions {
		s.TotalBagsDistributed += d.Quantity
	}
	for _, item := range rs.Inventory {
		s.TotalBagsInInventory += item.Quantity
		s.InventoryValue = s.InventoryValue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	for _, p := range rs.Payments {
		if p.Status == models.PaymentPending {
			s.PendingSettlements++
		}
	}
	return s
}

// PricePerBag returns the price of the first inventory item whose type is seedType, or zero.
func PricePerBag(seedType string, inventory []models.InventoryItem) decimal.Decimal {
	for _, item := range inventory {
		if item.Type == seedType {
			return item.Price
		}
	}
	return decimal.Zero
}

// DistributionCost prices d against the current inventory.
func DistributionCost(d models.Distribution, inventory []models.InventoryItem) decimal.Decimal {
	return PricePerBag(d.SeedType, inventory).Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// PricedDistribution is a distribution joined with its inventory price.
type PricedDistribution struct {
	models.Distribution
	PricePerBag decimal.Decimal `json:"pricePerBag"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}

// PricedDistributions joins each of distributions with rs's inventory.
func PricedDistributions(rs models.RecordSet, distributions []models.Distribution) []PricedDistribution {
	out := make([]PricedDistribution, 0, len(distributions))
	for _, d := range distributions {
		price := PricePerBag(d.SeedType, rs.Inventory)
		out = append(out, PricedDistribution{
			Distribution: d,
			PricePerBag:  price,
			TotalCost:    price.Mul(decimal.NewFromInt(int64(d.Quantity))),
		})
	}
	return out
}

// SeedTypeTotal is one row of the breakdown.
type SeedTypeTotal struct {
	SeedType string `json:"seedType"`
	Quantity int    `json:"quantity"`
}

// SeedTypeBreakdown sums quantities per seed type, in order of first appearance.
func SeedTypeBreakdown(distributions []models.Distribution) []SeedTypeTotal {
	out := []SeedTypeTotal{}
	index := make(map[string]int)
	for _, d := range distributions {
		i, ok := index[d.SeedType]
		if !ok {
			i = len(out)
			index[d.SeedType] = i
			out = append(out, SeedTypeTotal{SeedType: d.SeedType})
		}
		out[i].Quantity += d.Quantity
	}
	return out
}

// DefaultActivityLimit is used when RecentActivity gets a non-positive limit.
const DefaultActivityLimit = 5

// perCategory is how many trailing records each category contributes.
const perCategory = 2

// ActivityEntry is one line of the recent activity feed.
type ActivityEntry struct {
	Category    string `json:"category"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Time        string `json:"time"`
	RecordID    int    `json:"recordId"`
}

// RecentActivity takes the last two farmers, inventory items, distributions and payments
// in that order, keeps the final limit entries and reverses them.
// Entries are grouped by category, not sorted by time.
func RecentActivity(rs models.RecordSet, limit int) []ActivityEntry {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	var all []ActivityEntry
	for _, f := range tail(rs.Farmers) {
		all = append(all, ActivityEntry{
			Category:    models.CollectionFarmers,
			Label:       "Farmer Added",
			Description: fmt.Sprintf("Added farmer %s", f.Name),
			Time:        timeOrRecent(""),
			RecordID:    f.ID,
		})
	}
	for _, item := range tail(rs.Inventory) {
		all = append(all, ActivityEntry{
			Category:    models.CollectionInventory,
			Label:       "Inventory Added",
			Description: fmt.Sprintf("Added %s (%d bags)", item.Type, item.Quantity),
			Time:        timeOrRecent(""),
			RecordID:    item.ID,
		})
	}
	for _, d := range tail(rs.Distributions) {
		all = append(all, ActivityEntry{
			Category:    models.CollectionDistributions,
			Label:       "Seed Distributed",
			Description: fmt.Sprintf("Distributed %d bags of %s to %s", d.Quantity, d.SeedType, d.Farmer),
			Time:        timeOrRecent(d.Date),
			RecordID:    d.ID,
		})
	}
	for _, p := range tail(rs.Payments) {
		all = append(all, ActivityEntry{
			Category:    models.CollectionPayments,
			Label:       "Payment Recorded",
			Description: fmt.Sprintf("Payment of ₹%s for %s", p.Amount.String(), p.FarmerName),
			Time:        timeOrRecent(p.PaymentDate),
			RecordID:    p.ID,
		})
	}

	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	slices.Reverse(all)
	if all == nil {
		all = []ActivityEntry{}
	}
	return all
}

func tail[T any](items []T) []T {
	if len(items) > perCategory {
		return items[len(items)-perCategory:]
	}
	return items
}

func timeOrRecent(t string) string {
	if t == "" {
		return "recent"
	}
	return t
}
