// records.go
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
	"github.com/shopspring/decimal"
)

// Unit is the measure an inventory quantity is counted in.
type Unit string

const (
	UnitKg     Unit = "kg"
	UnitPieces Unit = "pieces"
	UnitBags   Unit = "bags"
)

// Units lists the accepted inventory units.
var Units = []Unit{UnitKg, UnitPieces, UnitBags}

// DistributionStatus tracks whether seed has reached the farmer.
type DistributionStatus string

const (
	DistributionPending   DistributionStatus = "Pending"
	DistributionCompleted DistributionStatus = "Completed"
)

var DistributionStatuses = []DistributionStatus{DistributionPending, DistributionCompleted}

// LogisticsStatus tracks a tractor load.
type LogisticsStatus string

const (
	LogisticsLoading   LogisticsStatus = "Loading"
	LogisticsInTransit LogisticsStatus = "In Transit"
	LogisticsDelivered LogisticsStatus = "Delivered"
)

var LogisticsStatuses = []LogisticsStatus{LogisticsLoading, LogisticsInTransit, LogisticsDelivered}

// PaymentMethod is how a farmer was paid.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCheck        PaymentMethod = "Check"
)

var PaymentMethods = []PaymentMethod{MethodCash, MethodBankTransfer, MethodCheck}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
)

var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentCompleted}

// Farmer is a registered grower. Distributions and payments refer to a farmer by Name.
type Farmer struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	FarmSize string `json:"farmSize"`
	Crops    string `json:"crops"`
}

func (f Farmer) GetID() int { return f.ID }

// InventoryItem is a seed stock line. Distributions refer to an item by Type.
type InventoryItem struct {
	ID       int             `json:"id"`
	Type     string          `json:"type"`
	Quantity int             `json:"quantity"`
	Unit     Unit            `json:"unit"`
	Price    decimal.Decimal `json:"price"`
	Supplier string          `json:"supplier"`
	Expiry   string          `json:"expiry"`
}

func (i InventoryItem) GetID() int { return i.ID }

// Distribution records seed handed to a farmer.
type Distribution struct {
	ID       int                `json:"id"`
	Farmer   string             `json:"farmer"`
	SeedType string             `json:"seedType"`
	Quantity int                `json:"quantity"`
	Date     string             `json:"date"`
	Status   DistributionStatus `json:"status"`
}

func (d Distribution) GetID() int { return d.ID }

// LogisticsEntry records a tractor load on its way to a destination.
type LogisticsEntry struct {
	ID            int             `json:"id"`
	TractorNumber string          `json:"tractorNumber"`
	DriverName    string          `json:"driverName"`
	BagsLoaded    int             `json:"bagsLoaded"`
	LoadingTeam   string          `json:"loadingTeam"`
	Destination   string          `json:"destination"`
	Date          string          `json:"date"`
	Status        LogisticsStatus `json:"status"`
}

func (l LogisticsEntry) GetID() int { return l.ID }

// Payment records money owed or paid to a farmer, referenced by FarmerName.
type Payment struct {
	ID            int             `json:"id"`
	FarmerName    string          `json:"farmerName"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"paymentDate"`
	Method        PaymentMethod   `json:"method"`
	Status        PaymentStatus   `json:"status"`
	Notes         string          `json:"notes"`
}

func (p Payment) GetID() int { return p.ID }
