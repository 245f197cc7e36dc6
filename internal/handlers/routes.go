// routes.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/seedledger/internal/accounts"
	"github.com/localnerve/seedledger/internal/derive"
	"github.com/localnerve/seedledger/internal/middleware"
	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/services"
)

// Register mounts every API route on api
func Register(api fiber.Router, dir *accounts.Directory, ws *services.Workspace, activityLimit int) {
	accountHandler := &AccountHandler{Directory: dir}
	derivedHandler := &DerivedHandler{Workspace: ws, ActivityLimit: activityLimit}

	// Account routes (no session required)
	api.Get("/accounts", accountHandler.GetAccounts)
	auth := api.Group("/auth")
	auth.Post("/signup", accountHandler.Signup)
	auth.Post("/login", accountHandler.Login)
	auth.Post("/logout", accountHandler.Logout)
	auth.Get("/session", accountHandler.GetSession)

	// Everything below works on the signed-in account's records
	guard := middleware.RequireSession(dir)

	(&RecordHandler[models.Farmer]{
		Manager:    ws.Farmers(),
		Collection: models.CollectionFarmers,
	}).register(api.Group("/farmers", guard))

	(&RecordHandler[models.InventoryItem]{
		Manager:    ws.Inventory(),
		Collection: models.CollectionInventory,
	}).register(api.Group("/inventory", guard))

	distributions := api.Group("/distributions", guard)
	distributions.Get("/:id/cost", derivedHandler.GetDistributionCost)
	(&RecordHandler[models.Distribution]{
		Manager:    ws.Distributions(),
		Collection: models.CollectionDistributions,
		View: func(rs models.RecordSet, items []models.Distribution) interface{} {
			return derive.PricedDistributions(rs, items)
		},
	}).register(distributions)

	(&RecordHandler[models.LogisticsEntry]{
		Manager:    ws.Logistics(),
		Collection: models.CollectionLogistics,
	}).register(api.Group("/logistics", guard))

	(&RecordHandler[models.Payment]{
		Manager:    ws.Payments(),
		Collection: models.CollectionPayments,
	}).register(api.Group("/payments", guard))

	api.Get("/dashboard", guard, derivedHandler.GetDashboard)
	api.Get("/activity", guard, derivedHandler.GetActivity)
	api.Get("/breakdown", guard, derivedHandler.GetBreakdown)
	api.Get("/search", guard, derivedHandler.GetSearch)
	api.Get("/options", guard, derivedHandler.GetOptions)
}
