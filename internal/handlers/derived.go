// derived.go
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
	"github.com/localnerve/seedledger/internal/derive"
	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/services"
	"github.com/localnerve/seedledger/internal/utils"
)

// DerivedHandler serves the computed views of the signed-in account's records
type DerivedHandler struct {
	Workspace     *services.Workspace
	ActivityLimit int
}

// GetDashboard handles GET /api/dashboard
// @Summary Dashboard totals
// @Tags Derived
// @Produce json
// @Success 200 {object} derive.Summary
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /dashboard [get]
func (h *DerivedHandler) GetDashboard(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, derive.DashboardSummary(h.Workspace.Snapshot()), fiber.StatusOK)
}

// GetActivity handles GET /api/activity?limit=
// @Summary Recent activity feed
// @Tags Derived
// @Produce json
// @Param limit query int false "Maximum entries"
// @Success 200 {array} derive.ActivityEntry
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /activity [get]
func (h *DerivedHandler) GetActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.ActivityLimit)
	return utils.SuccessResponse(c, derive.RecentActivity(h.Workspace.Snapshot(), limit), fiber.StatusOK)
}

// GetBreakdown handles GET /api/breakdown
// @Summary Bags distributed per seed type
// @Tags Derived
// @Produce json
// @Success 200 {array} derive.SeedTypeTotal
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /breakdown [get]
func (h *DerivedHandler) GetBreakdown(c *fiber.Ctx) error {
	rs := h.Workspace.Snapshot()
	return utils.SuccessResponse(c, derive.SeedTypeBreakdown(rs.Distributions), fiber.StatusOK)
}

// GetSearch handles GET /api/search?q=
// @Summary Search farmers, inventory, logistics and payments
// @Tags Derived
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} derive.SearchResult
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /search [get]
func (h *DerivedHandler) GetSearch(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, derive.GlobalSearch(c.Query("q"), h.Workspace.Snapshot()), fiber.StatusOK)
}

// GetOptions handles GET /api/options
// @Summary Farmer names and seed types for form selects
// @Tags Derived
// @Produce json
// @Success 200 {object} derive.Options
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /options [get]
func (h *DerivedHandler) GetOptions(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, derive.ReferenceOptions(h.Workspace.Snapshot()), fiber.StatusOK)
}

// GetDistributionCost handles GET /api/distributions/:id/cost
// @Summary Price a distribution against current inventory
// @Tags Derived
// @Produce json
// @Param id path int true "Distribution id"
// @Success 200 {object} derive.PricedDistribution
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /distributions/{id}/cost [get]
func (h *DerivedHandler) GetDistributionCost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "getDistributionCost")
	}
	rs := h.Workspace.Snapshot()
	d, err := h.Workspace.Distributions().GetFrom(rs, id)
	if err != nil {
		return respondError(c, err, "getDistributionCost")
	}
	priced := derive.PricedDistributions(rs, []models.Distribution{d})
	return utils.SuccessResponse(c, priced[0], fiber.StatusOK)
}
