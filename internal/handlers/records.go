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

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/services"
	"github.com/localnerve/seedledger/internal/utils"
)

// RecordHandler serves the CRUD routes of one collection.
// View, when set, shapes list responses from the snapshot the items were listed from.
type RecordHandler[T models.Identified] struct {
	Manager    *services.Manager[T]
	Collection string
	View       func(rs models.RecordSet, items []T) interface{}
}

// List handles GET /api/<collection>?q=&status=&method=
func (h *RecordHandler[T]) List(c *fiber.Ctx) error {
	rs := h.Manager.Snapshot()
	items := h.Manager.ListFrom(rs, listOptions(c))
	if h.View != nil {
		return utils.SuccessResponse(c, h.View(rs, items), fiber.StatusOK)
	}
	return utils.SuccessResponse(c, items, fiber.StatusOK)
}

// Get handles GET /api/<collection>/:id
func (h *RecordHandler[T]) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, h.Collection)
	}
	rec, err := h.Manager.Get(id)
	if err != nil {
		return respondError(c, err, "get"+h.Collection)
	}
	return utils.SuccessResponse(c, rec, fiber.StatusOK)
}

// Create handles POST /api/<collection>
func (h *RecordHandler[T]) Create(c *fiber.Ctx) error {
	fields, err := parseForm(c)
	if err != nil {
		return respondError(c, err, h.Collection)
	}
	rec, err := h.Manager.Create(c.UserContext(), fields)
	if err != nil {
		return respondError(c, err, "create"+h.Collection)
	}
	c.Location(fmt.Sprintf("%s/%d", c.Path(), rec.GetID()))
	return utils.SuccessResponse(c, rec, fiber.StatusCreated)
}

// Update handles PUT /api/<collection>/:id
func (h *RecordHandler[T]) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, h.Collection)
	}
	fields, err := parseForm(c)
	if err != nil {
		return respondError(c, err, h.Collection)
	}
	rec, err := h.Manager.Update(c.UserContext(), id, fields)
	if err != nil {
		return respondError(c, err, "update"+h.Collection)
	}
	return utils.SuccessResponse(c, rec, fiber.StatusOK)
}

// Delete handles DELETE /api/<collection>/:id
func (h *RecordHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, h.Collection)
	}
	if err := h.Manager.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "delete"+h.Collection)
	}
	return utils.MutationSuccessResponse(c, h.Collection, id)
}

func (h *RecordHandler[T]) register(router fiber.Router) {
	router.Get("/", h.List)
	router.Post("/", h.Create)
	router.Get("/:id", h.Get)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}
