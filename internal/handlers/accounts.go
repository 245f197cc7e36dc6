// accounts.go
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
	"github.com/localnerve/seedledger/internal/types"
	"github.com/localnerve/seedledger/internal/utils"
)

// AccountHandler handles sign up, sign in and sign out
type AccountHandler struct {
	Directory *accounts.Directory
}

// Credentials is the sign up and login request body
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountsStatus reports whether the login or signup form should be shown first
type AccountsStatus struct {
	HasAccounts bool `json:"hasAccounts"`
	Count       int  `json:"count"`
}

// GetAccounts handles GET /api/accounts
// @Summary Account directory status
// @Tags Accounts
// @Produce json
// @Success 200 {object} AccountsStatus
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /accounts [get]
func (h *AccountHandler) GetAccounts(c *fiber.Ctx) error {
	list, err := h.Directory.ListAccounts(c.UserContext())
	if err != nil {
		return respondError(c, err, "getAccounts")
	}
	return utils.SuccessResponse(c, AccountsStatus{HasAccounts: len(list) > 0, Count: len(list)}, fiber.StatusOK)
}

// Signup handles POST /api/auth/signup
// @Summary Register and sign in
// @Tags Accounts
// @Accept json
// @Produce json
// @Param credentials body Credentials true "Username and password"
// @Success 201 {object} models.Session
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /auth/signup [post]
func (h *AccountHandler) Signup(c *fiber.Ctx) error {
	var body Credentials
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, types.ErrInvalidInput, "signup")
	}

	session, err := h.Directory.Signup(c.UserContext(), body.Username, body.Password)
	if err != nil {
		return respondError(c, err, "signup")
	}
	return utils.SuccessResponse(c, session, fiber.StatusCreated)
}

// Login handles POST /api/auth/login
// @Summary Sign in
// @Tags Accounts
// @Accept json
// @Produce json
// @Param credentials body Credentials true "Username and password"
// @Success 200 {object} models.Session
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var body Credentials
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, types.ErrInvalidInput, "login")
	}

	session, err := h.Directory.Login(c.UserContext(), body.Username, body.Password)
	if err != nil {
		return respondError(c, err, "login")
	}
	return utils.SuccessResponse(c, session, fiber.StatusOK)
}

// Logout handles POST /api/auth/logout
// @Summary Sign out
// @Tags Accounts
// @Success 204
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/logout [post]
func (h *AccountHandler) Logout(c *fiber.Ctx) error {
	if err := h.Directory.Logout(c.UserContext()); err != nil {
		return respondError(c, err, "logout")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSession handles GET /api/auth/session
// @Summary Current session
// @Tags Accounts
// @Produce json
// @Success 200 {object} models.Session
// @Success 204 "Nobody is signed in"
// @Router /auth/session [get]
func (h *AccountHandler) GetSession(c *fiber.Ctx) error {
	session, ok := h.Directory.Current()
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return utils.SuccessResponse(c, session, fiber.StatusOK)
}
