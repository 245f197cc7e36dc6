// common.go
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
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/seedledger/internal/services"
	"github.com/localnerve/seedledger/internal/types"
	"github.com/localnerve/seedledger/internal/utils"
)

// ErrorStatus maps a domain error to its HTTP status and error type.
// Unknown errors are 500s.
func ErrorStatus(err error) (int, string) {
	var verr *types.ValidationError
	var nf *types.NotFoundError
	var ce *types.CustomError
	var fe *fiber.Error

	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, "validation"
	case errors.As(err, &nf):
		return fiber.StatusNotFound, "notFound"
	case errors.As(err, &ce):
		return ce.Code, ce.Type
	case errors.As(err, &fe):
		return fe.Code, "request"
	case errors.Is(err, types.ErrInvalidInput):
		return fiber.StatusBadRequest, "auth.input"
	case errors.Is(err, types.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "auth.credentials"
	case errors.Is(err, types.ErrUserNotFound):
		return fiber.StatusNotFound, "auth.user"
	case errors.Is(err, types.ErrNoSession):
		return fiber.StatusForbidden, "data.authorization.user"
	case errors.Is(err, types.ErrDuplicateUsername):
		return fiber.StatusConflict, "auth.duplicate"
	}
	return fiber.StatusInternalServerError, "unknown"
}

// respondError writes err in the standard error shape
func respondError(c *fiber.Ctx, err error, operation string) error {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return utils.ValidationErrorResponse(c, verr.Error(), verr.Fields)
	}
	var ce *types.CustomError
	if errors.As(err, &ce) {
		return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
	}

	status, errorType := ErrorStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("%s failed: %v", operation, err)
		errorType = operation
	}
	return utils.ErrorResponse(c, err.Error(), status, errorType)
}

// ErrorHandler is the fiber error handler for errors returned by middleware and handlers
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.ErrorResponse(c, fe.Message, fe.Code, "request")
	}
	return respondError(c, err, "request")
}

// parseID reads the :id route parameter
func parseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "Record id must be a positive integer",
			Type:    "request.id",
		}
	}
	return id, nil
}

// parseForm decodes a JSON object of string or number values
func parseForm(c *fiber.Ctx) (services.Fields, error) {
	var form map[string]types.FlexString
	if err := c.BodyParser(&form); err != nil {
		return nil, &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "Request body must be a JSON object of form values",
			Type:    "request.body",
		}
	}
	return services.Fields(types.FlexFields(form)), nil
}

// listOptions reads the q, status and method query parameters
func listOptions(c *fiber.Ctx) services.ListOptions {
	return services.ListOptions{
		Search: c.Query("q"),
		Status: c.Query("status"),
		Method: c.Query("method"),
	}
}
