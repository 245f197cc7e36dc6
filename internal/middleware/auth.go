// auth.go
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

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/types"
)

// SessionKey is the fiber Locals key holding the models.Session of the request
const SessionKey = "session"

// SessionSource reports the signed-in session
type SessionSource interface {
	Current() (models.Session, bool)
}

// RequireSession rejects requests made while nobody is signed in
func RequireSession(source SessionSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := source.Current()
		if !ok {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Sign in or sign up first",
				Type:    "data.authorization.user",
			}
		}

		c.Locals(SessionKey, session)
		return c.Next()
	}
}
