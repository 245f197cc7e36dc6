// ping.go
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

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PingTimeout bounds PingServer
const PingTimeout = 1500 * time.Millisecond

// PingServer requests /health from the server on the local port.
// Any HTTP answer counts as reachable; the status is the caller's concern.
func PingServer(port string) (int, error) {
	agent := fiber.Get(fmt.Sprintf("http://localhost:%s/health", port)).Timeout(PingTimeout)
	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, fmt.Errorf("server on port %s unreachable: %w", port, errors.Join(errs...))
	}
	return code, nil
}
