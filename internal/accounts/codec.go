// codec.go
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

package accounts

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCodec turns a raw password into the value stored on an Account and
// checks a login attempt against it.
type PasswordCodec interface {
	Encode(password string) (string, error)
	Matches(stored, password string) bool
	Name() string
}

// NewCodec returns the codec for PASSWORD_SCHEME.
func NewCodec(scheme string, cost int) (PasswordCodec, error) {
	switch scheme {
	case "", "demo":
		return DemoCodec{}, nil
	case "bcrypt":
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost %d out of range", cost)
		}
		return BcryptCodec{Cost: cost}, nil
	}
	return nil, fmt.Errorf("unsupported password scheme: %s", scheme)
}

// DemoCodec stores passwords the way the browser app did with btoa: each character
// up to U+00FF becomes one byte, then base64. Passwords with wider characters are
// stored as plain text. It is reversible and offers no protection.
type DemoCodec struct{}

func (DemoCodec) Name() string { return "demo" }

func (DemoCodec) Encode(password string) (string, error) {
	latin1 := make([]byte, 0, len(password))
	for _, r := range password {
		if r > 0xFF {
			return password, nil
		}
		latin1 = append(latin1, byte(r))
	}
	return base64.StdEncoding.EncodeToString(latin1), nil
}

func (c DemoCodec) Matches(stored, password string) bool {
	encoded, _ := c.Encode(password)
	return stored == encoded
}

// BcryptCodec stores salted bcrypt hashes.
type BcryptCodec struct {
	Cost int
}

func (BcryptCodec) Name() string { return "bcrypt" }

func (c BcryptCodec) Encode(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptCodec) Matches(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
