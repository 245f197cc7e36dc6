// fields.go
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

package services

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/localnerve/seedledger/internal/types"
	"github.com/shopspring/decimal"
)

// Fields holds raw form values keyed by their JSON field name.
type Fields map[string]string

// dateLayout is the HTML date input format.
const dateLayout = "2006-01-02"

// fieldParser reads Fields and remembers every field that was missing or unparsable,
// so one ValidationError can name all of them.
type fieldParser struct {
	fields Fields
	bad    []string
}

func parseFields(f Fields) *fieldParser {
	return &fieldParser{fields: f}
}

func (p *fieldParser) reject(name string) {
	if !slices.Contains(p.bad, name) {
		p.bad = append(p.bad, name)
	}
}

// text returns a required value as given; blank counts as missing.
func (p *fieldParser) text(name string) string {
	v := p.fields[name]
	if strings.TrimSpace(v) == "" {
		p.reject(name)
	}
	return v
}

func (p *fieldParser) optional(name string) string {
	return p.fields[name]
}

// count parses a required non-negative integer.
func (p *fieldParser) count(name string) int {
	v := strings.TrimSpace(p.fields[name])
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		p.reject(name)
		return 0
	}
	return n
}

// money parses a required non-negative decimal.
func (p *fieldParser) money(name string) decimal.Decimal {
	v := strings.TrimSpace(p.fields[name])
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		p.reject(name)
		return decimal.Zero
	}
	return d
}

// date parses a required YYYY-MM-DD value and keeps its text.
func (p *fieldParser) date(name string) string {
	v := strings.TrimSpace(p.fields[name])
	if _, err := time.Parse(dateLayout, v); err != nil {
		p.reject(name)
		return ""
	}
	return v
}

// choice requires an exact match against one of allowed.
func choice[E ~string](p *fieldParser, name string, allowed []E) E {
	v := E(p.fields[name])
	if !slices.Contains(allowed, v) {
		p.reject(name)
		return ""
	}
	return v
}

func (p *fieldParser) err() error {
	if len(p.bad) == 0 {
		return nil
	}
	fields := slices.Clone(p.bad)
	slices.Sort(fields)
	return &types.ValidationError{Fields: fields}
}
