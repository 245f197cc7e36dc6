// ids.go
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

// Identified is any record carrying an integer id unique within its collection.
type Identified interface {
	GetID() int
}

// NextID returns max(existing ids, 0) + 1.
// Deleting the record with the highest id frees that id for the next insert.
func NextID[T Identified](items []T) int {
	highest := 0
	for _, item := range items {
		if id := item.GetID(); id > highest {
			highest = id
		}
	}
	return highest + 1
}

// IndexOf returns the position of the record with id, or -1.
func IndexOf[T Identified](items []T, id int) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}
