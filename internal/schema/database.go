// database.go
//
// Multi-view database engine and data service for the jam-build second brain
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-viewdb.
// jam-build-viewdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-viewdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-viewdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package schema

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSchema is wrapped by every Validate failure.
var ErrInvalidSchema = errors.New("invalid schema")

// Database is a named collection of properties and views.
type Database struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon,omitempty"`
	Description string     `json:"description,omitempty"`
	Frozen      bool       `json:"frozen"`
	OwnerID     string     `json:"ownerId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Properties  []Property `json:"properties"`
	Views       []View     `json:"views"`
}

// Property looks up a property by id.
func (db Database) Property(id string) (Property, bool) {
	for _, p := range db.Properties {
		if p.ID == id {
			return p, true
		}
	}
	return Property{}, false
}

// View looks up a view by id.
func (db Database) View(id string) (View, bool) {
	for _, v := range db.Views {
		if v.ID == id {
			return v, true
		}
	}
	return View{}, false
}

// DefaultView returns the view flagged default, else the first view.
func (db Database) DefaultView() (View, bool) {
	for _, v := range db.Views {
		if v.IsDefault {
			return v, true
		}
	}
	if len(db.Views) > 0 {
		return db.Views[0], true
	}
	return View{}, false
}

// Clone returns a deep copy. Engine code never mutates its inputs; anything
// that needs a modified database works on a clone.
func (db Database) Clone() Database {
	out := db
	if db.Properties != nil {
		out.Properties = make([]Property, len(db.Properties))
		for i, p := range db.Properties {
			out.Properties[i] = p.clone()
		}
	}
	if db.Views != nil {
		out.Views = make([]View, len(db.Views))
		for i, v := range db.Views {
			out.Views[i] = v.clone()
		}
	}
	return out
}

// Validate checks the authoring-time invariants: unique typed properties, at
// most one default view, and views referencing only existing properties.
func (db Database) Validate() error {
	seen := make(map[string]struct{}, len(db.Properties))
	for _, p := range db.Properties {
		if p.ID == "" {
			return fmt.Errorf("%w: property %q has no id", ErrInvalidSchema, p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate property id %q", ErrInvalidSchema, p.ID)
		}
		if !p.Type.Valid() {
			return fmt.Errorf("%w: property %q has unsupported type %q", ErrInvalidSchema, p.ID, p.Type)
		}
		seen[p.ID] = struct{}{}
	}

	defaults := 0
	views := make(map[string]struct{}, len(db.Views))
	for _, v := range db.Views {
		if v.ID == "" {
			return fmt.Errorf("%w: view %q has no id", ErrInvalidSchema, v.Name)
		}
		if _, dup := views[v.ID]; dup {
			return fmt.Errorf("%w: duplicate view id %q", ErrInvalidSchema, v.ID)
		}
		views[v.ID] = struct{}{}
		if v.IsDefault {
			defaults++
		}
		for _, id := range v.referencedIDs() {
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("%w: view %q references unknown property %q", ErrInvalidSchema, v.ID, id)
			}
		}
	}
	if defaults > 1 {
		return fmt.Errorf("%w: %d views are marked default", ErrInvalidSchema, defaults)
	}

	return nil
}
