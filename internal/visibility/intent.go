// intent.go
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

package visibility

import (
	"errors"
	"fmt"
	"slices"

	"github.com/localnerve/jam-build-viewdb/internal/schema"
)

var (
	// ErrRequiredProperty rejects any attempt to hide a required property.
	ErrRequiredProperty = errors.New("cannot hide required property")
	// ErrUnknownProperty is returned for property ids absent from the schema.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrUnknownView is returned for view ids absent from the database.
	ErrUnknownView = errors.New("unknown view")
	// ErrNoUpdates rejects an empty bulk toggle.
	ErrNoUpdates = errors.New("no visibility updates")
)

// Intent is a requested visibility change. The set of implementations is
// closed: ToggleGlobal, UpdateViewVisibility, BulkToggle, ShowAll and
// HideNonRequired.
type Intent interface {
	// Scope names the property and view rows the intent rewrites.
	Scope() Scope
	isIntent()
}

// Scope lists the rows touched by an intent.
type Scope struct {
	PropertyIDs []string
	ViewIDs     []string
}

// ToggleGlobal sets a property's global visibility flag.
type ToggleGlobal struct {
	PropertyID string `json:"propertyId"`
	Visible    bool   `json:"visible"`
}

// UpdateViewVisibility replaces a view's allow-list.
type UpdateViewVisibility struct {
	ViewID      string   `json:"viewId"`
	PropertyIDs []string `json:"propertyIds"`
}

// BulkToggle applies several global toggles atomically. One rejected
// update rejects the batch.
type BulkToggle struct {
	Updates []ToggleGlobal `json:"updates"`
}

// ShowAll sets a view's allow-list to every available property.
type ShowAll struct {
	ViewID string `json:"viewId"`
}

// HideNonRequired sets a view's allow-list to the required properties.
type HideNonRequired struct {
	ViewID string `json:"viewId"`
}

func (ToggleGlobal) isIntent()         {}
func (UpdateViewVisibility) isIntent() {}
func (BulkToggle) isIntent()           {}
func (ShowAll) isIntent()              {}
func (HideNonRequired) isIntent()      {}

func (i ToggleGlobal) Scope() Scope {
	return Scope{PropertyIDs: []string{i.PropertyID}}
}

func (i UpdateViewVisibility) Scope() Scope {
	return Scope{ViewIDs: []string{i.ViewID}}
}

func (i BulkToggle) Scope() Scope {
	s := Scope{}
	for _, u := range i.Updates {
		if !slices.Contains(s.PropertyIDs, u.PropertyID) {
			s.PropertyIDs = append(s.PropertyIDs, u.PropertyID)
		}
	}
	return s
}

func (i ShowAll) Scope() Scope {
	return Scope{ViewIDs: []string{i.ViewID}}
}

func (i HideNonRequired) Scope() Scope {
	return Scope{ViewIDs: []string{i.ViewID}}
}

// NewToggleGlobal builds a global toggle, rejecting a hide of a required
// property.
func NewToggleGlobal(db schema.Database, propertyID string, visible bool) (ToggleGlobal, error) {
	in := ToggleGlobal{PropertyID: propertyID, Visible: visible}
	return in, Validate(db, in)
}

// NewUpdateViewVisibility builds an allow-list replacement. Duplicate ids are
// dropped and first-seen order is kept. An empty list is allowed; required
// properties stay visible under it.
func NewUpdateViewVisibility(db schema.Database, viewID string, propertyIDs []string) (UpdateViewVisibility, error) {
	in := UpdateViewVisibility{ViewID: viewID, PropertyIDs: dedupe(propertyIDs)}
	return in, Validate(db, in)
}

// NewBulkToggle builds an atomic batch of global toggles.
func NewBulkToggle(db schema.Database, updates []ToggleGlobal) (BulkToggle, error) {
	in := BulkToggle{Updates: append([]ToggleGlobal(nil), updates...)}
	return in, Validate(db, in)
}

// NewShowAll builds a show-all intent for a view.
func NewShowAll(db schema.Database, viewID string) (ShowAll, error) {
	in := ShowAll{ViewID: viewID}
	return in, Validate(db, in)
}

// NewHideNonRequired builds a hide-non-required intent for a view.
func NewHideNonRequired(db schema.Database, viewID string) (HideNonRequired, error) {
	in := HideNonRequired{ViewID: viewID}
	return in, Validate(db, in)
}

// Validate checks an intent against db without applying it.
func Validate(db schema.Database, in Intent) error {
	switch in := in.(type) {
	case ToggleGlobal:
		return validateToggle(db, in)
	case BulkToggle:
		if len(in.Updates) == 0 {
			return ErrNoUpdates
		}
		for _, u := range in.Updates {
			if err := validateToggle(db, u); err != nil {
				return err
			}
		}
		return nil
	case UpdateViewVisibility:
		if _, ok := db.View(in.ViewID); !ok {
			return fmt.Errorf("%w %q", ErrUnknownView, in.ViewID)
		}
		for _, id := range in.PropertyIDs {
			if _, ok := db.Property(id); !ok {
				return fmt.Errorf("%w %q", ErrUnknownProperty, id)
			}
		}
		return nil
	case ShowAll:
		return validateView(db, in.ViewID)
	case HideNonRequired:
		return validateView(db, in.ViewID)
	case nil:
		return errors.New("visibility intent is nil")
	}
	return fmt.Errorf("unsupported visibility intent %T", in)
}

// Apply returns a copy of db with the intent applied. On error the returned
// database is the zero value and db is untouched.
func Apply(db schema.Database, in Intent) (schema.Database, error) {
	if err := Validate(db, in); err != nil {
		return schema.Database{}, err
	}

	out := db.Clone()

	switch in := in.(type) {
	case ToggleGlobal:
		setGlobal(&out, in)
	case BulkToggle:
		for _, u := range in.Updates {
			setGlobal(&out, u)
		}
	case UpdateViewVisibility:
		setAllowList(&out, in.ViewID, dedupe(in.PropertyIDs))
	case ShowAll:
		setAllowList(&out, in.ViewID, nonNil(AvailableIDs(out.Properties)))
	case HideNonRequired:
		setAllowList(&out, in.ViewID, nonNil(RequiredIDs(out.Properties)))
	}

	return out, nil
}

func validateToggle(db schema.Database, in ToggleGlobal) error {
	p, ok := db.Property(in.PropertyID)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownProperty, in.PropertyID)
	}
	if p.Required && !in.Visible {
		return fmt.Errorf("%w %q", ErrRequiredProperty, p.Name)
	}
	return nil
}

func validateView(db schema.Database, viewID string) error {
	if _, ok := db.View(viewID); !ok {
		return fmt.Errorf("%w %q", ErrUnknownView, viewID)
	}
	return nil
}

func setGlobal(db *schema.Database, in ToggleGlobal) {
	for i := range db.Properties {
		if db.Properties[i].ID == in.PropertyID {
			db.Properties[i].GlobalVisible = schema.Bool(in.Visible)
		}
	}
}

func setAllowList(db *schema.Database, viewID string, ids []string) {
	for i := range db.Views {
		if db.Views[i].ID == viewID {
			db.Views[i].VisibleProperties = ids
		}
	}
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
