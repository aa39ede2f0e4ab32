// manager.go
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

// Package columns is the staging surface for a view's visible properties.
// A Manager holds a working selection apart from the committed visibility
// and only produces an update intent when the two differ.
package columns

import (
	"fmt"
	"slices"

	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/visibility"
)

// Manager stages visibility edits for one view. It is not safe for
// concurrent use.
type Manager struct {
	db        schema.Database
	viewID    string
	config    schema.DocumentViewConfig
	committed []string
	selected  map[string]bool
	loading   bool
}

// Open seeds a manager from the view's currently visible properties.
func Open(db schema.Database, viewID string, config schema.DocumentViewConfig) (*Manager, error) {
	m := &Manager{viewID: viewID, config: config}
	if err := m.Commit(db); err != nil {
		return nil, err
	}
	return m, nil
}

// Commit replaces the committed snapshot, typically after a successful
// save, and resets the working selection to it.
func (m *Manager) Commit(db schema.Database) error {
	view, ok := db.View(m.viewID)
	if !ok {
		return fmt.Errorf("%w: %s", visibility.ErrUnknownView, m.viewID)
	}
	m.db = db
	m.committed = visibility.Resolve(db.Properties, &view).VisibleIDs()
	m.Reset()
	return nil
}

// Reset discards the working selection.
func (m *Manager) Reset() {
	m.selected = make(map[string]bool, len(m.committed))
	for _, id := range m.committed {
		m.selected[id] = true
	}
}

// Editable reports whether the caller may manage views.
func (m *Manager) Editable() bool {
	return m.config.CanManageViews
}

// Selected returns the working selection in property order.
func (m *Manager) Selected() []string {
	out := []string{}
	for _, p := range m.db.Properties {
		if m.selected[p.ID] {
			out = append(out, p.ID)
		}
	}
	return out
}

// IsSelected reports whether id is in the working selection.
func (m *Manager) IsSelected(id string) bool {
	return m.selected[id]
}

// CanToggle reports whether id may be added or removed. Required and
// globally hidden properties are fixed.
func (m *Manager) CanToggle(id string) bool {
	if !m.Editable() {
		return false
	}
	p, ok := m.db.Property(id)
	if !ok {
		return false
	}
	return visibility.Classify(p, nil) != visibility.StateGloballyHidden && !p.Required
}

// Toggle flips id in the working selection and reports whether it did.
func (m *Manager) Toggle(id string) bool {
	if !m.CanToggle(id) {
		return false
	}
	m.selected[id] = !m.selected[id]
	return true
}

// SelectAllAvailable selects every property that is not globally hidden.
func (m *Manager) SelectAllAvailable() {
	if m.Editable() {
		m.selectOnly(visibility.AvailableIDs(m.db.Properties))
	}
}

// SelectRequiredOnly selects the required properties that are not
// globally hidden.
func (m *Manager) SelectRequiredOnly() {
	if !m.Editable() {
		return
	}
	available := visibility.AvailableIDs(m.db.Properties)
	var ids []string
	for _, id := range visibility.RequiredIDs(m.db.Properties) {
		if slices.Contains(available, id) {
			ids = append(ids, id)
		}
	}
	m.selectOnly(ids)
}

func (m *Manager) selectOnly(ids []string) {
	m.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		m.selected[id] = true
	}
}

// ShowAll returns the show-all intent for the view. It bypasses the
// working selection.
func (m *Manager) ShowAll() (visibility.Intent, error) {
	return visibility.NewShowAll(m.db, m.viewID)
}

// HideNonRequired returns the hide-non-required intent for the view.
func (m *Manager) HideNonRequired() (visibility.Intent, error) {
	return visibility.NewHideNonRequired(m.db, m.viewID)
}

// HasChanges reports whether the working selection differs from the
// committed visible set. Order is ignored.
func (m *Manager) HasChanges() bool {
	if len(m.Selected()) != len(m.committed) {
		return true
	}
	for _, id := range m.committed {
		if !m.selected[id] {
			return true
		}
	}
	return false
}

// SetLoading marks a save as in flight.
func (m *Manager) SetLoading(loading bool) {
	m.loading = loading
}

// Loading reports whether a save is in flight.
func (m *Manager) Loading() bool {
	return m.loading
}

// Save returns the update intent for the working selection. It reports
// false when there is nothing to save or a save is already in flight.
func (m *Manager) Save() (visibility.Intent, bool) {
	if m.loading || !m.Editable() || !m.HasChanges() {
		return nil, false
	}
	in, err := visibility.NewUpdateViewVisibility(m.db, m.viewID, m.Selected())
	if err != nil {
		return nil, false
	}
	return in, true
}
