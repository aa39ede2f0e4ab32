// resolver.go
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

// Package visibility resolves which properties a view shows. A property can be
// hidden globally (every view) or by a single view's allow-list; global
// hiding always wins and is reported separately. Required properties are
// visible everywhere, including under an explicit empty allow-list.
//
// Resolution is pure and recomputed on every call. Changes are expressed as
// Intent values; Apply turns an intent into a new database snapshot without
// touching the input, and persisting that snapshot is the caller's job.
package visibility

import (
	"slices"

	"github.com/localnerve/jam-build-viewdb/internal/schema"
)

// State is the visibility class of one property within one view.
type State int

const (
	StateVisible State = iota
	StateGloballyHidden
	StateViewHidden
)

func (s State) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateGloballyHidden:
		return "globally_hidden"
	case StateViewHidden:
		return "view_hidden"
	}
	return "unknown"
}

// Classify computes the state of p under view. A nil view, or a view without
// an allow-list, only applies the global flag.
func Classify(p schema.Property, view *schema.View) State {
	if p.Required {
		return StateVisible
	}
	if !p.GloballyVisible() {
		return StateGloballyHidden
	}
	if view != nil && view.VisibleProperties != nil && !slices.Contains(view.VisibleProperties, p.ID) {
		return StateViewHidden
	}
	return StateVisible
}

// Resolution is the partition of a property list for one view. Every list
// keeps the input property order.
type Resolution struct {
	Visible        []schema.Property
	Hidden         []schema.Property
	GloballyHidden []schema.Property
	ViewHidden     []schema.Property

	states map[string]State
}

// Resolve partitions props for view. Visible and Hidden are disjoint and
// together contain every input property.
func Resolve(props []schema.Property, view *schema.View) Resolution {
	r := Resolution{
		Visible:        make([]schema.Property, 0, len(props)),
		Hidden:         []schema.Property{},
		GloballyHidden: []schema.Property{},
		ViewHidden:     []schema.Property{},
		states:         make(map[string]State, len(props)),
	}

	for _, p := range props {
		state := Classify(p, view)
		r.states[p.ID] = state
		switch state {
		case StateVisible:
			r.Visible = append(r.Visible, p)
		case StateGloballyHidden:
			r.GloballyHidden = append(r.GloballyHidden, p)
			r.Hidden = append(r.Hidden, p)
		case StateViewHidden:
			r.ViewHidden = append(r.ViewHidden, p)
			r.Hidden = append(r.Hidden, p)
		}
	}

	return r
}

// IsVisible reports whether the property is shown. Unknown ids are not.
func (r Resolution) IsVisible(propertyID string) bool {
	state, ok := r.states[propertyID]
	return ok && state == StateVisible
}

// IsGloballyHidden reports whether the property is hidden in every view.
func (r Resolution) IsGloballyHidden(propertyID string) bool {
	state, ok := r.states[propertyID]
	return ok && state == StateGloballyHidden
}

// IsViewHidden reports whether only this view hides the property.
func (r Resolution) IsViewHidden(propertyID string) bool {
	state, ok := r.states[propertyID]
	return ok && state == StateViewHidden
}

// VisibleIDs returns the ids of the visible properties.
func (r Resolution) VisibleIDs() []string {
	return ids(r.Visible)
}

// AvailableIDs lists every property that is not globally hidden. These are
// the properties a view's allow-list can choose from.
func AvailableIDs(props []schema.Property) []string {
	var out []string
	for _, p := range props {
		if Classify(p, nil) != StateGloballyHidden {
			out = append(out, p.ID)
		}
	}
	return out
}

// RequiredIDs lists the required properties.
func RequiredIDs(props []schema.Property) []string {
	var out []string
	for _, p := range props {
		if p.Required {
			out = append(out, p.ID)
		}
	}
	return out
}

func ids(props []schema.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}
