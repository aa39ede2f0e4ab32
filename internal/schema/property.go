// property.go
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
	"fmt"
	"slices"
	"strings"
)

// PropertyType is the closed set of column types the engine understands.
type PropertyType string

const (
	PropertyText        PropertyType = "text"
	PropertyNumber      PropertyType = "number"
	PropertyEmail       PropertyType = "email"
	PropertyURL         PropertyType = "url"
	PropertyPhone       PropertyType = "phone"
	PropertyCheckbox    PropertyType = "checkbox"
	PropertyDate        PropertyType = "date"
	PropertySelect      PropertyType = "select"
	PropertyMultiSelect PropertyType = "multi-select"
)

// PropertyTypes lists every supported type in display order.
var PropertyTypes = []PropertyType{
	PropertyText,
	PropertyNumber,
	PropertyEmail,
	PropertyURL,
	PropertyPhone,
	PropertyCheckbox,
	PropertyDate,
	PropertySelect,
	PropertyMultiSelect,
}

// ParsePropertyType accepts the canonical names plus the underscore and
// unseparated spellings of multi-select.
func ParsePropertyType(s string) (PropertyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return PropertyText, nil
	case "number":
		return PropertyNumber, nil
	case "email":
		return PropertyEmail, nil
	case "url":
		return PropertyURL, nil
	case "phone":
		return PropertyPhone, nil
	case "checkbox":
		return PropertyCheckbox, nil
	case "date":
		return PropertyDate, nil
	case "select":
		return PropertySelect, nil
	case "multi-select", "multi_select", "multiselect":
		return PropertyMultiSelect, nil
	}
	return "", fmt.Errorf("unsupported property type %q", s)
}

// Valid reports whether t is one of the closed set.
func (t PropertyType) Valid() bool {
	return slices.Contains(PropertyTypes, t)
}

// TextLike reports whether values of t are plain strings.
func (t PropertyType) TextLike() bool {
	switch t {
	case PropertyText, PropertyEmail, PropertyURL, PropertyPhone:
		return true
	}
	return false
}

// HasOptions reports whether t carries select options in its config.
func (t PropertyType) HasOptions() bool {
	return t == PropertySelect || t == PropertyMultiSelect
}

// SelectOption is one choice of a select or multi-select property.
type SelectOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// PropertyConfig holds type specific settings.
type PropertyConfig struct {
	Options []SelectOption `json:"options,omitempty"`
}

// Property is one typed column of a database schema. GlobalVisible is nil
// when the backend never set it; only an explicit false hides the property.
type Property struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Type          PropertyType   `json:"type"`
	Required      bool           `json:"required"`
	GlobalVisible *bool          `json:"globalVisible,omitempty"`
	Order         int            `json:"order"`
	Config        PropertyConfig `json:"config"`
}

// Bool returns a pointer to b, for GlobalVisible literals.
func Bool(b bool) *bool {
	return &b
}

// GloballyVisible reports the stored global flag. Required properties are
// treated as visible by the resolver regardless of this value.
func (p Property) GloballyVisible() bool {
	return p.GlobalVisible == nil || *p.GlobalVisible
}

// Option finds a select option by id and returns its position.
func (p Property) Option(id string) (SelectOption, int, bool) {
	for i, opt := range p.Config.Options {
		if opt.ID == id {
			return opt, i, true
		}
	}
	return SelectOption{}, -1, false
}

// OptionByLabel finds a select option by case-insensitive label. Records
// written by older clients sometimes store labels instead of ids.
func (p Property) OptionByLabel(label string) (SelectOption, int, bool) {
	for i, opt := range p.Config.Options {
		if strings.EqualFold(opt.Label, label) {
			return opt, i, true
		}
	}
	return SelectOption{}, -1, false
}

func (p Property) clone() Property {
	out := p
	if p.GlobalVisible != nil {
		out.GlobalVisible = Bool(*p.GlobalVisible)
	}
	if p.Config.Options != nil {
		out.Config.Options = append([]SelectOption(nil), p.Config.Options...)
	}
	return out
}
