// projector.go
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

// Package projector reads typed values out of records and finds the role
// properties (title, date, status, priority, description) a view shapes
// records around.
//
// Role lookup prefers the view's explicit pin. Without one it falls back to
// name sniffing over the schema, which is approximate by nature: it exists
// for ungoverned and demo data and can pick the wrong column when names are
// ambiguous. Callers must handle the no-candidate case.
package projector

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/localnerve/jam-build-viewdb/internal/schema"
)

// Role is a semantic slot a view can fill with one property.
type Role string

const (
	RoleTitle       Role = "title"
	RoleDate        Role = "date"
	RoleStatus      Role = "status"
	RolePriority    Role = "priority"
	RoleDescription Role = "description"
)

// Pin returns the view's explicit property id for role, if any.
func Pin(view *schema.View, role Role) string {
	if view == nil {
		return ""
	}
	switch role {
	case RoleTitle:
		return view.Roles.TitlePropertyID
	case RoleDate:
		return view.Roles.DatePropertyID
	case RoleStatus:
		return view.Roles.StatusPropertyID
	case RolePriority:
		return view.Roles.PriorityPropertyID
	case RoleDescription:
		return view.Roles.DescriptionPropertyID
	}
	return ""
}

// Resolve finds the property playing role. A pin naming an existing
// property always wins; a stale pin falls back to the heuristic.
func Resolve(props []schema.Property, view *schema.View, role Role) (schema.Property, bool) {
	if id := Pin(view, role); id != "" {
		if p, ok := byID(props, id); ok {
			return p, true
		}
	}
	return Guess(props, role)
}

// Guess applies the name heuristic for role.
//
//	title:    named exactly "title" (any case), else the first text property
//	date:     first date property, else name contains "date", else "due" or "created"
//	others:   first property whose name contains the role word
func Guess(props []schema.Property, role Role) (schema.Property, bool) {
	switch role {
	case RoleTitle:
		if p, ok := first(props, func(p schema.Property) bool { return strings.EqualFold(strings.TrimSpace(p.Name), "title") }); ok {
			return p, true
		}
		return first(props, func(p schema.Property) bool { return p.Type == schema.PropertyText })
	case RoleDate:
		if p, ok := first(props, func(p schema.Property) bool { return p.Type == schema.PropertyDate }); ok {
			return p, true
		}
		if p, ok := first(props, nameContains("date")); ok {
			return p, true
		}
		return first(props, func(p schema.Property) bool {
			return nameContains("due")(p) || nameContains("created")(p)
		})
	case RoleStatus, RolePriority, RoleDescription:
		return first(props, nameContains(string(role)))
	}
	return schema.Property{}, false
}

// Lookup resolves propertyID against the schema and projects the record's
// value. Ids missing from the schema yield an absent value.
func Lookup(props []schema.Property, rec schema.Record, propertyID string) schema.Value {
	p, ok := byID(props, propertyID)
	if !ok {
		return schema.Absent
	}
	return Value(p, rec)
}

// Value converts the record's raw JSON value for p into a typed value.
// Anything that does not fit the property type is absent.
func Value(p schema.Property, rec schema.Record) schema.Value {
	raw, ok := rec.Raw(p.ID)
	if !ok {
		return schema.Absent
	}
	return Convert(p, raw)
}

// Convert interprets raw as a value of p's type. It is also used for filter
// operands so both sides of a comparison share one representation.
func Convert(p schema.Property, raw any) schema.Value {
	if raw == nil {
		return schema.Absent
	}

	switch p.Type {
	case schema.PropertyText, schema.PropertyEmail, schema.PropertyURL, schema.PropertyPhone:
		s, ok := asString(raw)
		if !ok {
			return schema.Absent
		}
		return schema.Value{Kind: schema.KindText, Text: s}

	case schema.PropertyNumber:
		n, ok := asNumber(raw)
		if !ok {
			return schema.Absent
		}
		return schema.Value{Kind: schema.KindNumber, Number: n}

	case schema.PropertyCheckbox:
		b, ok := asBool(raw)
		if !ok {
			return schema.Absent
		}
		return schema.Value{Kind: schema.KindBool, Bool: b}

	case schema.PropertyDate:
		t, ok := asDate(raw)
		if !ok {
			return schema.Absent
		}
		return schema.Value{Kind: schema.KindDate, Time: t}

	case schema.PropertySelect:
		s, ok := asString(raw)
		if !ok {
			return schema.Absent
		}
		return schema.Value{Kind: schema.KindOption, Text: optionID(p, s)}

	case schema.PropertyMultiSelect:
		list, ok := asStrings(raw)
		if !ok {
			return schema.Absent
		}
		for i := range list {
			list[i] = optionID(p, list[i])
		}
		return schema.Value{Kind: schema.KindOptions, Options: list}
	}

	return schema.Absent
}

// Display renders a value for presentation, using option labels for
// select types.
func Display(p schema.Property, v schema.Value) string {
	switch v.Kind {
	case schema.KindOption:
		return optionLabel(p, v.Text)
	case schema.KindOptions:
		labels := make([]string, len(v.Options))
		for i, id := range v.Options {
			labels[i] = optionLabel(p, id)
		}
		return strings.Join(labels, ", ")
	case schema.KindBool:
		if v.Bool {
			return "Yes"
		}
		return "No"
	}
	return v.String()
}

// Title returns the display title of rec, or "Untitled".
func Title(props []schema.Property, view *schema.View, rec schema.Record) string {
	if p, ok := Resolve(props, view, RoleTitle); ok {
		if s := strings.TrimSpace(Display(p, Value(p, rec))); s != "" {
			return s
		}
	}
	return "Untitled"
}

func byID(props []schema.Property, id string) (schema.Property, bool) {
	for _, p := range props {
		if p.ID == id {
			return p, true
		}
	}
	return schema.Property{}, false
}

func first(props []schema.Property, match func(schema.Property) bool) (schema.Property, bool) {
	for _, p := range props {
		if match(p) {
			return p, true
		}
	}
	return schema.Property{}, false
}

func nameContains(word string) func(schema.Property) bool {
	return func(p schema.Property) bool {
		return strings.Contains(strings.ToLower(p.Name), word)
	}
}

// optionID maps a stored label back to its option id when the value is not
// already an id.
func optionID(p schema.Property, s string) string {
	if _, _, ok := p.Option(s); ok {
		return s
	}
	if opt, _, ok := p.OptionByLabel(s); ok {
		return opt.ID
	}
	return s
}

func optionLabel(p schema.Property, id string) string {
	if opt, _, ok := p.Option(id); ok && opt.Label != "" {
		return opt.Label
	}
	return id
}

func asString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int, int64, bool:
		return fmt.Sprint(v), true
	}
	return "", false
}

func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), !math.IsNaN(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil && !math.IsNaN(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil && !math.IsNaN(f)
	}
	return 0, false
}

func asBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	case float64:
		return v != 0, true
	}
	return false, false
}

func asDate(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case string:
		return schema.ParseDate(v, time.UTC)
	case time.Time:
		return v, !v.IsZero()
	case map[string]any:
		// range values written as {"start": "...", "end": "..."}
		if s, ok := v["start"].(string); ok {
			return schema.ParseDate(s, time.UTC)
		}
	}
	return time.Time{}, false
}

func asStrings(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := asString(item); ok {
				out = append(out, s)
			}
		}
		return out, true
	case string:
		if v == "" {
			return []string{}, true
		}
		return []string{v}, true
	}
	return nil, false
}
