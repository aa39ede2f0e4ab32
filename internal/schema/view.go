// view.go
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

import "strings"

// ViewType is the normalised type of a view. Views store the raw string so
// that unknown types survive a round trip and reach the dispatcher intact.
type ViewType string

const (
	ViewTable    ViewType = "table"
	ViewBoard    ViewType = "board"
	ViewGallery  ViewType = "gallery"
	ViewList     ViewType = "list"
	ViewCalendar ViewType = "calendar"
	ViewTimeline ViewType = "timeline"
)

// ParseViewType normalises a stored view type. "kanban" is an alias of board.
func ParseViewType(s string) (ViewType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table":
		return ViewTable, true
	case "board", "kanban":
		return ViewBoard, true
	case "gallery":
		return ViewGallery, true
	case "list":
		return ViewList, true
	case "calendar":
		return ViewCalendar, true
	case "timeline":
		return ViewTimeline, true
	}
	return "", false
}

// FilterOperator names a predicate applied to one property value.
type FilterOperator string

const (
	OpEquals     FilterOperator = "equals"
	OpNotEquals  FilterOperator = "not_equals"
	OpContains   FilterOperator = "contains"
	OpNotContain FilterOperator = "not_contains"
	OpStartsWith FilterOperator = "starts_with"
	OpEndsWith   FilterOperator = "ends_with"
	OpBefore     FilterOperator = "before"
	OpAfter      FilterOperator = "after"
	OpOnOrBefore FilterOperator = "on_or_before"
	OpOnOrAfter  FilterOperator = "on_or_after"
	OpGt         FilterOperator = "gt"
	OpGte        FilterOperator = "gte"
	OpLt         FilterOperator = "lt"
	OpLte        FilterOperator = "lte"
	OpIsEmpty    FilterOperator = "is_empty"
	OpIsNotEmpty FilterOperator = "is_not_empty"
)

// Filter is one predicate of a view. All filters of a view are ANDed.
type Filter struct {
	PropertyID string         `json:"propertyId"`
	Operator   FilterOperator `json:"operator"`
	Value      any            `json:"value,omitempty"`
}

// SortDirection orders a sort key.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Sort is one key of a view's multi-key ordering.
type Sort struct {
	PropertyID string        `json:"propertyId"`
	Direction  SortDirection `json:"direction"`
}

// RolePins lets a view name its role properties explicitly instead of relying
// on the projector's name heuristics.
type RolePins struct {
	TitlePropertyID       string `json:"titlePropertyId,omitempty"`
	DatePropertyID        string `json:"datePropertyId,omitempty"`
	StatusPropertyID      string `json:"statusPropertyId,omitempty"`
	PriorityPropertyID    string `json:"priorityPropertyId,omitempty"`
	DescriptionPropertyID string `json:"descriptionPropertyId,omitempty"`
}

func (r RolePins) ids() []string {
	var ids []string
	for _, id := range []string{r.TitlePropertyID, r.DatePropertyID, r.StatusPropertyID, r.PriorityPropertyID, r.DescriptionPropertyID} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// View is a named, typed projection of a database's records.
//
// VisibleProperties nil means every globally visible property is shown. A
// non-nil slice, even an empty one, is an allow-list.
type View struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	IsDefault         bool     `json:"isDefault"`
	VisibleProperties []string `json:"visibleProperties"`
	Filters           []Filter `json:"filters"`
	Sorts             []Sort   `json:"sorts"`
	GroupBy           string   `json:"groupBy,omitempty"`
	Roles             RolePins `json:"roles"`
}

// Kind returns the normalised view type and whether it is supported.
func (v View) Kind() (ViewType, bool) {
	return ParseViewType(v.Type)
}

// referencedIDs lists every property id the view depends on.
func (v View) referencedIDs() []string {
	ids := append([]string(nil), v.VisibleProperties...)
	for _, f := range v.Filters {
		ids = append(ids, f.PropertyID)
	}
	for _, s := range v.Sorts {
		ids = append(ids, s.PropertyID)
	}
	if v.GroupBy != "" {
		ids = append(ids, v.GroupBy)
	}
	return append(ids, v.Roles.ids()...)
}

func (v View) clone() View {
	out := v
	if v.VisibleProperties != nil {
		out.VisibleProperties = append([]string{}, v.VisibleProperties...)
	}
	if v.Filters != nil {
		out.Filters = append([]Filter{}, v.Filters...)
	}
	if v.Sorts != nil {
		out.Sorts = append([]Sort{}, v.Sorts...)
	}
	return out
}
