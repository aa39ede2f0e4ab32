// render.go
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

// Package render shapes a database's records for one view. Render picks a
// strategy from the view type; each strategy filters, sorts and groups the
// records and returns a display-ready Result. Input records are never
// modified and an unknown view type yields an explicit unsupported result.
package render

import (
	"fmt"
	"time"

	"github.com/localnerve/jam-build-viewdb/internal/evaluate"
	"github.com/localnerve/jam-build-viewdb/internal/projector"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/visibility"
)

// Kind is the shape of a Result.
type Kind string

const (
	KindTable       Kind = "table"
	KindBoard       Kind = "board"
	KindGallery     Kind = "gallery"
	KindList        Kind = "list"
	KindCalendar    Kind = "calendar"
	KindTimeline    Kind = "timeline"
	KindUnsupported Kind = "unsupported"
)

// Empty state reasons.
const (
	ReasonNoStatusProperty = "no_status_property"
	ReasonNoDateProperty   = "no_date_property"
)

// Input is everything a strategy needs. Anchor selects the calendar month and
// defaults to Now.
type Input struct {
	Properties []schema.Property
	Records    []schema.Record
	View       schema.View
	Config     schema.DocumentViewConfig
	Now        time.Time
	Anchor     time.Time
}

// Column is a visible property in display order.
type Column struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Type     schema.PropertyType `json:"type"`
	Required bool                `json:"required"`
}

// Cell is one record value under a column.
type Cell struct {
	PropertyID string       `json:"propertyId"`
	Value      schema.Value `json:"value"`
	Display    string       `json:"display"`
}

// Item is a shaped record.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Cover       string `json:"cover,omitempty"`
	Date        string `json:"date,omitempty"`
	Cells       []Cell `json:"cells"`
}

// Group is a bucket of items: a board column, a calendar day or a timeline
// period.
type Group struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
	Items []Item `json:"items"`
}

// EmptyState replaces the body when a view cannot be shaped.
type EmptyState struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// Unsupported describes a view type no strategy handles.
type Unsupported struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Result is the shaped output of one render pass. Flat kinds fill Items,
// grouped kinds fill Groups.
type Result struct {
	Kind         Kind                      `json:"kind"`
	ViewID       string                    `json:"viewId"`
	ViewName     string                    `json:"viewName"`
	Columns      []Column                  `json:"columns"`
	Items        []Item                    `json:"items,omitempty"`
	Groups       []Group                   `json:"groups,omitempty"`
	Unscheduled  []Item                    `json:"unscheduled,omitempty"`
	GroupBy      string                    `json:"groupBy,omitempty"`
	Empty        *EmptyState               `json:"empty,omitempty"`
	Unsupported  *Unsupported              `json:"unsupported,omitempty"`
	Capabilities schema.DocumentViewConfig `json:"capabilities"`
	Total        int                       `json:"total"`
	Matched      int                       `json:"matched"`
}

// Strategy shapes records for one view type.
type Strategy interface {
	Kind() Kind
	Shape(in Input) Result
}

var strategies = map[schema.ViewType]Strategy{
	schema.ViewTable:    tableStrategy{},
	schema.ViewBoard:    boardStrategy{},
	schema.ViewGallery:  galleryStrategy{},
	schema.ViewList:     listStrategy{},
	schema.ViewCalendar: calendarStrategy{},
	schema.ViewTimeline: timelineStrategy{},
}

// StrategyFor returns the strategy for a stored view type, if any.
func StrategyFor(viewType string) (Strategy, bool) {
	vt, ok := schema.ParseViewType(viewType)
	if !ok {
		return nil, false
	}
	s, ok := strategies[vt]
	return s, ok
}

// Render dispatches in to the strategy for its view type.
func Render(in Input) Result {
	if in.Now.IsZero() {
		in.Now = time.Now()
	}
	if in.Anchor.IsZero() {
		in.Anchor = in.Now
	}

	s, ok := StrategyFor(in.View.Type)
	if !ok {
		res := newResult(KindUnsupported, in)
		res.Unsupported = &Unsupported{
			Type:    in.View.Type,
			Message: fmt.Sprintf("View type %q is not supported", in.View.Type),
		}
		return res
	}
	return s.Shape(in)
}

// RenderView renders the view with viewID, or the default view when viewID is
// empty. It reports false when the database has no such view.
func RenderView(db schema.Database, records []schema.Record, viewID string, cfg schema.DocumentViewConfig, now, anchor time.Time) (Result, bool) {
	var (
		view schema.View
		ok   bool
	)
	if viewID == "" {
		view, ok = db.DefaultView()
	} else {
		view, ok = db.View(viewID)
	}
	if !ok {
		return Result{}, false
	}
	return Render(Input{
		Properties: db.Properties,
		Records:    records,
		View:       view,
		Config:     cfg,
		Now:        now,
		Anchor:     anchor,
	}), true
}

func newResult(kind Kind, in Input) Result {
	return Result{
		Kind:         kind,
		ViewID:       in.View.ID,
		ViewName:     in.View.Name,
		Columns:      []Column{},
		Capabilities: in.Config,
		Total:        len(in.Records),
	}
}

// pipeline is the shared filter and sort pass.
type pipeline struct {
	in      Input
	columns []schema.Property
	records []schema.Record
}

func run(in Input) pipeline {
	view := in.View
	filtered := evaluate.Filter(in.Properties, in.Records, view.Filters)
	return pipeline{
		in:      in,
		columns: visibility.Resolve(in.Properties, &view).Visible,
		records: evaluate.Sort(in.Properties, filtered, view.Sorts),
	}
}

// visibleRole resolves a role property, reporting false when the view does
// not show it.
func (p pipeline) visibleRole(role projector.Role) (schema.Property, bool) {
	view := p.in.View
	prop, ok := projector.Resolve(p.in.Properties, &view, role)
	if !ok {
		return schema.Property{}, false
	}
	for _, c := range p.columns {
		if c.ID == prop.ID {
			return prop, true
		}
	}
	return schema.Property{}, false
}

func (p pipeline) result(kind Kind) Result {
	res := newResult(kind, p.in)
	for _, c := range p.columns {
		res.Columns = append(res.Columns, Column{ID: c.ID, Name: c.Name, Type: c.Type, Required: c.Required})
	}
	res.Matched = len(p.records)
	return res
}

func (p pipeline) item(rec schema.Record) Item {
	view := p.in.View
	it := Item{
		ID:    rec.ID,
		Title: projector.Title(p.in.Properties, &view, rec),
		Cells: make([]Cell, 0, len(p.columns)),
	}
	for _, c := range p.columns {
		v := projector.Value(c, rec)
		it.Cells = append(it.Cells, Cell{PropertyID: c.ID, Value: v, Display: projector.Display(c, v)})
	}
	return it
}

func (p pipeline) items(records []schema.Record) []Item {
	out := make([]Item, 0, len(records))
	for _, rec := range records {
		out = append(out, p.item(rec))
	}
	return out
}

func (p pipeline) groups(groups []evaluate.Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, Group{Key: g.Key, Label: g.Label, Color: g.Color, Items: p.items(g.Records)})
	}
	return out
}
