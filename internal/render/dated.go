// dated.go
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

package render

import (
	"time"

	"github.com/localnerve/jam-build-viewdb/internal/evaluate"
	"github.com/localnerve/jam-build-viewdb/internal/projector"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
)

var noDateProperty = EmptyState{
	Reason:  ReasonNoDateProperty,
	Message: "Add a date property to use this view",
}

// dateProperty resolves the date role and reads it as a date, so a role
// found by name on a text column still yields dates where the text parses.
func dateProperty(in Input) (schema.Property, bool) {
	p, ok := projector.Resolve(in.Properties, &in.View, projector.RoleDate)
	if !ok {
		return schema.Property{}, false
	}
	p.Type = schema.PropertyDate
	return p, true
}

func (p pipeline) datedItem(dp schema.Property, rec schema.Record) Item {
	it := p.item(rec)
	if v := projector.Value(dp, rec); v.Kind == schema.KindDate {
		it.Date = v.Time.Format(schema.DateLayout)
	}
	return it
}

type calendarStrategy struct{}

func (calendarStrategy) Kind() Kind { return KindCalendar }

// Shape lays out every day of the anchor month as a group keyed by date.
// Records dated in other months are left out of the grid; undated records
// are returned as Unscheduled.
func (s calendarStrategy) Shape(in Input) Result {
	p := run(in)
	res := p.result(s.Kind())

	dp, ok := dateProperty(in)
	if !ok {
		empty := noDateProperty
		res.Empty = &empty
		return res
	}
	res.GroupBy = dp.ID

	year, month, _ := in.Anchor.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, in.Anchor.Location())
	days := first.AddDate(0, 1, -1).Day()

	res.Groups = make([]Group, days)
	for d := range days {
		day := first.AddDate(0, 0, d)
		res.Groups[d] = Group{
			Key:   day.Format(schema.DateLayout),
			Label: day.Format("Mon, Jan 2"),
			Items: []Item{},
		}
	}
	res.Unscheduled = []Item{}

	for _, rec := range p.records {
		v := projector.Value(dp, rec)
		if v.Kind != schema.KindDate {
			res.Unscheduled = append(res.Unscheduled, p.item(rec))
			continue
		}
		y, m, d := v.Time.Date()
		if y != year || m != month {
			continue
		}
		res.Groups[d-1].Items = append(res.Groups[d-1].Items, p.datedItem(dp, rec))
	}
	return res
}

type timelineStrategy struct{}

func (timelineStrategy) Kind() Kind { return KindTimeline }

// Shape orders records newest first and buckets them by relative date. The
// view's own sorts break ties within a day.
func (s timelineStrategy) Shape(in Input) Result {
	p := run(in)
	res := p.result(s.Kind())

	dp, ok := dateProperty(in)
	if !ok {
		empty := noDateProperty
		res.Empty = &empty
		return res
	}
	res.GroupBy = dp.ID

	props := make([]schema.Property, 0, len(in.Properties))
	for _, prop := range in.Properties {
		if prop.ID == dp.ID {
			prop = dp
		}
		props = append(props, prop)
	}
	sorted := evaluate.Sort(props, p.records, []schema.Sort{{PropertyID: dp.ID, Direction: schema.Descending}})

	buckets := evaluate.GroupByDate(dp, sorted, in.Now)
	res.Groups = make([]Group, 0, len(buckets))
	for _, b := range buckets {
		g := Group{Key: b.Key, Label: b.Label, Items: make([]Item, 0, len(b.Records))}
		for _, rec := range b.Records {
			g.Items = append(g.Items, p.datedItem(dp, rec))
		}
		res.Groups = append(res.Groups, g)
	}
	return res
}
