// group.go
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

package evaluate

import (
	"slices"
	"strings"
	"time"

	"github.com/localnerve/jam-build-viewdb/internal/projector"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
)

// NoValueKey is the key of the group collecting records without a value.
const NoValueKey = ""

// Group is one bucket of records. Records keep their input order.
type Group struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Color   string          `json:"color,omitempty"`
	Records []schema.Record `json:"records"`
}

// GroupBy partitions records by p's value.
//
// Select and multi-select produce one group per option in option order,
// including empty ones, followed by groups for unknown option ids. A
// multi-select record appears in each of its options. Checkbox produces
// Checked then Unchecked, counting absent values as unchecked. Dates group
// by relative bucket against now. Other types group by display value in
// first-seen order. Records without a value go to a trailing NoValueKey
// group, present only when non-empty.
func GroupBy(p schema.Property, records []schema.Record, now time.Time) []Group {
	switch p.Type {
	case schema.PropertySelect, schema.PropertyMultiSelect:
		return groupByOption(p, records)
	case schema.PropertyCheckbox:
		return groupByCheckbox(p, records)
	case schema.PropertyDate:
		return GroupByDate(p, records, now)
	}
	return groupByDisplay(p, records)
}

// GroupByDate buckets records with DateBucket, newest bucket first.
func GroupByDate(p schema.Property, records []schema.Record, now time.Time) []Group {
	type ranked struct {
		group  *Group
		rank   int
		anchor time.Time
	}
	var (
		order   []*ranked
		byLabel = map[string]*ranked{}
		none    []schema.Record
	)

	for _, rec := range records {
		v := projector.Value(p, rec)
		if v.Kind != schema.KindDate {
			none = append(none, rec)
			continue
		}
		label := DateBucket(v.Time, now)
		r, ok := byLabel[label]
		if !ok {
			rank, anchor := bucketRank(v.Time, now)
			r = &ranked{group: &Group{Key: label, Label: label}, rank: rank, anchor: anchor}
			byLabel[label] = r
			order = append(order, r)
		}
		r.group.Records = append(r.group.Records, rec)
	}

	slices.SortStableFunc(order, func(a, b *ranked) int {
		if a.rank != b.rank {
			return a.rank - b.rank
		}
		return b.anchor.Compare(a.anchor)
	})

	groups := make([]Group, 0, len(order)+1)
	for _, r := range order {
		groups = append(groups, *r.group)
	}
	return appendNoValue(groups, p, none)
}

func groupByOption(p schema.Property, records []schema.Record) []Group {
	groups := make([]Group, 0, len(p.Config.Options)+1)
	index := make(map[string]int, len(p.Config.Options))
	for _, opt := range p.Config.Options {
		index[opt.ID] = len(groups)
		label := opt.Label
		if label == "" {
			label = opt.ID
		}
		groups = append(groups, Group{Key: opt.ID, Label: label, Color: opt.Color, Records: []schema.Record{}})
	}

	var none []schema.Record
	for _, rec := range records {
		v := projector.Value(p, rec)
		var ids []string
		switch v.Kind {
		case schema.KindOption:
			if v.Text != "" {
				ids = []string{v.Text}
			}
		case schema.KindOptions:
			ids = dedupe(v.Options)
		}
		if len(ids) == 0 {
			none = append(none, rec)
			continue
		}
		for _, id := range ids {
			i, ok := index[id]
			if !ok {
				i = len(groups)
				index[id] = i
				groups = append(groups, Group{Key: id, Label: id})
			}
			groups[i].Records = append(groups[i].Records, rec)
		}
	}

	return appendNoValue(groups, p, none)
}

func groupByCheckbox(p schema.Property, records []schema.Record) []Group {
	checked := Group{Key: "true", Label: "Checked", Records: []schema.Record{}}
	unchecked := Group{Key: "false", Label: "Unchecked", Records: []schema.Record{}}
	for _, rec := range records {
		if v := projector.Value(p, rec); v.Kind == schema.KindBool && v.Bool {
			checked.Records = append(checked.Records, rec)
		} else {
			unchecked.Records = append(unchecked.Records, rec)
		}
	}
	return []Group{checked, unchecked}
}

func groupByDisplay(p schema.Property, records []schema.Record) []Group {
	var (
		groups []Group
		index  = map[string]int{}
		none   []schema.Record
	)
	for _, rec := range records {
		v := projector.Value(p, rec)
		if v.IsEmpty() {
			none = append(none, rec)
			continue
		}
		label := projector.Display(p, v)
		key := strings.ToLower(label)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, Label: label})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return appendNoValue(groups, p, none)
}

func appendNoValue(groups []Group, p schema.Property, none []schema.Record) []Group {
	if len(none) == 0 {
		return groups
	}
	name := p.Name
	if name == "" {
		name = "value"
	}
	return append(groups, Group{Key: NoValueKey, Label: "No " + name, Records: none})
}
