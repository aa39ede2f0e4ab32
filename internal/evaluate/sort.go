// sort.go
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

	"github.com/localnerve/jam-build-viewdb/internal/projector"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
)

type sortKey struct {
	prop schema.Property
	desc bool
}

type sortRow struct {
	rec    schema.Record
	values []schema.Value
}

// Sort orders records by the multi-key sorts. The sort is stable: ties on
// every key keep input order. Empty values go last in both directions, and
// keys naming unknown properties are skipped.
func Sort(props []schema.Property, records []schema.Record, sorts []schema.Sort) []schema.Record {
	keys := make([]sortKey, 0, len(sorts))
	for _, s := range sorts {
		p, ok := propertyByID(props, s.PropertyID)
		if !ok {
			continue
		}
		keys = append(keys, sortKey{prop: p, desc: s.Direction == schema.Descending})
	}

	rows := make([]sortRow, len(records))
	for i, rec := range records {
		values := make([]schema.Value, len(keys))
		for k, key := range keys {
			values[k] = projector.Value(key.prop, rec)
		}
		rows[i] = sortRow{rec: rec, values: values}
	}

	if len(keys) > 0 {
		slices.SortStableFunc(rows, func(a, b sortRow) int {
			for k, key := range keys {
				if c := compareKey(key, a.values[k], b.values[k]); c != 0 {
					return c
				}
			}
			return 0
		})
	}

	out := make([]schema.Record, len(rows))
	for i, row := range rows {
		out[i] = row.rec
	}
	return out
}

func compareKey(key sortKey, a, b schema.Value) int {
	aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
	switch {
	case aEmpty && bEmpty:
		return 0
	case aEmpty:
		return 1
	case bEmpty:
		return -1
	}
	c := Compare(key.prop, a, b)
	if key.desc {
		return -c
	}
	return c
}

// Compare orders two present values of property p. Select values order by
// option position, unknown option ids after known ones.
func Compare(p schema.Property, a, b schema.Value) int {
	switch a.Kind {
	case schema.KindText:
		if c := strings.Compare(strings.ToLower(a.Text), strings.ToLower(b.Text)); c != 0 {
			return c
		}
		return strings.Compare(a.Text, b.Text)
	case schema.KindNumber:
		return compareFloat(a.Number, b.Number)
	case schema.KindBool:
		switch {
		case a.Bool == b.Bool:
			return 0
		case !a.Bool:
			return -1
		}
		return 1
	case schema.KindDate:
		return a.Time.Compare(b.Time)
	case schema.KindOption:
		return compareOption(p, a.Text, b.Text)
	case schema.KindOptions:
		for i := 0; i < len(a.Options) && i < len(b.Options); i++ {
			if c := compareOption(p, a.Options[i], b.Options[i]); c != 0 {
				return c
			}
		}
		return len(a.Options) - len(b.Options)
	}
	return 0
}

func compareOption(p schema.Property, a, b string) int {
	_, ia, okA := p.Option(a)
	_, ib, okB := p.Option(b)
	switch {
	case okA && okB:
		return ia - ib
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(a, b)
}
