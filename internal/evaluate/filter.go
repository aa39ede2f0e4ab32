// filter.go
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

// Package evaluate applies a view's filters, sort keys and grouping to an
// in-memory record slice. Nothing here queries storage or mutates its input;
// every function returns newly allocated slices.
//
// Filters are combined with AND only. OR groups are not supported.
package evaluate

import (
	"slices"
	"strings"
	"time"

	"github.com/localnerve/jam-build-viewdb/internal/projector"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
)

var knownOperators = []schema.FilterOperator{
	schema.OpEquals, schema.OpNotEquals,
	schema.OpContains, schema.OpNotContain,
	schema.OpStartsWith, schema.OpEndsWith,
	schema.OpBefore, schema.OpAfter, schema.OpOnOrBefore, schema.OpOnOrAfter,
	schema.OpGt, schema.OpGte, schema.OpLt, schema.OpLte,
	schema.OpIsEmpty, schema.OpIsNotEmpty,
}

// KnownOperator reports whether op is evaluated. MatchAll skips filters with
// other operators rather than hiding every record.
func KnownOperator(op schema.FilterOperator) bool {
	return slices.Contains(knownOperators, op)
}

// Filter returns the records matching every filter, in input order.
func Filter(props []schema.Property, records []schema.Record, filters []schema.Filter) []schema.Record {
	out := make([]schema.Record, 0, len(records))
	for _, rec := range records {
		if MatchAll(props, rec, filters) {
			out = append(out, rec)
		}
	}
	return out
}

// MatchAll reports whether rec satisfies every filter.
func MatchAll(props []schema.Property, rec schema.Record, filters []schema.Filter) bool {
	for _, f := range filters {
		if !KnownOperator(f.Operator) {
			continue
		}
		if !Match(props, rec, f) {
			return false
		}
	}
	return true
}

// Match evaluates one filter. A missing value, including one whose property
// is no longer in the schema, only matches is_empty. A present value passes
// an unknown operator.
func Match(props []schema.Property, rec schema.Record, f schema.Filter) bool {
	p, ok := propertyByID(props, f.PropertyID)
	v := schema.Absent
	if ok {
		v = projector.Value(p, rec)
	}

	switch f.Operator {
	case schema.OpIsEmpty:
		return v.IsEmpty()
	case schema.OpIsNotEmpty:
		return !v.IsEmpty()
	}

	if v.IsAbsent() {
		return false
	}
	if !KnownOperator(f.Operator) {
		return true
	}

	operand := projector.Convert(p, f.Value)
	if _, isList := f.Value.([]any); isList && p.Type == schema.PropertySelect {
		// a list operand on a single select means "any of"
		multi := p
		multi.Type = schema.PropertyMultiSelect
		operand = projector.Convert(multi, f.Value)
	}
	if operand.IsAbsent() {
		return false
	}

	switch v.Kind {
	case schema.KindText:
		return matchText(f.Operator, v.Text, operand.Text)
	case schema.KindNumber:
		return matchOrdered(f.Operator, compareFloat(v.Number, operand.Number))
	case schema.KindBool:
		return matchEquality(f.Operator, v.Bool == operand.Bool)
	case schema.KindDate:
		return matchOrdered(f.Operator, compareDay(v.Time, operand.Time))
	case schema.KindOption:
		return matchOption(f.Operator, v.Text, operand)
	case schema.KindOptions:
		return matchOptions(f.Operator, v.Options, operand)
	}
	return false
}

func matchText(op schema.FilterOperator, value, operand string) bool {
	a, b := strings.ToLower(value), strings.ToLower(operand)
	switch op {
	case schema.OpEquals:
		return a == b
	case schema.OpNotEquals:
		return a != b
	case schema.OpContains:
		return strings.Contains(a, b)
	case schema.OpNotContain:
		return !strings.Contains(a, b)
	case schema.OpStartsWith:
		return strings.HasPrefix(a, b)
	case schema.OpEndsWith:
		return strings.HasSuffix(a, b)
	case schema.OpGt, schema.OpGte, schema.OpLt, schema.OpLte:
		return matchOrdered(op, strings.Compare(a, b))
	}
	return false
}

// matchOrdered evaluates comparison operators given cmp(value, operand).
// before/after are synonyms of lt/gt so numbers and dates share one path.
func matchOrdered(op schema.FilterOperator, c int) bool {
	switch op {
	case schema.OpEquals:
		return c == 0
	case schema.OpNotEquals:
		return c != 0
	case schema.OpGt, schema.OpAfter:
		return c > 0
	case schema.OpGte, schema.OpOnOrAfter:
		return c >= 0
	case schema.OpLt, schema.OpBefore:
		return c < 0
	case schema.OpLte, schema.OpOnOrBefore:
		return c <= 0
	}
	return false
}

func matchEquality(op schema.FilterOperator, equal bool) bool {
	switch op {
	case schema.OpEquals:
		return equal
	case schema.OpNotEquals:
		return !equal
	}
	return false
}

func matchOption(op schema.FilterOperator, id string, operand schema.Value) bool {
	candidates := []string{operand.Text}
	if operand.Kind == schema.KindOptions {
		candidates = operand.Options
	}
	in := slices.Contains(candidates, id)
	switch op {
	case schema.OpEquals, schema.OpContains:
		return in
	case schema.OpNotEquals, schema.OpNotContain:
		return !in
	}
	return false
}

func matchOptions(op schema.FilterOperator, ids []string, operand schema.Value) bool {
	wanted := operand.Options
	if operand.Kind == schema.KindOption {
		wanted = []string{operand.Text}
	}
	hasAll := true
	for _, w := range wanted {
		if !slices.Contains(ids, w) {
			hasAll = false
			break
		}
	}
	switch op {
	case schema.OpContains:
		return hasAll
	case schema.OpNotContain:
		return !hasAll
	case schema.OpEquals:
		return hasAll && len(dedupe(ids)) == len(dedupe(wanted))
	case schema.OpNotEquals:
		return !(hasAll && len(dedupe(ids)) == len(dedupe(wanted)))
	}
	return false
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareDay compares calendar days, each in its own location.
func compareDay(a, b time.Time) int {
	return dayNumber(a) - dayNumber(b)
}

// dayNumber counts days since the epoch for t's calendar date.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

func propertyByID(props []schema.Property, id string) (schema.Property, bool) {
	for _, p := range props {
		if p.ID == id {
			return p, true
		}
	}
	return schema.Property{}, false
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
