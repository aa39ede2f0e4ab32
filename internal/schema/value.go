// value.go
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
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ValueKind tags the payload carried by a Value.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindText
	KindNumber
	KindBool
	KindDate
	KindOption
	KindOptions
)

// Value is a typed record value. Text holds the string for text-like
// properties and the option id for KindOption.
type Value struct {
	Kind    ValueKind
	Text    string
	Number  float64
	Bool    bool
	Time    time.Time
	Options []string
}

// Absent is the value of a missing, null or unreadable property.
var Absent = Value{}

// IsAbsent reports whether the value is missing.
func (v Value) IsAbsent() bool {
	return v.Kind == KindAbsent
}

// IsEmpty reports whether the value is missing or holds nothing: an empty
// string or an empty option list.
func (v Value) IsEmpty() bool {
	switch v.Kind {
	case KindAbsent:
		return true
	case KindText, KindOption:
		return strings.TrimSpace(v.Text) == ""
	case KindOptions:
		return len(v.Options) == 0
	}
	return false
}

// String renders the value for display and text comparisons.
func (v Value) String() string {
	switch v.Kind {
	case KindText, KindOption:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDate:
		if isMidnight(v.Time) {
			return v.Time.Format(DateLayout)
		}
		return v.Time.Format(time.RFC3339)
	case KindOptions:
		return strings.Join(v.Options, ", ")
	}
	return ""
}

// MarshalJSON encodes the payload as its natural JSON shape.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindText, KindOption:
		return json.Marshal(v.Text)
	case KindNumber:
		return json.Marshal(v.Number)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindDate:
		return json.Marshal(v.String())
	case KindOptions:
		return json.Marshal(v.Options)
	}
	return []byte("null"), nil
}

// DateLayout is the ISO calendar-date layout used for date-only values.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseDate reads the ISO forms the frontend writes. Date-only strings are
// placed at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}
