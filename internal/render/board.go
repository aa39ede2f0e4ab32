// board.go
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
	"github.com/localnerve/jam-build-viewdb/internal/evaluate"
	"github.com/localnerve/jam-build-viewdb/internal/projector"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
)

type boardStrategy struct{}

func (boardStrategy) Kind() Kind { return KindBoard }

// Shape groups records into columns by the view's group-by property, or by
// the status role when the view does not name one.
func (s boardStrategy) Shape(in Input) Result {
	p := run(in)
	res := p.result(s.Kind())

	by, ok := boardProperty(in.Properties, in.View)
	if !ok {
		res.Empty = &EmptyState{
			Reason:  ReasonNoStatusProperty,
			Message: "Add a status or select property to group this board",
		}
		return res
	}

	res.GroupBy = by.ID
	res.Groups = p.groups(evaluate.GroupBy(by, p.records, in.Now))
	return res
}

func boardProperty(props []schema.Property, view schema.View) (schema.Property, bool) {
	if view.GroupBy != "" {
		for _, p := range props {
			if p.ID == view.GroupBy {
				return p, true
			}
		}
	}
	return projector.Resolve(props, &view, projector.RoleStatus)
}
