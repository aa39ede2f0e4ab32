// record.go
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

import "time"

// Record is one row of a database. Properties may hold values for ids that
// are no longer in the schema.
type Record struct {
	ID         string         `json:"id"`
	DatabaseID string         `json:"databaseId"`
	Properties map[string]any `json:"properties"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	CreatedBy  string         `json:"createdBy,omitempty"`
}

// Raw returns the stored value for a property id. A stored JSON null is
// reported as absent.
func (r Record) Raw(propertyID string) (any, bool) {
	v, ok := r.Properties[propertyID]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// DocumentViewConfig is the advisory capability bag handed to strategies and
// the column manager. It decides which affordances are exposed; the server
// checks permissions again on every mutation.
type DocumentViewConfig struct {
	CanCreate           bool `json:"canCreate"`
	CanEdit             bool `json:"canEdit"`
	CanDelete           bool `json:"canDelete"`
	CanManageViews      bool `json:"canManageViews"`
	CanManageProperties bool `json:"canManageProperties"`
}

// FullAccess grants every capability.
func FullAccess() DocumentViewConfig {
	return DocumentViewConfig{
		CanCreate:           true,
		CanEdit:             true,
		CanDelete:           true,
		CanManageViews:      true,
		CanManageProperties: true,
	}
}
