// render_service.go
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

package services

import (
	"fmt"
	"time"

	"github.com/localnerve/jam-build-viewdb/internal/metrics"
	"github.com/localnerve/jam-build-viewdb/internal/render"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"gorm.io/gorm"
)

// RenderView loads a database and its records and shapes them for a view.
// An empty viewID renders the default view.
func RenderView(db *gorm.DB, databaseID, viewID string, cfg schema.DocumentViewConfig, now, anchor time.Time) (render.Result, error) {
	snap, err := GetDatabase(db, databaseID)
	if err != nil {
		return render.Result{}, err
	}
	records, err := ListRecords(db, databaseID)
	if err != nil {
		return render.Result{}, err
	}

	start := time.Now()
	result, ok := render.RenderView(snap.Database, records, viewID, cfg, now, anchor)
	if !ok {
		return render.Result{}, fmt.Errorf("view %s: %w", viewID, ErrNotFound)
	}
	metrics.ObserveRender(string(result.Kind), len(records), time.Since(start))

	return result, nil
}
