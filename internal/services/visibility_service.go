// visibility_service.go
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
	"errors"
	"fmt"

	"github.com/localnerve/jam-build-viewdb/internal/metrics"
	"github.com/localnerve/jam-build-viewdb/internal/models"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/visibility"
	"gorm.io/gorm"
)

// VisibilityReport is the resolved visibility of one view
type VisibilityReport struct {
	DatabaseID     string   `json:"databaseId"`
	ViewID         string   `json:"viewId"`
	Version        uint64   `json:"version,string"`
	Visible        []string `json:"visible"`
	Hidden         []string `json:"hidden"`
	GloballyHidden []string `json:"globallyHidden"`
	ViewHidden     []string `json:"viewHidden"`
}

// GetVisibility resolves the property visibility of a view
func GetVisibility(db *gorm.DB, databaseID, viewID string) (VisibilityReport, error) {
	snap, err := GetDatabase(db, databaseID)
	if err != nil {
		return VisibilityReport{}, err
	}
	view, ok := snap.View(viewID)
	if !ok {
		return VisibilityReport{}, fmt.Errorf("view %s: %w", viewID, ErrNotFound)
	}

	res := visibility.Resolve(snap.Properties, &view)
	ids := func(props []schema.Property) []string {
		out := make([]string, 0, len(props))
		for _, p := range props {
			out = append(out, p.ID)
		}
		return out
	}
	return VisibilityReport{
		DatabaseID:     databaseID,
		ViewID:         viewID,
		Version:        snap.Version,
		Visible:        ids(res.Visible),
		Hidden:         ids(res.Hidden),
		GloballyHidden: ids(res.GloballyHidden),
		ViewHidden:     ids(res.ViewHidden),
	}, nil
}

// ApplyVisibility applies a visibility intent to the stored database. The
// database row is locked and its version checked; the intent is validated
// and applied against the locked snapshot, and only the rows in the intent's
// scope are written. Nothing is written when any step fails.
func ApplyVisibility(db *gorm.DB, databaseID string, version uint64, intent visibility.Intent) (uint64, int64, error) {
	var newVersion uint64
	var affectedRows int64

	err := db.Transaction(func(tx *gorm.DB) error {
		row, err := loadDatabase(quiet(tx), databaseID, true)
		if err != nil {
			return err
		}
		if row.Version != version {
			return ErrVersion
		}
		if row.Frozen {
			return ErrFrozen
		}

		current, err := toSnapshot(row)
		if err != nil {
			return err
		}
		next, err := visibility.Apply(current.Database, intent)
		if err != nil {
			return err
		}

		scope := intent.Scope()
		for _, id := range scope.PropertyIDs {
			p, _ := next.Property(id)
			result := tx.Model(&models.Property{}).
				Where("database_id = ? AND property_id = ?", databaseID, id).
				Update("global_visible", p.GlobalVisible)
			if result.Error != nil {
				return result.Error
			}
			affectedRows += result.RowsAffected
		}
		for _, id := range scope.ViewIDs {
			v, _ := next.View(id)
			visible, err := models.NewJSON(v.VisibleProperties)
			if err != nil {
				return err
			}
			result := tx.Model(&models.View{}).
				Where("database_id = ? AND view_id = ?", databaseID, id).
				Update("visible_properties", visible)
			if result.Error != nil {
				return result.Error
			}
			affectedRows += result.RowsAffected
		}

		newVersion, _, err = bumpVersion(tx, databaseID, row.Version)
		return err
	})

	metrics.CountVisibility(IntentName(intent), outcome(err))
	return newVersion, affectedRows, err
}

// IntentName is the metrics and log name of an intent
func IntentName(in visibility.Intent) string {
	switch in.(type) {
	case visibility.ToggleGlobal:
		return "toggle_global"
	case visibility.BulkToggle:
		return "bulk_toggle"
	case visibility.UpdateViewVisibility:
		return "update_view"
	case visibility.ShowAll:
		return "show_all"
	case visibility.HideNonRequired:
		return "hide_non_required"
	}
	return "unknown"
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "applied"
	case errors.Is(err, ErrVersion):
		return "conflict"
	case errors.Is(err, visibility.ErrRequiredProperty),
		errors.Is(err, visibility.ErrUnknownProperty),
		errors.Is(err, visibility.ErrUnknownView),
		errors.Is(err, visibility.ErrNoUpdates),
		errors.Is(err, ErrFrozen):
		return "rejected"
	}
	return "error"
}
