// record_service.go
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
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/jam-build-viewdb/internal/models"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// ListRecords returns a database's records in creation order
func ListRecords(db *gorm.DB, databaseID string) ([]schema.Record, error) {
	var rows []models.Record
	if err := quiet(db).Clauses(hints.Comment("select", "viewdb:list-records")).
		Where("database_id = ?", databaseID).
		Order("created_at, record_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]schema.Record, 0, len(rows))
	for _, r := range rows {
		rec, err := models.RecordToSchema(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// CreateRecord adds a record. Values for unknown property ids are kept as
// stored data; the engine treats them as absent.
func CreateRecord(db *gorm.DB, databaseID string, values map[string]any, createdBy string) (schema.Record, error) {
	var rec schema.Record

	err := db.Transaction(func(tx *gorm.DB) error {
		parent, err := loadDatabase(quiet(tx), databaseID, false)
		if err != nil {
			return err
		}
		if parent.Frozen {
			return ErrFrozen
		}

		now := time.Now().UTC()
		rec = schema.Record{
			ID:         uuid.NewString(),
			DatabaseID: databaseID,
			Properties: compact(values),
			CreatedAt:  now,
			UpdatedAt:  now,
			CreatedBy:  createdBy,
		}
		row, err := models.RecordFromSchema(rec)
		if err != nil {
			return err
		}
		return tx.Clauses(hints.CommentBefore("insert", "viewdb:create-record")).Create(&row).Error
	})

	return rec, err
}

// UpdateRecord merges values into a record. A nil value removes the key.
func UpdateRecord(db *gorm.DB, databaseID, recordID string, values map[string]any) (schema.Record, error) {
	var rec schema.Record

	err := db.Transaction(func(tx *gorm.DB) error {
		parent, err := loadDatabase(quiet(tx), databaseID, false)
		if err != nil {
			return err
		}
		if parent.Frozen {
			return ErrFrozen
		}

		var row models.Record
		if err := quiet(tx).Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("database_id = ? AND record_id = ?", databaseID, recordID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("record %s: %w", recordID, ErrNotFound)
			}
			return err
		}

		rec, err = models.RecordToSchema(row)
		if err != nil {
			return err
		}
		for k, v := range values {
			if v == nil {
				delete(rec.Properties, k)
			} else {
				rec.Properties[k] = v
			}
		}
		rec.UpdatedAt = time.Now().UTC()

		updated, err := models.RecordFromSchema(rec)
		if err != nil {
			return err
		}
		return tx.Model(&models.Record{}).
			Where("record_id = ?", recordID).
			Updates(map[string]any{"property_values": updated.Values, "updated_at": rec.UpdatedAt}).Error
	})

	return rec, err
}

// compact copies values without nil entries
func compact(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	maps.Copy(out, values)
	maps.DeleteFunc(out, func(_ string, v any) bool { return v == nil })
	return out
}
