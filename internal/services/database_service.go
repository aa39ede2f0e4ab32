// database_service.go
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
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/jam-build-viewdb/internal/models"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// Snapshot is a database as handed to the engine, plus its stored version
type Snapshot struct {
	schema.Database
	Version uint64 `json:"version,string"`
}

// DatabaseSummary is one entry of the database list
type DatabaseSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	Frozen      bool      `json:"frozen"`
	Version     uint64    `json:"version,string"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// quiet returns a session that does not log SQL
func quiet(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
}

// CreateDatabase stores a new database. Missing ids are generated, and a
// default table view is added when none is given.
func CreateDatabase(db *gorm.DB, in schema.Database) (Snapshot, error) {
	out := in.Clone()
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	if out.Name == "" {
		return Snapshot{}, fmt.Errorf("%w: database name is required", ErrInvalidInput)
	}
	for i := range out.Properties {
		if out.Properties[i].ID == "" {
			out.Properties[i].ID = uuid.NewString()
		}
		out.Properties[i].Order = i
	}
	for i := range out.Views {
		if out.Views[i].ID == "" {
			out.Views[i].ID = uuid.NewString()
		}
	}
	if len(out.Views) == 0 {
		out.Views = []schema.View{{ID: uuid.NewString(), Name: "Table", Type: string(schema.ViewTable), IsDefault: true}}
	}
	if err := out.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	now := time.Now().UTC()
	out.CreatedAt, out.UpdatedAt = now, now

	row, err := models.FromSchema(out)
	if err != nil {
		return Snapshot{}, err
	}
	row.Version = 1

	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Database{}).Where("database_id = ?", row.DatabaseID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: database %s already exists", ErrInvalidInput, row.DatabaseID)
		}
		return tx.Clauses(hints.CommentBefore("insert", "viewdb:create-database")).Create(&row).Error
	})
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Database: out, Version: row.Version}, nil
}

// GetDatabase loads a database with its properties and views
func GetDatabase(db *gorm.DB, databaseID string) (Snapshot, error) {
	row, err := loadDatabase(quiet(db), databaseID, false)
	if err != nil {
		return Snapshot{}, err
	}
	return toSnapshot(row)
}

// ListDatabases returns summaries ordered by name. An empty ownerID lists
// every database.
func ListDatabases(db *gorm.DB, ownerID string) ([]DatabaseSummary, error) {
	var rows []models.Database
	query := quiet(db).Clauses(hints.Comment("select", "viewdb:list-databases")).Order("name, database_id")
	if ownerID != "" {
		query = query.Where("owner_id = ? OR owner_id = ''", ownerID)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]DatabaseSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, DatabaseSummary{
			ID:          r.DatabaseID,
			Name:        r.Name,
			Icon:        r.Icon,
			Description: r.Description,
			Frozen:      r.Frozen,
			Version:     r.Version,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return out, nil
}

// loadDatabase reads a database row, optionally locking it for update
func loadDatabase(db *gorm.DB, databaseID string, lock bool) (models.Database, error) {
	var row models.Database
	query := db.Clauses(hints.Comment("select", "viewdb:load-database")).
		Preload("Properties", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Preload("Views", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") })
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.Where("database_id = ?", databaseID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Database{}, fmt.Errorf("database %s: %w", databaseID, ErrNotFound)
		}
		return models.Database{}, err
	}
	return row, nil
}

func toSnapshot(row models.Database) (Snapshot, error) {
	sdb, err := models.ToSchema(row)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Database: sdb, Version: row.Version}, nil
}

// bumpVersion increments the database version if it still equals version
func bumpVersion(tx *gorm.DB, databaseID string, version uint64) (uint64, int64, error) {
	newVersion := version + 1
	result := tx.Model(&models.Database{}).
		Where("database_id = ? AND version = ?", databaseID, version).
		Updates(map[string]any{"version": newVersion, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return 0, 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, 0, fmt.Errorf("%w - Failed to update database due to concurrent modification", ErrVersion)
	}
	return newVersion, result.RowsAffected, nil
}
