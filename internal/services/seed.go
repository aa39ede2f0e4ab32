// seed.go
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
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/jam-build-viewdb/internal/models"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"gorm.io/gorm"
)

// SeedInput is the seed file format: a database and its record values
type SeedInput struct {
	Database schema.Database  `json:"database"`
	Records  []map[string]any `json:"records"`
}

// SeedDatabase creates the seeded database and its records unless a
// database with the same id exists. It reports whether anything was created.
func SeedDatabase(db *gorm.DB, data []byte) (Snapshot, bool, error) {
	var in SeedInput
	if err := json.Unmarshal(data, &in); err != nil {
		return Snapshot{}, false, fmt.Errorf("%w: seed: %w", ErrInvalidInput, err)
	}
	if in.Database.ID == "" {
		return Snapshot{}, false, fmt.Errorf("%w: seed database needs an id", ErrInvalidInput)
	}

	if existing, err := GetDatabase(db, in.Database.ID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return Snapshot{}, false, err
	}

	snap, err := CreateDatabase(db, in.Database)
	if err != nil {
		return Snapshot{}, false, err
	}

	// stagger timestamps so creation order survives the created_at sort
	base := time.Now().UTC().Add(-time.Duration(len(in.Records)) * time.Second)
	rows := make([]models.Record, 0, len(in.Records))
	for i, values := range in.Records {
		at := base.Add(time.Duration(i) * time.Second)
		row, err := models.RecordFromSchema(schema.Record{
			ID:         uuid.NewString(),
			DatabaseID: snap.ID,
			Properties: compact(values),
			CreatedAt:  at,
			UpdatedAt:  at,
			CreatedBy:  "seed",
		})
		if err != nil {
			return Snapshot{}, false, err
		}
		rows = append(rows, row)
	}
	if len(rows) > 0 {
		if err := db.CreateInBatches(&rows, 100).Error; err != nil {
			return Snapshot{}, false, err
		}
	}

	log.Printf("Seeded database %q with %d records", snap.Name, len(rows))
	return snap, true, nil
}
