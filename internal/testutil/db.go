// db.go
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

package testutil

import (
	"testing"
	"time"

	"github.com/localnerve/jam-build-viewdb/data"
	"github.com/localnerve/jam-build-viewdb/internal/config"
	"github.com/localnerve/jam-build-viewdb/internal/database"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"gorm.io/gorm"
)

// DemoDatabaseID is the id of the embedded demo database
const DemoDatabaseID = "7d0f3c1e-2a4b-4c55-9e61-000000000001"

// NewTestDB opens a migrated in-memory sqlite database, closed with the test
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	return Connect(t, &config.Config{
		DBType:            "sqlite",
		DBDatabase:        ":memory:",
		DBConnectionLimit: 1,
		DBLogLevel:        "silent",
	})
}

// SeedDemo loads the embedded demo database into db
func SeedDemo(t *testing.T, db *gorm.DB) services.Snapshot {
	t.Helper()

	snap, _, err := services.SeedDatabase(db, data.DemoSeed)
	if err != nil {
		t.Fatalf("Failed to seed demo database: %v", err)
	}
	return snap
}

// Connect opens and migrates the database described by cfg, closed with the test
func Connect(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to %s: %v", cfg.DBType, err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate %s: %v", cfg.DBType, err)
	}
	return db
}

// Date is local midnight of the given day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
