// database.go
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

package models

import (
	"time"
)

// Database is a stored multi-view database. Version is bumped by every schema
// or visibility mutation and checked optimistically.
type Database struct {
	DatabaseID  string `gorm:"primaryKey;type:char(36)"`
	Name        string `gorm:"size:255;not null"`
	Icon        string `gorm:"size:64"`
	Description string `gorm:"type:text"`
	Frozen      bool   `gorm:"not null;default:false"`
	OwnerID     string `gorm:"size:255;index"`
	Version     uint64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Properties  []Property `gorm:"foreignKey:DatabaseID;references:DatabaseID;constraint:OnDelete:CASCADE"`
	Views       []View     `gorm:"foreignKey:DatabaseID;references:DatabaseID;constraint:OnDelete:CASCADE"`
}

// Property is one column of a database schema. Ids are unique per database.
type Property struct {
	DatabaseID    string `gorm:"primaryKey;type:char(36)"`
	PropertyID    string `gorm:"primaryKey;size:64"`
	Name          string `gorm:"size:255;not null"`
	Type          string `gorm:"size:32;not null"`
	Required      bool   `gorm:"not null;default:false"`
	GlobalVisible *bool
	Position      int  `gorm:"not null;default:0"`
	Config        JSON `gorm:"column:config"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// View is a stored view definition. VisibleProperties is NULL when the view
// has no allow-list.
type View struct {
	DatabaseID        string `gorm:"primaryKey;type:char(36)"`
	ViewID            string `gorm:"primaryKey;size:64"`
	Name              string `gorm:"size:255;not null"`
	Type              string `gorm:"size:32;not null"`
	IsDefault         bool   `gorm:"not null;default:false"`
	Position          int    `gorm:"not null;default:0"`
	VisibleProperties JSON   `gorm:"column:visible_properties"`
	Settings          JSON   `gorm:"column:settings"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Record is one row of a database. Values holds the property map as JSON.
type Record struct {
	RecordID   string `gorm:"primaryKey;type:char(36)"`
	DatabaseID string `gorm:"type:char(36);not null;index"`
	Values     JSON   `gorm:"column:property_values"`
	CreatedBy  string `gorm:"size:255"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the table name for Database
func (Database) TableName() string {
	return "view_databases"
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "view_properties"
}

// TableName overrides the table name for View
func (View) TableName() string {
	return "view_definitions"
}

// TableName overrides the table name for Record
func (Record) TableName() string {
	return "view_records"
}
