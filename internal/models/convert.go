// convert.go
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
	"fmt"
	"slices"

	"github.com/localnerve/jam-build-viewdb/internal/schema"
)

// ViewSettings is the JSON payload of View.Settings
type ViewSettings struct {
	Filters []schema.Filter `json:"filters,omitempty"`
	Sorts   []schema.Sort   `json:"sorts,omitempty"`
	GroupBy string          `json:"groupBy,omitempty"`
	Roles   schema.RolePins `json:"roles"`
}

// ToSchema converts a stored database with its properties and views
func ToSchema(m Database) (schema.Database, error) {
	db := schema.Database{
		ID:          m.DatabaseID,
		Name:        m.Name,
		Icon:        m.Icon,
		Description: m.Description,
		Frozen:      m.Frozen,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Properties:  make([]schema.Property, 0, len(m.Properties)),
		Views:       make([]schema.View, 0, len(m.Views)),
	}

	props := slices.Clone(m.Properties)
	slices.SortStableFunc(props, func(a, b Property) int { return a.Position - b.Position })
	for _, p := range props {
		prop := schema.Property{
			ID:            p.PropertyID,
			Name:          p.Name,
			Type:          schema.PropertyType(p.Type),
			Required:      p.Required,
			GlobalVisible: p.GlobalVisible,
			Order:         p.Position,
		}
		if err := p.Config.Decode(&prop.Config); err != nil {
			return schema.Database{}, fmt.Errorf("property %s config: %w", p.PropertyID, err)
		}
		db.Properties = append(db.Properties, prop)
	}

	views := slices.Clone(m.Views)
	slices.SortStableFunc(views, func(a, b View) int { return a.Position - b.Position })
	for _, v := range views {
		view := schema.View{
			ID:        v.ViewID,
			Name:      v.Name,
			Type:      v.Type,
			IsDefault: v.IsDefault,
		}
		if !v.VisibleProperties.IsNull() {
			view.VisibleProperties = []string{}
			if err := v.VisibleProperties.Decode(&view.VisibleProperties); err != nil {
				return schema.Database{}, fmt.Errorf("view %s visible properties: %w", v.ViewID, err)
			}
		}
		var settings ViewSettings
		if err := v.Settings.Decode(&settings); err != nil {
			return schema.Database{}, fmt.Errorf("view %s settings: %w", v.ViewID, err)
		}
		view.Filters = settings.Filters
		view.Sorts = settings.Sorts
		view.GroupBy = settings.GroupBy
		view.Roles = settings.Roles
		db.Views = append(db.Views, view)
	}

	return db, nil
}

// FromSchema converts a schema database into rows. Version is left to the
// caller.
func FromSchema(db schema.Database) (Database, error) {
	m := Database{
		DatabaseID:  db.ID,
		Name:        db.Name,
		Icon:        db.Icon,
		Description: db.Description,
		Frozen:      db.Frozen,
		OwnerID:     db.OwnerID,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}

	for i, p := range db.Properties {
		row, err := PropertyFromSchema(db.ID, i, p)
		if err != nil {
			return Database{}, err
		}
		m.Properties = append(m.Properties, row)
	}
	for i, v := range db.Views {
		row, err := ViewFromSchema(db.ID, i, v)
		if err != nil {
			return Database{}, err
		}
		m.Views = append(m.Views, row)
	}
	return m, nil
}

// PropertyFromSchema converts one property at position
func PropertyFromSchema(databaseID string, position int, p schema.Property) (Property, error) {
	cfg, err := NewJSON(p.Config)
	if err != nil {
		return Property{}, fmt.Errorf("property %s config: %w", p.ID, err)
	}
	return Property{
		DatabaseID:    databaseID,
		PropertyID:    p.ID,
		Name:          p.Name,
		Type:          string(p.Type),
		Required:      p.Required,
		GlobalVisible: p.GlobalVisible,
		Position:      position,
		Config:        cfg,
	}, nil
}

// ViewFromSchema converts one view at position
func ViewFromSchema(databaseID string, position int, v schema.View) (View, error) {
	visible, err := NewJSON(v.VisibleProperties)
	if err != nil {
		return View{}, fmt.Errorf("view %s visible properties: %w", v.ID, err)
	}
	settings, err := NewJSON(ViewSettings{Filters: v.Filters, Sorts: v.Sorts, GroupBy: v.GroupBy, Roles: v.Roles})
	if err != nil {
		return View{}, fmt.Errorf("view %s settings: %w", v.ID, err)
	}
	return View{
		DatabaseID:        databaseID,
		ViewID:            v.ID,
		Name:              v.Name,
		Type:              v.Type,
		IsDefault:         v.IsDefault,
		Position:          position,
		VisibleProperties: visible,
		Settings:          settings,
	}, nil
}

// RecordToSchema converts a stored record
func RecordToSchema(m Record) (schema.Record, error) {
	rec := schema.Record{
		ID:         m.RecordID,
		DatabaseID: m.DatabaseID,
		Properties: map[string]any{},
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		CreatedBy:  m.CreatedBy,
	}
	if err := m.Values.Decode(&rec.Properties); err != nil {
		return schema.Record{}, fmt.Errorf("record %s values: %w", m.RecordID, err)
	}
	return rec, nil
}

// RecordFromSchema converts a schema record into a row
func RecordFromSchema(rec schema.Record) (Record, error) {
	values, err := NewJSON(rec.Properties)
	if err != nil {
		return Record{}, fmt.Errorf("record %s values: %w", rec.ID, err)
	}
	return Record{
		RecordID:   rec.ID,
		DatabaseID: rec.DatabaseID,
		Values:     values,
		CreatedBy:  rec.CreatedBy,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}, nil
}
