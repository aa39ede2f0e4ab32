// columns.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-viewdb/internal/columns"
	"github.com/localnerve/jam-build-viewdb/internal/middleware"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"github.com/localnerve/jam-build-viewdb/internal/types"
	"github.com/localnerve/jam-build-viewdb/internal/utils"
)

// ColumnState is one row of the column manager
type ColumnState struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Required  bool   `json:"required"`
	Selected  bool   `json:"selected"`
	CanToggle bool   `json:"canToggle"`
}

// ColumnsResponse is the column manager state of a view
type ColumnsResponse struct {
	ViewID   string        `json:"viewId"`
	Version  string        `json:"version"`
	Editable bool          `json:"editable"`
	Columns  []ColumnState `json:"columns"`
}

type columnsBody struct {
	Version types.FlexUint64       `json:"version" swaggertype:"string"`
	Toggle  types.FlexList[string] `json:"toggle" swaggertype:"array,string"`
}

func (h *DatabaseHandler) openColumns(c *fiber.Ctx) (*columns.Manager, services.Snapshot, error) {
	snap, err := services.GetDatabase(h.DB, c.Params("database"))
	if err != nil {
		return nil, services.Snapshot{}, err
	}
	m, err := columns.Open(snap.Database, c.Params("view"), middleware.CapabilitiesFrom(c))
	return m, snap, err
}

// GetColumns handles GET /api/databases/:database/views/:view/columns
// @Summary Get column manager state
// @Description List every property with its selection and whether the caller may toggle it
// @Tags Visibility
// @Produce json
// @Param database path string true "Database ID"
// @Param view path string true "View ID"
// @Success 200 {object} ColumnsResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /databases/{database}/views/{view}/columns [get]
func (h *DatabaseHandler) GetColumns(c *fiber.Ctx) error {
	m, snap, err := h.openColumns(c)
	if err != nil {
		return serviceError(c, err, "getColumns")
	}

	res := ColumnsResponse{
		ViewID:   c.Params("view"),
		Version:  types.FlexUint64(snap.Version).String(),
		Editable: m.Editable(),
		Columns:  make([]ColumnState, 0, len(snap.Properties)),
	}
	for _, p := range snap.Properties {
		res.Columns = append(res.Columns, ColumnState{
			ID:        p.ID,
			Name:      p.Name,
			Type:      string(p.Type),
			Required:  p.Required,
			Selected:  m.IsSelected(p.ID),
			CanToggle: m.CanToggle(p.ID),
		})
	}
	return c.JSON(res)
}

// ToggleColumns handles PATCH /api/databases/:database/views/:view/columns
// @Summary Toggle columns
// @Description Flip the selection of each listed property and save the view's allow-list. Nothing is written when the selection is unchanged.
// @Tags Visibility
// @Accept json
// @Produce json
// @Param database path string true "Database ID"
// @Param view path string true "View ID"
// @Param body body columnsBody true "Version and property ids to toggle"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /databases/{database}/views/{view}/columns [patch]
func (h *DatabaseHandler) ToggleColumns(c *fiber.Ctx) error {
	var body columnsBody
	if err := c.BodyParser(&body); err != nil || len(body.Toggle) == 0 {
		return invalidInput(c, "Invalid input")
	}

	m, snap, err := h.openColumns(c)
	if err != nil {
		return serviceError(c, err, "toggleColumns")
	}
	for _, id := range body.Toggle {
		if _, ok := snap.Property(id); !ok {
			return invalidInput(c, "unknown property %q", id)
		}
		if !m.Toggle(id) {
			return utils.RejectedResponse(c, "column "+id+" cannot be toggled")
		}
	}

	intent, changed := m.Save()
	if !changed {
		return utils.MutationSuccessResponse(c, body.Version.Uint64(), 0)
	}
	return h.apply(c, body.Version, intent)
}
