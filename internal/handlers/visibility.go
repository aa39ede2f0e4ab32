// visibility.go
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
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"github.com/localnerve/jam-build-viewdb/internal/types"
	"github.com/localnerve/jam-build-viewdb/internal/utils"
	"github.com/localnerve/jam-build-viewdb/internal/visibility"
)

type versionBody struct {
	Version types.FlexUint64 `json:"version" swaggertype:"string"`
}

type toggleBody struct {
	Version types.FlexUint64 `json:"version" swaggertype:"string"`
	Visible *types.FlexBool  `json:"visible" swaggertype:"boolean"`
}

type bulkUpdate struct {
	PropertyID string         `json:"propertyId"`
	Visible    types.FlexBool `json:"visible" swaggertype:"boolean"`
}

type bulkBody struct {
	Version types.FlexUint64           `json:"version" swaggertype:"string"`
	Updates types.FlexList[bulkUpdate] `json:"updates" swaggertype:"array,object"`
}

type allowListBody struct {
	Version     types.FlexUint64 `json:"version" swaggertype:"string"`
	PropertyIDs []string         `json:"propertyIds"`
}

// apply runs an intent against the stored database and sends the mutation envelope
func (h *DatabaseHandler) apply(c *fiber.Ctx, version types.FlexUint64, intent visibility.Intent) error {
	databaseID := c.Params("database")
	newVersion, affectedRows, err := services.ApplyVisibility(h.DB, databaseID, version.Uint64(), intent)
	if err != nil {
		return serviceError(c, err, services.IntentName(intent))
	}
	log.Printf("Applied %s to database %s, version %d", services.IntentName(intent), databaseID, newVersion)
	return utils.MutationSuccessResponse(c, newVersion, affectedRows)
}

// GetVisibility handles GET /api/databases/:database/views/:view/visibility
// @Summary Get view visibility
// @Description Resolve which properties a view shows, and why the rest are hidden
// @Tags Visibility
// @Produce json
// @Param database path string true "Database ID"
// @Param view path string true "View ID"
// @Success 200 {object} services.VisibilityReport
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /databases/{database}/views/{view}/visibility [get]
func (h *DatabaseHandler) GetVisibility(c *fiber.Ctx) error {
	report, err := services.GetVisibility(h.DB, c.Params("database"), c.Params("view"))
	if err != nil {
		return serviceError(c, err, "getVisibility")
	}
	return c.JSON(report)
}

// ToggleGlobalVisibility handles PATCH /api/databases/:database/properties/:property/visibility
// @Summary Toggle global property visibility
// @Description Show or hide a property in every view. Required properties cannot be hidden.
// @Tags Visibility
// @Accept json
// @Produce json
// @Param database path string true "Database ID"
// @Param property path string true "Property ID"
// @Param body body toggleBody true "Version and visibility"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /databases/{database}/properties/{property}/visibility [patch]
func (h *DatabaseHandler) ToggleGlobalVisibility(c *fiber.Ctx) error {
	var body toggleBody
	if err := c.BodyParser(&body); err != nil || body.Visible == nil {
		return invalidInput(c, "Invalid input")
	}
	return h.apply(c, body.Version, visibility.ToggleGlobal{
		PropertyID: c.Params("property"),
		Visible:    body.Visible.Bool(),
	})
}

// BulkToggleVisibility handles PATCH /api/databases/:database/properties/visibility
// @Summary Toggle several properties
// @Description Apply global visibility toggles atomically. One rejected update rejects the batch.
// @Tags Visibility
// @Accept json
// @Produce json
// @Param database path string true "Database ID"
// @Param body body bulkBody true "Version and updates"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /databases/{database}/properties/visibility [patch]
func (h *DatabaseHandler) BulkToggleVisibility(c *fiber.Ctx) error {
	var body bulkBody
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "Invalid input")
	}
	updates := make([]visibility.ToggleGlobal, 0, len(body.Updates))
	for _, u := range body.Updates {
		updates = append(updates, visibility.ToggleGlobal{PropertyID: u.PropertyID, Visible: u.Visible.Bool()})
	}
	return h.apply(c, body.Version, visibility.BulkToggle{Updates: updates})
}

// UpdateViewVisibility handles PUT /api/databases/:database/views/:view/visible-properties
// @Summary Replace a view's visible properties
// @Description Set the view's allow-list. Required properties stay visible regardless.
// @Tags Visibility
// @Accept json
// @Produce json
// @Param database path string true "Database ID"
// @Param view path string true "View ID"
// @Param body body allowListBody true "Version and property ids"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /databases/{database}/views/{view}/visible-properties [put]
func (h *DatabaseHandler) UpdateViewVisibility(c *fiber.Ctx) error {
	var body allowListBody
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "Invalid input")
	}
	ids := body.PropertyIDs
	if ids == nil {
		ids = []string{}
	}
	return h.apply(c, body.Version, visibility.UpdateViewVisibility{ViewID: c.Params("view"), PropertyIDs: ids})
}

// ShowAll handles POST /api/databases/:database/views/:view/show-all
// @Summary Show all properties in a view
// @Tags Visibility
// @Accept json
// @Produce json
// @Param database path string true "Database ID"
// @Param view path string true "View ID"
// @Param body body versionBody true "Version"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /databases/{database}/views/{view}/show-all [post]
func (h *DatabaseHandler) ShowAll(c *fiber.Ctx) error {
	var body versionBody
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "Invalid input")
	}
	return h.apply(c, body.Version, visibility.ShowAll{ViewID: c.Params("view")})
}

// HideNonRequired handles POST /api/databases/:database/views/:view/hide-non-required
// @Summary Show only required properties in a view
// @Tags Visibility
// @Accept json
// @Produce json
// @Param database path string true "Database ID"
// @Param view path string true "View ID"
// @Param body body versionBody true "Version"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /databases/{database}/views/{view}/hide-non-required [post]
func (h *DatabaseHandler) HideNonRequired(c *fiber.Ctx) error {
	var body versionBody
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "Invalid input")
	}
	return h.apply(c, body.Version, visibility.HideNonRequired{ViewID: c.Params("view")})
}
