// databases.go
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
	"github.com/localnerve/jam-build-viewdb/internal/middleware"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"gorm.io/gorm"
)

// DatabaseHandler handles database, record and render routes
type DatabaseHandler struct {
	DB *gorm.DB
}

// ListDatabases handles GET /api/databases
// @Summary List databases
// @Description List the databases visible to the caller
// @Tags Databases
// @Produce json
// @Success 200 {array} services.DatabaseSummary
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /databases [get]
func (h *DatabaseHandler) ListDatabases(c *fiber.Ctx) error {
	list, err := services.ListDatabases(h.DB, userID(c))
	if err != nil {
		return serviceError(c, err, "listDatabases")
	}
	return c.JSON(list)
}

// GetDatabase handles GET /api/databases/:database
// @Summary Get a database
// @Description Get a database schema with its properties, views and version
// @Tags Databases
// @Produce json
// @Param database path string true "Database ID"
// @Success 200 {object} services.Snapshot
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /databases/{database} [get]
func (h *DatabaseHandler) GetDatabase(c *fiber.Ctx) error {
	snap, err := services.GetDatabase(h.DB, c.Params("database"))
	if err != nil {
		return serviceError(c, err, "getDatabase")
	}
	return c.JSON(snap)
}

// CreateDatabase handles POST /api/databases
// @Summary Create a database
// @Description Create a database from a schema. Missing ids are generated.
// @Tags Databases
// @Accept json
// @Produce json
// @Param body body schema.Database true "Database schema"
// @Success 201 {object} services.Snapshot
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /databases [post]
func (h *DatabaseHandler) CreateDatabase(c *fiber.Ctx) error {
	var body schema.Database
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "Invalid input")
	}
	if body.OwnerID == "" {
		body.OwnerID = userID(c)
	}

	snap, err := services.CreateDatabase(h.DB, body)
	if err != nil {
		return serviceError(c, err, "createDatabase")
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// ListRecords handles GET /api/databases/:database/records
// @Summary List records
// @Description List a database's records in creation order
// @Tags Records
// @Produce json
// @Param database path string true "Database ID"
// @Success 200 {array} schema.Record
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /databases/{database}/records [get]
func (h *DatabaseHandler) ListRecords(c *fiber.Ctx) error {
	id := c.Params("database")
	if _, err := services.GetDatabase(h.DB, id); err != nil {
		return serviceError(c, err, "listRecords")
	}
	records, err := services.ListRecords(h.DB, id)
	if err != nil {
		return serviceError(c, err, "listRecords")
	}
	return c.JSON(records)
}

type recordBody struct {
	Properties map[string]any `json:"properties"`
}

// CreateRecord handles POST /api/databases/:database/records
// @Summary Create a record
// @Tags Records
// @Accept json
// @Produce json
// @Param database path string true "Database ID"
// @Param body body recordBody true "Property values keyed by property id"
// @Success 201 {object} schema.Record
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 423 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /databases/{database}/records [post]
func (h *DatabaseHandler) CreateRecord(c *fiber.Ctx) error {
	var body recordBody
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c, "Invalid input")
	}

	rec, err := services.CreateRecord(h.DB, c.Params("database"), body.Properties, userID(c))
	if err != nil {
		return serviceError(c, err, "createRecord")
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// UpdateRecord handles PATCH /api/databases/:database/records/:record
// @Summary Update a record
// @Description Merge property values into a record. A null value clears the property.
// @Tags Records
// @Accept json
// @Produce json
// @Param database path string true "Database ID"
// @Param record path string true "Record ID"
// @Param body body recordBody true "Property values keyed by property id"
// @Success 200 {object} schema.Record
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 423 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /databases/{database}/records/{record} [patch]
func (h *DatabaseHandler) UpdateRecord(c *fiber.Ctx) error {
	var body recordBody
	if err := c.BodyParser(&body); err != nil || len(body.Properties) == 0 {
		return invalidInput(c, "Invalid input")
	}

	rec, err := services.UpdateRecord(h.DB, c.Params("database"), c.Params("record"), body.Properties)
	if err != nil {
		return serviceError(c, err, "updateRecord")
	}
	return c.JSON(rec)
}

// RenderView handles GET /api/databases/:database/views/:view/render
// @Summary Render a view
// @Description Filter, sort and shape the records for a view. Unsupported view types render with kind "unsupported".
// @Tags Views
// @Produce json
// @Param database path string true "Database ID"
// @Param view path string true "View ID, or \"default\""
// @Param now query string false "Reference time for date buckets (RFC3339 or YYYY-MM-DD)"
// @Param anchor query string false "Calendar month anchor (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} render.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /databases/{database}/views/{view}/render [get]
func (h *DatabaseHandler) RenderView(c *fiber.Ctx) error {
	now, err := queryTime(c, "now")
	if err != nil {
		return invalidInput(c, "%v", err)
	}
	anchor, err := queryTime(c, "anchor")
	if err != nil {
		return invalidInput(c, "%v", err)
	}

	viewID := c.Params("view")
	if viewID == "default" {
		viewID = ""
	}

	result, err := services.RenderView(h.DB, c.Params("database"), viewID, middleware.CapabilitiesFrom(c), now, anchor)
	if err != nil {
		return serviceError(c, err, "renderView")
	}
	return c.JSON(result)
}
