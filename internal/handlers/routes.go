package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-viewdb/internal/middleware"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"gorm.io/gorm"
)

// Register mounts the database routes on api. A nil validator serves every
// caller with full access.
func Register(api fiber.Router, db *gorm.DB, validator services.SessionValidator) {
	h := &DatabaseHandler{DB: db}

	dbs := api.Group("/databases", middleware.Capabilities(validator))
	dbs.Get("/", h.ListDatabases)
	dbs.Post("/", middleware.CanCreate(), h.CreateDatabase)
	dbs.Get("/:database", h.GetDatabase)

	dbs.Get("/:database/records", h.ListRecords)
	dbs.Post("/:database/records", middleware.CanCreate(), h.CreateRecord)
	dbs.Patch("/:database/records/:record", middleware.CanEdit(), h.UpdateRecord)

	dbs.Get("/:database/views/:view/render", h.RenderView)
	dbs.Get("/:database/views/:view/visibility", h.GetVisibility)
	dbs.Get("/:database/views/:view/columns", h.GetColumns)

	dbs.Patch("/:database/properties/visibility", middleware.CanManageViews(), h.BulkToggleVisibility)
	dbs.Patch("/:database/properties/:property/visibility", middleware.CanManageViews(), h.ToggleGlobalVisibility)
	dbs.Put("/:database/views/:view/visible-properties", middleware.CanManageViews(), h.UpdateViewVisibility)
	dbs.Patch("/:database/views/:view/columns", middleware.CanManageViews(), h.ToggleColumns)
	dbs.Post("/:database/views/:view/show-all", middleware.CanManageViews(), h.ShowAll)
	dbs.Post("/:database/views/:view/hide-non-required", middleware.CanManageViews(), h.HideNonRequired)
}
