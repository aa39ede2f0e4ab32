package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-viewdb/internal/handlers"
	"github.com/localnerve/jam-build-viewdb/internal/render"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"github.com/localnerve/jam-build-viewdb/internal/testutil"
	"github.com/localnerve/jam-build-viewdb/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demo = "/api/databases/" + testutil.DemoDatabaseID

func setupApp(t *testing.T, validator services.SessionValidator) *fiber.App {
	t.Helper()
	db := testutil.NewTestDB(t)
	testutil.SeedDemo(t, db)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.Register(app.Group("/api"), db, validator)
	app.Use(handlers.NotFound)
	return app
}

func version(t *testing.T, app *fiber.App) string {
	t.Helper()
	var snap struct {
		Version string `json:"version"`
	}
	resp := testutil.Request(t, app, "GET", demo, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &snap)
	return snap.Version
}

// renderResult is the subset of render.Result the tests read back
type renderResult struct {
	Kind    render.Kind `json:"kind"`
	ViewID  string      `json:"viewId"`
	GroupBy string      `json:"groupBy"`
	Total   int         `json:"total"`
	Matched int         `json:"matched"`
	Columns []struct {
		ID string `json:"id"`
	} `json:"columns"`
	Items  []renderItem `json:"items"`
	Groups []struct {
		Key   string       `json:"key"`
		Items []renderItem `json:"items"`
	} `json:"groups"`
	Unscheduled  []renderItem              `json:"unscheduled"`
	Capabilities schema.DocumentViewConfig `json:"capabilities"`
}

type renderItem struct {
	Title string `json:"title"`
}

func titles(items []renderItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestListAndGetDatabase(t *testing.T) {
	app := setupApp(t, nil)

	var list []services.DatabaseSummary
	resp := testutil.Request(t, app, "GET", "/api/databases", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Tasks", list[0].Name)
	assert.Equal(t, uint64(1), list[0].Version)

	var snap services.Snapshot
	resp = testutil.Request(t, app, "GET", demo, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &snap)
	assert.Len(t, snap.Properties, 10)
	assert.Len(t, snap.Views, 6)

	resp = testutil.Request(t, app, "GET", "/api/databases/missing", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = testutil.Request(t, app, "GET", "/api/nothing-here", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
}

func TestCreateDatabase(t *testing.T) {
	app := setupApp(t, nil)

	resp := testutil.Request(t, app, "POST", "/api/databases", map[string]any{
		"name": "Reading",
		"properties": []map[string]any{
			{"name": "Title", "type": "text", "required": true},
			{"name": "Finished", "type": "date"},
		},
	})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)

	var snap services.Snapshot
	testutil.ParseJSON(t, resp, &snap)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, uint64(1), snap.Version)
	require.Len(t, snap.Views, 1)
	assert.Equal(t, "table", snap.Views[0].Type)
	assert.True(t, snap.Views[0].IsDefault)

	resp = testutil.Request(t, app, "POST", "/api/databases", map[string]any{"description": "no name"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testutil.Request(t, app, "POST", "/api/databases", map[string]any{
		"name":       "Broken",
		"properties": []map[string]any{{"name": "X", "type": "formula"}},
	})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestRecords(t *testing.T) {
	app := setupApp(t, nil)

	resp := testutil.Request(t, app, "POST", demo+"/records", map[string]any{
		"properties": map[string]any{"title": "Water plants", "status": "todo", "done": false},
	})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	var rec schema.Record
	testutil.ParseJSON(t, resp, &rec)
	require.NotEmpty(t, rec.ID)

	var records []schema.Record
	resp = testutil.Request(t, app, "GET", demo+"/records", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &records)
	require.Len(t, records, 8)
	assert.Equal(t, rec.ID, records[7].ID)

	resp = testutil.Request(t, app, "PATCH", demo+"/records/"+rec.ID, map[string]any{
		"properties": map[string]any{"status": "done", "done": nil},
	})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var updated schema.Record
	testutil.ParseJSON(t, resp, &updated)
	assert.Equal(t, "done", updated.Properties["status"])
	assert.NotContains(t, updated.Properties, "done")
	assert.Equal(t, "Water plants", updated.Properties["title"])

	resp = testutil.Request(t, app, "PATCH", demo+"/records/missing", map[string]any{
		"properties": map[string]any{"status": "done"},
	})
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = testutil.Request(t, app, "PATCH", demo+"/records/"+rec.ID, map[string]any{"properties": map[string]any{}})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testutil.Request(t, app, "GET", "/api/databases/missing/records", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
}

func TestRenderList(t *testing.T) {
	app := setupApp(t, nil)

	var res renderResult
	resp := testutil.Request(t, app, "GET", demo+"/views/open/render", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &res)

	assert.Equal(t, render.KindList, res.Kind)
	assert.Equal(t, 7, res.Total)
	assert.Equal(t, 4, res.Matched)
	assert.Equal(t, []string{"Quarterly report", "Renew passport", "Plan team offsite", "Fix the porch light"}, titles(res.Items))
	assert.True(t, res.Capabilities.CanManageViews)
}

func TestRenderDefaultAndBoard(t *testing.T) {
	app := setupApp(t, nil)

	var res renderResult
	resp := testutil.Request(t, app, "GET", demo+"/views/default/render", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &res)
	assert.Equal(t, render.KindTable, res.Kind)
	assert.Equal(t, "all", res.ViewID)
	for _, col := range res.Columns {
		assert.NotEqual(t, "legacy", col.ID, "globally hidden property rendered")
	}

	resp = testutil.Request(t, app, "GET", demo+"/views/board/render", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	res = renderResult{}
	testutil.ParseJSON(t, resp, &res)
	assert.Equal(t, render.KindBoard, res.Kind)
	assert.Equal(t, "status", res.GroupBy)
	require.Len(t, res.Groups, 4)
	keys := []string{res.Groups[0].Key, res.Groups[1].Key, res.Groups[2].Key, res.Groups[3].Key}
	assert.Equal(t, []string{"todo", "doing", "done", ""}, keys)
	assert.Equal(t, []string{"Garden cleanup"}, titles(res.Groups[3].Items))
}

func TestRenderCalendar(t *testing.T) {
	app := setupApp(t, nil)

	var res renderResult
	resp := testutil.Request(t, app, "GET", demo+"/views/calendar/render?anchor=2026-10-01&now=2026-10-14", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &res)

	assert.Equal(t, render.KindCalendar, res.Kind)
	require.Len(t, res.Groups, 31)
	assert.Equal(t, "2026-10-20", res.Groups[19].Key)
	assert.Equal(t, []string{"Quarterly report"}, titles(res.Groups[19].Items))
	assert.Equal(t, []string{"Fix the porch light"}, titles(res.Unscheduled))
}

func TestRenderErrors(t *testing.T) {
	app := setupApp(t, nil)

	resp := testutil.Request(t, app, "GET", demo+"/views/nope/render", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = testutil.Request(t, app, "GET", demo+"/views/all/render?now=yesterday", nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testutil.Request(t, app, "GET", "/api/databases/missing/views/all/render", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
}

func TestToggleGlobalVisibility(t *testing.T) {
	app := setupApp(t, nil)

	var ok utils.SuccessResponseStruct
	resp := testutil.Request(t, app, "PATCH", demo+"/properties/legacy/visibility", map[string]any{"version": "1", "visible": "true"})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &ok)
	assert.Equal(t, "2", ok.NewVersion)
	assert.Equal(t, "2", version(t, app))

	var conflict utils.ErrorResponseStruct
	resp = testutil.Request(t, app, "PATCH", demo+"/properties/legacy/visibility", map[string]any{"version": 1, "visible": false})
	testutil.AssertStatus(t, resp, fiber.StatusConflict)
	testutil.ParseJSON(t, resp, &conflict)
	assert.True(t, conflict.VersionError)

	resp = testutil.Request(t, app, "PATCH", demo+"/properties/legacy/visibility", map[string]any{"version": "2"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testutil.Request(t, app, "PATCH", demo+"/properties/ghost/visibility", map[string]any{"version": "2", "visible": true})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
	assert.Equal(t, "2", version(t, app))
}

func TestHideRequiredIsRejected(t *testing.T) {
	app := setupApp(t, nil)

	var rejected utils.ErrorResponseStruct
	resp := testutil.Request(t, app, "PATCH", demo+"/properties/title/visibility", map[string]any{"version": "1", "visible": false})
	testutil.AssertStatus(t, resp, fiber.StatusUnprocessableEntity)
	testutil.ParseJSON(t, resp, &rejected)
	assert.Contains(t, rejected.Message, "cannot hide required property")

	resp = testutil.Request(t, app, "PATCH", demo+"/properties/visibility", map[string]any{
		"version": "1",
		"updates": []map[string]any{
			{"propertyId": "legacy", "visible": true},
			{"propertyId": "title", "visible": false},
		},
	})
	testutil.AssertStatus(t, resp, fiber.StatusUnprocessableEntity)

	// nothing from the rejected batch was written
	assert.Equal(t, "1", version(t, app))
	var report services.VisibilityReport
	resp = testutil.Request(t, app, "GET", demo+"/views/all/visibility", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &report)
	assert.Equal(t, []string{"legacy"}, report.GloballyHidden)
	assert.Contains(t, report.Visible, "title")
}

func TestBulkToggleSingleUpdate(t *testing.T) {
	app := setupApp(t, nil)

	resp := testutil.Request(t, app, "PATCH", demo+"/properties/visibility", map[string]any{
		"version": "1",
		"updates": map[string]any{"propertyId": "notes", "visible": false},
	})
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var report services.VisibilityReport
	resp = testutil.Request(t, app, "GET", demo+"/views/all/visibility", nil)
	testutil.ParseJSON(t, resp, &report)
	assert.ElementsMatch(t, []string{"notes", "legacy"}, report.GloballyHidden)

	resp = testutil.Request(t, app, "PATCH", demo+"/properties/visibility", map[string]any{"version": "2", "updates": []any{}})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestViewVisibility(t *testing.T) {
	app := setupApp(t, nil)

	visible := func() []string {
		var report services.VisibilityReport
		resp := testutil.Request(t, app, "GET", demo+"/views/board/visibility", nil)
		testutil.AssertStatus(t, resp, fiber.StatusOK)
		testutil.ParseJSON(t, resp, &report)
		return report.Visible
	}

	resp := testutil.Request(t, app, "PUT", demo+"/views/board/visible-properties", map[string]any{"version": "1", "propertyIds": []string{}})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	assert.Equal(t, []string{"title"}, visible())

	resp = testutil.Request(t, app, "POST", demo+"/views/board/show-all", map[string]any{"version": "2"})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	assert.Equal(t, []string{"title", "status", "priority", "due", "tags", "done", "estimate", "cover", "notes"}, visible())

	resp = testutil.Request(t, app, "POST", demo+"/views/board/hide-non-required", map[string]any{"version": "3"})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	assert.Equal(t, []string{"title"}, visible())

	resp = testutil.Request(t, app, "PUT", demo+"/views/board/visible-properties", map[string]any{"version": "4", "propertyIds": []string{"due", "ghost"}})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testutil.Request(t, app, "POST", demo+"/views/nope/show-all", map[string]any{"version": "4"})
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
	assert.Equal(t, "4", version(t, app))
}

type stubValidator map[string]services.Session

func (s stubValidator) ValidateSession(cookie string) (services.Session, error) {
	if session, ok := s[cookie]; ok {
		return session, nil
	}
	return services.Session{}, errors.New("unknown session")
}

func TestCapabilities(t *testing.T) {
	app := setupApp(t, stubValidator{
		"viewer-cookie": {UserID: "v-1", Roles: []string{services.RoleViewer}},
		"user-cookie":   {UserID: "u-1", Roles: []string{services.RoleUser}},
	})

	do := func(method, path, cookie, body string) *http.Response {
		t.Helper()
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "cookie_session", Value: cookie})
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	var denied utils.ErrorResponseStruct
	resp := do("GET", "/api/databases", "", "")
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)
	testutil.ParseJSON(t, resp, &denied)
	assert.Equal(t, "data.authorization.session", denied.Type)

	resp = do("GET", "/api/databases", "stolen", "")
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)

	var res renderResult
	resp = do("GET", demo+"/views/all/render", "viewer-cookie", "")
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &res)
	assert.Equal(t, schema.DocumentViewConfig{}, res.Capabilities)

	resp = do("POST", demo+"/records", "viewer-cookie", `{"properties":{"title":"nope"}}`)
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)
	resp = do("POST", demo+"/views/all/show-all", "viewer-cookie", `{"version":"1"}`)
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)

	var rec schema.Record
	resp = do("POST", demo+"/records", "user-cookie", `{"properties":{"title":"mine"}}`)
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	testutil.ParseJSON(t, resp, &rec)
	assert.Equal(t, "u-1", rec.CreatedBy)

	resp = do("POST", demo+"/views/all/show-all", "user-cookie", `{"version":"1"}`)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
}

func TestColumns(t *testing.T) {
	app := setupApp(t, nil)

	state := func() handlers.ColumnsResponse {
		var res handlers.ColumnsResponse
		resp := testutil.Request(t, app, "GET", demo+"/views/board/columns", nil)
		testutil.AssertStatus(t, resp, fiber.StatusOK)
		testutil.ParseJSON(t, resp, &res)
		return res
	}
	selected := func(res handlers.ColumnsResponse) []string {
		var ids []string
		for _, col := range res.Columns {
			if col.Selected {
				ids = append(ids, col.ID)
			}
		}
		return ids
	}

	res := state()
	assert.True(t, res.Editable)
	assert.Equal(t, "1", res.Version)
	require.Len(t, res.Columns, 10)
	assert.Equal(t, []string{"title", "priority", "due", "tags"}, selected(res))
	assert.False(t, res.Columns[0].CanToggle, "required")
	assert.False(t, res.Columns[9].CanToggle, "globally hidden")
	assert.True(t, res.Columns[1].CanToggle)

	var ok utils.SuccessResponseStruct
	resp := testutil.Request(t, app, "PATCH", demo+"/views/board/columns", map[string]any{"version": "1", "toggle": []string{"status", "due"}})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &ok)
	assert.Equal(t, "2", ok.NewVersion)
	assert.Equal(t, []string{"title", "status", "priority", "tags"}, selected(state()))

	// toggling twice is no change, nothing is written
	resp = testutil.Request(t, app, "PATCH", demo+"/views/board/columns", map[string]any{"version": "2", "toggle": []string{"tags", "tags"}})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &ok)
	assert.Equal(t, "2", ok.NewVersion)
	assert.Equal(t, int64(0), ok.AffectedRows)

	resp = testutil.Request(t, app, "PATCH", demo+"/views/board/columns", map[string]any{"version": "2", "toggle": "title"})
	testutil.AssertStatus(t, resp, fiber.StatusUnprocessableEntity)
	resp = testutil.Request(t, app, "PATCH", demo+"/views/board/columns", map[string]any{"version": "2", "toggle": "ghost"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
	resp = testutil.Request(t, app, "PATCH", demo+"/views/board/columns", map[string]any{"version": "1", "toggle": "notes"})
	testutil.AssertStatus(t, resp, fiber.StatusConflict)
	resp = testutil.Request(t, app, "GET", demo+"/views/nope/columns", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
}
