package services_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/localnerve/jam-build-viewdb/data"
	"github.com/localnerve/jam-build-viewdb/internal/config"
	"github.com/localnerve/jam-build-viewdb/internal/render"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"github.com/localnerve/jam-build-viewdb/internal/testutil"
	"github.com/localnerve/jam-build-viewdb/internal/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const demoID = testutil.DemoDatabaseID

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)

	snap, created, err := services.SeedDatabase(db, data.DemoSeed)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint64(1), snap.Version)

	again, created, err := services.SeedDatabase(db, data.DemoSeed)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, snap.ID, again.ID)

	records, err := services.ListRecords(db, demoID)
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, "Renew passport", records[0].Properties["title"])

	_, _, err = services.SeedDatabase(db, []byte(`{"database":{"name":"no id"}}`))
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestCreateAndGetDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)

	in := schema.Database{
		Name:    "Reading",
		OwnerID: "u-1",
		Properties: []schema.Property{
			{ID: "title", Name: "Title", Type: schema.PropertyText, Required: true},
			{ID: "rating", Name: "Rating", Type: schema.PropertyNumber, GlobalVisible: schema.Bool(false)},
		},
		Views: []schema.View{
			{ID: "shelf", Name: "Shelf", Type: string(schema.ViewGallery), IsDefault: true, VisibleProperties: []string{}},
			{ID: "all", Name: "All", Type: string(schema.ViewTable)},
		},
	}
	snap, err := services.CreateDatabase(db, in)
	require.NoError(t, err)
	require.NotEmpty(t, snap.ID)

	got, err := services.GetDatabase(db, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.Version)
	assert.Equal(t, "u-1", got.OwnerID)

	// an explicit empty allow-list survives storage, an absent one stays nil
	shelf, ok := got.View("shelf")
	require.True(t, ok)
	assert.NotNil(t, shelf.VisibleProperties)
	assert.Empty(t, shelf.VisibleProperties)
	all, _ := got.View("all")
	assert.Nil(t, all.VisibleProperties)

	rating, _ := got.Property("rating")
	assert.False(t, rating.GloballyVisible())

	names := make([]string, 0, len(got.Properties))
	for _, p := range got.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Title", "Rating"}, names)

	_, err = services.CreateDatabase(db, schema.Database{ID: snap.ID, Name: "Dup"})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = services.GetDatabase(db, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)

	mine, err := services.ListDatabases(db, "u-2")
	require.NoError(t, err)
	assert.Empty(t, mine)
	mine, err = services.ListDatabases(db, "u-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestApplyVisibility(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDemo(t, db)

	before, err := services.GetDatabase(db, demoID)
	require.NoError(t, err)

	_, _, err = services.ApplyVisibility(db, demoID, 1, visibility.ToggleGlobal{PropertyID: "title", Visible: false})
	require.ErrorIs(t, err, visibility.ErrRequiredProperty)

	after, err := services.GetDatabase(db, demoID)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("rejected intent changed the database (-before +after):\n%s", diff)
	}

	newVersion, _, err := services.ApplyVisibility(db, demoID, 1, visibility.UpdateViewVisibility{ViewID: "all", PropertyIDs: []string{"due", "due", "status"}})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), newVersion)

	report, err := services.GetVisibility(db, demoID, "all")
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "status", "due"}, report.Visible)
	assert.Equal(t, uint64(2), report.Version)

	_, _, err = services.ApplyVisibility(db, demoID, 1, visibility.ShowAll{ViewID: "all"})
	assert.ErrorIs(t, err, services.ErrVersion)

	_, err = services.GetVisibility(db, demoID, "nope")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRecordsAndFrozen(t *testing.T) {
	db := testutil.NewTestDB(t)
	snap, err := services.CreateDatabase(db, schema.Database{
		Name:       "Notes",
		Properties: []schema.Property{{ID: "title", Name: "Title", Type: schema.PropertyText, Required: true}},
	})
	require.NoError(t, err)

	rec, err := services.CreateRecord(db, snap.ID, map[string]any{"title": "first", "gone": nil}, "u-1")
	require.NoError(t, err)
	assert.NotContains(t, rec.Properties, "gone")

	rec, err = services.UpdateRecord(db, snap.ID, rec.ID, map[string]any{"stale": 1})
	require.NoError(t, err)
	assert.Equal(t, "first", rec.Properties["title"])

	_, err = services.UpdateRecord(db, snap.ID, "missing", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = services.CreateRecord(db, "missing", map[string]any{}, "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, db.Table("view_databases").Where("database_id = ?", snap.ID).Update("frozen", true).Error)

	_, err = services.CreateRecord(db, snap.ID, map[string]any{"title": "second"}, "u-1")
	assert.ErrorIs(t, err, services.ErrFrozen)
	_, err = services.UpdateRecord(db, snap.ID, rec.ID, map[string]any{"title": "changed"})
	assert.ErrorIs(t, err, services.ErrFrozen)
	_, _, err = services.ApplyVisibility(db, snap.ID, 1, visibility.HideNonRequired{ViewID: snap.Views[0].ID})
	assert.ErrorIs(t, err, services.ErrFrozen)
}

func TestRenderView(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDemo(t, db)

	res, err := services.RenderView(db, demoID, "", schema.FullAccess(), testutil.Date(2026, 10, 14), testutil.Date(2026, 10, 1))
	require.NoError(t, err)
	assert.Equal(t, render.KindTable, res.Kind)
	assert.Equal(t, 7, res.Total)

	res, err = services.RenderView(db, demoID, "timeline", schema.DocumentViewConfig{}, testutil.Date(2026, 10, 14), testutil.Date(2026, 10, 14))
	require.NoError(t, err)
	assert.Equal(t, render.KindTimeline, res.Kind)
	assert.Equal(t, "Upcoming", res.Groups[0].Label)

	_, err = services.RenderView(db, demoID, "nope", schema.FullAccess(), testutil.Date(2026, 10, 14), testutil.Date(2026, 10, 14))
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCapabilitiesForRoles(t *testing.T) {
	assert.Equal(t, schema.FullAccess(), services.CapabilitiesForRoles([]string{"user", "admin"}))
	assert.True(t, services.CapabilitiesForRoles([]string{"editor"}).CanDelete)
	user := services.CapabilitiesForRoles([]string{"user"})
	assert.True(t, user.CanManageViews)
	assert.False(t, user.CanDelete)
	assert.Equal(t, schema.DocumentViewConfig{}, services.CapabilitiesForRoles(nil))
}

func TestHealthCheck(t *testing.T) {
	db := testutil.NewTestDB(t)

	res := services.HealthCheck(context.Background(), &config.Config{DBType: "sqlite", DBDatabase: ":memory:"}, db)
	assert.Equal(t, "healthy", res.Status)
	assert.Equal(t, "ok", res.Database)
	assert.Equal(t, "disabled", res.Authorizer)

	res = services.HealthCheck(context.Background(), &config.Config{
		DBType:        "sqlite",
		AuthzURL:      "http://127.0.0.1:1",
		AuthzClientID: "client",
	}, db)
	assert.Equal(t, "unhealthy", res.Status)
	assert.Equal(t, "unreachable", res.Authorizer)
}

// TestWithContainerDatabase runs the service layer against DB_TYPE/DB_IMAGE
func TestWithContainerDatabase(t *testing.T) {
	cfg := testutil.StartDatabase(t)

	db := testutil.Connect(t, cfg)
	snap := testutil.SeedDemo(t, db)

	t.Run("VersionControl", func(t *testing.T) {
		testVersionControl(t, db, snap.ID)
	})
	t.Run("Render", func(t *testing.T) {
		res, err := services.RenderView(db, snap.ID, "board", schema.FullAccess(), testutil.Date(2026, 10, 14), testutil.Date(2026, 10, 14))
		require.NoError(t, err)
		assert.Equal(t, render.KindBoard, res.Kind)
		assert.Equal(t, 7, res.Total)
	})
}

func testVersionControl(t *testing.T, db *gorm.DB, id string) {
	v, _, err := services.ApplyVisibility(db, id, 1, visibility.ToggleGlobal{PropertyID: "legacy", Visible: true})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)

	_, _, err = services.ApplyVisibility(db, id, 1, visibility.ToggleGlobal{PropertyID: "legacy", Visible: false})
	assert.ErrorIs(t, err, services.ErrVersion)

	_, _, err = services.ApplyVisibility(db, id, 2, visibility.BulkToggle{Updates: []visibility.ToggleGlobal{
		{PropertyID: "notes", Visible: false},
		{PropertyID: "title", Visible: false},
	}})
	assert.ErrorIs(t, err, visibility.ErrRequiredProperty)

	got, err := services.GetDatabase(db, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.Version)
	notes, _ := got.Property("notes")
	assert.True(t, notes.GloballyVisible())
}
