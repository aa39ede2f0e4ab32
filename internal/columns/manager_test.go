package columns_test

import (
	"testing"

	"github.com/localnerve/jam-build-viewdb/internal/columns"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func database() schema.Database {
	return schema.Database{
		ID: "db",
		Properties: []schema.Property{
			{ID: "title", Name: "Title", Type: schema.PropertyText, Required: true},
			{ID: "status", Name: "Status", Type: schema.PropertySelect},
			{ID: "due", Name: "Due", Type: schema.PropertyDate},
			{ID: "secret", Name: "Secret", Type: schema.PropertyText, GlobalVisible: schema.Bool(false)},
		},
		Views: []schema.View{
			{ID: "v", Name: "Board", Type: "board", VisibleProperties: []string{"title", "status"}},
			{ID: "all", Name: "All", Type: "table"},
		},
	}
}

func open(t *testing.T, viewID string, cfg schema.DocumentViewConfig) *columns.Manager {
	t.Helper()
	m, err := columns.Open(database(), viewID, cfg)
	require.NoError(t, err)
	return m
}

func TestOpenSeedsFromVisible(t *testing.T) {
	m := open(t, "v", schema.FullAccess())
	assert.Equal(t, []string{"title", "status"}, m.Selected())
	assert.False(t, m.HasChanges())

	m = open(t, "all", schema.FullAccess())
	assert.Equal(t, []string{"title", "status", "due"}, m.Selected())

	_, err := columns.Open(database(), "missing", schema.FullAccess())
	assert.ErrorIs(t, err, visibility.ErrUnknownView)
}

func TestToggleRules(t *testing.T) {
	m := open(t, "v", schema.FullAccess())

	assert.False(t, m.Toggle("title"), "required")
	assert.False(t, m.Toggle("secret"), "globally hidden")
	assert.False(t, m.Toggle("ghost"), "unknown")
	assert.Equal(t, []string{"title", "status"}, m.Selected())

	assert.True(t, m.Toggle("due"))
	assert.True(t, m.HasChanges())
	assert.True(t, m.Toggle("due"))
	assert.False(t, m.HasChanges())
}

func TestQuickActions(t *testing.T) {
	m := open(t, "v", schema.FullAccess())

	m.SelectAllAvailable()
	assert.Equal(t, []string{"title", "status", "due"}, m.Selected())
	assert.True(t, m.HasChanges())

	m.SelectRequiredOnly()
	assert.Equal(t, []string{"title"}, m.Selected())

	m.Reset()
	assert.False(t, m.HasChanges())

	in, err := m.ShowAll()
	require.NoError(t, err)
	assert.Equal(t, visibility.ShowAll{ViewID: "v"}, in)

	in, err = m.HideNonRequired()
	require.NoError(t, err)
	assert.Equal(t, visibility.HideNonRequired{ViewID: "v"}, in)
}

func TestSave(t *testing.T) {
	m := open(t, "v", schema.FullAccess())

	_, ok := m.Save()
	assert.False(t, ok, "no changes")

	m.Toggle("due")
	m.SetLoading(true)
	_, ok = m.Save()
	assert.False(t, ok, "loading")

	m.SetLoading(false)
	in, ok := m.Save()
	require.True(t, ok)
	assert.Equal(t, visibility.UpdateViewVisibility{ViewID: "v", PropertyIDs: []string{"title", "status", "due"}}, in)

	next, err := visibility.Apply(database(), in)
	require.NoError(t, err)
	require.NoError(t, m.Commit(next))
	assert.False(t, m.HasChanges())
	assert.Equal(t, []string{"title", "status", "due"}, m.Selected())
}

func TestReadOnlyConfig(t *testing.T) {
	m := open(t, "v", schema.DocumentViewConfig{})
	assert.False(t, m.Editable())
	assert.False(t, m.Toggle("due"))

	m.SelectAllAvailable()
	assert.False(t, m.HasChanges())
	_, ok := m.Save()
	assert.False(t, ok)
}
