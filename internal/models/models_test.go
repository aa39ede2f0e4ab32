package models_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/localnerve/jam-build-viewdb/internal/models"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONKeepsNilApartFromEmpty(t *testing.T) {
	null, err := models.NewJSON([]string(nil))
	require.NoError(t, err)
	assert.True(t, null.IsNull())
	v, err := null.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	empty, err := models.NewJSON([]string{})
	require.NoError(t, err)
	assert.False(t, empty.IsNull())
	assert.Equal(t, "[]", string(empty.JSON))

	var ids []string
	require.NoError(t, empty.Decode(&ids))
	assert.NotNil(t, ids)

	var untouched []string
	require.NoError(t, null.Decode(&untouched))
	assert.Nil(t, untouched)
}

func TestSchemaRoundTrip(t *testing.T) {
	in := schema.Database{
		ID:   "db-1",
		Name: "Tasks",
		Properties: []schema.Property{
			{ID: "title", Name: "Title", Type: schema.PropertyText, Required: true, Order: 0},
			{ID: "status", Name: "Status", Type: schema.PropertySelect, GlobalVisible: schema.Bool(false), Order: 1,
				Config: schema.PropertyConfig{Options: []schema.SelectOption{{ID: "todo", Label: "To Do"}}}},
		},
		Views: []schema.View{
			{ID: "all", Name: "All", Type: "table", IsDefault: true},
			{ID: "board", Name: "Board", Type: "board", VisibleProperties: []string{},
				GroupBy: "status", Roles: schema.RolePins{StatusPropertyID: "status"}},
		},
	}

	row, err := models.FromSchema(in)
	require.NoError(t, err)
	assert.Equal(t, "view_databases", row.TableName())
	require.Len(t, row.Views, 2)
	assert.True(t, row.Views[0].VisibleProperties.IsNull())
	assert.False(t, row.Views[1].VisibleProperties.IsNull())

	// storage returns children in any order
	row.Properties[0], row.Properties[1] = row.Properties[1], row.Properties[0]

	out, err := models.ToSchema(row)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordConversion(t *testing.T) {
	rec := schema.Record{ID: "r1", DatabaseID: "db-1", Properties: map[string]any{"title": "a", "points": 3.0}}
	row, err := models.RecordFromSchema(rec)
	require.NoError(t, err)

	back, err := models.RecordToSchema(row)
	require.NoError(t, err)
	assert.Equal(t, rec.Properties, back.Properties)

	row.Values = models.JSON{}
	back, err = models.RecordToSchema(row)
	require.NoError(t, err)
	assert.NotNil(t, back.Properties)
}
