package projector_test

import (
	"testing"
	"time"

	"github.com/localnerve/jam-build-viewdb/internal/projector"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statusProp = schema.Property{
	ID: "st", Name: "Status", Type: schema.PropertySelect,
	Config: schema.PropertyConfig{Options: []schema.SelectOption{
		{ID: "todo", Label: "To Do"},
		{ID: "doing", Label: "In Progress"},
		{ID: "done", Label: "Done"},
	}},
}

func TestGuessTitle(t *testing.T) {
	props := []schema.Property{
		{ID: "a", Name: "Summary", Type: schema.PropertyText},
		{ID: "b", Name: "TITLE", Type: schema.PropertyURL},
	}
	p, ok := projector.Guess(props, projector.RoleTitle)
	require.True(t, ok)
	assert.Equal(t, "b", p.ID, "exact name wins over first text")

	p, ok = projector.Guess(props[:1], projector.RoleTitle)
	require.True(t, ok)
	assert.Equal(t, "a", p.ID)

	_, ok = projector.Guess([]schema.Property{{ID: "n", Name: "Count", Type: schema.PropertyNumber}}, projector.RoleTitle)
	assert.False(t, ok)
}

func TestGuessDate(t *testing.T) {
	typed := []schema.Property{
		{ID: "a", Name: "Date Text", Type: schema.PropertyText},
		{ID: "b", Name: "When", Type: schema.PropertyDate},
	}
	p, ok := projector.Guess(typed, projector.RoleDate)
	require.True(t, ok)
	assert.Equal(t, "b", p.ID, "date type beats name")

	named := []schema.Property{
		{ID: "a", Name: "Due", Type: schema.PropertyText},
		{ID: "b", Name: "Start date", Type: schema.PropertyText},
	}
	p, ok = projector.Guess(named, projector.RoleDate)
	require.True(t, ok)
	assert.Equal(t, "b", p.ID, "\"date\" beats \"due\"")

	p, ok = projector.Guess(named[:1], projector.RoleDate)
	require.True(t, ok)
	assert.Equal(t, "a", p.ID)

	p, ok = projector.Guess([]schema.Property{{ID: "c", Name: "Created At", Type: schema.PropertyText}}, projector.RoleDate)
	require.True(t, ok)
	assert.Equal(t, "c", p.ID)

	_, ok = projector.Guess([]schema.Property{{ID: "x", Name: "Name", Type: schema.PropertyText}}, projector.RoleDate)
	assert.False(t, ok)
}

func TestGuessByName(t *testing.T) {
	props := []schema.Property{
		{ID: "p", Name: "Priority Level", Type: schema.PropertySelect},
		statusProp,
		{ID: "d", Name: "Long description", Type: schema.PropertyText},
	}
	for role, want := range map[projector.Role]string{
		projector.RoleStatus:      "st",
		projector.RolePriority:    "p",
		projector.RoleDescription: "d",
	} {
		p, ok := projector.Guess(props, role)
		require.True(t, ok, role)
		assert.Equal(t, want, p.ID, role)
	}
}

func TestPinWins(t *testing.T) {
	props := []schema.Property{
		{ID: "title", Name: "Title", Type: schema.PropertyText},
		{ID: "alt", Name: "Alternate", Type: schema.PropertyText},
	}
	view := &schema.View{Roles: schema.RolePins{TitlePropertyID: "alt"}}
	p, ok := projector.Resolve(props, view, projector.RoleTitle)
	require.True(t, ok)
	assert.Equal(t, "alt", p.ID)

	view.Roles.TitlePropertyID = "stale"
	p, ok = projector.Resolve(props, view, projector.RoleTitle)
	require.True(t, ok)
	assert.Equal(t, "title", p.ID, "stale pin falls back to heuristic")

	p, ok = projector.Resolve(props, nil, projector.RoleTitle)
	require.True(t, ok)
	assert.Equal(t, "title", p.ID)
}

func TestConvert(t *testing.T) {
	num := schema.Property{ID: "n", Type: schema.PropertyNumber}
	assert.Equal(t, 3.5, projector.Convert(num, 3.5).Number)
	assert.Equal(t, 7.0, projector.Convert(num, "7").Number)
	assert.True(t, projector.Convert(num, "seven").IsAbsent())

	check := schema.Property{ID: "c", Type: schema.PropertyCheckbox}
	assert.True(t, projector.Convert(check, true).Bool)
	assert.True(t, projector.Convert(check, "true").Bool)
	assert.True(t, projector.Convert(check, []any{}).IsAbsent())

	date := schema.Property{ID: "d", Type: schema.PropertyDate}
	v := projector.Convert(date, "2024-03-10")
	require.Equal(t, schema.KindDate, v.Kind)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), v.Time)
	v = projector.Convert(date, map[string]any{"start": "2024-03-11", "end": "2024-03-12"})
	assert.Equal(t, 11, v.Time.Day())
	assert.True(t, projector.Convert(date, "soon").IsAbsent())

	v = projector.Convert(statusProp, "Done")
	assert.Equal(t, schema.Value{Kind: schema.KindOption, Text: "done"}, v, "labels map to option ids")

	multi := statusProp
	multi.Type = schema.PropertyMultiSelect
	v = projector.Convert(multi, []any{"todo", "In Progress"})
	assert.Equal(t, []string{"todo", "doing"}, v.Options)
}

func TestLookupStaleProperty(t *testing.T) {
	rec := schema.Record{Properties: map[string]any{"gone": "x"}}
	assert.True(t, projector.Lookup([]schema.Property{statusProp}, rec, "gone").IsAbsent())
	assert.True(t, projector.Lookup([]schema.Property{statusProp}, rec, "st").IsAbsent())
}

func TestDisplayAndTitle(t *testing.T) {
	rec := schema.Record{Properties: map[string]any{"st": "doing", "name": "  "}}
	assert.Equal(t, "In Progress", projector.Display(statusProp, projector.Value(statusProp, rec)))

	props := []schema.Property{{ID: "name", Name: "Name", Type: schema.PropertyText}, statusProp}
	assert.Equal(t, "Untitled", projector.Title(props, nil, rec))

	rec.Properties["name"] = "Write docs"
	assert.Equal(t, "Write docs", projector.Title(props, nil, rec))
}
