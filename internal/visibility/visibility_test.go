package visibility_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabase() schema.Database {
	return schema.Database{
		ID: "db",
		Properties: []schema.Property{
			{ID: "name", Name: "Name", Type: schema.PropertyText, Required: true},
			{ID: "status", Name: "Status", Type: schema.PropertySelect},
			{ID: "due", Name: "Due Date", Type: schema.PropertyDate},
			{ID: "secret", Name: "Secret", Type: schema.PropertyText, GlobalVisible: schema.Bool(false)},
			{ID: "notes", Name: "Notes", Type: schema.PropertyText, GlobalVisible: schema.Bool(true)},
		},
		Views: []schema.View{
			{ID: "all", Name: "All", Type: "table", IsDefault: true},
			{ID: "narrow", Name: "Narrow", Type: "table", VisibleProperties: []string{"name", "status", "secret"}},
			{ID: "empty", Name: "Empty", Type: "list", VisibleProperties: []string{}},
		},
	}
}

func view(t *testing.T, db schema.Database, id string) *schema.View {
	t.Helper()
	v, ok := db.View(id)
	require.True(t, ok, "view %s", id)
	return &v
}

func propIDs(props []schema.Property) []string {
	out := []string{}
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestResolveWithoutView(t *testing.T) {
	db := testDatabase()
	r := visibility.Resolve(db.Properties, nil)

	assert.Equal(t, []string{"name", "status", "due", "notes"}, propIDs(r.Visible))
	assert.Equal(t, []string{"secret"}, propIDs(r.GloballyHidden))
	assert.Empty(t, r.ViewHidden)
	assert.True(t, r.IsGloballyHidden("secret"))
	assert.False(t, r.IsVisible("unknown"))
}

func TestResolveAllowList(t *testing.T) {
	db := testDatabase()
	r := visibility.Resolve(db.Properties, view(t, db, "narrow"))

	assert.Equal(t, []string{"name", "status"}, propIDs(r.Visible))
	// secret is in the allow-list but global hiding wins and is reported as such.
	assert.Equal(t, []string{"secret"}, propIDs(r.GloballyHidden))
	assert.Equal(t, []string{"due", "notes"}, propIDs(r.ViewHidden))
	assert.Equal(t, []string{"due", "secret", "notes"}, propIDs(r.Hidden))
	assert.True(t, r.IsViewHidden("due"))
	assert.False(t, r.IsViewHidden("secret"))
}

func TestEmptyAllowListKeepsRequiredVisible(t *testing.T) {
	db := testDatabase()

	in, err := visibility.NewUpdateViewVisibility(db, "all", []string{})
	require.NoError(t, err)
	next, err := visibility.Apply(db, in)
	require.NoError(t, err)

	r := visibility.Resolve(next.Properties, view(t, next, "all"))
	assert.Equal(t, []string{"name"}, propIDs(r.Visible))
	assert.ElementsMatch(t, []string{"status", "due", "notes"}, propIDs(r.ViewHidden))
}

func TestRequiredStoredHiddenStillVisible(t *testing.T) {
	props := []schema.Property{{ID: "a", Required: true, GlobalVisible: schema.Bool(false)}}
	r := visibility.Resolve(props, nil)
	assert.True(t, r.IsVisible("a"))
	assert.Empty(t, r.GloballyHidden)
}

func TestToggleRequiredRejected(t *testing.T) {
	db := testDatabase()
	before := db.Clone()

	_, err := visibility.NewToggleGlobal(db, "name", false)
	require.ErrorIs(t, err, visibility.ErrRequiredProperty)
	assert.Contains(t, err.Error(), "cannot hide required property")

	// A hand-built intent is rejected by Apply as well.
	_, err = visibility.Apply(db, visibility.ToggleGlobal{PropertyID: "name", Visible: false})
	require.ErrorIs(t, err, visibility.ErrRequiredProperty)

	_, err = visibility.Apply(db, visibility.BulkToggle{Updates: []visibility.ToggleGlobal{
		{PropertyID: "status", Visible: false},
		{PropertyID: "name", Visible: false},
	}})
	require.ErrorIs(t, err, visibility.ErrRequiredProperty)

	if diff := cmp.Diff(before, db); diff != "" {
		t.Errorf("database changed after rejected intents (-want +got):\n%s", diff)
	}
}

func TestToggleRequiredVisibleAllowed(t *testing.T) {
	db := testDatabase()
	in, err := visibility.NewToggleGlobal(db, "name", true)
	require.NoError(t, err)
	_, err = visibility.Apply(db, in)
	require.NoError(t, err)
}

func TestUnknownIDs(t *testing.T) {
	db := testDatabase()

	_, err := visibility.NewToggleGlobal(db, "gone", true)
	assert.ErrorIs(t, err, visibility.ErrUnknownProperty)

	_, err = visibility.NewUpdateViewVisibility(db, "gone", nil)
	assert.ErrorIs(t, err, visibility.ErrUnknownView)

	_, err = visibility.NewUpdateViewVisibility(db, "all", []string{"name", "gone"})
	assert.ErrorIs(t, err, visibility.ErrUnknownProperty)

	_, err = visibility.NewShowAll(db, "gone")
	assert.ErrorIs(t, err, visibility.ErrUnknownView)

	_, err = visibility.NewBulkToggle(db, nil)
	assert.ErrorIs(t, err, visibility.ErrNoUpdates)

	_, err = visibility.Apply(db, nil)
	assert.Error(t, err)
}

func TestShowAllAndHideNonRequired(t *testing.T) {
	db := testDatabase()

	show, err := visibility.NewShowAll(db, "narrow")
	require.NoError(t, err)
	next, err := visibility.Apply(db, show)
	require.NoError(t, err)
	v := view(t, next, "narrow")
	assert.Equal(t, []string{"name", "status", "due", "notes"}, v.VisibleProperties)

	hide, err := visibility.NewHideNonRequired(next, "narrow")
	require.NoError(t, err)
	next, err = visibility.Apply(next, hide)
	require.NoError(t, err)
	v = view(t, next, "narrow")
	assert.Equal(t, []string{"name"}, v.VisibleProperties)

	// the original snapshot is untouched
	assert.Equal(t, []string{"name", "status", "secret"}, view(t, db, "narrow").VisibleProperties)
}

func TestUpdateViewVisibilityDedupes(t *testing.T) {
	db := testDatabase()
	in, err := visibility.NewUpdateViewVisibility(db, "all", []string{"due", "name", "due"})
	require.NoError(t, err)
	assert.Equal(t, []string{"due", "name"}, in.PropertyIDs)
}

func TestScope(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, visibility.BulkToggle{Updates: []visibility.ToggleGlobal{
		{PropertyID: "a"}, {PropertyID: "b"}, {PropertyID: "a", Visible: true},
	}}.Scope().PropertyIDs)
	assert.Equal(t, []string{"v"}, visibility.ShowAll{ViewID: "v"}.Scope().ViewIDs)
}

// randomIntent draws an intent over the test database's ids, including
// intents that must be rejected.
func randomIntent(rng *rand.Rand, db schema.Database) visibility.Intent {
	prop := db.Properties[rng.IntN(len(db.Properties))].ID
	v := db.Views[rng.IntN(len(db.Views))].ID
	switch rng.IntN(5) {
	case 0:
		return visibility.ToggleGlobal{PropertyID: prop, Visible: rng.IntN(2) == 0}
	case 1:
		var ids []string
		for _, p := range db.Properties {
			if rng.IntN(2) == 0 {
				ids = append(ids, p.ID)
			}
		}
		return visibility.UpdateViewVisibility{ViewID: v, PropertyIDs: ids}
	case 2:
		n := 1 + rng.IntN(3)
		updates := make([]visibility.ToggleGlobal, n)
		for i := range updates {
			updates[i] = visibility.ToggleGlobal{
				PropertyID: db.Properties[rng.IntN(len(db.Properties))].ID,
				Visible:    rng.IntN(2) == 0,
			}
		}
		return visibility.BulkToggle{Updates: updates}
	case 3:
		return visibility.ShowAll{ViewID: v}
	default:
		return visibility.HideNonRequired{ViewID: v}
	}
}

func TestRandomIntentSequences(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*31))
		db := testDatabase()

		for step := 0; step < 40; step++ {
			next, err := visibility.Apply(db, randomIntent(rng, db))
			if err == nil {
				db = next
			}

			for i := range db.Views {
				r := visibility.Resolve(db.Properties, &db.Views[i])

				// partition is total and disjoint
				require.Len(t, r.Visible, len(db.Properties)-len(r.Hidden), "seed %d step %d", seed, step)
				seen := map[string]int{}
				for _, p := range r.Visible {
					seen[p.ID]++
				}
				for _, p := range r.Hidden {
					seen[p.ID]++
				}
				for _, p := range db.Properties {
					require.Equal(t, 1, seen[p.ID], "seed %d step %d property %s", seed, step, p.ID)
				}
				require.Len(t, r.Hidden, len(r.GloballyHidden)+len(r.ViewHidden))

				// required is never hidden
				require.True(t, r.IsVisible("name"), "seed %d step %d", seed, step)
				for _, p := range db.Properties {
					if p.ID == "name" {
						require.True(t, p.GloballyVisible(), "seed %d step %d", seed, step)
					}
				}
			}
		}
	}
}
