package types_test

import (
	"encoding/json"
	"testing"

	"github.com/localnerve/jam-build-viewdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUint64(t *testing.T) {
	for _, in := range []string{`42`, `"42"`} {
		var v types.FlexUint64
		require.NoError(t, json.Unmarshal([]byte(in), &v), in)
		assert.Equal(t, uint64(42), v.Uint64())
	}

	var v types.FlexUint64
	assert.Error(t, json.Unmarshal([]byte(`"forty"`), &v))
	assert.Error(t, json.Unmarshal([]byte(`true`), &v))

	out, err := json.Marshal(types.FlexUint64(18446744073709551615))
	require.NoError(t, err)
	assert.Equal(t, `"18446744073709551615"`, string(out))
}

func TestFlexBool(t *testing.T) {
	cases := map[string]bool{`true`: true, `false`: false, `"true"`: true, `"0"`: false, `"1"`: true}
	for in, want := range cases {
		var v types.FlexBool
		require.NoError(t, json.Unmarshal([]byte(in), &v), in)
		assert.Equal(t, want, v.Bool(), in)
	}

	var v types.FlexBool
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &v))
}

func TestFlexList(t *testing.T) {
	var body struct {
		Items types.FlexList[string] `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"items":"one"}`), &body))
	assert.Equal(t, []string{"one"}, body.Items.Slice())

	require.NoError(t, json.Unmarshal([]byte(`{"items":["a","b"]}`), &body))
	assert.Equal(t, []string{"a", "b"}, body.Items.Slice())
}

func TestNewError(t *testing.T) {
	err := types.NewError(403, "data.authorization", "missing %s", "edit")
	assert.Equal(t, "403: missing edit [type: data.authorization]", err.Error())
}
