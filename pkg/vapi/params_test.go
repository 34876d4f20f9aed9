package vapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vonix-io/vapi/pkg/vapi"
)

func TestParams_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *vapi.Params
		expected string
	}{
		{
			name:     "nil params",
			params:   nil,
			expected: "",
		},
		{
			name:     "empty params",
			params:   vapi.NewParams(),
			expected: "",
		},
		{
			name:     "single pair",
			params:   vapi.NewParams().Set("limit", "7"),
			expected: "limit=7",
		},
		{
			name:     "order preserved",
			params:   vapi.NewParams().Set("limit", "7").Set("offset", "22"),
			expected: "limit=7&offset=22",
		},
		{
			name:     "reverse insertion order preserved",
			params:   vapi.NewParams().Set("offset", "22").Set("limit", "7"),
			expected: "offset=22&limit=7",
		},
		{
			name:     "duplicate keys pass through verbatim",
			params:   vapi.NewParams().Set("name", "a").Set("name", "b"),
			expected: "name=a&name=b",
		},
		{
			name:     "values escaped exactly once",
			params:   vapi.NewParams().Set("name", "Wilson & Co").Set("q", "a=b"),
			expected: "name=Wilson+%26+Co&q=a%3Db",
		},
		{
			name:     "empty value keeps bare key",
			params:   vapi.NewParams().Set("enabled", ""),
			expected: "enabled=",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.params.Encode())
		})
	}
}

func TestParams_Builders(t *testing.T) {
	t.Parallel()

	params := vapi.NewParams().WithLimit(7).WithOffset(22).Set("enabled", "true")

	assert.Equal(t, "limit=7&offset=22&enabled=true", params.Encode())
	assert.Equal(t, 3, params.Len())
	assert.Equal(t, "limit", params.Pairs()[0].Key)
	assert.Equal(t, "7", params.Pairs()[0].Value)
}

func TestParams_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("order preserved", func(t *testing.T) {
		t.Parallel()

		params := vapi.NewParams().Set("name", "Wilson").Set("enabled", "true")

		data, err := json.Marshal(params)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Wilson","enabled":"true"}`, string(data))
	})

	t.Run("empty object for empty list", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(vapi.NewParams())
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("values escaped as JSON strings", func(t *testing.T) {
		t.Parallel()

		params := vapi.NewParams().Set("answer_url", `https://example.com/a?b="c"`)

		data, err := json.Marshal(params)
		require.NoError(t, err)

		var decoded map[string]string

		err = json.Unmarshal(data, &decoded)
		require.NoError(t, err)
		assert.Equal(t, `https://example.com/a?b="c"`, decoded["answer_url"])
	})
}
