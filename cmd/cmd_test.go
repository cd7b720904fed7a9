package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1hpEcVns/ComplierFrontEnd/codec"
)

func TestScalar(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"null", nil},
		{"None", nil},
		{"true", true},
		{"False", false},
		{"42", 42},
		{"-7", -7},
		{"0.5", 0.5},
		{"hello", "hello"},
		{"8080x", "8080x"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, scalar(tc.in), "scalar(%q)", tc.in)
	}
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"old=f", "new=g", "message=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"old": "f", "new": "g", "message": "a=b"}, params)

	_, err = parseParams([]string{"noequals"})
	assert.ErrorContains(t, err, "malformed parameter")

	_, err = parseParams([]string{"=value"})
	assert.ErrorContains(t, err, "malformed parameter")
}

func TestApplyEdit(t *testing.T) {
	tree := codec.Mapping{
		"node_type": "Module",
		"body": []any{
			codec.Mapping{
				"node_type": "FunctionDef",
				"name":      "old_name",
				"args":      []any{},
				"body":      []any{codec.Mapping{"node_type": "Pass"}},
			},
		},
	}

	out, err := applyEdit("rename-function", tree, map[string]string{"old": "old_name", "new": "new_name"})
	require.NoError(t, err)
	fn := out["body"].([]any)[0].(codec.Mapping)
	assert.Equal(t, "new_name", fn["name"])

	_, err = applyEdit("rename-function", tree, map[string]string{"old": "old_name"})
	assert.ErrorContains(t, err, `requires -p new=`)

	_, err = applyEdit("explode", tree, nil)
	assert.ErrorContains(t, err, `unknown edit "explode"`)
}
