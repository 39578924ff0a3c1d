package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(invs []Invocation) []string {
	var out []string
	for _, inv := range invs {
		out = append(out, inv.Name)
	}
	return out
}

func TestExtract_NoMatches(t *testing.T) {
	assert.Nil(t, Extract("The answer is 42."))
	assert.Nil(t, Extract(""))
	assert.Nil(t, Extract("TOOL: add 2, 3"))
}

func TestExtract_OrderAndCount(t *testing.T) {
	text := "First I add.\nTOOL: add(2, 3)\nThen multiply.\nTOOL: multiply(add_result, 2)\nTOOL: add(1,1)"
	invs := Extract(text)

	require.Len(t, invs, 3)
	assert.Equal(t, []string{"add", "multiply", "add"}, names(invs))
	assert.Equal(t, []string{"2", "3"}, invs[0].RawArgs)
	assert.Equal(t, []string{"add_result", "2"}, invs[1].RawArgs)
	assert.Equal(t, "TOOL: add(1,1)", text[invs[2].Start:invs[2].End])
}

func TestExtract_ScansAcrossLines(t *testing.T) {
	invs := Extract("Use TOOL: add(1, 2) and TOOL:square_root(9) inline.")
	assert.Equal(t, []string{"add", "square_root"}, names(invs))
}

func TestExtract_EmptyArgumentList(t *testing.T) {
	invs := Extract("TOOL: average()")
	require.Len(t, invs, 1)
	assert.Empty(t, invs[0].RawArgs)
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"2, 3", []string{"2", "3"}},
		{" 'hello' ", []string{"hello"}},
		{`"hello world", 'x'`, []string{"hello world", "x"}},
		{"1, 2,", []string{"1", "2"}},
		{"1, , 2", []string{"1", "2"}},
		{`"'nested'"`, []string{"'nested'"}},
		{"a, b, >=", []string{"a", "b", ">="}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitArgs(tt.raw))
		})
	}
}

func TestTrailing(t *testing.T) {
	text := "Reasoning.\nTOOL: add(2, 3)\nTOOL: divide(1, 0)\n\n  Final: 5.  \n"
	invs := Extract(text)

	assert.Equal(t, "Final: 5.", Trailing(text, invs))
	assert.Equal(t, len(text)-len("\n\n  Final: 5.  \n"), LastEnd(invs))
	assert.Equal(t, "", Trailing("TOOL: add(1, 2)\n", Extract("TOOL: add(1, 2)\n")))
	assert.Equal(t, 0, LastEnd(nil))
}
