package flatmapstats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sugawarayuuta/sonnet"
)

func testResult() *Result {
	return &Result{
		Label: "grouped map (15-wide groups, overflow byte)",
		Rows: []Row{
			{},
			{LoadFactor: 0.5, FullRatio: 0.25, HitHops: 1.5, HitCmps: 2, MissHops: 0.125, MissCmps: 3},
		},
	}
}

func TestWriteDelimited(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDelimited(&buf, testResult()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	require.Equal(t, "grouped map (15-wide groups, overflow byte)", lines[0])
	require.Equal(t, strings.Join(ResultHeader, ";"), lines[1])
	require.Equal(t, "0;0;0;0;0;0", lines[2])
	require.Equal(t, "0.5;0.25;1.5;2;0.125;3", lines[3])
}

func TestWriteJSON(t *testing.T) {
	res := testResult()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var decoded Result
	require.NoError(t, sonnet.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, *res, decoded)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, testResult()))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, testResult().Label))
	require.Contains(t, out, "0.25")
}
