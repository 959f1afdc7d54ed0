package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/kspace"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { kspace.SetLogger(nil) })

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCellCommand(t *testing.T) {
	out, err := run(t, "cell", "--dim", "3", "--topology", "2", "--format", "yaml")
	require.NoError(t, err)

	var info cellInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &info))
	assert.Equal(t, "0b010", info.Topology)
	assert.Equal(t, 1, info.CellDimension)
	assert.Equal(t, []int{1}, info.Directions)
	assert.Equal(t, []int{0, 2}, info.OrthoDirections)
	assert.Equal(t, 2, info.LowerIncident)
	assert.Equal(t, 4, info.UpperIncident)
}

func TestCellCommand_Text(t *testing.T) {
	out, err := run(t, "cell")
	require.NoError(t, err)
	assert.Contains(t, out, "topology 0b11, 2-cell in 2-D")
}

func TestStencilCommand(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		count int
	}{
		{"lower", []string{"stencil", "lower"}, 4},
		{"upper of vertex", []string{"stencil", "upper", "--topology", "0"}, 4},
		{"proper 2", []string{"stencil", "proper", "2"}, 12},
		{"neighborhood 1", []string{"stencil", "neighborhood"}, 5},
		{"up 3-D", []string{"stencil", "up", "--dim", "3"}, 8},
		{"down", []string{"stencil", "down", "2"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append(tt.args, "--format", "yaml")...)
			require.NoError(t, err)

			var r stencilReport
			require.NoError(t, yaml.Unmarshal([]byte(out), &r))
			assert.Equal(t, tt.count, r.Count)
			assert.Len(t, r.Cells, tt.count)
		})
	}
}

func TestStencilCommand_At(t *testing.T) {
	out, err := run(t, "stencil", "lower", "--at", "4,7", "--level", "3", "--format", "yaml")
	require.NoError(t, err)

	var r stencilReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Len(t, r.Cells, 4)
	assert.Equal(t, []int{5, 7}, r.Cells[1].Indices)
	require.NotNil(t, r.Cells[1].Level)
	assert.Equal(t, 3, *r.Cells[1].Level)
	assert.Equal(t, "0b01", r.Cells[1].Topology)
}

func TestStencilCommand_Errors(t *testing.T) {
	_, err := run(t, "stencil", "sideways")
	assert.ErrorContains(t, err, "unknown operator")

	_, err = run(t, "stencil", "proper", "two")
	assert.Error(t, err)

	_, err = run(t, "stencil", "lower", "--at", "1,2,3")
	assert.ErrorIs(t, err, kspace.ErrArityMismatch)

	_, err = run(t, "stencil", "lower", "--topology", "4")
	assert.ErrorIs(t, err, kspace.ErrInvalidTopology)

	_, err = run(t, "cell", "--format", "json")
	assert.ErrorContains(t, err, "unknown format")
}

func TestStencilCommand_Text(t *testing.T) {
	out, err := run(t, "stencil", "proper")
	require.NoError(t, err)
	assert.Contains(t, out, "proper of 0b11: 4 cells")
	assert.Contains(t, out, "TOPOLOGY")
}

func TestProlongRestrict(t *testing.T) {
	r, err := prolongRestrict(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, r.Fine, 6)
	assert.Equal(t, r.Coarse[1][2], r.Fine[2][4])
	assert.Equal(t, r.Coarse[1][2], r.Fine[3][5])
	assert.Equal(t, r.Coarse, r.Restricted, "restriction of a prolongation is the identity")

	_, err = prolongRestrict(context.Background(), 0)
	assert.Error(t, err)
}

func TestProlongCommand(t *testing.T) {
	out, err := run(t, "prolong", "--size", "2", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "restricted:")
}
