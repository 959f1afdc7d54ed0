package kspace

import (
	"math/bits"
	"strings"
)

// IsOpen reports whether a cell of the given topology is open along direction.
func IsOpen(topology uint, direction int) bool {
	return (topology>>uint(direction))&1 != 0
}

// DecomposeTopology returns the parity of each of the dimension axes,
// true for open.
func DecomposeTopology(dimension int, topology uint) []bool {
	out := make([]bool, dimension)
	for i := range out {
		out[i] = IsOpen(topology, i)
	}
	return out
}

// CellDimension returns the number of open axes among the first dimension axes.
func CellDimension(dimension int, topology uint) int {
	return bits.OnesCount(topology & (1<<uint(dimension) - 1))
}

// TopologyString formats a topology as 0b followed by one digit per axis,
// axis 0 first. The 2-D edge open along x is 0b10.
func TopologyString(dimension int, topology uint) string {
	var sb strings.Builder
	sb.Grow(2 + dimension)
	sb.WriteString("0b")
	for i := range dimension {
		if IsOpen(topology, i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
