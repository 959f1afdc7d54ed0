package kspace

import "fmt"

// MeshCell locates one value of a mesh: a cell of the given topology at a
// refinement level, with one index per axis.
//
// MeshCell belongs to the mesh that owns the values. kspace only computes
// new locations from it and never reads or stores field data.
type MeshCell struct {
	Topology uint
	Level    int
	Indices  []int
}

// MeshInterval locates a row of mesh values: an interval along axis 0 and
// one index per remaining axis.
type MeshInterval struct {
	Topology uint
	Level    int
	Interval Interval
	Indices  []int
}

func (c CellND) checkOrigin(topology uint) error {
	if topology != c.origin {
		return fmt.Errorf("%w: mesh value has topology %s, cell was derived from %s",
			ErrIncompatibleTopology, TopologyString(c.dim, topology), TopologyString(c.dim, c.origin))
	}
	return nil
}

// ShiftMeshCell moves m by the shifts of c. The result is the cell of c's
// topology at level m.Level+LevelShift().
//
// m must have the topology of the reference c was derived from
// (ErrIncompatibleTopology) and one index per axis (ErrArityMismatch).
func (c CellND) ShiftMeshCell(m MeshCell) (MeshCell, error) {
	if err := c.checkOrigin(m.Topology); err != nil {
		return MeshCell{}, err
	}
	indices, err := c.Shift(m.Indices...)
	if err != nil {
		return MeshCell{}, err
	}
	return MeshCell{Topology: c.Topology(), Level: m.Level + c.LevelShift(), Indices: indices}, nil
}

// ShiftMeshInterval is ShiftMeshCell for a row of values: the interval is
// shifted along axis 0, Indices along the remaining axes.
func (c CellND) ShiftMeshInterval(m MeshInterval) (MeshInterval, error) {
	if err := c.checkOrigin(m.Topology); err != nil {
		return MeshInterval{}, err
	}
	i, rest, err := c.ShiftInterval(m.Interval, m.Indices...)
	if err != nil {
		return MeshInterval{}, err
	}
	return MeshInterval{Topology: c.Topology(), Level: m.Level + c.LevelShift(), Interval: i, Indices: rest}, nil
}

// ShiftMeshCell moves m by every element and returns one location per element.
// It stops at the first error.
func (s CellsND) ShiftMeshCell(m MeshCell) ([]MeshCell, error) {
	out := make([]MeshCell, 0, s.Size())
	for _, c := range s.items {
		r, err := c.ShiftMeshCell(m)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ShiftMeshInterval moves m by every element and returns one row per element.
// It stops at the first error.
func (s CellsND) ShiftMeshInterval(m MeshInterval) ([]MeshInterval, error) {
	out := make([]MeshInterval, 0, s.Size())
	for _, c := range s.items {
		r, err := c.ShiftMeshInterval(m)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
