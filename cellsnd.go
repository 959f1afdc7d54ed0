package kspace

import "fmt"

// CellsND is an ordered, possibly empty collection of N-D cells sharing
// one space dimension and one level shift.
//
// Like Cells, duplicates are kept and every navigation method of CellND is
// broadcast over the elements. The zero value is an empty set, compatible
// with a set of any shape.
type CellsND struct {
	Tuple[CellND]
}

// NewCellsND returns a set holding a copy of cells.
// It returns ErrShapeMismatch when the cells differ in space dimension or
// level shift.
func NewCellsND(cells ...CellND) (CellsND, error) {
	if err := checkShape(cells); err != nil {
		return CellsND{}, err
	}
	return CellsND{Tuple: NewTuple(cells...)}, nil
}

func checkShape(cells []CellND) error {
	for i, c := range cells {
		if c.Size() != cells[0].Size() {
			return fmt.Errorf("%w: cell %d has dimension %d, cell 0 has %d",
				ErrShapeMismatch, i, c.Size(), cells[0].Size())
		}
		if c.LevelShift() != cells[0].LevelShift() {
			return fmt.Errorf("%w: cell %d has level shift %d, cell 0 has %d",
				ErrShapeMismatch, i, c.LevelShift(), cells[0].LevelShift())
		}
	}
	return nil
}

// Shape returns the space dimension and level shift shared by the
// elements, or ok == false for an empty set.
func (s CellsND) Shape() (size, levelShift int, ok bool) {
	if s.IsEmpty() {
		return 0, 0, false
	}
	return s.items[0].Size(), s.items[0].LevelShift(), true
}

// Union returns the elements of s followed by the elements of o.
// It returns ErrShapeMismatch when both sets are non-empty and differ in
// shape.
func (s CellsND) Union(o CellsND) (CellsND, error) {
	if !s.IsEmpty() && !o.IsEmpty() {
		if err := checkShape([]CellND{s.items[0], o.items[0]}); err != nil {
			return CellsND{}, err
		}
	}
	return CellsND{Tuple: concat(s.Tuple, o.Tuple)}, nil
}

// With returns s with c appended. It returns ErrShapeMismatch when c does
// not have the shape of s.
func (s CellsND) With(c CellND) (CellsND, error) {
	if !s.IsEmpty() {
		if err := checkShape([]CellND{s.items[0], c}); err != nil {
			return CellsND{}, err
		}
	}
	return s.with(c), nil
}

// with appends c without checking its shape.
func (s CellsND) with(c CellND) CellsND {
	return CellsND{Tuple: concat(s.Tuple, Tuple[CellND]{items: []CellND{c}})}
}

// Difference keeps the elements of s that are absent from o.
func (s CellsND) Difference(o CellsND) CellsND {
	return CellsND{Tuple: difference(s.Tuple, o.Tuple)}
}

// Without removes every occurrence of c.
func (s CellsND) Without(c CellND) CellsND {
	return CellsND{Tuple: difference(s.Tuple, Tuple[CellND]{items: []CellND{c}})}
}

// Unique removes duplicates, keeping first occurrences in order.
func (s CellsND) Unique() CellsND {
	return CellsND{Tuple: s.Tuple.Unique()}
}

// Equal reports whether both sets hold equal cells in the same order.
func (s CellsND) Equal(o CellsND) bool {
	return s.Tuple.Equal(o.Tuple)
}

// Topology returns the topology of every element.
func (s CellsND) Topology() []uint {
	return Map(s.Tuple, CellND.Topology)
}

// IndexShift returns the per-axis index shift of every element.
func (s CellsND) IndexShift() [][]int {
	return Map(s.Tuple, CellND.IndexShift)
}

func (s CellsND) flatMap(fn func(CellND) CellsND) CellsND {
	parts := make([]Tuple[CellND], len(s.items))
	for i, c := range s.items {
		parts[i] = fn(c).Tuple
	}
	return CellsND{Tuple: concat(parts...)}
}

func (s CellsND) mapEach(fn func(CellND) CellND) CellsND {
	return CellsND{Tuple: tupleOf(Map(s.Tuple, fn))}
}

// Next broadcasts CellND.Next.
func (s CellsND) Next(axis, steps int) CellsND {
	return s.mapEach(func(c CellND) CellND { return c.Next(axis, steps) })
}

// Prev broadcasts CellND.Prev.
func (s CellsND) Prev(axis, steps int) CellsND {
	return s.mapEach(func(c CellND) CellND { return c.Prev(axis, steps) })
}

// Incident broadcasts CellND.Incident.
func (s CellsND) Incident(axis, steps int) CellsND {
	return s.mapEach(func(c CellND) CellND { return c.Incident(axis, steps) })
}

// LowerIncident broadcasts CellND.LowerIncident.
func (s CellsND) LowerIncident() CellsND {
	return s.flatMap(CellND.LowerIncident)
}

// UpperIncident broadcasts CellND.UpperIncident.
func (s CellsND) UpperIncident() CellsND {
	return s.flatMap(CellND.UpperIncident)
}

// ProperNeighborhood broadcasts CellND.ProperNeighborhood.
func (s CellsND) ProperNeighborhood(distance int) CellsND {
	return s.flatMap(func(c CellND) CellsND { return c.ProperNeighborhood(distance) })
}

// Neighborhood broadcasts CellND.Neighborhood.
func (s CellsND) Neighborhood(distance int) CellsND {
	return s.flatMap(func(c CellND) CellsND { return c.Neighborhood(distance) })
}

// Up broadcasts CellND.Up.
func (s CellsND) Up(levels int) CellsND {
	return s.flatMap(func(c CellND) CellsND { return c.Up(levels) })
}

// Down broadcasts CellND.Down.
func (s CellsND) Down(levels int) CellsND {
	return s.flatMap(func(c CellND) CellsND { return c.Down(levels) })
}

// checkArity validates an index count against the shape of s.
// Any count is accepted by an empty set.
func (s CellsND) checkArity(n int) error {
	if s.IsEmpty() {
		return nil
	}
	return s.items[0].checkArity(n)
}

// Shift applies every element to index and returns one index list per
// element, in element order.
func (s CellsND) Shift(index ...int) ([][]int, error) {
	if err := s.checkArity(len(index)); err != nil {
		return nil, err
	}
	return Map(s.Tuple, func(c CellND) []int {
		out, _ := c.Shift(index...)
		return out
	}), nil
}

// String returns a diagnostic representation of the set.
func (s CellsND) String() string {
	return s.format("CellsND")
}

// ShiftFuncEachND calls fn once per element, left to right, with the
// shifted level and indices, and returns the results in element order.
func ShiftFuncEachND[R any](s CellsND, fn func(level int, index []int) R, level int, index ...int) ([]R, error) {
	if err := s.checkArity(len(index)); err != nil {
		return nil, err
	}
	return Map(s.Tuple, func(c CellND) R {
		r, _ := ShiftFuncND(c, fn, level, index...)
		return r
	}), nil
}

// ShiftFuncIntervalEachND is ShiftFuncEachND with an interval along axis 0.
func ShiftFuncIntervalEachND[R any](s CellsND, fn func(level int, i Interval, rest []int) R, level int, i Interval, rest ...int) ([]R, error) {
	if err := s.checkArity(1 + len(rest)); err != nil {
		return nil, err
	}
	return Map(s.Tuple, func(c CellND) R {
		r, _ := ShiftFuncIntervalND(c, fn, level, i, rest...)
		return r
	}), nil
}
