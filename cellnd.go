package kspace

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxDimension is the largest space dimension a CellND can describe.
const MaxDimension = 8

// CellND is a Khalimsky cell in a space of dimension 1 to MaxDimension,
// made of one Cell per axis sharing a common level shift.
//
// Every N-D property derives from the axes: the topology packs the parity of
// axis i at bit i, and the dimension counts the open axes. A CellND also
// remembers the topology of the reference cell it was derived from, which
// is the topology of the mesh values it can be shifted onto.
//
// CellND is an immutable fixed-size value and is freely copied. Two cells
// are the same cell when Equal reports true. The reference topology is not
// part of that identity: an edge reached from a face and the same edge made
// directly are equal, although == tells them apart. The zero value has no
// axis and is only useful as a placeholder.
type CellND struct {
	axes   [MaxDimension]Cell
	dim    int
	origin uint
}

// NewCellND composes the given axis cells into an N-D cell. The new cell is
// its own reference: Origin returns its topology.
//
// It returns ErrInvalidDimension for zero or more than MaxDimension axes and
// ErrShapeMismatch when the axes do not share one level shift.
func NewCellND(axes ...Cell) (CellND, error) {
	if len(axes) == 0 || len(axes) > MaxDimension {
		return CellND{}, fmt.Errorf("%w: %d axes, want 1 to %d", ErrInvalidDimension, len(axes), MaxDimension)
	}
	var c CellND
	for i, a := range axes {
		if a.level != axes[0].level {
			return CellND{}, fmt.Errorf("%w: axis %d has level shift %d, axis 0 has %d",
				ErrShapeMismatch, i, a.level, axes[0].level)
		}
		c.axes[i] = a
	}
	c.dim = len(axes)
	c.origin = c.Topology()
	return c, nil
}

// Make returns the reference cell of the given space dimension whose axis i
// is open when bit i of topology is set.
//
// In 2-D, topology 0 is a vertex, 1 an edge open along x, 2 an edge open
// along y and 3 a face.
func Make(dimension int, topology uint) (CellND, error) {
	if dimension < 1 || dimension > MaxDimension {
		return CellND{}, fmt.Errorf("%w: %d, want 1 to %d", ErrInvalidDimension, dimension, MaxDimension)
	}
	if topology>>uint(dimension) != 0 {
		return CellND{}, fmt.Errorf("%w: %#b in dimension %d", ErrInvalidTopology, topology, dimension)
	}
	c := CellND{dim: dimension, origin: topology}
	for i := range dimension {
		c.axes[i] = Reference(IsOpen(topology, i))
	}
	return c, nil
}

// MakeFull returns the reference cell of full dimension (open along every axis).
func MakeFull(dimension int) (CellND, error) {
	if dimension < 1 || dimension > MaxDimension {
		return CellND{}, fmt.Errorf("%w: %d, want 1 to %d", ErrInvalidDimension, dimension, MaxDimension)
	}
	return Make(dimension, 1<<uint(dimension)-1)
}

// MustMake is like Make but panics on error.
// It simplifies the construction of stencils from constant arguments.
func MustMake(dimension int, topology uint) CellND {
	c, err := Make(dimension, topology)
	if err != nil {
		panic(err)
	}
	return c
}

// Size returns the dimension of the space.
func (c CellND) Size() int { return c.dim }

// Axis returns the cell along axis i. It panics if i is out of range.
func (c CellND) Axis(i int) Cell {
	c.checkAxis(i)
	return c.axes[i]
}

// Axes returns a copy of the axis cells.
func (c CellND) Axes() []Cell {
	return append([]Cell(nil), c.axes[:c.dim]...)
}

// Topology packs the parity of axis i at bit i.
func (c CellND) Topology() uint {
	var t uint
	for i, a := range c.axes[:c.dim] {
		t |= a.Topology() << uint(i)
	}
	return t
}

// Dimension returns the number of open axes.
func (c CellND) Dimension() int {
	return bits.OnesCount(c.Topology())
}

// LevelShift returns the level shift shared by all axes.
func (c CellND) LevelShift() int {
	return c.axes[0].level
}

// IndexShift returns the index shift of every axis.
func (c CellND) IndexShift() []int {
	out := make([]int, c.dim)
	for i, a := range c.axes[:c.dim] {
		out[i] = a.index
	}
	return out
}

// Origin returns the topology of the reference cell c was derived from.
func (c CellND) Origin() uint { return c.origin }

// Equal reports whether c and o have the same space dimension and the same
// parity, index shift and level shift along every axis. The reference
// topology returned by Origin is ignored.
func (c CellND) Equal(o CellND) bool {
	// Axes beyond dim are always zero.
	return c.dim == o.dim && c.axes == o.axes
}

func (c CellND) checkAxis(i int) {
	if i < 0 || i >= c.dim {
		panic(fmt.Sprintf("kspace: axis %d out of range [0,%d)", i, c.dim))
	}
}

// product applies op to every axis and returns every combination of the
// per-axis results, axis 0 varying fastest.
func (c CellND) product(op func(axis int, a Cell) Cells) CellsND {
	result := []CellND{c}
	for axis := range c.dim {
		choices := op(axis, c.axes[axis]).items
		next := make([]CellND, 0, len(result)*len(choices))
		for _, a := range choices {
			for _, p := range result {
				p.axes[axis] = a
				next = append(next, p)
			}
		}
		result = next
	}
	return CellsND{Tuple: tupleOf(result)}
}

// along applies op to one axis at a time, the others held fixed, and
// concatenates the results axis after axis.
func (c CellND) along(op func(a Cell) Cells) CellsND {
	var out []CellND
	for axis := range c.dim {
		for _, a := range op(c.axes[axis]).items {
			p := c
			p.axes[axis] = a
			out = append(out, p)
		}
	}
	return CellsND{Tuple: tupleOf(out)}
}

// onAxis lifts a single-result axis operation to the product, identity on
// the other axes.
func (c CellND) onAxis(axis int, op func(a Cell) Cell) CellND {
	c.checkAxis(axis)
	return c.product(func(i int, a Cell) Cells {
		if i == axis {
			return cellsOf(op(a))
		}
		return cellsOf(a.Next(0))
	}).Get(0)
}

// Next moves forward by steps cells along axis, keeping the topology.
// It panics if axis is out of range.
func (c CellND) Next(axis, steps int) CellND {
	return c.onAxis(axis, func(a Cell) Cell { return a.Next(steps) })
}

// Prev moves backward by steps cells along axis, keeping the topology.
// It panics if axis is out of range.
func (c CellND) Prev(axis, steps int) CellND {
	return c.onAxis(axis, func(a Cell) Cell { return a.Prev(steps) })
}

// Incident moves by steps Khalimsky units along axis.
// It panics if axis is out of range.
func (c CellND) Incident(axis, steps int) CellND {
	return c.onAxis(axis, func(a Cell) Cell { return a.Incident(steps) })
}

// LowerIncident returns the cells of dimension Dimension()-1 bounding c,
// two per open axis.
func (c CellND) LowerIncident() CellsND {
	return c.along(Cell.LowerIncident)
}

// UpperIncident returns the cells of dimension Dimension()+1 bounded by c,
// two per closed axis.
func (c CellND) UpperIncident() CellsND {
	return c.along(Cell.UpperIncident)
}

// ProperNeighborhood returns the cells of the same topology within
// distance star steps of c, c excluded.
//
// Distance 1 is the axis-aligned star (two cells per axis). Larger
// distances dilate the previous ball by the star and remove c, which grows a
// diamond: 12 cells at distance 2 in 2-D.
func (c CellND) ProperNeighborhood(distance int) CellsND {
	switch {
	case distance <= 0:
		return CellsND{}
	case distance == 1:
		return c.along(func(a Cell) Cells { return a.ProperNeighborhood(1, 1) })
	default:
		return c.ProperNeighborhood(distance - 1).Neighborhood(1).Unique().Without(c)
	}
}

// Neighborhood returns ProperNeighborhood(distance) followed by c.
func (c CellND) Neighborhood(distance int) CellsND {
	return c.ProperNeighborhood(distance).with(c)
}

// Up refines every axis by levels levels and returns the 2^(Size*levels)
// finer cells covered by c. Negative levels coarsen.
func (c CellND) Up(levels int) CellsND {
	return c.product(func(_ int, a Cell) Cells { return a.Up(levels) })
}

// Down coarsens every axis by levels levels. Negative levels refine.
func (c CellND) Down(levels int) CellsND {
	return c.product(func(_ int, a Cell) Cells { return a.Down(levels) })
}

// Direction returns the axis of the i-th open axis of c.
//
// For an edge in 3-D, Direction(0) is the axis the edge spans.
func (c CellND) Direction(i int) (int, error) {
	return c.nth(i, true)
}

// OrthoDirection returns the axis of the i-th closed axis of c.
func (c CellND) OrthoDirection(i int) (int, error) {
	return c.nth(i, false)
}

func (c CellND) nth(i int, open bool) (int, error) {
	if i >= 0 {
		n := 0
		for axis, a := range c.axes[:c.dim] {
			if a.open != open {
				continue
			}
			if n == i {
				return axis, nil
			}
			n++
		}
	}
	kind := "closed"
	if open {
		kind = "open"
	}
	return 0, fmt.Errorf("%w: no %s axis #%d in %s", ErrDirectionOutOfRange, kind, i, TopologyString(c.dim, c.Topology()))
}

func (c CellND) checkArity(n int) error {
	if n != c.dim {
		return fmt.Errorf("%w: %d indices for a %d-dimensional cell", ErrArityMismatch, n, c.dim)
	}
	return nil
}

// Shift applies the shifts of each axis to the index at the same position.
// It returns ErrArityMismatch unless len(index) == Size().
func (c CellND) Shift(index ...int) ([]int, error) {
	if err := c.checkArity(len(index)); err != nil {
		return nil, err
	}
	out := make([]int, c.dim)
	for i, a := range c.axes[:c.dim] {
		out[i] = a.ShiftIndex(index[i])
	}
	return out, nil
}

// ShiftInterval shifts an interval along axis 0 and indices along the
// remaining axes. It returns ErrArityMismatch unless len(rest) == Size()-1.
func (c CellND) ShiftInterval(i Interval, rest ...int) (Interval, []int, error) {
	if err := c.checkArity(1 + len(rest)); err != nil {
		return Interval{}, nil, err
	}
	out := make([]int, len(rest))
	for k, j := range rest {
		out[k] = c.axes[k+1].ShiftIndex(j)
	}
	return c.axes[0].ShiftInterval(i), out, nil
}

// String returns a diagnostic representation of the cell.
func (c CellND) String() string {
	var sb strings.Builder
	sb.WriteString("CellND{")
	for i, a := range c.axes[:c.dim] {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// ShiftFuncND calls fn with the shifted level and indices and returns its
// result unchanged. A pointer result into caller storage is forwarded as is.
//
// Restricting four fine values onto their coarse parent:
//
//	for _, child := range kspace.MustMake(2, 3).Up(1).Items() {
//		v, _ := kspace.ShiftFuncND(child, u, level, i, j)
//		sum += *v
//	}
func ShiftFuncND[R any](c CellND, fn func(level int, index []int) R, level int, index ...int) (R, error) {
	shifted, err := c.Shift(index...)
	if err != nil {
		var zero R
		return zero, err
	}
	return fn(level+c.LevelShift(), shifted), nil
}

// ShiftFuncIntervalND is ShiftFuncND with an interval along axis 0.
func ShiftFuncIntervalND[R any](c CellND, fn func(level int, i Interval, rest []int) R, level int, i Interval, rest ...int) (R, error) {
	si, sr, err := c.ShiftInterval(i, rest...)
	if err != nil {
		var zero R
		return zero, err
	}
	return fn(level+c.LevelShift(), si, sr), nil
}
