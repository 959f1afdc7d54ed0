package kspace

import "fmt"

// Cell is a Khalimsky cell along one axis, described relatively to a
// reference cell.
//
// A Cell is not a coordinate itself: it describes how a coordinate of the
// reference cell is transformed to reach this cell (level change, then
// translation) and whether the reached cell is open or closed along the axis.
// Its Khalimsky coordinate relatively to the reference is 2*IndexShift+open.
//
// Cell is an immutable value type; navigation methods return new cells.
// Cells are comparable with ==.
type Cell struct {
	open  bool
	index int
	level int
}

// NewCell returns the cell with the given parity, index shift and level shift.
func NewCell(open bool, indexShift, levelShift int) Cell {
	return Cell{open: open, index: indexShift, level: levelShift}
}

// Reference returns the reference cell of the given parity (no shift).
func Reference(open bool) Cell {
	return Cell{open: open}
}

// IsOpen reports whether the cell is open along its axis.
func (c Cell) IsOpen() bool { return c.open }

// IndexShift returns the index shift relatively to the reference cell.
func (c Cell) IndexShift() int { return c.index }

// LevelShift returns the level shift relatively to the reference cell.
func (c Cell) LevelShift() int { return c.level }

// Topology returns 1 for an open cell and 0 for a closed one.
// It can be used to index a dedicated storage.
func (c Cell) Topology() uint {
	if c.open {
		return 1
	}
	return 0
}

// Dimension returns the dimension of the cell (1 if open, 0 if closed).
func (c Cell) Dimension() int { return int(c.Topology()) }

// Equal reports whether c and o are the same cell. It is the same as c == o.
func (c Cell) Equal(o Cell) bool { return c == o }

// Size returns the dimension of the space, always 1.
func (c Cell) Size() int { return 1 }

// Khalimsky returns the Khalimsky coordinate of the cell.
func (c Cell) Khalimsky() int {
	return 2*c.index + int(c.Topology())
}

// Next moves forward by steps cells of the same topology.
func (c Cell) Next(steps int) Cell {
	return Cell{open: c.open, index: c.index + steps, level: c.level}
}

// Prev moves backward by steps cells of the same topology.
func (c Cell) Prev(steps int) Cell {
	return Cell{open: c.open, index: c.index - steps, level: c.level}
}

// Incident moves by steps Khalimsky units, going through adjacent cells of
// the other topology. Odd steps flip the parity.
//
// Incident(1) and Incident(-1) undo each other; Incident is not an involution.
func (c Cell) Incident(steps int) Cell {
	k := c.Khalimsky() + steps
	// Arithmetic shift and mask give floor division and a non-negative
	// remainder for negative k.
	return Cell{open: k&1 == 1, index: k >> 1, level: c.level}
}

// LowerIncident returns the two closed cells bounding an open cell, or an
// empty set for a closed cell.
func (c Cell) LowerIncident() Cells {
	if !c.open {
		return Cells{}
	}
	return cellsOf(c.Incident(-1), c.Incident(1))
}

// UpperIncident returns the two open cells bounded by a closed cell, or an
// empty set for an open cell.
func (c Cell) UpperIncident() Cells {
	if c.open {
		return Cells{}
	}
	return cellsOf(c.Incident(-1), c.Incident(1))
}

// ProperNeighborhood returns the 2*distance cells of the same topology at
// multiples of step around c, c excluded, from the farthest previous cell to
// the farthest next cell.
func (c Cell) ProperNeighborhood(distance, step int) Cells {
	if distance <= 0 {
		return Cells{}
	}
	items := make([]Cell, 0, 2*distance)
	for d := distance; d >= 1; d-- {
		items = append(items, c.Prev(step*d))
	}
	for d := 1; d <= distance; d++ {
		items = append(items, c.Next(step*d))
	}
	return Cells{Tuple: Tuple[Cell]{items: items}}
}

// Neighborhood returns ProperNeighborhood(distance, step) followed by c.
func (c Cell) Neighborhood(distance, step int) Cells {
	return c.ProperNeighborhood(distance, step).with(c)
}

// Up refines c by levels levels. Each level doubles the number of cells:
// the result holds the 2^levels cells of the finer level covered by c, in
// increasing index order. Negative levels delegate to Down.
func (c Cell) Up(levels int) Cells {
	switch {
	case levels < 0:
		return c.Down(-levels)
	case levels == 0:
		return cellsOf(c)
	case levels == 1:
		return cellsOf(
			Cell{open: c.open, index: shiftLevel(c.index, 1), level: c.level + 1},
			Cell{open: c.open, index: shiftLevel(c.index, 1) + 1, level: c.level + 1},
		)
	default:
		return c.Up(1).Up(levels - 1)
	}
}

// Down coarsens c by levels levels. Coarsening is many-to-one and is not
// the inverse of Up. Negative levels delegate to Up.
func (c Cell) Down(levels int) Cells {
	if levels < 0 {
		return c.Up(-levels)
	}
	return cellsOf(Cell{open: c.open, index: shiftLevel(c.index, -levels), level: c.level - levels})
}

// ShiftIndex applies the shifts of c to a single index.
func (c Cell) ShiftIndex(i int) int {
	return shiftCoord(i, c.index, c.level)
}

// ShiftInterval applies the shifts of c to an interval.
func (c Cell) ShiftInterval(i Interval) Interval {
	return shiftCoord(i, c.index, c.level)
}

// String returns a diagnostic representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("Cell<topology=%d,index_shift=%d,level_shift=%d>", c.Topology(), c.index, c.level)
}
