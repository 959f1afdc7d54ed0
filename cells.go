package kspace

import "fmt"

// Cells is an ordered, possibly empty collection of 1-D cells sharing one
// level shift.
//
// Duplicates are kept: Union is a concatenation and callers that need a
// proper set call Unique. Every navigation method of Cell is broadcast:
// it is applied to each element and the results are concatenated.
// The zero value is an empty set, compatible with any level shift.
type Cells struct {
	Tuple[Cell]
}

// NewCells returns a set holding a copy of cells.
// It returns ErrShapeMismatch when the cells differ in level shift.
func NewCells(cells ...Cell) (Cells, error) {
	if err := checkLevels(cells); err != nil {
		return Cells{}, err
	}
	return cellsOf(cells...), nil
}

// cellsOf copies cells into a set without checking their level shifts.
func cellsOf(cells ...Cell) Cells {
	return Cells{Tuple: NewTuple(cells...)}
}

func checkLevels(cells []Cell) error {
	for i, c := range cells {
		if c.level != cells[0].level {
			return fmt.Errorf("%w: cell %d has level shift %d, cell 0 has %d",
				ErrShapeMismatch, i, c.level, cells[0].level)
		}
	}
	return nil
}

// Shape returns the level shift shared by the elements, or ok == false for
// an empty set.
func (s Cells) Shape() (levelShift int, ok bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.items[0].level, true
}

// compatible checks that c can join s.
func (s Cells) compatible(c Cell) error {
	if s.IsEmpty() {
		return nil
	}
	return checkLevels([]Cell{s.items[0], c})
}

// Union returns the elements of s followed by the elements of o.
// It returns ErrShapeMismatch when both sets are non-empty and differ in
// level shift.
func (s Cells) Union(o Cells) (Cells, error) {
	if !o.IsEmpty() {
		if err := s.compatible(o.items[0]); err != nil {
			return Cells{}, err
		}
	}
	return Cells{Tuple: concat(s.Tuple, o.Tuple)}, nil
}

// With returns s with c appended. It returns ErrShapeMismatch when c does
// not have the level shift of s.
func (s Cells) With(c Cell) (Cells, error) {
	if err := s.compatible(c); err != nil {
		return Cells{}, err
	}
	return s.with(c), nil
}

// with appends c without checking its level shift.
func (s Cells) with(c Cell) Cells {
	return Cells{Tuple: concat(s.Tuple, Tuple[Cell]{items: []Cell{c}})}
}

// Prepend returns s with c inserted first. It returns ErrShapeMismatch when
// c does not have the level shift of s.
func (s Cells) Prepend(c Cell) (Cells, error) {
	if err := s.compatible(c); err != nil {
		return Cells{}, err
	}
	return Cells{Tuple: concat(Tuple[Cell]{items: []Cell{c}}, s.Tuple)}, nil
}

// Difference keeps the elements of s that are absent from o.
// Cells compare on parity, index shift and level shift.
func (s Cells) Difference(o Cells) Cells {
	return Cells{Tuple: difference(s.Tuple, o.Tuple)}
}

// Without removes every occurrence of c.
func (s Cells) Without(c Cell) Cells {
	return s.Difference(cellsOf(c))
}

// Unique removes duplicates, keeping first occurrences in order.
func (s Cells) Unique() Cells {
	return Cells{Tuple: s.Tuple.Unique()}
}

// Equal reports whether both sets hold equal cells in the same order.
func (s Cells) Equal(o Cells) bool {
	return s.Tuple.Equal(o.Tuple)
}

// IndexShift returns the index shift of every element.
func (s Cells) IndexShift() []int {
	return Map(s.Tuple, Cell.IndexShift)
}

// flatMap applies fn to every element and concatenates the results.
func (s Cells) flatMap(fn func(Cell) Cells) Cells {
	parts := make([]Tuple[Cell], len(s.items))
	for i, c := range s.items {
		parts[i] = fn(c).Tuple
	}
	return Cells{Tuple: concat(parts...)}
}

// Next broadcasts Cell.Next.
func (s Cells) Next(steps int) Cells {
	return s.flatMap(func(c Cell) Cells { return cellsOf(c.Next(steps)) })
}

// Prev broadcasts Cell.Prev.
func (s Cells) Prev(steps int) Cells {
	return s.flatMap(func(c Cell) Cells { return cellsOf(c.Prev(steps)) })
}

// Incident broadcasts Cell.Incident.
func (s Cells) Incident(steps int) Cells {
	return s.flatMap(func(c Cell) Cells { return cellsOf(c.Incident(steps)) })
}

// LowerIncident broadcasts Cell.LowerIncident.
func (s Cells) LowerIncident() Cells {
	return s.flatMap(Cell.LowerIncident)
}

// UpperIncident broadcasts Cell.UpperIncident.
func (s Cells) UpperIncident() Cells {
	return s.flatMap(Cell.UpperIncident)
}

// ProperNeighborhood broadcasts Cell.ProperNeighborhood.
func (s Cells) ProperNeighborhood(distance, step int) Cells {
	return s.flatMap(func(c Cell) Cells { return c.ProperNeighborhood(distance, step) })
}

// Neighborhood broadcasts Cell.Neighborhood.
func (s Cells) Neighborhood(distance, step int) Cells {
	return s.flatMap(func(c Cell) Cells { return c.Neighborhood(distance, step) })
}

// Up broadcasts Cell.Up.
func (s Cells) Up(levels int) Cells {
	return s.flatMap(func(c Cell) Cells { return c.Up(levels) })
}

// Down broadcasts Cell.Down.
func (s Cells) Down(levels int) Cells {
	return s.flatMap(func(c Cell) Cells { return c.Down(levels) })
}

// ShiftIndex applies every element to i and returns one index per element.
func (s Cells) ShiftIndex(i int) []int {
	return Map(s.Tuple, func(c Cell) int { return c.ShiftIndex(i) })
}

// ShiftInterval applies every element to i and returns one interval per element.
func (s Cells) ShiftInterval(i Interval) []Interval {
	return Map(s.Tuple, func(c Cell) Interval { return c.ShiftInterval(i) })
}

// String returns a diagnostic representation of the set.
func (s Cells) String() string {
	return s.format("Cells")
}
