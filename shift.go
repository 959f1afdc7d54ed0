package kspace

// Coord is a coordinate along one axis that a cell can be shifted onto:
// a single index or an interval of indices.
type Coord interface {
	int | Interval
}

// shiftLevel multiplies i by 2^levels, or floor-divides it for negative levels.
func shiftLevel(i, levels int) int {
	if levels >= 0 {
		return i << uint(levels)
	}
	return i >> uint(-levels)
}

// shiftCoord applies a level change then a translation to x.
func shiftCoord[X Coord](x X, indexShift, levelShift int) X {
	switch v := any(x).(type) {
	case int:
		return any(shiftLevel(v, levelShift) + indexShift).(X)
	case Interval:
		return any(v.Apply(indexShift, levelShift)).(X)
	}
	panic("kspace: unreachable coordinate type")
}

// Shift applies the index and level shift of c to x.
//
// Example:
//
//	c := kspace.NewCell(true, 0, 1)
//	kspace.Shift(c, kspace.Iv(10, 17)) // [20,33[:2
func Shift[X Coord](c Cell, x X) X {
	return shiftCoord(x, c.index, c.level)
}

// ShiftFunc calls fn with the shifted level and coordinate and returns its
// result unchanged.
//
// When R is a pointer into caller storage, the pointer is forwarded as is,
// which is how stencils write in place:
//
//	v := kspace.ShiftFunc(c, func(level, i int) *float64 { return &u[level][i] }, level, i)
//	*v = 0
func ShiftFunc[R any, X Coord](c Cell, fn func(level int, x X) R, level int, x X) R {
	return fn(level+c.level, Shift(c, x))
}

// ShiftFuncEach calls fn once per element of s, left to right, and returns
// the results in element order.
func ShiftFuncEach[R any, X Coord](s Cells, fn func(level int, x X) R, level int, x X) []R {
	return Map(s.Tuple, func(c Cell) R {
		return ShiftFunc(c, fn, level, x)
	})
}
