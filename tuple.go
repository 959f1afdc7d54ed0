package kspace

import (
	"iter"
	"strings"
)

// Element is a cell that can be stored in a Tuple: a Cell or a CellND.
type Element[T any] interface {
	// Equal reports whether both cells have the same parity, index shift
	// and level shift along every axis.
	Equal(T) bool

	// Size returns the dimension of the space the cell lives in.
	Size() int

	// LevelShift returns the level shift relatively to the reference cell.
	LevelShift() int

	String() string
}

// Tuple is a fixed-size ordered collection of cells of one kind.
//
// A Tuple never changes after creation: operations that add or remove
// elements return a new Tuple with its own backing array.
// The zero value is an empty tuple.
type Tuple[T Element[T]] struct {
	items []T
}

// NewTuple returns a tuple holding a copy of items.
func NewTuple[T Element[T]](items ...T) Tuple[T] {
	if len(items) == 0 {
		return Tuple[T]{}
	}
	return Tuple[T]{items: append([]T(nil), items...)}
}

// Size returns the number of elements.
func (t Tuple[T]) Size() int { return len(t.items) }

// IsEmpty reports whether the tuple has no element.
func (t Tuple[T]) IsEmpty() bool { return len(t.items) == 0 }

// Get returns the i-th element. It panics if i is out of range.
func (t Tuple[T]) Get(i int) T { return t.items[i] }

// Items returns a copy of the elements.
func (t Tuple[T]) Items() []T {
	return append([]T(nil), t.items...)
}

// All returns an iterator over positions and elements.
func (t Tuple[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := range t.items {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ForEach calls fn on every element, left to right.
func (t Tuple[T]) ForEach(fn func(T)) {
	for _, c := range t.items {
		fn(c)
	}
}

// Enumerate calls fn on every element with its position, left to right.
func (t Tuple[T]) Enumerate(fn func(i int, c T)) {
	for i, c := range t.items {
		fn(i, c)
	}
}

// Has reports whether an element equal to x is present. O(N).
func (t Tuple[T]) Has(x T) bool {
	for _, c := range t.items {
		if c.Equal(x) {
			return true
		}
	}
	return false
}

// Unique removes duplicated elements, keeping the first occurrence of each
// and the relative order of the survivors. O(N²).
func (t Tuple[T]) Unique() Tuple[T] {
	out := make([]T, 0, len(t.items))
	for i, c := range t.items {
		if !(Tuple[T]{items: t.items[:i]}).Has(c) {
			out = append(out, c)
		}
	}
	return tupleOf(out)
}

// Equal reports whether both tuples hold equal elements in the same order.
func (t Tuple[T]) Equal(o Tuple[T]) bool {
	if len(t.items) != len(o.items) {
		return false
	}
	for i := range t.items {
		if !t.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

// format writes name{e0, e1, ...}.
func (t Tuple[T]) format(name string) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('{')
	for i, c := range t.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// String returns a diagnostic representation of the tuple.
func (t Tuple[T]) String() string {
	return t.format("Tuple")
}

// Map calls fn on every element and packs the results positionally.
func Map[T Element[T], R any](t Tuple[T], fn func(T) R) []R {
	out := make([]R, len(t.items))
	for i, c := range t.items {
		out[i] = fn(c)
	}
	return out
}

// MapIndexed is Map with the element position passed to fn.
func MapIndexed[T Element[T], R any](t Tuple[T], fn func(int, T) R) []R {
	out := make([]R, len(t.items))
	for i, c := range t.items {
		out[i] = fn(i, c)
	}
	return out
}

// Apply calls fn once with all elements as its arguments.
func Apply[T Element[T], R any](t Tuple[T], fn func(cells ...T) R) R {
	return fn(t.Items()...)
}

// concat returns the elements of all tuples in order, in a new backing array.
func concat[T Element[T]](tuples ...Tuple[T]) Tuple[T] {
	n := 0
	for _, t := range tuples {
		n += len(t.items)
	}
	if n == 0 {
		return Tuple[T]{}
	}
	out := make([]T, 0, n)
	for _, t := range tuples {
		out = append(out, t.items...)
	}
	return Tuple[T]{items: out}
}

// difference keeps the elements of lhs that are absent from rhs.
func difference[T Element[T]](lhs, rhs Tuple[T]) Tuple[T] {
	out := make([]T, 0, len(lhs.items))
	for _, c := range lhs.items {
		if !rhs.Has(c) {
			out = append(out, c)
		}
	}
	return tupleOf(out)
}

// tupleOf wraps items without copying; an empty slice becomes the zero tuple.
func tupleOf[T Element[T]](items []T) Tuple[T] {
	if len(items) == 0 {
		return Tuple[T]{}
	}
	return Tuple[T]{items: items}
}
