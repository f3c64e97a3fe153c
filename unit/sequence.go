package unit

import "fmt"

// minRelease is the allocation below which Shrink never gives storage back.
const minRelease = 16

// Sequence is an owned, resizable run of units. The zero value is an empty
// sequence.
type Sequence struct {
	units []Unit
}

// NewSequence returns a sequence holding a copy of units. The allocation
// matches the length exactly.
func NewSequence(units ...Unit) Sequence {
	s := Sequence{
		units: make([]Unit, len(units)),
	}
	copy(s.units, units)

	return s
}

// Len is the logical length.
func (s *Sequence) Len() int {
	return len(s.units)
}

// Cap is the allocated length.
func (s *Sequence) Cap() int {
	return cap(s.units)
}

// At returns the unit at index i.
func (s *Sequence) At(i int) Unit {
	return s.units[i]
}

// Set replaces the unit at index i.
func (s *Sequence) Set(i int, u Unit) {
	s.units[i] = u
}

// Top returns the last unit. The sequence must not be empty.
func (s *Sequence) Top() Unit {
	return s.units[len(s.units)-1]
}

// Units returns the live units. Writes through the returned slice are
// visible in the sequence until the next Grow or Shrink.
func (s *Sequence) Units() []Unit {
	return s.units
}

// Clone returns an independent copy.
func (s *Sequence) Clone() Sequence {
	return NewSequence(s.units...)
}

// Grow appends n copies of fill.
func (s *Sequence) Grow(n int, fill Unit) {
	if n < 0 {
		panic(fmt.Sprintf("unit: grow by negative count %d", n))
	}

	for ; n > 0; n-- {
		s.units = append(s.units, fill)
	}
}

// Shrink drops the last n units. It panics unless 0 < n <= Len.
func (s *Sequence) Shrink(n int) {
	if n <= 0 || n > len(s.units) {
		panic(fmt.Sprintf("unit: shrink by %d of %d units", n, len(s.units)))
	}

	size := len(s.units) - n

	if cap(s.units) > minRelease && size*4 < cap(s.units) {
		units := make([]Unit, size, size*2)
		copy(units, s.units)
		s.units = units

		return
	}

	s.units = s.units[:size]
}
