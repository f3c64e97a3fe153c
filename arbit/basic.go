package arbit

import (
	"github.com/kratuvid/simple-calculator/unit"
)

// GrowFixed extends the fixed part by count units without changing its value.
func (n *Number) GrowFixed(count int) {
	var fill unit.Unit
	if n.IsNegative() {
		fill = unit.Max
	}

	n.fixed.Grow(count, fill)
}

// ShrinkFixed drops the count most significant fixed units.
func (n *Number) ShrinkFixed(count int) {
	n.fixed.Shrink(count)
}

// GrowDecimal appends count zero units to the far end of the decimal part.
func (n *Number) GrowDecimal(count int) {
	n.decimal.Grow(count, 0)
}

// ShrinkDecimal drops the count decimal units farthest from the point.
func (n *Number) ShrinkDecimal(count int) {
	n.decimal.Shrink(count)
}

// Zero sets n to zero. The fixed part becomes exactly one unit and a
// non-empty decimal part collapses to one unit.
func (n *Number) Zero() {
	switch l := n.fixed.Len(); {
	case l > 1:
		n.fixed.Shrink(l - 1)
	case l == 0:
		n.fixed.Grow(1, 0)
	}
	n.fixed.Set(0, 0)

	if l := n.decimal.Len(); l > 0 {
		if l > 1 {
			n.decimal.Shrink(l - 1)
		}
		n.decimal.Set(0, 0)
	}
}

// IsZero returns true if every unit of both parts is zero.
func (n *Number) IsZero() bool {
	for _, u := range n.fixed.Units() {
		if u != 0 {
			return false
		}
	}

	for _, u := range n.decimal.Units() {
		if u != 0 {
			return false
		}
	}

	return true
}

// IsNegative returns true if the top fixed unit has its sign bit set. An
// empty fixed part is not negative.
func (n *Number) IsNegative() bool {
	if n.fixed.Len() == 0 {
		return false
	}

	return unit.Negative(n.fixed.Top())
}

// ShiftRightUnits moves the count least significant fixed units to the
// front of the decimal part. When at least one fixed unit remains the value
// is divided by 2^(32*count); moving every fixed unit drops the sign. It
// does nothing when count is zero or larger than the fixed part. Any scale
// bookkeeping is up to the caller.
func (n *Number) ShiftRightUnits(count int) {
	if count <= 0 || count > n.fixed.Len() {
		return
	}

	old := n.decimal.Len()
	n.decimal.Grow(count, 0)

	decimal := n.decimal.Units()
	fixed := n.fixed.Units()

	// Work from the far end so nothing is overwritten before it moves.
	for i := old - 1; i >= 0; i-- {
		decimal[i+count] = decimal[i]
	}

	for i := 0; i < count; i++ {
		decimal[count-1-i] = fixed[i]
	}

	copy(fixed, fixed[count:])

	n.fixed.Shrink(count)
}

// Canonicalize drops redundant top units from both parts.
func (n *Number) Canonicalize() {
	n.canonicalize(&n.fixed, true)
	n.canonicalize(&n.decimal, false)
}

func (n *Number) canonicalize(s *unit.Sequence, signed bool) {
	units := s.Units()
	neg := n.IsNegative()

	var check unit.Unit
	if signed && neg {
		check = unit.Max
	}

	i := len(units) - 1
	for ; i >= 1; i-- {
		if units[i] != check {
			break
		}

		// Dropping the unit must not flip the sign seen at the new top.
		if signed && unit.Negative(units[i-1]) != neg {
			break
		}
	}

	if by := len(units) - 1 - i; by > 0 {
		s.Shrink(by)
	}
}

// Bytes is the storage size of the fixed part.
func (n *Number) Bytes() int {
	return n.fixed.Len() * unit.Size
}

// BytesDecimal is the storage size of the decimal part.
func (n *Number) BytesDecimal() int {
	return n.decimal.Len() * unit.Size
}

// BytesTotal is the storage size of both parts.
func (n *Number) BytesTotal() int {
	return n.Bytes() + n.BytesDecimal()
}
