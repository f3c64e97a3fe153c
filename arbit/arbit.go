package arbit

import (
	"github.com/zeebo/errs"

	"github.com/kratuvid/simple-calculator/unit"
)

// Error classes.
var (
	Error          = errs.Class("arbit")
	ErrParse       = errs.Class("arbit parse")
	ErrUnsupported = errs.Class("arbit unsupported")
	ErrDivision    = errs.Class("arbit division")
)

// Number is an arbitrary precision signed number.
type Number struct {
	fixed   unit.Sequence
	decimal unit.Sequence
}

// New returns a canonical zero.
func New() *Number {
	n := &Number{}
	n.Zero()

	return n
}

// NewInt returns a number holding v.
func NewInt(v int64) *Number {
	return new(Number).SetInt64(v)
}

// FromUnits returns a number with copies of the given parts exactly as
// provided (no canonicalization).
func FromUnits(fixed, decimal []unit.Unit) *Number {
	return &Number{
		fixed:   unit.NewSequence(fixed...),
		decimal: unit.NewSequence(decimal...),
	}
}

// SetInt64 sets n to v and returns n.
func (n *Number) SetInt64(v int64) *Number {
	n.fixed = unit.NewSequence(unit.Unit(v), unit.Unit(uint64(v)>>32))
	n.decimal = unit.Sequence{}
	n.Canonicalize()

	return n
}

// Set sets n to a copy of x and returns n.
func (n *Number) Set(x *Number) *Number {
	if n != x {
		n.fixed = x.fixed.Clone()
		n.decimal = x.decimal.Clone()
	}

	return n
}

// Clone returns an independent copy of n.
func (n *Number) Clone() *Number {
	return new(Number).Set(n)
}

// Fixed returns a copy of the fixed part.
func (n *Number) Fixed() []unit.Unit {
	return append([]unit.Unit{}, n.fixed.Units()...)
}

// Decimal returns a copy of the decimal part.
func (n *Number) Decimal() []unit.Unit {
	return append([]unit.Unit{}, n.decimal.Units()...)
}
