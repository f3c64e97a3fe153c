package arbit

import (
	"math/big"
	"math/bits"

	"github.com/kratuvid/simple-calculator/unit"
)

// DivisionPrecision is the number of decimal units Div keeps.
const DivisionPrecision = 2

// Add sets n to n + x.
func (n *Number) Add(x *Number) {
	n.addSub(x, false)
}

// Sub sets n to n - x.
func (n *Number) Sub(x *Number) {
	n.addSub(x, true)
}

func (n *Number) addSub(x *Number, sub bool) {
	if x == n {
		x = x.Clone()
	}

	if d := x.decimal.Len() - n.decimal.Len(); d > 0 {
		n.GrowDecimal(d)
	}

	// Always one unit beyond the widest operand, carry or not, so the carry
	// never reaches the sign of the result. Canonicalize trims it when
	// unused.
	width := max(n.fixed.Len(), x.fixed.Len()) + 1
	n.GrowFixed(width - n.fixed.Len())

	op := bits.Add32
	if sub {
		op = bits.Sub32
	}

	var c unit.Unit

	decimal := n.decimal.Units()
	for j := len(decimal) - 1; j >= 0; j-- {
		var y unit.Unit
		if j < x.decimal.Len() {
			y = x.decimal.At(j)
		}
		decimal[j], c = op(decimal[j], y, c)
	}

	fill := unit.Unit(0)
	if x.IsNegative() {
		fill = unit.Max
	}

	fixed := n.fixed.Units()
	for i := range fixed {
		y := fill
		if i < x.fixed.Len() {
			y = x.fixed.At(i)
		}
		fixed[i], c = op(fixed[i], y, c)
	}

	n.Canonicalize()
}

// Neg sets n to -n.
func (n *Number) Neg() {
	if n.fixed.Len() == 0 {
		n.fixed.Grow(1, 0)
	}

	// The most negative pattern has no positive counterpart in the same
	// width.
	if n.fixed.Top() == unit.SignBit {
		n.GrowFixed(1)
	}

	c := unit.Unit(1)

	decimal := n.decimal.Units()
	for j := len(decimal) - 1; j >= 0; j-- {
		decimal[j], c = bits.Add32(^decimal[j], 0, c)
	}

	fixed := n.fixed.Units()
	for i := range fixed {
		fixed[i], c = bits.Add32(^fixed[i], 0, c)
	}

	n.Canonicalize()
}

// Mul sets n to n * x.
func (n *Number) Mul(x *Number) {
	a, da, aneg := n.magnitude()
	b, db, bneg := x.magnitude()

	n.setMagnitude(mulUnits(a, b), da+db, aneg != bneg)
}

// Div sets n to n / x truncated to DivisionPrecision decimal units.
func (n *Number) Div(x *Number) error {
	return n.Quo(x, DivisionPrecision)
}

// Quo sets n to n / x truncated toward zero to prec decimal units. On error
// n is unchanged.
func (n *Number) Quo(x *Number, prec int) (err error) {
	if prec < 0 {
		panic("arbit: negative division precision")
	}

	if x.IsZero() {
		return ErrDivision.New("division by zero")
	}

	a, da, aneg := n.magnitude()
	b, db, bneg := x.magnitude()

	// |n| * B^(prec+db) / (|x| * B^da) = |n / x| * B^prec
	num := new(big.Int).Lsh(unitsToBig(a), uint(unit.Bits*(prec+db)))
	den := new(big.Int).Lsh(unitsToBig(b), uint(unit.Bits*da))

	q := bigToUnits(num.Quo(num, den))
	if len(q) < prec {
		q = append(q, make([]unit.Unit, prec-len(q))...)
	}

	n.setMagnitude(q, prec, aneg != bneg)

	return nil
}

// magnitude returns |n| * B^d as little-endian units where d is the length
// of the decimal part.
func (n *Number) magnitude() (mag []unit.Unit, d int, neg bool) {
	d = n.decimal.Len()

	mag = make([]unit.Unit, 0, d+n.fixed.Len())
	for j := d - 1; j >= 0; j-- {
		mag = append(mag, n.decimal.At(j))
	}
	mag = append(mag, n.fixed.Units()...)

	neg = n.IsNegative()
	if neg {
		negateUnits(mag)
	}

	return mag, d, neg
}

// setMagnitude sets n to (-1)^neg * mag * B^-d. mag must hold at least d
// units.
func (n *Number) setMagnitude(mag []unit.Unit, d int, neg bool) {
	n.fixed = unit.NewSequence(mag...)
	n.fixed.Grow(1, 0)
	n.decimal = unit.Sequence{}

	n.ShiftRightUnits(d)

	if neg {
		n.Neg()
		return
	}

	n.Canonicalize()
}

func negateUnits(z []unit.Unit) {
	c := unit.Unit(1)
	for i := range z {
		z[i], c = bits.Add32(^z[i], 0, c)
	}
}

func mulUnits(x, y []unit.Unit) []unit.Unit {
	z := make([]unit.Unit, len(x)+len(y))

	for i, v := range y {
		if v == 0 {
			continue
		}
		z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, v)
	}

	return z
}

// addMulVVW sets z to z + x*y and returns the carry.
func addMulVVW(z, x []unit.Unit, y unit.Unit) (c unit.Unit) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		var cc unit.Unit
		z[i], cc = bits.Add32(z0, c, 0)
		c = z1 + cc
	}

	return c
}

// mulAddWWW returns x*y + c as a double unit.
func mulAddWWW(x, y, c unit.Unit) (z1, z0 unit.Unit) {
	z1, z0 = bits.Mul32(x, y)

	var cc unit.Unit
	z0, cc = bits.Add32(z0, c, 0)

	return z1 + cc, z0
}
