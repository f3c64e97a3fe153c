package arbit

import (
	"encoding/binary"
	"math/big"

	"github.com/kratuvid/simple-calculator/unit"
)

// SetBig sets n to the integer i and returns n.
func (n *Number) SetBig(i *big.Int) *Number {
	n.setMagnitude(bigToUnits(i), 0, i.Sign() < 0)

	return n
}

// Big returns the fixed part as an integer. Since the decimal part is never
// negative this is the floor of n.
func (n *Number) Big() *big.Int {
	return signedBig(n.fixed.Units())
}

// Rat returns the exact value of n.
func (n *Number) Rat() *big.Rat {
	d := n.decimal.Len()
	den := new(big.Int).Lsh(big.NewInt(1), uint(unit.Bits*d))

	return new(big.Rat).SetFrac(n.scaled(d), den)
}

// scaled returns n * B^d as an integer, using the first d decimal units.
// Units beyond d are dropped.
func (n *Number) scaled(d int) *big.Int {
	combined := make([]unit.Unit, 0, d+n.fixed.Len())
	for j := d - 1; j >= 0; j-- {
		combined = append(combined, n.decimal.At(j))
	}
	combined = append(combined, n.fixed.Units()...)

	if n.fixed.Len() == 0 {
		// Without a sign unit the fraction alone is unsigned.
		return unitsToBig(combined)
	}

	return signedBig(combined)
}

// signedBig reads z as a little-endian two's complement integer.
func signedBig(z []unit.Unit) *big.Int {
	i := unitsToBig(z)

	if len(z) > 0 && unit.Negative(z[len(z)-1]) {
		i.Sub(i, new(big.Int).Lsh(big.NewInt(1), uint(unit.Bits*len(z))))
	}

	return i
}

// unitsToBig reads z as a little-endian unsigned integer.
func unitsToBig(z []unit.Unit) *big.Int {
	buf := make([]byte, unit.Size*len(z))
	for i, u := range z {
		binary.BigEndian.PutUint32(buf[unit.Size*(len(z)-1-i):], u)
	}

	return new(big.Int).SetBytes(buf)
}

// bigToUnits returns |i| as little-endian units without leading zeros.
func bigToUnits(i *big.Int) []unit.Unit {
	data := i.Bytes()

	if pad := len(data) % unit.Size; pad != 0 {
		data = append(make([]byte, unit.Size-pad), data...)
	}

	z := make([]unit.Unit, len(data)/unit.Size)
	for k := range z {
		z[k] = binary.BigEndian.Uint32(data[len(data)-unit.Size*(k+1):])
	}

	return z
}
