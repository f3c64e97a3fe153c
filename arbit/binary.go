package arbit

import (
	"math/big"

	"github.com/kratuvid/simple-calculator/decimal"
	"github.com/kratuvid/simple-calculator/unit"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The number is written as a decimal block with radix 2^32: the value is
// both parts read as one two's complement integer and the scale is minus
// the count of decimal units, not counting trailing zero units.
func (n *Number) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	d := n.decimal.Len()
	for d > 0 && n.decimal.At(d-1) == 0 {
		d--
	}

	return decimal.New(n.scaled(d), -int64(d)).MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Number) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	b := &decimal.Block{}

	err = b.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	scale, err := b.Exponent()
	if err != nil {
		return err
	}

	value := b.Value.Big()

	d := 0
	if scale > 0 {
		value.Lsh(value, uint(unit.Bits*scale))
	} else {
		d = int(-scale)
	}

	mag := bigToUnits(new(big.Int).Abs(value))
	if len(mag) < d {
		mag = append(mag, make([]unit.Unit, d-len(mag))...)
	}

	n.setMagnitude(mag, d, value.Sign() < 0)

	return nil
}
