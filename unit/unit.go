package unit

import "math"

// Unit is one limb of a number.
type Unit = uint32

const (
	// Bits is the width of a unit.
	Bits = 32

	// Size is the width of a unit in bytes.
	Size = Bits / 8

	// Max is the all-one-bits pattern (-1 in two's complement).
	Max Unit = math.MaxUint32

	// SignBit is the most significant bit of a unit. Alone it is the most
	// negative pattern a unit can hold.
	SignBit Unit = 1 << (Bits - 1)
)

// Negative returns true if the sign bit of u is set.
func Negative(u Unit) bool {
	return u>>(Bits-1) == 1
}

// Fill returns the sign extension pattern for a sequence whose top unit is
// u.
func Fill(u Unit) Unit {
	if Negative(u) {
		return Max
	}

	return 0
}
