package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number: a big-endian magnitude and a sign.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block holding i.
func FromBig(i *big.Int) *Block {
	return &Block{
		Value:    minimal(i),
		Negative: i.Sign() < 0,
	}
}

// Big returns the integer held by the block.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is shifted left by one bit and the sign is stored in bit 0
// (zigzag), big-endian.
func (b Block) MarshalBinary() (data []byte, err error) {
	z := new(big.Int).Lsh(new(big.Int).SetBytes(b.Value), 1)
	if b.Negative {
		z.SetBit(z, 0, 1)
	}

	return minimal(z), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	z := new(big.Int).SetBytes(data)

	b.Negative = z.Bit(0) == 1
	b.Value = minimal(z.Rsh(z, 1))

	return nil
}

// minimal returns the big-endian magnitude of i. big.Int encodes zero as
// an empty byte array, but zero is a single zero byte here.
func minimal(i *big.Int) []byte {
	data := i.Bytes()
	if len(data) == 0 {
		return []byte{0}
	}

	return data
}
