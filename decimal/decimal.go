package decimal

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/kratuvid/simple-calculator/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// sizeMask selects the scale size in the trailing byte.
const sizeMask byte = 0b0000_0011

// Block is a fixed point number: Value * radix ^ Scale. The radix is agreed
// on by the caller. A nil Scale is zero.
type Block struct {
	Value *integer.Block
	Scale *integer.Block
}

// New returns the block for value * radix ^ scale.
func New(value *big.Int, scale int64) *Block {
	b := &Block{
		Value: integer.FromBig(value),
	}

	if scale != 0 {
		b.Scale = integer.FromBig(big.NewInt(scale))
	}

	return b
}

// Exponent returns the scale as a native integer.
func (b Block) Exponent() (scale int64, err error) {
	if b.Scale == nil {
		return 0, nil
	}

	i := b.Scale.Big()
	if !i.IsInt64() {
		return 0, Error.New("scale out of range: %s", i)
	}

	return i.Int64(), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	if b.Value == nil {
		return nil, Error.New("missing value")
	}

	data, err = b.Value.MarshalBinary()
	if err != nil {
		return nil, err
	}

	var size byte

	if b.Scale != nil && b.Scale.Big().Sign() != 0 {
		scale, err := b.Scale.MarshalBinary()
		if err != nil {
			return nil, err
		}

		if len(scale) > int(sizeMask) {
			return nil, Error.New("scale too large: %d bytes", len(scale))
		}

		size = byte(len(scale))
		data = append(data, scale...)
	}

	return append(data, size), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) < 2 {
		return Error.New("short data: %d bytes", len(data))
	}

	trailer := data[len(data)-1]
	if trailer&^sizeMask != 0 {
		return Error.New("invalid scale size byte: %08b", trailer)
	}

	size := int(trailer & sizeMask)
	data = data[:len(data)-1]

	if len(data) <= size {
		return Error.New("short data: scale size=%d remaining=%d", size, len(data))
	}

	value := &integer.Block{}

	err = value.UnmarshalBinary(data[:len(data)-size])
	if err != nil {
		return err
	}

	var scale *integer.Block

	if size > 0 {
		scale = &integer.Block{}

		err = scale.UnmarshalBinary(data[len(data)-size:])
		if err != nil {
			return err
		}
	}

	b.Value = value
	b.Scale = scale

	return nil
}
