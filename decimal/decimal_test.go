package decimal

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kratuvid/simple-calculator/integer"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name  string
		blk   *Block
		scale int64
		data  []byte
	}

	tcs := []TC{
		{
			name: "0",
			blk:  New(big.NewInt(0), 0),
			data: []byte{0b0000_0000, 0b0000_0000},
		},
		{
			name: "-1",
			blk:  New(big.NewInt(-1), 0),
			data: []byte{0b0000_0011, 0b0000_0000},
		},
		{
			name:  "1.23 base 10",
			blk:   New(big.NewInt(123), -2),
			scale: -2,
			data: []byte{
				0b1111_0110,
				0b0000_0101,
				0b0000_0001,
			},
		},
		{
			name:  "-3.5 base 2^32",
			blk:   New(big.NewInt(-15_032_385_536), -1),
			scale: -1,
			data:  []byte{0x07, 0x00, 0x00, 0x00, 0x01, 0x03, 0x01},
		},
		{
			name:  "1e300",
			blk:   New(big.NewInt(1), 300),
			scale: 300,
			data:  []byte{0x02, 0x02, 0x58, 0x02},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				scale, err := blk.Exponent()
				require.NoError(t, err)
				require.Equal(t, tc.scale, scale)
			})
		})
	}
}

func TestZeroScaleIsOmitted(t *testing.T) {
	blk := &Block{
		Value: integer.FromBig(big.NewInt(5)),
		Scale: integer.FromBig(big.NewInt(0)),
	}

	data, err := blk.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0b0000_1010, 0b0000_0000}, data)
}

func TestErrors(t *testing.T) {
	t.Run("scale too large", func(t *testing.T) {
		_, err := New(big.NewInt(1), 1<<23).MarshalBinary()
		require.True(t, Error.Has(err))
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := Block{}.MarshalBinary()
		require.True(t, Error.Has(err))
	})

	for _, data := range [][]byte{
		nil,
		{0x00},
		{0x02, 0x04},
		{0x02, 0x02},
	} {
		t.Run(fmt.Sprintf("unmarshal %x", data), func(t *testing.T) {
			blk := &Block{}
			err := blk.UnmarshalBinary(data)
			require.Error(t, err)
			require.True(t, Error.Has(err))
			require.Nil(t, blk.Value)
		})
	}
}
