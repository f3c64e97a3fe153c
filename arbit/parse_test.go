package arbit_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"github.com/kratuvid/simple-calculator/arbit"
)

func TestParse(t *testing.T) {
	type TC struct {
		input string
		value string
		class *errs.Class
		Mark  error
	}

	tcs := []TC{
		{input: "0", value: "0", Mark: oops.New("unexpected")},
		{input: "123", value: "123", Mark: oops.New("unexpected")},
		{input: "-45", value: "-45", Mark: oops.New("unexpected")},
		{input: "1.", value: "1", Mark: oops.New("unexpected")},
		{input: "-0", value: "0", Mark: oops.New("unexpected")},
		{input: "007", value: "7", Mark: oops.New("unexpected")},
		{input: "-", value: "0", Mark: oops.New("unexpected")},
		{input: ".", value: "0", Mark: oops.New("unexpected")},
		{input: "2147483648", value: "2147483648", Mark: oops.New("unexpected")},
		{input: "-2147483648", value: "-2147483648", Mark: oops.New("unexpected")},
		{
			input: "123456789012345678901234567890123456789012345678901234567890",
			value: "123456789012345678901234567890123456789012345678901234567890",
			Mark:  oops.New("unexpected"),
		},
		{
			input: "-98765432109876543210987654321098765432109876543210.",
			value: "-98765432109876543210987654321098765432109876543210",
			Mark:  oops.New("unexpected"),
		},

		{input: "", class: &arbit.ErrParse, Mark: oops.New("unexpected")},
		{input: "12a", class: &arbit.ErrParse, Mark: oops.New("unexpected")},
		{input: "1..2", class: &arbit.ErrParse, Mark: oops.New("unexpected")},
		{input: "1..", class: &arbit.ErrParse, Mark: oops.New("unexpected")},
		{input: "1.2.", class: &arbit.ErrParse, Mark: oops.New("unexpected")},
		{input: "--1", class: &arbit.ErrParse, Mark: oops.New("unexpected")},
		{input: "1-", class: &arbit.ErrParse, Mark: oops.New("unexpected")},
		{input: "+1", class: &arbit.ErrParse, Mark: oops.New("unexpected")},
		{input: " 1", class: &arbit.ErrParse, Mark: oops.New("unexpected")},
		{input: "1.2a", class: &arbit.ErrParse, Mark: oops.New("unexpected")},

		{input: "1.2", class: &arbit.ErrUnsupported, Mark: oops.New("unexpected")},
		{input: "-0.5", class: &arbit.ErrUnsupported, Mark: oops.New("unexpected")},
		{input: ".5", class: &arbit.ErrUnsupported, Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			n, err := arbit.Parse(tc.input)

			if tc.class != nil {
				require.Error(t, err, tc.Mark)
				require.True(t, tc.class.Has(err), tc.Mark)
				require.Nil(t, n, tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			t.Logf("Number: %s\n", n.RawFormat(arbit.Hex))

			want, ok := new(big.Int).SetString(tc.value, 10)
			require.True(t, ok)

			require.Equal(t, 0, want.Cmp(n.Big()), tc.Mark)
			require.Equal(t, want.Sign() < 0, n.IsNegative(), tc.Mark)
			require.Empty(t, n.Decimal(), tc.Mark)
			requireCanonical(t, n)
		})
	}
}

func TestParseScenarios(t *testing.T) {
	n, err := arbit.Parse("123")
	require.NoError(t, err)
	require.Equal(t, U{123}, n.Fixed())

	n, err = arbit.Parse("-45")
	require.NoError(t, err)
	require.Equal(t, U{0xffff_ffd3}, n.Fixed())
	require.True(t, n.IsNegative())
}

func TestSetStringUnchangedOnError(t *testing.T) {
	for _, input := range []string{"", "9x", "1..2", "3.25"} {
		n := arbit.FromUnits(U{5, 6}, U{7})

		require.Error(t, n.SetString(input))
		require.Equal(t, U{5, 6}, n.Fixed())
		require.Equal(t, U{7}, n.Decimal())
	}
}

func TestSetStringReplaces(t *testing.T) {
	n := arbit.FromUnits(U{5, 6}, U{7})

	require.NoError(t, n.SetString("10"))
	require.Equal(t, U{10}, n.Fixed())
	require.Empty(t, n.Decimal())
}

func TestSetDigits(t *testing.T) {
	n := &arbit.Number{}

	require.NoError(t, n.SetDigits("4096", "", true))
	require.Equal(t, 0, big.NewInt(-4096).Cmp(n.Big()))

	err := n.SetDigits("1", "25", false)
	require.True(t, arbit.ErrUnsupported.Has(err))
	require.Equal(t, 0, big.NewInt(-4096).Cmp(n.Big()))

	err = n.SetDigits("1-", "", false)
	require.True(t, arbit.ErrParse.Has(err))

	err = n.SetDigits("1", "x", false)
	require.True(t, arbit.ErrParse.Has(err))
}

func TestParseLong(t *testing.T) {
	digits := strings.Repeat("9", 200)

	n, err := arbit.Parse("-" + digits)
	require.NoError(t, err)

	want, _ := new(big.Int).SetString("-"+digits, 10)
	require.Equal(t, 0, want.Cmp(n.Big()))
	require.Equal(t, 0, n.Rat().Cmp(new(big.Rat).SetInt(want)))
}
