package arbit

// Parse returns the number written in s as "[-]digits[.digits]".
func Parse(s string) (*Number, error) {
	n := &Number{}

	err := n.SetString(s)
	if err != nil {
		return nil, err
	}

	return n, nil
}

// SetString sets n to the number written in s as "[-]digits[.digits]". A
// trailing "." with no digits after it is accepted. Fractional digits are
// not supported. On error n is unchanged.
func (n *Number) SetString(s string) (err error) {
	if len(s) == 0 {
		return ErrParse.New("empty string")
	}

	neg := s[0] == '-'
	start := 0
	if neg {
		start = 1
	}

	end := len(s)
	fraction := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if c == '.' {
			if fraction || end != len(s) {
				return ErrParse.New("second decimal point in %q", s)
			}
			end = i
			fraction = i != len(s)-1

			continue
		}

		if !isDigit(c) {
			return ErrParse.New("%q is not a digit in %q", c, s)
		}
	}

	var decimal string
	if fraction {
		decimal = s[end+1:]
	}

	return n.SetDigits(s[start:end], decimal, neg)
}

// SetDigits sets n from separate integer and fractional digit runs. The
// integer digits are accumulated from least significant with a running
// power of ten and the sign is applied last. Fractional digits are not
// supported. On error n is unchanged.
func (n *Number) SetDigits(integer, decimal string, neg bool) (err error) {
	for _, digits := range []string{integer, decimal} {
		for i := 0; i < len(digits); i++ {
			if !isDigit(digits[i]) {
				return ErrParse.New("%q is not a digit in %q", digits[i], digits)
			}
		}
	}

	if len(decimal) > 0 {
		return ErrUnsupported.New("fractional digits are not supported: %q", decimal)
	}

	acc := New()
	multiplier := NewInt(1)
	ten := NewInt(10)

	for i := len(integer) - 1; i >= 0; i-- {
		cur := NewInt(int64(integer[i] - '0'))
		cur.Mul(multiplier)
		multiplier.Mul(ten)

		acc.Add(cur)
	}

	if neg {
		acc.Neg()
	}

	n.Set(acc)

	return nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
