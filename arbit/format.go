package arbit

import (
	"fmt"
	"strings"

	"github.com/kratuvid/simple-calculator/unit"
)

// Mode selects how RawFormat renders each unit.
type Mode int

// Rendering modes.
const (
	Unsigned Mode = iota
	Binary
	Hex
	Signed
)

var modeNames = map[Mode]string{
	Unsigned: "unsigned",
	Binary:   "binary",
	Hex:      "hex",
	Signed:   "signed",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts a mode name or its single letter code (u, b, x, s).
func ParseMode(s string) (m Mode, err error) {
	switch strings.ToLower(s) {
	case "u", "unsigned":
		return Unsigned, nil
	case "b", "binary":
		return Binary, nil
	case "x", "hex":
		return Hex, nil
	case "s", "signed":
		return Signed, nil
	}

	return Unsigned, Error.New("unknown format mode %q", s)
}

// RawFormat renders the units of n for debugging. It is not decimal text.
//
// The fixed part is written as "F(allocated,length): " followed by the
// units from least significant, with a leading "!" when n is negative. A
// non-empty decimal part follows as "D(allocated,length): ". A number with
// both parts empty renders as "EMPTY ARBIT!".
func (n *Number) RawFormat(mode Mode) string {
	var sb strings.Builder

	if n.fixed.Len() > 0 {
		fmt.Fprintf(&sb, "F(%d,%d): ", n.fixed.Cap(), n.fixed.Len())
		if n.IsNegative() {
			sb.WriteString("!")
		}
		writeUnits(&sb, n.fixed.Units(), mode)
	}

	if n.decimal.Len() > 0 {
		if n.fixed.Len() > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "D(%d,%d): ", n.decimal.Cap(), n.decimal.Len())
		writeUnits(&sb, n.decimal.Units(), mode)
	}

	if n.fixed.Len() == 0 && n.decimal.Len() == 0 {
		sb.WriteString("EMPTY ARBIT!")
	}

	return sb.String()
}

func writeUnits(sb *strings.Builder, units []unit.Unit, mode Mode) {
	for i, u := range units {
		if i > 0 {
			sb.WriteString(" ")
		}

		switch mode {
		case Binary:
			fmt.Fprintf(sb, "0b%032b", u)
		case Hex:
			fmt.Fprintf(sb, "0x%x", u)
		case Signed:
			fmt.Fprintf(sb, "%d", int32(u))
		default:
			fmt.Fprintf(sb, "%d", u)
		}
	}
}

// Format would render n as decimal text. It is not implemented.
func (n *Number) Format() (string, error) {
	return "", ErrUnsupported.New("decimal formatting is not implemented")
}
