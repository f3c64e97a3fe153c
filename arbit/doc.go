// Package arbit provides an arbitrary precision signed number made of an
// integer part and a fractional extension.
//
// Layout
//
// A Number holds two unit sequences (see package unit). The fixed part is a
// little-endian two's complement integer; the sign of the whole number is
// the top bit of its last unit. The decimal part is an unsigned fraction
// whose index 0 sits next to the fractional point:
//
//  value = fixed + decimal[0]*B^-1 + decimal[1]*B^-2 + ...
//
// Where B is 2^32. For example, with fixed = [0x00000003] and
// decimal = [0x80000000] the value is 3.5. With fixed = [0xfffffffe] and
// decimal = [0x80000000] it is -2 + 0.5 = -1.5.
//
//  | fixed[n-1] ... fixed[1] fixed[0] . decimal[0] decimal[1] ... |
//  |  sign unit                       ^ point                    |
//
// Canonical Form
//
// Every operation that can change the number of units leaves both parts
// minimal: a top fixed unit equal to the sign fill (0 or 0xffffffff) is
// dropped unless the unit below it would then carry the wrong sign, and
// trailing zero decimal units are dropped. Neither part is trimmed below a
// single unit. An empty part is a valid transient state worth zero; the zero
// value of Number is therefore usable as zero.
//
// Unsupported
//
// Rendering canonical decimal text and parsing fractional digits are not
// implemented. Both fail with ErrUnsupported rather than approximate.
//
// A Number is not safe for concurrent use.
package arbit
