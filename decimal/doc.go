// Package decimal provides a compact binary form for fixed point numbers.
//
// The equation for a decimal number is:
//
//  number = value * radix ^ scale
//
// Where value is an unscaled integer and scale is the exponent of a radix
// both sides agree on. For example, in base 10:
//
//  1.23 = 123 * 10^-2
//
// Encoding
//
// The block is laid out first by the unscaled integer value (with sign
// bit), then the scale value (with sign bit), and finally one byte whose
// last 2 bits are the scale size in bytes. Both integers use the zigzag form
// of package integer.
//
//  | 6 | 7 | Scale          |
//  |-------|----------------|
//  | 0 . 0 | No Scale       | Zero scale, nothing is written.
//  | 0 . 1 | 1 byte         | ±127
//  | 1 . 0 | 2 bytes        | ±32_767
//  | 1 . 1 | 3 bytes        | ±8_388_607
//  |-------|----------------|
//  | 6 | 7 |
//
// Decoding reads the size from the last byte, takes that many bytes before
// it as the scale, and the remaining leading bytes are the value.
//
// Examples
//
// 1.23 in base 10 (3 bytes)
//
//  | 1 . 1 . 1 . 1 . 0 . 1 . 1 | 0 | Value of +123.
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 | 1 | Scale of -2.
//  | 0 . 0 . 0 . 0 . 0 . 0 | 0 . 1 | 1 byte scale.
//
// -3.5 in base 2^32 (7 bytes)
//
//  -3.5 = -15_032_385_536 * (2^32)^-1
//
//  | 0x07 0x00 0x00 0x00 0x01 | Value of -15_032_385_536.
//  | 0x03                     | Scale of -1.
//  | 0x01                     | 1 byte scale.
package decimal
