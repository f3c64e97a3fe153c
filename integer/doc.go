// Package integer provides a compact binary form for signed integers.
//
// Integers are encoded big-endian with a trailing sign bit (aka zigzag):
//
//  +1   -> 0b0000_0010
//  -1   -> 0b0000_0011
//  +127 -> 0b1111_1110
//  -127 -> 0b1111_1111
//
// Zero is a single zero byte.
package integer
