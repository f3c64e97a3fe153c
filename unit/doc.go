// Package unit provides the machine words and word sequences that back an
// arbitrary precision number.
package unit
