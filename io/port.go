// Package io provides the character port behind the IO register.
package io

// Port is a character stream attached to a register.
type Port interface {
	// Read consumes the next character code from the input.
	Read() (value uint32, err error)
	// Write emits a character code to the output.
	Write(value uint32) error
}
