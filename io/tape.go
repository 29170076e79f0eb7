package io

import (
	"io"
	"unicode/utf8"
)

// Tape provides sequential character I/O. The input is a fixed string,
// terminated by a NUL, consumed one character at a time. The output is
// written to an io.Writer as soon as each character is sent.
type Tape struct {
	Output io.Writer

	input     []rune
	readIndex int
}

// Load replaces the input with text, followed by a terminating NUL, and
// rewinds the tape.
func (tc *Tape) Load(text string) {
	tc.input = append([]rune(text), 0)
	tc.readIndex = 0
}

// Rewind restarts reading from the first character of the input.
func (tc *Tape) Rewind() {
	tc.readIndex = 0
}

// Remaining returns the number of characters left to read.
func (tc *Tape) Remaining() int {
	return len(tc.input) - tc.readIndex
}

// Read consumes the next character of the input.
func (tc *Tape) Read() (value uint32, err error) {
	if tc.readIndex >= len(tc.input) {
		err = ErrTapeEmpty
		return
	}

	value = uint32(tc.input[tc.readIndex])
	tc.readIndex++

	return
}

// Write sends a single character, UTF-8 encoded, to the output.
func (tc *Tape) Write(value uint32) (err error) {
	if value > utf8.MaxRune || !utf8.ValidRune(rune(value)) {
		err = ErrTapeInvalid(value)
		return
	}

	if tc.Output == nil {
		err = ErrTapeOutput
		return
	}

	_, err = tc.Output.Write(utf8.AppendRune(nil, rune(value)))

	return
}
