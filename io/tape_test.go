package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Read(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	tape.Load("aλ")
	assert.Equal(3, tape.Remaining())

	value, err := tape.Read()
	assert.NoError(err)
	assert.Equal(uint32('a'), value)

	value, err = tape.Read()
	assert.NoError(err)
	assert.Equal(uint32('λ'), value)

	// Terminating NUL
	value, err = tape.Read()
	assert.NoError(err)
	assert.Equal(uint32(0), value)
	assert.Equal(0, tape.Remaining())

	_, err = tape.Read()
	assert.ErrorIs(err, ErrTapeEmpty)

	tape.Rewind()
	value, err = tape.Read()
	assert.NoError(err)
	assert.Equal(uint32('a'), value)
}

func TestTape_ReadEmpty(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	_, err := tape.Read()
	assert.ErrorIs(err, ErrTapeEmpty)

	tape.Load("")
	value, err := tape.Read()
	assert.NoError(err)
	assert.Equal(uint32(0), value)
}

func TestTape_Write(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	for _, value := range []uint32{'H', 'i', 0x3bb, 0x1f600, '\n'} {
		assert.NoError(tape.Write(value))
	}
	assert.Equal("Hiλ😀\n", output.String())

	for _, value := range []uint32{0xd800, 0xdfff, 0x110000, 0x80000000} {
		err := tape.Write(value)
		assert.Equal(ErrTapeInvalid(value), err)
	}
	assert.Equal("Hiλ😀\n", output.String())

	tape.Output = nil
	assert.ErrorIs(tape.Write('x'), ErrTapeOutput)
}
