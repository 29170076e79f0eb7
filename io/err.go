package io

import (
	"errors"

	"github.com/ezrec/tinyisa/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeEmpty  = errors.New(f("tape input exhausted"))
	ErrTapeOutput = errors.New(f("tape output not attached"))
)

// ErrTapeInvalid is a value that is not a character code.
type ErrTapeInvalid uint32

func (err ErrTapeInvalid) Error() string {
	return f("0x%x is not a valid character", uint32(err))
}
