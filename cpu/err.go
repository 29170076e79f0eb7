package cpu

import (
	"errors"

	"github.com/ezrec/tinyisa/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcDone          = errors.New(f("pc past end of program"))
	ErrPcInvalid       = errors.New(f("pc invalid"))
	ErrMemoryBounds    = errors.New(f("memory address out of bounds"))
	ErrPortMissing     = errors.New(f("io port not attached"))
	ErrShapeMismatch   = errors.New(f("operation does not match shape"))
	ErrRegisterInvalid = errors.New(f("register invalid"))

	// Assembler errors
	ErrConstantSyntax    = errors.New(f("constant declaration syntax"))
	ErrConstantDuplicate = errors.New(f("constant duplicated"))
	ErrLabelSyntax       = errors.New(f("label declaration syntax"))
	ErrLabelDuplicate    = errors.New(f("label duplicated"))
	ErrOpcodeMissing     = errors.New(f("opcode missing"))
	ErrOpcodeInvalid     = errors.New(f("opcode invalid"))
	ErrOperandCount      = errors.New(f("wrong number of operands"))
	ErrImmediateRange    = errors.New(f("immediate out of range"))
	ErrPredefineSyntax   = errors.New(f("predefine syntax"))
)

// ErrInstruction tags a runtime error with the failing instruction.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("bad instruction '%v'", Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrParseRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}

type ErrParseOpcode string

func (err ErrParseOpcode) Error() string {
	return f("'%v' is not an operation", string(err))
}

func (err ErrParseOpcode) Is(target error) bool {
	return target == ErrOpcodeInvalid
}

// ErrImmediate is an immediate that does not fit its field.
type ErrImmediate struct {
	Value uint32
	Limit uint32
}

func (err ErrImmediate) Error() string {
	return f("immediate %v exceeds %v", err.Value, err.Limit)
}

func (err ErrImmediate) Is(target error) bool {
	return target == ErrImmediateRange
}

type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("symbol '%v' already defined", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}
