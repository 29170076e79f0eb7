package cpu

import (
	"iter"
)

// Opcode is a decoded instruction with its source location.
type Opcode struct {
	Instruction
	LineNo int      // Source line number.
	Words  []string // Resolved source words.
}

// Program is an assembled, fully resolved instruction list.
type Program struct {
	Opcodes []Opcode
}

// Instructions returns the bare instruction list for execution.
func (prog *Program) Instructions() (codes []Instruction) {
	codes = make([]Instruction, 0, len(prog.Opcodes))
	for _, op := range prog.Opcodes {
		codes = append(codes, op.Instruction)
	}

	return
}

// At returns the opcode at a 1-based program counter.
func (prog *Program) At(pc uint64) (op *Opcode, ok bool) {
	if pc < 1 || pc > uint64(len(prog.Opcodes)) {
		return
	}

	return &prog.Opcodes[pc-1], true
}

// All iterates over the opcodes by 0-based address.
func (prog *Program) All() iter.Seq2[int, Opcode] {
	return func(yield func(addr int, op Opcode) bool) {
		for addr, op := range prog.Opcodes {
			if !yield(addr, op) {
				return
			}
		}
	}
}
