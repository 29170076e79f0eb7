// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"io"
	"iter"
	"log"
	"maps"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tinyisa/internal"
)

// Assembler is a two pass assembler. Source is tokenized, stripped of
// comments, has constants then labels resolved, and is finally decoded
// into a Program.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Constant SymbolTable // Constants from the last Parse, including predefines.
	Label    SymbolTable // Labels from the last Parse.

	predefine SymbolTable // Constants defined before Parse.
}

// Predefine defines a constant before parsing, from a compile time
// expression. Earlier predefines may be referenced by name.
func (asm *Assembler) Predefine(name string, expr string) (err error) {
	name = strings.TrimPrefix(name, CONSTANT_SIGIL)
	if len(name) == 0 {
		err = ErrPredefineSyntax
		return
	}

	value, err := asm.eval(expr)
	if err != nil {
		return
	}

	if asm.predefine == nil {
		asm.predefine = make(SymbolTable)
	}

	err = asm.predefine.Define(name, value)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("asm: predefine %v = %v", name, value)
	}

	return
}

// eval evaluates a predefine expression with starlark.
func (asm *Assembler) eval(expr string) (value uint32, err error) {
	thread := starlark.Thread{Name: "predefine"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, v := range asm.predefine {
		pred[key] = starlark.MakeUint64(uint64(v))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_uint64, ok := st_int.Uint64()
	if !ok || st_uint64 > 0xffffffff {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_uint64)
	return
}

// Symbols iterates over the constants, then the labels, of the last Parse.
func (asm *Assembler) Symbols() iter.Seq2[string, uint32] {
	return internal.IterSeq2Concat(maps.All(asm.Constant), maps.All(asm.Label))
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.Constant = maps.Clone(asm.predefine)
	if asm.Constant == nil {
		asm.Constant = make(SymbolTable)
	}
	asm.Label = make(SymbolTable)

	lines, err := Tokenize(input)
	if err != nil {
		return
	}

	lines = StripComments(lines)
	if asm.Verbose {
		log.Printf("asm: %d lines after comments", len(lines))
	}

	lines, err = ResolveConstants(lines, asm.Constant)
	if err != nil {
		return
	}
	if asm.Verbose {
		log.Printf("asm: %d constants, %d lines", len(asm.Constant), len(lines))
	}

	lines, err = ResolveLabels(lines, asm.Label)
	if err != nil {
		return
	}
	if asm.Verbose {
		log.Printf("asm: %d labels, %d lines", len(asm.Label), len(lines))
	}

	opcodes := make([]Opcode, 0, len(lines))
	for _, line := range lines {
		var op Opcode
		op, err = Decode(line)
		if err != nil {
			return
		}
		if asm.Verbose {
			log.Printf("%v: %v", line.LineNo, op.Instruction)
		}
		opcodes = append(opcodes, op)
	}

	prog = &Program{
		Opcodes: opcodes,
	}

	return
}
