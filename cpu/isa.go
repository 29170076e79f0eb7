package cpu

import (
	"fmt"
	"strings"
)

// Shape is the operand layout of an instruction.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_ARITH  = Shape(0) // arith
	SHAPE_IMM    = Shape(1) // imm
	SHAPE_JUMP   = Shape(2) // jump
	SHAPE_MEMORY = Shape(3) // memory
	SHAPE_UNARY  = Shape(4) // unary
)

// Operands returns the number of operand words the shape takes in source text.
func (shape Shape) Operands() int {
	switch shape {
	case SHAPE_ARITH:
		return 3
	case SHAPE_IMM:
		return 1
	case SHAPE_JUMP:
		return 1
	case SHAPE_MEMORY:
		return 3
	case SHAPE_UNARY:
		return 2
	}

	return -1
}

// Operation is a single machine operation.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_AND  = Operation(0)  // AND
	OP_NOT  = Operation(1)  // NOT
	OP_OR   = Operation(2)  // OR
	OP_XOR  = Operation(3)  // XOR
	OP_SHR  = Operation(4)  // SHR
	OP_SHL  = Operation(5)  // SHL
	OP_ADD  = Operation(6)  // ADD
	OP_SUB  = Operation(7)  // SUB
	OP_LOAD = Operation(8)  // LOAD
	OP_SET  = Operation(9)  // SET
	OP_LDIM = Operation(10) // LDIM
	OP_JEQ  = Operation(11) // JEQ
	OP_JLT  = Operation(12) // JLT
	OP_JGT  = Operation(13) // JGT
	OP_JAR  = Operation(14) // JAR
	OP_MOV  = Operation(15) // MOV

	OP_COUNT = 16 // Number of operations.
)

// Shape returns the fixed shape of the operation.
// Unknown operations have shape -1.
func (op Operation) Shape() Shape {
	switch op {
	case OP_AND, OP_OR, OP_XOR, OP_SHR, OP_SHL, OP_ADD, OP_SUB, OP_JEQ, OP_JLT, OP_JGT:
		return SHAPE_ARITH
	case OP_LDIM:
		return SHAPE_IMM
	case OP_JAR:
		return SHAPE_JUMP
	case OP_LOAD, OP_SET:
		return SHAPE_MEMORY
	case OP_NOT, OP_MOV:
		return SHAPE_UNARY
	}

	return Shape(-1)
}

// Register is a register file index.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0 = Register(0) // R0
	REG_R1 = Register(1) // R1
	REG_R2 = Register(2) // R2
	REG_R3 = Register(3) // R3
	REG_R4 = Register(4) // R4
	REG_IM = Register(5) // IM
	REG_IO = Register(6) // IO
	REG_RA = Register(7) // RA

	REGISTER_COUNT = 8 // Size of the register file.
)

// RegisterKind classifies how register accesses are handled.
type RegisterKind int

//go:generate go tool stringer -linecomment -type=RegisterKind
const (
	KIND_GENERAL   = RegisterKind(0) // general
	KIND_IMMEDIATE = RegisterKind(1) // immediate
	KIND_PORT      = RegisterKind(2) // port
	KIND_LINK      = RegisterKind(3) // link
	KIND_INVALID   = RegisterKind(4) // invalid
)

// Kind returns the access class of the register.
func (reg Register) Kind() RegisterKind {
	switch reg {
	case REG_R0, REG_R1, REG_R2, REG_R3, REG_R4:
		return KIND_GENERAL
	case REG_IM:
		return KIND_IMMEDIATE
	case REG_IO:
		return KIND_PORT
	case REG_RA:
		return KIND_LINK
	}

	return KIND_INVALID
}

// Immediate limits.
const (
	IMM12_MAX = 0xfff // LDIM literal.
	IMM6_MAX  = 0x3f  // LOAD/SET offset.
)

// Instruction is a decoded instruction. Which of the register and immediate
// fields are meaningful is fixed by Shape:
//
//	SHAPE_ARITH:  Reg1 (target), Reg2, Reg3
//	SHAPE_IMM:    Immediate
//	SHAPE_JUMP:   Reg1
//	SHAPE_MEMORY: Reg1 (target/source), Reg2 (base), Immediate (offset)
//	SHAPE_UNARY:  Reg1 (target), Reg2 (source)
//
// Unused fields are zero.
type Instruction struct {
	Shape     Shape
	Operation Operation
	Reg1      Register
	Reg2      Register
	Reg3      Register
	Immediate uint32
}

// MakeArith creates an arithmetic or compare-and-jump instruction.
func MakeArith(op Operation, target, arg1, arg2 Register) Instruction {
	return Instruction{Shape: SHAPE_ARITH, Operation: op, Reg1: target, Reg2: arg1, Reg3: arg2}
}

// MakeImmediate creates an LDIM instruction.
func MakeImmediate(imm uint32) Instruction {
	return Instruction{Shape: SHAPE_IMM, Operation: OP_LDIM, Immediate: imm}
}

// MakeJump creates a JAR instruction.
func MakeJump(target Register) Instruction {
	return Instruction{Shape: SHAPE_JUMP, Operation: OP_JAR, Reg1: target}
}

// MakeMemory creates a LOAD or SET instruction.
func MakeMemory(op Operation, reg, base Register, offset uint32) Instruction {
	return Instruction{Shape: SHAPE_MEMORY, Operation: op, Reg1: reg, Reg2: base, Immediate: offset}
}

// MakeUnary creates a NOT or MOV instruction.
func MakeUnary(op Operation, target, source Register) Instruction {
	return Instruction{Shape: SHAPE_UNARY, Operation: op, Reg1: target, Reg2: source}
}

// String returns the source text form of the instruction.
func (code Instruction) String() string {
	words := []string{code.Operation.String()}

	switch code.Shape {
	case SHAPE_ARITH:
		words = append(words, code.Reg1.String(), code.Reg2.String(), code.Reg3.String())
	case SHAPE_IMM:
		words = append(words, fmt.Sprintf("%d", code.Immediate))
	case SHAPE_JUMP:
		words = append(words, code.Reg1.String())
	case SHAPE_MEMORY:
		words = append(words, code.Reg1.String(), code.Reg2.String(), fmt.Sprintf("%d", code.Immediate))
	case SHAPE_UNARY:
		words = append(words, code.Reg1.String(), code.Reg2.String())
	}

	return strings.Join(words, " ")
}
