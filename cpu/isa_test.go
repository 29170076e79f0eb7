package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationShape(t *testing.T) {
	assert := assert.New(t)

	expected := map[Shape][]Operation{
		SHAPE_ARITH:  {OP_AND, OP_OR, OP_XOR, OP_SHR, OP_SHL, OP_ADD, OP_SUB, OP_JEQ, OP_JLT, OP_JGT},
		SHAPE_IMM:    {OP_LDIM},
		SHAPE_JUMP:   {OP_JAR},
		SHAPE_MEMORY: {OP_LOAD, OP_SET},
		SHAPE_UNARY:  {OP_NOT, OP_MOV},
	}

	count := 0
	for shape, ops := range expected {
		for _, op := range ops {
			assert.Equal(shape, op.Shape(), op.String())
			count++
		}
	}
	assert.Equal(OP_COUNT, count)

	assert.Equal(Shape(-1), Operation(OP_COUNT).Shape())
	assert.Equal(-1, Shape(-1).Operands())
}

func TestOperationNames(t *testing.T) {
	assert := assert.New(t)

	names := []string{
		"AND", "NOT", "OR", "XOR", "SHR", "SHL", "ADD", "SUB",
		"LOAD", "SET", "LDIM", "JEQ", "JLT", "JGT", "JAR", "MOV",
	}

	assert.Equal(OP_COUNT, len(operationMap))
	for n, name := range names {
		assert.Equal(Operation(n), operationMap[name], name)
		assert.Equal(name, Operation(n).String())
	}
	assert.Equal("Operation(16)", Operation(16).String())
}

func TestRegisterKind(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		reg  Register
		kind RegisterKind
	}){
		{"R0", REG_R0, KIND_GENERAL},
		{"R1", REG_R1, KIND_GENERAL},
		{"R2", REG_R2, KIND_GENERAL},
		{"R3", REG_R3, KIND_GENERAL},
		{"R4", REG_R4, KIND_GENERAL},
		{"IM", REG_IM, KIND_IMMEDIATE},
		{"IO", REG_IO, KIND_PORT},
		{"RA", REG_RA, KIND_LINK},
	}

	assert.Equal(REGISTER_COUNT, len(registerMap))
	for _, entry := range table {
		assert.Equal(entry.reg, registerMap[entry.name], entry.name)
		assert.Equal(entry.name, entry.reg.String())
		assert.Equal(entry.kind, entry.reg.Kind(), entry.name)
	}

	assert.Equal(KIND_INVALID, Register(8).Kind())
	assert.Equal(KIND_INVALID, Register(-1).Kind())
}

func TestShapeOperands(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, SHAPE_ARITH.Operands())
	assert.Equal(1, SHAPE_IMM.Operands())
	assert.Equal(1, SHAPE_JUMP.Operands())
	assert.Equal(3, SHAPE_MEMORY.Operands())
	assert.Equal(2, SHAPE_UNARY.Operands())
	assert.Equal("memory", SHAPE_MEMORY.String())
}
