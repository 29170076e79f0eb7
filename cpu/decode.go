package cpu

// operationMap maps operation names to operations.
var operationMap = map[string]Operation{}

// registerMap maps register names to registers.
var registerMap = map[string]Register{}

func init() {
	for op := range Operation(OP_COUNT) {
		operationMap[op.String()] = op
	}
	for reg := range Register(REGISTER_COUNT) {
		registerMap[reg.String()] = reg
	}
}

// parseRegister returns the register named by word.
func parseRegister(word string) (reg Register, err error) {
	reg, ok := registerMap[word]
	if !ok {
		err = ErrParseRegister(word)
	}
	return
}

// parseImmediate parses a decimal literal no larger than limit.
func parseImmediate(word string, limit uint32) (value uint32, err error) {
	value, err = parseDecimal(word)
	if err != nil {
		return
	}

	if value > limit {
		err = ErrImmediate{Value: value, Limit: limit}
		return
	}

	return
}

// parseRegisters parses each word as a register.
func parseRegisters(words ...string) (regs []Register, err error) {
	regs = make([]Register, len(words))
	for n, word := range words {
		regs[n], err = parseRegister(word)
		if err != nil {
			return
		}
	}
	return
}

// Decode converts a fully resolved line into an opcode. The operation name
// fixes the shape, and the shape fixes the operand grammar.
func Decode(line Line) (opcode Opcode, err error) {
	defer func() {
		if err != nil {
			err = line.syntax(err)
		}
	}()

	words := line.Words
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	op, ok := operationMap[words[0]]
	if !ok {
		err = ErrParseOpcode(words[0])
		return
	}

	args := words[1:]
	shape := op.Shape()
	if len(args) != shape.Operands() {
		err = ErrOperandCount
		return
	}

	var code Instruction
	var regs []Register
	var imm uint32

	switch shape {
	case SHAPE_ARITH:
		regs, err = parseRegisters(args...)
		if err != nil {
			return
		}
		code = MakeArith(op, regs[0], regs[1], regs[2])
	case SHAPE_IMM:
		imm, err = parseImmediate(args[0], IMM12_MAX)
		if err != nil {
			return
		}
		code = MakeImmediate(imm)
	case SHAPE_JUMP:
		regs, err = parseRegisters(args[0])
		if err != nil {
			return
		}
		code = MakeJump(regs[0])
	case SHAPE_MEMORY:
		regs, err = parseRegisters(args[:2]...)
		if err != nil {
			return
		}
		imm, err = parseImmediate(args[2], IMM6_MAX)
		if err != nil {
			return
		}
		code = MakeMemory(op, regs[0], regs[1], imm)
	case SHAPE_UNARY:
		regs, err = parseRegisters(args...)
		if err != nil {
			return
		}
		code = MakeUnary(op, regs[0], regs[1])
	default:
		err = ErrOpcodeInvalid
		return
	}

	opcode = Opcode{
		Instruction: code,
		LineNo:      line.LineNo,
		Words:       line.Words,
	}

	return
}
