package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/tinyisa/io"
)

// Port is the character port trapped behind the IO register.
type Port io.Port

const (
	MEMORY_SIZE = 4096 // Words of memory.
)

// Cpu is the machine state of a single run, and the engine that executes
// instructions against it.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       uint64                 // 1-based program counter.
	Register [REGISTER_COUNT]uint32 // Register file.
	Memory   [MEMORY_SIZE]uint32    // Flat memory.
	Code     []Instruction          // Program being executed.
	Port     Port                   // Port behind REG_IO.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU attached to a port.
func NewCpu(port Port) (cpu *Cpu) {
	cpu = &Cpu{
		Port: port,
	}
	cpu.Reset()

	return
}

// String returns the current register state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 5s: %d\n", "pc", cpu.Pc)
	for reg := range Register(REGISTER_COUNT) {
		val := cpu.Register[reg]
		text += fmt.Sprintf("% 5s: %04X_%04X\n", reg.String(), val>>16, val&0xffff)
	}

	return
}

// Reset clears the registers and memory, and points the program counter at
// the first instruction.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Pc = 1
	cpu.Ticks = 0
}

// Done returns true when the program counter is past the last instruction.
func (cpu *Cpu) Done() bool {
	return cpu.Pc > uint64(len(cpu.Code))
}

// Tick fetches and executes the instruction at the program counter.
// Returns ErrPcDone once the program has run off its end.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Pc == 0 {
		err = ErrPcInvalid
		return
	}

	if cpu.Done() {
		err = ErrPcDone
		return
	}

	err = cpu.Execute(cpu.Code[cpu.Pc-1])
	return
}

// ReadRegister reads a register. Reading REG_IO consumes a character from
// the port.
func (cpu *Cpu) ReadRegister(reg Register) (value uint32, err error) {
	switch reg.Kind() {
	case KIND_GENERAL, KIND_IMMEDIATE, KIND_LINK:
		value = cpu.Register[reg]
	case KIND_PORT:
		if cpu.Port == nil {
			err = ErrPortMissing
			return
		}
		value, err = cpu.Port.Read()
	default:
		err = ErrRegisterInvalid
	}

	return
}

// WriteRegister writes a register. Writing REG_IO emits a character to the
// port.
func (cpu *Cpu) WriteRegister(reg Register, value uint32) (err error) {
	switch reg.Kind() {
	case KIND_GENERAL, KIND_IMMEDIATE, KIND_LINK:
		cpu.Register[reg] = value
	case KIND_PORT:
		if cpu.Port == nil {
			err = ErrPortMissing
			return
		}
		err = cpu.Port.Write(value)
	default:
		err = ErrRegisterInvalid
	}

	return
}

// address computes a memory address from a base value and offset.
func address(base uint32, offset uint32) (addr uint64, err error) {
	addr = uint64(base) + uint64(offset)
	if addr >= MEMORY_SIZE {
		err = ErrMemoryBounds
	}
	return
}

// Execute executes a single instruction, then advances the program counter
// by one. The advance also applies after a jump, so a jump to k resumes at
// the instruction with 1-based address k+1.
func (cpu *Cpu) Execute(code Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(code), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Pc, code)
	}

	if code.Operation.Shape() != code.Shape {
		err = ErrShapeMismatch
		return
	}

	switch code.Shape {
	case SHAPE_ARITH:
		err = cpu.executeArith(code)
	case SHAPE_IMM:
		err = cpu.WriteRegister(REG_IM, code.Immediate)
	case SHAPE_JUMP:
		err = cpu.executeJump(code)
	case SHAPE_MEMORY:
		err = cpu.executeMemory(code)
	case SHAPE_UNARY:
		err = cpu.executeUnary(code)
	}
	if err != nil {
		return
	}

	cpu.Pc++
	cpu.Ticks++

	return
}

func (cpu *Cpu) executeArith(code Instruction) (err error) {
	a, err := cpu.ReadRegister(code.Reg2)
	if err != nil {
		return
	}
	b, err := cpu.ReadRegister(code.Reg3)
	if err != nil {
		return
	}

	var jump bool
	switch code.Operation {
	case OP_JEQ:
		jump = a == b
	case OP_JLT:
		jump = a < b
	case OP_JGT:
		jump = a > b
	default:
		return cpu.WriteRegister(code.Reg1, doAlu(code.Operation, a, b))
	}

	if jump {
		var target uint32
		target, err = cpu.ReadRegister(code.Reg1)
		if err != nil {
			return
		}
		cpu.Pc = uint64(target)
	}

	return
}

func (cpu *Cpu) executeJump(code Instruction) (err error) {
	target, err := cpu.ReadRegister(code.Reg1)
	if err != nil {
		return
	}

	err = cpu.WriteRegister(REG_RA, uint32(cpu.Pc))
	if err != nil {
		return
	}

	cpu.Pc = uint64(target)
	return
}

func (cpu *Cpu) executeMemory(code Instruction) (err error) {
	base, err := cpu.ReadRegister(code.Reg2)
	if err != nil {
		return
	}

	addr, err := address(base, code.Immediate)
	if err != nil {
		return
	}

	switch code.Operation {
	case OP_LOAD:
		err = cpu.WriteRegister(code.Reg1, cpu.Memory[addr])
	case OP_SET:
		var value uint32
		value, err = cpu.ReadRegister(code.Reg1)
		if err != nil {
			return
		}
		cpu.Memory[addr] = value
	}

	return
}

func (cpu *Cpu) executeUnary(code Instruction) (err error) {
	value, err := cpu.ReadRegister(code.Reg2)
	if err != nil {
		return
	}

	switch code.Operation {
	case OP_NOT:
		value = ^value
	case OP_MOV:
		// unchanged
	}

	return cpu.WriteRegister(code.Reg1, value)
}

// doAlu performs an arithmetic or logic operation. ADD and SUB wrap around.
// Shifts by 32 or more produce 0.
func doAlu(op Operation, a uint32, b uint32) (output uint32) {
	switch op {
	case OP_AND:
		output = a & b
	case OP_OR:
		output = a | b
	case OP_XOR:
		output = a ^ b
	case OP_SHR:
		output = a >> b
	case OP_SHL:
		output = a << b
	case OP_ADD:
		output = a + b
	case OP_SUB:
		output = a - b
	}

	return
}
