// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/tinyisa/cpu"
	"github.com/ezrec/tinyisa/io"
)

// Emulator state. CPU + program + IO tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // Tape behind the IO register.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Tape)

	return
}

// Reset loads the program into the CPU, clears the machine state, and loads
// input onto the tape.
func (emu *Emulator) Reset(input string) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Code = emu.Program.Instructions()
	emu.Cpu.Reset()
	emu.Tape.Load(input)

	if emu.Verbose {
		log.Printf("emulator: %d instructions, %d input characters", len(emu.Cpu.Code), emu.Tape.Remaining())
	}
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number of the next instruction, or 0 if
// the program counter is outside of the program.
func (emu *Emulator) LineNo() int {
	op, ok := emu.Program.At(emu.Cpu.Pc)
	if !ok {
		return 0
	}

	return op.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrPcDone) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the program ends or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: done after %d ticks", emu.Ticks())
	}

	return
}
