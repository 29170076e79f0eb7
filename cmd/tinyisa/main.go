// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/tinyisa/cpu"
	"github.com/ezrec/tinyisa/emulator"
)

var (
	verbose      bool
	defines      []string
	output       string
	assembleOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "tinyisa [flags] FILE [INPUT]",
	Short: "Assemble and run a tinyisa program",
	Long: `Tinyisa assembles FILE and runs it on an eight register machine
with 4096 words of memory.

INPUT, if given, is the text read one character at a time through the IO
register. A NUL is always appended to it. Characters written to the IO
register are sent to the output as they are produced.
`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var input string
		if len(args) > 1 {
			input = args[1]
		}
		run(args[0], input)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	flags.StringArrayVarP(&defines, "define", "D", nil, "Predefine a constant as NAME=EXPR")
	flags.StringVarP(&output, "output", "o", "-", "IO register output")
	flags.BoolVarP(&assembleOnly, "assemble-only", "s", false, "Assemble, do not execute")
}

func run(source string, input string) {
	asm := &cpu.Assembler{Verbose: verbose}

	for _, define := range defines {
		name, expr, ok := strings.Cut(define, "=")
		if !ok {
			log.Fatalf("-D %v: %v", define, cpu.ErrPredefineSyntax)
		}
		err := asm.Predefine(name, expr)
		if err != nil {
			log.Fatalf("-D %v: %v", define, err)
		}
	}

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if verbose {
		for name, value := range asm.Symbols() {
			pp.Fprintf(os.Stderr, "%v = %v\n", name, value)
		}
		for addr, op := range prog.All() {
			pp.Fprintf(os.Stderr, "%v: %v\n", addr, op.Instruction.String())
		}
	}

	if assembleOnly {
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	emu.Reset(input)
	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
