// Package cpu implements the machine and assembler for the tinyisa system.
//
// The machine has eight 32-bit registers (R0-R4, IM, IO and RA), 4096 words
// of memory, and a 1-based program counter. Register IO is not storage:
// reads consume a character from the attached Port and writes emit one.
// Every instruction advances the program counter by one after it executes,
// including jumps, and the program ends when the counter passes the last
// instruction.
//
// The assembler resolves `$NAME VALUE` constants, then `(NAME)` labels, and
// decodes each remaining line into an Instruction of one of five shapes.
package cpu
