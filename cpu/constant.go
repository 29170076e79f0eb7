package cpu

import (
	"errors"
	"strconv"
	"strings"
)

// parseDecimal parses an unsigned 32-bit decimal literal.
func parseDecimal(word string) (value uint32, err error) {
	v64, err := strconv.ParseUint(word, 10, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}

// parseConstantValue parses either a quoted single character, giving its
// code point, or an unsigned decimal literal.
func parseConstantValue(word string) (value uint32, err error) {
	runes := []rune(word)
	if len(runes) == 3 && runes[0] == CHARACTER_QUOTE && runes[2] == CHARACTER_QUOTE {
		value = uint32(runes[1])
		return
	}

	return parseDecimal(word)
}

// isConstant reports whether the line declares a constant.
func isConstant(line Line) bool {
	return len(line.Words) > 0 && strings.HasPrefix(line.Words[0], CONSTANT_SIGIL)
}

// ResolveConstants collects every `$NAME VALUE` declaration into table,
// deletes the declaration lines, and then replaces each remaining word naming
// a constant (as NAME or $NAME) with its decimal value.
//
// Constants already present in table, such as predefines, count as
// declared.
func ResolveConstants(lines []Line, table SymbolTable) (out []Line, err error) {
	out = make([]Line, 0, len(lines))

	for _, line := range lines {
		if !isConstant(line) {
			out = append(out, line)
			continue
		}

		if len(line.Words) != 2 {
			err = line.syntax(ErrConstantSyntax)
			return
		}

		name := strings.TrimPrefix(line.Words[0], CONSTANT_SIGIL)
		if len(name) == 0 {
			err = line.syntax(ErrConstantSyntax)
			return
		}

		var value uint32
		value, err = parseConstantValue(line.Words[1])
		if err != nil {
			err = line.syntax(err)
			return
		}

		err = table.Define(name, value)
		if err != nil {
			err = line.syntax(errors.Join(ErrConstantDuplicate, err))
			return
		}
	}

	substitute(out, func(word string) (uint32, bool) {
		value, ok := table.Lookup(word)
		if !ok && strings.HasPrefix(word, CONSTANT_SIGIL) {
			value, ok = table.Lookup(word[len(CONSTANT_SIGIL):])
		}
		return value, ok
	})

	return
}
