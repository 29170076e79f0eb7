package cpu

import (
	"errors"
	"strings"
)

// isLabel reports whether the line declares a label.
func isLabel(line Line) bool {
	return len(line.Words) > 0 && strings.HasPrefix(line.Words[0], LABEL_OPEN)
}

// ResolveLabels collects every `(NAME)` declaration into table, deletes the
// declaration lines, and replaces each remaining word naming a label with
// its decimal address.
//
// A label's address is the 0-based index the declaration line would have
// in the final instruction list: the number of non-declaration lines that
// precede it. This must run after every other pass that deletes lines.
func ResolveLabels(lines []Line, table SymbolTable) (out []Line, err error) {
	out = make([]Line, 0, len(lines))

	for _, line := range lines {
		if !isLabel(line) {
			out = append(out, line)
			continue
		}

		word := line.Words[0]
		if len(line.Words) != 1 || !strings.HasSuffix(word, LABEL_CLOSE) {
			err = line.syntax(ErrLabelSyntax)
			return
		}

		name := word[len(LABEL_OPEN) : len(word)-len(LABEL_CLOSE)]
		if len(name) == 0 {
			err = line.syntax(ErrLabelSyntax)
			return
		}

		err = table.Define(name, uint32(len(out)))
		if err != nil {
			err = line.syntax(errors.Join(ErrLabelDuplicate, err))
			return
		}
	}

	substitute(out, table.Lookup)

	return
}
