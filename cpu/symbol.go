package cpu

import (
	"fmt"
	"slices"
)

// SymbolTable maps symbol names to resolved values. Entries are write-once.
type SymbolTable map[string]uint32

// Define adds a new symbol.
func (st SymbolTable) Define(name string, value uint32) (err error) {
	_, ok := st[name]
	if ok {
		err = ErrSymbolDuplicate(name)
		return
	}

	st[name] = value
	return
}

// Lookup returns the value of a symbol.
func (st SymbolTable) Lookup(name string) (value uint32, ok bool) {
	value, ok = st[name]
	return
}

// substitute replaces every word that lookup resolves with the decimal
// string of its value.
func substitute(lines []Line, lookup func(word string) (uint32, bool)) {
	for n := range lines {
		line := &lines[n]
		var words []string
		for i, word := range line.Words {
			value, ok := lookup(word)
			if !ok {
				continue
			}
			if words == nil {
				words = slices.Clone(line.Words)
			}
			words[i] = fmt.Sprintf("%d", value)
		}
		if words != nil {
			line.Words = words
		}
	}
}
