package cpu

import (
	"bufio"
	"io"
	"strings"
)

const (
	COMMENT_MARKER  = "//" // Starts a comment running to end of line.
	CONSTANT_SIGIL  = "$"  // Starts a constant declaration.
	LABEL_OPEN      = "("  // Starts a label declaration.
	LABEL_CLOSE     = ")"  // Ends a label declaration.
	CHARACTER_QUOTE = '\'' // Delimits a character literal.
)

// Line is a tokenized line of source.
type Line struct {
	LineNo int      // 1-based source line number.
	Words  []string // Whitespace separated words.
}

// String returns the words of the line joined by single spaces.
func (line Line) String() string {
	return strings.Join(line.Words, " ")
}

// syntax wraps an error with the location of the line.
func (line Line) syntax(err error) error {
	return &ErrSyntax{LineNo: line.LineNo, Line: line.String(), Err: err}
}

// Tokenize splits source text into lines of whitespace separated words.
// Blank lines are kept so line numbers stay aligned with the source.
func Tokenize(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno++
		lines = append(lines, Line{
			LineNo: lineno,
			Words:  strings.Fields(scanner.Text()),
		})
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrSyntax{LineNo: lineno + 1, Err: err}
	}

	return
}

// StripComments drops every word from a comment marker to the end of its
// line, then drops lines left with no words.
func StripComments(lines []Line) (out []Line) {
	out = make([]Line, 0, len(lines))
	for _, line := range lines {
		words := line.Words
		for n, word := range words {
			if strings.HasPrefix(word, COMMENT_MARKER) {
				words = words[:n]
				break
			}
		}
		if len(words) == 0 {
			continue
		}
		out = append(out, Line{LineNo: line.LineNo, Words: words})
	}

	return
}
