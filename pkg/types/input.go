package types

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineReader reads whole lines of user input, trimming surrounding
// whitespace. It is the single input abstraction shared by interactive
// creation, Contacts operations, and the session loop.
type LineReader struct {
	s *bufio.Scanner
}

// NewLineReader wraps r in a line-oriented reader.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{s: bufio.NewScanner(r)}
}

// Line returns the next trimmed input line. ok is false once the source is
// exhausted; callers treat end of input as an implicit exit.
func (r *LineReader) Line() (line string, ok bool) {
	if !r.s.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.s.Text()), true
}

// readField prompts on out, reads one line from in, and returns the
// validated value for the given field. The field diagnostic is printed
// when the raw value is rejected. End of input reads as an empty value.
func readField(in *LineReader, out io.Writer, prompt, field string) string {
	fmt.Fprint(out, prompt)
	raw, _ := in.Line()
	value, _, diag := ValidateField(field, raw)
	if diag != "" {
		fmt.Fprintln(out, diag)
	}
	return value
}
