// Package clue turns free-form clue text into integer run-length sequences.
package clue

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseError reports a token that is not a nonnegative integer. It is
// distinct from the valid empty input, which means an all-empty line.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("clue: invalid token %q: want a nonnegative integer", e.Token)
}

// Parse splits text on commas and/or whitespace and returns the run lengths
// in order. Blank input yields an empty (zero-clue) sequence.
func Parse(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, &ParseError{Token: f}
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseLines parses one clue sequence per input line.
func ParseLines(texts []string) ([][]int, error) {
	out := make([][]int, 0, len(texts))
	for i, t := range texts {
		seq, err := Parse(t)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		out = append(out, seq)
	}
	return out, nil
}
