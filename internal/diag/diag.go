// Package diag provides the error type reported by the lexer.
package diag

import (
	"arith-lex/internal/span"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Kind names a class of error. The set is open.
type Kind string

const (
	IllegalCharacter Kind = "Illegal Character"
)

// Error is a lexing error anchored at a source range.
type Error struct {
	Kind    Kind          `json:"kind"`
	Details string        `json:"details"`
	Start   span.Position `json:"start"`
	End     span.Position `json:"end"`
}

// IllegalChar creates an Illegal Character error for the source text ch,
// which holds one character (or one undecodable byte).
func IllegalChar(start, end span.Position, ch string) *Error {
	return &Error{
		Kind:    IllegalCharacter,
		Details: quoteChar(ch),
		Start:   start,
		End:     end,
	}
}

// quoteChar wraps ch in single quotes, escaping it unless it is a single
// printable character.
func quoteChar(ch string) string {
	r, size := utf8.DecodeRuneInString(ch)
	if size == len(ch) && r != utf8.RuneError && unicode.IsPrint(r) {
		return "'" + ch + "'"
	}
	q := strconv.Quote(ch)
	return "'" + q[1:len(q)-1] + "'"
}

// String renders the error as "<kind>: <details> At file <name>, line <n>".
func (e *Error) String() string {
	return fmt.Sprintf("%s: %s At file %s, line %d", e.Kind, e.Details, e.Start.SourceName, e.Start.Line+1)
}

func (e *Error) Error() string {
	return e.String()
}

// Span returns the source range covered by the error.
func (e *Error) Span() span.Span {
	return span.Span{Start: e.Start, End: e.End}
}
