// Package span provides the source cursor and span types used by the lexer.
package span

import "fmt"

// EOF is the character value used when the cursor is past the end of input.
const EOF rune = -1

// Position is a cursor into a named source buffer.
//
// Offset counts characters, not bytes. Line and Column are 0-based.
type Position struct {
	Offset     int    `json:"offset"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	SourceName string `json:"source"`
	SourceText string `json:"-"` // kept for diagnostics
}

// Start returns a cursor placed just before the first character of text.
func Start(name, text string) *Position {
	return &Position{
		Offset:     -1,
		Line:       0,
		Column:     -1,
		SourceName: name,
		SourceText: text,
	}
}

// Advance moves the cursor past ch and returns the receiver.
func (p *Position) Advance(ch rune) *Position {
	p.Offset++
	p.Column++
	if ch == '\n' {
		p.Line++
		p.Column = 0
	}
	return p
}

// Copy returns an independent snapshot of the cursor.
func (p *Position) Copy() Position {
	return *p
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Span represents a range in source code [Start, End).
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}
