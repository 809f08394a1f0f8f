// Package token defines the token types produced by the lexer.
package token

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Kind represents the type of a token.
type Kind int

const (
	// Literals
	INT   Kind = iota // integer literals: 123
	FLOAT             // float literals: 3.14

	// Operators
	PLUS  // +
	MINUS // -
	MUL   // *
	DIV   // /

	// Delimiters
	LPAREN // (
	RPAREN // )

	WHITESPACE // a single ' '
)

var kindNames = map[Kind]string{
	INT:        "TT_INT",
	FLOAT:      "TT_FLOAT",
	PLUS:       "TT_PLUS",
	MINUS:      "TT_MINUS",
	MUL:        "TT_MUL",
	DIV:        "TT_DIV",
	LPAREN:     "TT_LPAREN",
	RPAREN:     "TT_RPAREN",
	WHITESPACE: "TT_WHITESPACE",
}

// String returns the canonical name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsNumeric returns true if tokens of this kind carry a value.
func (k Kind) IsNumeric() bool {
	return k == INT || k == FLOAT
}

var symbols = map[rune]Kind{
	'+': PLUS,
	'-': MINUS,
	'*': MUL,
	'/': DIV,
	'(': LPAREN,
	')': RPAREN,
}

// Lookup returns the kind of a single-character symbol.
func Lookup(ch rune) (Kind, bool) {
	kind, ok := symbols[ch]
	return kind, ok
}

// Token is a lexical token. Int and Float are only meaningful for INT and
// FLOAT tokens respectively; Big replaces Int for integers outside int64.
// Use the constructors to build one.
type Token struct {
	Kind  Kind
	Int   int64
	Big   *big.Int
	Float float64
}

// New returns a token without a value. It panics on a numeric kind.
func New(kind Kind) Token {
	if kind.IsNumeric() {
		panic(fmt.Sprintf("token: %s requires a value", kind))
	}
	return Token{Kind: kind}
}

// NewInt returns an INT token.
func NewInt(v int64) Token {
	return Token{Kind: INT, Int: v}
}

// NewBigInt returns an INT token, keeping v as int64 when it fits.
func NewBigInt(v *big.Int) Token {
	if v.IsInt64() {
		return NewInt(v.Int64())
	}
	return Token{Kind: INT, Big: new(big.Int).Set(v)}
}

// NewFloat returns a FLOAT token.
func NewFloat(v float64) Token {
	return Token{Kind: FLOAT, Float: v}
}

// Value returns the numeric payload, if any: an int64 or *big.Int for INT,
// a float64 for FLOAT.
func (t Token) Value() (interface{}, bool) {
	switch t.Kind {
	case INT:
		if t.Big != nil {
			return t.Big, true
		}
		return t.Int, true
	case FLOAT:
		return t.Float, true
	}
	return nil, false
}

// Literal returns the value as text, or "" for tokens without a value.
func (t Token) Literal() string {
	switch t.Kind {
	case INT:
		if t.Big != nil {
			return t.Big.String()
		}
		return strconv.FormatInt(t.Int, 10)
	case FLOAT:
		return FormatFloat(t.Float)
	}
	return ""
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	if t.Kind.IsNumeric() {
		return t.Kind.String() + ":" + t.Literal()
	}
	return t.Kind.String()
}

// FormatFloat formats v so that it always reads as a float: 1 -> "1.0".
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}
