// Package lexer implements the lexical analysis (tokenization) for arithmetic
// expressions.
package lexer

import (
	"arith-lex/internal/diag"
	"arith-lex/internal/span"
	"arith-lex/internal/token"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// State is the scanning state of a Lexer.
type State int

const (
	Scanning State = iota
	Done
	Errored
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Done:
		return "done"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// Lexer tokenizes source code into a sequence of tokens.
//
// A Lexer is single-use: it scans once and afterwards returns the same
// result from Tokenize.
type Lexer struct {
	source string
	next   int // byte offset of the character after ch

	pos    *span.Position
	ch     rune   // character under pos, or span.EOF
	chText string // source bytes of ch

	state  State
	tokens []token.Token
	err    *diag.Error
}

// New creates a new Lexer for the given source text.
func New(source, filename string) *Lexer {
	l := &Lexer{
		source: source,
		pos:    span.Start(filename, source),
		ch:     span.EOF,
	}
	l.advance()
	return l
}

// Run tokenizes source read from filename.
func Run(filename, source string) ([]token.Token, *diag.Error) {
	return New(source, filename).Tokenize()
}

// State reports whether the lexer is still scanning or has terminated.
func (l *Lexer) State() State {
	return l.state
}

// Tokenize scans the entire source and returns all tokens, or the first
// error and no tokens.
func (l *Lexer) Tokenize() ([]token.Token, *diag.Error) {
	if l.state != Scanning {
		return l.tokens, l.err
	}

	var tokens []token.Token
	for l.ch != span.EOF {
		switch {
		case l.ch == '\t':
			l.advance()
		case isDigit(l.ch) || l.ch == '.':
			tokens = append(tokens, l.readNumber())
		case l.ch == ' ':
			tokens = append(tokens, token.New(token.WHITESPACE))
			l.advance()
		default:
			if kind, ok := token.Lookup(l.ch); ok {
				tokens = append(tokens, token.New(kind))
				l.advance()
				continue
			}
			start := l.pos.Copy()
			ch := l.chText
			l.advance()
			return l.fail(diag.IllegalChar(start, l.pos.Copy(), ch))
		}
	}

	l.state = Done
	l.tokens = tokens
	return tokens, nil
}

// ---- internal helpers ----

// advance moves past the current character and loads the next one.
func (l *Lexer) advance() {
	l.pos.Advance(l.ch)
	if l.next >= len(l.source) {
		l.ch, l.chText = span.EOF, ""
		return
	}
	// an undecodable byte is kept as a single character
	r, size := utf8.DecodeRuneInString(l.source[l.next:])
	l.ch, l.chText = r, l.source[l.next:l.next+size]
	l.next += size
}

func (l *Lexer) fail(err *diag.Error) ([]token.Token, *diag.Error) {
	l.state = Errored
	l.err = err
	return nil, err
}

// readNumber reads a run of digits with at most one decimal point. A second
// point ends the run and is left for the next call. Integers beyond int64
// are kept exactly; floats beyond float64 become +Inf.
func (l *Lexer) readNumber() token.Token {
	var text strings.Builder
	dots := 0

	for l.ch != span.EOF && (isDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if dots == 1 {
				break
			}
			dots++
			if text.Len() == 0 {
				text.WriteByte('0')
			}
		}
		text.WriteRune(l.ch)
		l.advance()
	}

	if dots == 0 {
		if v, err := strconv.ParseInt(text.String(), 10, 64); err == nil {
			return token.NewInt(v)
		}
		v, _ := new(big.Int).SetString(text.String(), 10)
		return token.NewBigInt(v)
	}

	// the text is always well-formed, so the only error is ErrRange
	v, _ := strconv.ParseFloat(text.String(), 64)
	return token.NewFloat(v)
}

// ---- character classification ----

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
