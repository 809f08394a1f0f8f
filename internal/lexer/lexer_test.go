package lexer

import (
	"arith-lex/internal/diag"
	"arith-lex/internal/token"
	"math"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeSimple(t *testing.T) {
	tokens, err := Run("test.txt", "1 + 2")
	require.Nil(t, err)

	assert.Equal(t, []token.Token{
		token.NewInt(1),
		token.New(token.WHITESPACE),
		token.New(token.PLUS),
		token.New(token.WHITESPACE),
		token.NewInt(2),
	}, tokens)
}

func TestTokenizeParens(t *testing.T) {
	tokens, err := Run("test.txt", "(3*4)")
	require.Nil(t, err)

	assert.Equal(t, []token.Token{
		token.New(token.LPAREN),
		token.NewInt(3),
		token.New(token.MUL),
		token.NewInt(4),
		token.New(token.RPAREN),
	}, tokens)
}

func TestTokenizeOperators(t *testing.T) {
	tokens, err := Run("test.txt", "+-*/()")
	require.Nil(t, err)

	assert.Equal(t, []token.Kind{
		token.PLUS, token.MINUS, token.MUL, token.DIV, token.LPAREN, token.RPAREN,
	}, kinds(tokens))
}

func TestTokenizeNumbers(t *testing.T) {
	tokens, err := Run("test.txt", "42")
	require.Nil(t, err)
	assert.Equal(t, []token.Token{token.NewInt(42)}, tokens)

	tokens, err = Run("test.txt", "3.14")
	require.Nil(t, err)
	assert.Equal(t, []token.Token{token.NewFloat(3.14)}, tokens)

	tokens, err = Run("test.txt", "007 10.")
	require.Nil(t, err)
	assert.Equal(t, []token.Token{token.NewInt(7), token.New(token.WHITESPACE), token.NewFloat(10)}, tokens)
}

// A second decimal point ends the literal and starts a new one, so
// malformed numbers split instead of failing.
func TestTokenizeDoubleDecimalPoint(t *testing.T) {
	tokens, err := Run("test.txt", "1.2.3")
	require.Nil(t, err)

	assert.Equal(t, []token.Token{token.NewFloat(1.2), token.NewFloat(0.3)}, tokens)
}

func TestTokenizeLeadingDecimalPoint(t *testing.T) {
	tokens, err := Run("test.txt", ".5 .")
	require.Nil(t, err)

	assert.Equal(t, []token.Token{token.NewFloat(0.5), token.New(token.WHITESPACE), token.NewFloat(0)}, tokens)
}

// Tabs are dropped while every space becomes a token.
func TestTokenizeTabsAndSpaces(t *testing.T) {
	tokens, err := Run("test.txt", "\t1\t\t+  2\t")
	require.Nil(t, err)

	assert.Equal(t, []token.Kind{
		token.INT, token.PLUS, token.WHITESPACE, token.WHITESPACE, token.INT,
	}, kinds(tokens))
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := Run("test.txt", "")
	assert.Nil(t, err)
	assert.Empty(t, tokens)

	tokens, err = Run("test.txt", "\t\t")
	assert.Nil(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	tokens, err := Run("test.txt", "5 & 2")
	require.NotNil(t, err)
	assert.Empty(t, tokens)

	assert.Equal(t, diag.IllegalCharacter, err.Kind)
	assert.Contains(t, err.Details, "'&'")
	assert.Equal(t, 0, err.Start.Line)
	assert.Equal(t, 2, err.Start.Offset)
	assert.Equal(t, 2, err.Start.Column)
	assert.Equal(t, 3, err.End.Offset)
	assert.Equal(t, "test.txt", err.Start.SourceName)
	assert.Equal(t, "Illegal Character: '&' At file test.txt, line 1", err.String())
}

func TestTokenizeStopsAtFirstError(t *testing.T) {
	tokens, err := Run("<stdin>", "1 + x + y")
	require.NotNil(t, err)
	assert.Nil(t, tokens)
	assert.Equal(t, "'x'", err.Details)
	assert.Equal(t, 4, err.Start.Offset)
}

func TestTokenizeIllegalCharacters(t *testing.T) {
	cases := map[string]string{
		"a":    "'a'",
		"Z":    "'Z'",
		"%":    "'%'",
		"=":    "'='",
		"_":    "'_'",
		"e":    "'e'",
		"é":    "'é'",
		"世":    "'世'",
		"\n":   `'\n'`,
		"\r":   `'\r'`,
		"\xff": `'\xff'`,
	}
	for ch, details := range cases {
		tokens, err := Run("test.txt", "1+"+ch+"2")
		if assert.NotNil(t, err, "input %q", ch) {
			assert.Empty(t, tokens)
			assert.Equal(t, details, err.Details, "input %q", ch)
			assert.Equal(t, 2, err.Start.Offset, "input %q", ch)
			assert.Equal(t, 1, err.Span().Len(), "input %q", ch)
		}
	}
}

// Multi-byte characters count as one position.
func TestTokenizeOffsetsCountCharacters(t *testing.T) {
	_, err := Run("test.txt", "1 é2 ?")
	require.NotNil(t, err)
	assert.Equal(t, "'é'", err.Details)
	assert.Equal(t, 2, err.Start.Column)

	_, err = Run("test.txt", "\xff\xfe")
	require.NotNil(t, err)
	assert.Equal(t, `'\xff'`, err.Details)
	assert.Equal(t, 0, err.Start.Offset)
	assert.Equal(t, 1, err.End.Offset)
}

func TestTokenizeAllowedAlphabet(t *testing.T) {
	src := strings.Repeat("(12 + 3.4)\t* 5 / 6 - 7", 50)
	tokens, err := Run("test.txt", src)
	require.Nil(t, err)
	assert.NotEmpty(t, tokens)
	for _, tok := range tokens {
		_, hasValue := tok.Value()
		assert.Equal(t, tok.Kind.IsNumeric(), hasValue)
	}
}

func TestTokenizeLargeNumbers(t *testing.T) {
	tokens, err := Run("test.txt", "1 + 99999999999999999999")
	require.Nil(t, err)
	require.Len(t, tokens, 5)

	want, _ := new(big.Int).SetString("99999999999999999999", 10)
	got, ok := tokens[4].Value()
	assert.True(t, ok)
	if assert.IsType(t, (*big.Int)(nil), got) {
		assert.Equal(t, 0, want.Cmp(got.(*big.Int)))
	}
	assert.Equal(t, "TT_INT:99999999999999999999", tokens[4].String())

	tokens, err = Run("test.txt", "9223372036854775807")
	require.Nil(t, err)
	assert.Equal(t, []token.Token{token.NewInt(math.MaxInt64)}, tokens)

	tokens, err = Run("test.txt", strings.Repeat("9", 400)+".0")
	require.Nil(t, err)
	require.Len(t, tokens, 1)
	assert.True(t, math.IsInf(tokens[0].Float, 1))
}

func TestTokenizeIsSingleUse(t *testing.T) {
	l := New("1 2", "test.txt")
	assert.Equal(t, Scanning, l.State())

	first, err := l.Tokenize()
	require.Nil(t, err)
	assert.Equal(t, Done, l.State())

	second, err := l.Tokenize()
	require.Nil(t, err)
	assert.Equal(t, first, second)

	l = New("?", "test.txt")
	_, err = l.Tokenize()
	require.NotNil(t, err)
	assert.Equal(t, Errored, l.State())

	_, again := l.Tokenize()
	assert.Same(t, err, again)
}

func TestTokenizeConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens, err := Run("test.txt", "(1 + 2.5) * 3")
			assert.Nil(t, err)
			assert.Len(t, tokens, 11)
		}()
	}
	wg.Wait()
}
