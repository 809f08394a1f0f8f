package main

import (
	"arith-lex/internal/config"
	"arith-lex/internal/diag"
	"arith-lex/internal/token"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ugorji/go/codec"
)

type tokenRecord struct {
	Kind  string      `json:"kind" codec:"kind"`
	Value interface{} `json:"value,omitempty" codec:"value,omitempty"`
}

type errorRecord struct {
	Kind    string `json:"kind" codec:"kind"`
	Details string `json:"details" codec:"details"`
	Message string `json:"message" codec:"message"`
	Line    int    `json:"line" codec:"line"`
	Column  int    `json:"column" codec:"column"`
	Offset  int    `json:"offset" codec:"offset"`
}

type document struct {
	Tokens []tokenRecord `json:"tokens" codec:"tokens"`
	Error  *errorRecord  `json:"error,omitempty" codec:"error,omitempty"`
}

func newDocument(tokens []token.Token, lexErr *diag.Error) document {
	doc := document{Tokens: make([]tokenRecord, 0, len(tokens))}
	for _, tok := range tokens {
		doc.Tokens = append(doc.Tokens, tokenRecord{Kind: tok.Kind.String(), Value: recordValue(tok)})
	}
	if lexErr != nil {
		doc.Error = &errorRecord{
			Kind:    string(lexErr.Kind),
			Details: lexErr.Details,
			Message: lexErr.String(),
			Line:    lexErr.Start.Line,
			Column:  lexErr.Start.Column,
			Offset:  lexErr.Start.Offset,
		}
	}
	return doc
}

// recordValue returns the token value in a form both encoders accept:
// big integers as a JSON number literal and infinite floats as text.
func recordValue(tok token.Token) interface{} {
	value, ok := tok.Value()
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case *big.Int:
		return json.Number(v.String())
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return tok.Literal()
		}
	}
	return value
}

// dumpConfig prints struct fields instead of the String methods.
var dumpConfig = spew.ConfigState{Indent: " ", DisableMethods: true}

// writeTokens writes tokens (or the error) to w in the given format.
func writeTokens(w io.Writer, format string, tokens []token.Token, lexErr *diag.Error) error {
	switch format {
	case config.FormatText:
		for _, tok := range tokens {
			line := tok.Kind.String()
			if tok.Kind.IsNumeric() {
				line = fmt.Sprintf("%-14s %s", tok.Kind, tok.Literal())
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(tokens, lexErr))
	case config.FormatMsgpack:
		h := new(codec.MsgpackHandle)
		return codec.NewEncoder(w, h).Encode(newDocument(tokens, lexErr))
	case config.FormatDump:
		if lexErr != nil {
			dumpConfig.Fdump(w, lexErr)
			return nil
		}
		dumpConfig.Fdump(w, tokens)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// formatTokens renders tokens as a bracketed list: [TT_INT:1, TT_PLUS].
func formatTokens(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
