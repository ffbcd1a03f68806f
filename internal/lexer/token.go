// Package lexer turns raw document bytes into the flat token stream the
// parser walks. It deliberately does very little interpretation: numbers,
// dates, and unquoted identifiers are all handed to the parser as a single
// Word token kind and classified there, per the disambiguating alternation
// in the grammar.
package lexer

import "github.com/stellaris-save/parser/token"

// Kind enumerates the lexical categories produced by ScanAll.
type Kind int

const (
	EOF Kind = iota
	Illegal
	LBrace // {
	RBrace // }
	Assign // =
	// Word is a maximal run of unquoted-identifier characters. The parser
	// classifies its literal text as a date, integer, float, the start of
	// a color literal, or a plain unquoted string.
	Word
	// String is a quoted string. Literal holds the raw content between the
	// quotes, escapes included verbatim.
	String
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Illegal:
		return "ILLEGAL"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Assign:
		return "="
	case Word:
		return "WORD"
	case String:
		return "STRING"
	default:
		return "?"
	}
}

// Token is one lexical item together with its source position.
type Token struct {
	Kind    Kind
	Literal string
	Pos     token.Pos
}
