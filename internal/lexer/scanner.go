package lexer

import (
	"fmt"

	"github.com/stellaris-save/parser/token"
)

// Error reports a lexical failure (an illegal byte, or a malformed quoted
// string) at a specific source position.
type Error struct {
	Pos     token.Pos
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Message) }

// forbidden holds the characters that terminate (and may never appear
// inside) an unquoted identifier: quote, assignment, braces, and the
// handful of punctuation characters the format reserves even though this
// grammar never assigns them a meaning of their own.
const forbidden = "\"={}<>[]#$|"

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isForbidden(b byte) bool {
	for i := 0; i < len(forbidden); i++ {
		if forbidden[i] == b {
			return true
		}
	}
	return false
}

func isWordByte(b byte) bool {
	return !isSpace(b) && !isForbidden(b)
}

// ScanAll tokenizes src in full and returns the resulting token stream,
// terminated by a single EOF token. Scanning stops at the first
// unrecognized byte or malformed quoted string; there is no recovery, in
// keeping with the all-or-nothing parsing policy for a document.
func ScanAll(file *token.File, src []byte) ([]Token, error) {
	var toks []Token
	pos := 0
	for pos < len(src) {
		b := src[pos]
		if isSpace(b) {
			if b == '\n' {
				file.AddLine(pos + 1)
			}
			pos++
			continue
		}
		start := pos
		switch {
		case b == '{':
			toks = append(toks, Token{Kind: LBrace, Literal: "{", Pos: file.Pos(start)})
			pos++
		case b == '}':
			toks = append(toks, Token{Kind: RBrace, Literal: "}", Pos: file.Pos(start)})
			pos++
		case b == '=':
			toks = append(toks, Token{Kind: Assign, Literal: "=", Pos: file.Pos(start)})
			pos++
		case b == '"':
			lit, next, err := scanQuoted(file, src, pos)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Kind: String, Literal: lit, Pos: file.Pos(start)})
			pos = next
		case isWordByte(b):
			next := pos + 1
			for next < len(src) && isWordByte(src[next]) {
				next++
			}
			toks = append(toks, Token{Kind: Word, Literal: string(src[pos:next]), Pos: file.Pos(start)})
			pos = next
		default:
			return nil, &Error{Pos: file.Pos(start), Message: fmt.Sprintf("illegal character %q", b)}
		}
	}
	toks = append(toks, Token{Kind: EOF, Pos: file.Pos(len(src))})
	return toks, nil
}

// scanQuoted scans the quoted string starting at src[start] (which must be
// a '"') and returns the raw content between the quotes (escapes included
// verbatim, not interpreted) plus the offset just past the closing quote.
func scanQuoted(file *token.File, src []byte, start int) (string, int, error) {
	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '"':
			return string(src[start+1 : i]), i + 1, nil
		case '\\':
			if i+1 >= len(src) || (src[i+1] != '"' && src[i+1] != '\\') {
				return "", 0, &Error{Pos: file.Pos(i), Message: "invalid escape in quoted string"}
			}
			i += 2
		case '\n':
			file.AddLine(i + 1)
			i++
		default:
			i++
		}
	}
	return "", 0, &Error{Pos: file.Pos(start), Message: "unterminated quoted string"}
}
