// Package parser implements the recursive-descent grammar described for
// this format: the disambiguating value alternation, list and map
// composites, the skip-key pair form, and repeated-key folding. It is the
// one package in this module doing the hard work; everything else is glue
// around its entry point, ParseTopLevel.
package parser

import (
	errs "github.com/stellaris-save/parser/errors"
	"github.com/stellaris-save/parser/internal/lexer"
	"github.com/stellaris-save/parser/internal/literal"
	"github.com/stellaris-save/parser/token"
	"github.com/stellaris-save/parser/value"
)

// maxSnippet bounds how much trailing context an error message quotes.
const maxSnippet = 40

// parser walks a pre-scanned token stream. Backtracking is just saving and
// restoring an index into toks, which keeps the map/list disambiguation and
// the skip-key lookahead cheap and allocation-free.
type parser struct {
	document string
	src      []byte
	toks     []lexer.Token
	pos      int
}

// ParseTopLevel parses an entire document as a map body with no enclosing
// braces, per the top-level document grammar: the body must consume at
// least one pair, and whatever remains afterwards must be pure whitespace
// (i.e. the token stream must be at EOF).
func ParseTopLevel(document string, src []byte) (*value.Value, error) {
	file := token.NewFile(document, len(src))
	toks, err := lexer.ScanAll(file, src)
	if err != nil {
		// A lexical failure that follows a complete top-level body is
		// reported like any other non-whitespace remainder.
		if lerr, ok := err.(*lexer.Error); ok {
			off := lerr.Pos.Offset()
			if prefix, perr := lexer.ScanAll(token.NewFile(document, off), src[:off]); perr == nil {
				pp := &parser{document: document, src: src, toks: prefix}
				if len(pp.parsePairs()) > 0 && pp.cur().Kind == lexer.EOF {
					return nil, errs.NewIncomplete(document, lerr.Pos, snippetAt(src, off))
				}
			}
		}
		return nil, wrapLexError(document, src, err)
	}

	p := &parser{document: document, src: src, toks: toks}
	pairs := p.parsePairs()
	if len(pairs) == 0 {
		return nil, errs.Newf(document, p.curPos(), p.snippet(), "expected at least one key/value pair")
	}
	if p.cur().Kind != lexer.EOF {
		return nil, errs.NewIncomplete(document, p.curPos(), p.snippet())
	}
	return value.NewMap(fold(pairs)), nil
}

func wrapLexError(document string, src []byte, err error) error {
	if lerr, ok := err.(*lexer.Error); ok {
		off := lerr.Pos.Offset()
		return errs.Newf(document, lerr.Pos, snippetAt(src, off), "%s", lerr.Message)
	}
	return errs.Newf(document, token.NoPos, "", "%s", err.Error())
}

func (p *parser) at(offset int) lexer.Token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *parser) cur() lexer.Token { return p.at(0) }

func (p *parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) mark() int      { return p.pos }
func (p *parser) reset(m int)    { p.pos = m }
func (p *parser) curPos() token.Pos { return p.cur().Pos }

func (p *parser) snippet() string {
	return snippetAt(p.src, p.curPos().Offset())
}

func snippetAt(src []byte, offset int) string {
	if offset < 0 || offset >= len(src) {
		return ""
	}
	end := offset + maxSnippet
	if end > len(src) {
		end = len(src)
	}
	return string(src[offset:end])
}

// rawPair is a single parsed (key, value) pair before repeated-key
// folding. Order of appearance within the enclosing map body matters to
// the fold (see fold.go), so pairs are collected into a slice rather than
// inserted into a map directly.
type rawPair struct {
	key   string
	value *value.Value
}

// parsePairs greedily parses as many pairs as it can, stopping (without
// consuming any partial match) as soon as one fails.
func (p *parser) parsePairs() []rawPair {
	var pairs []rawPair
	for {
		m := p.mark()
		pr, ok := p.parsePair()
		if !ok {
			p.reset(m)
			return pairs
		}
		pairs = append(pairs, pr)
	}
}

// parsePair parses `key sep rhs`, where rhs is either a plain value or the
// skip-key form `identifier "=" value` (the inner identifier is discarded).
// The skip-key alternative is tried only when the inner separator is a
// literal "=" -- every real-world example of this construct
// (`k1 = k2 = v`) has one, and requiring it avoids misreading an ordinary
// two-token value as a bogus skipped key.
func (p *parser) parsePair() (rawPair, bool) {
	keyTok := p.cur()
	if keyTok.Kind != lexer.Word && keyTok.Kind != lexer.String {
		return rawPair{}, false
	}
	p.advance()
	key := keyTok.Literal

	if p.cur().Kind == lexer.Assign {
		p.advance()
	}

	if p.cur().Kind == lexer.Word && p.at(1).Kind == lexer.Assign {
		m := p.mark()
		p.advance() // discard inner key
		p.advance() // consume inner "="
		if v, ok := p.parseValue(); ok {
			return rawPair{key: key, value: v}, true
		}
		p.reset(m)
	}

	v, ok := p.parseValue()
	if !ok {
		return rawPair{}, false
	}
	return rawPair{key: key, value: v}, true
}

// parseValue tries each value form in a fixed order -- date, integer,
// float, quoted string, color literal, unquoted identifier, list, map --
// and commits to the first one that matches. The order is load-bearing,
// not incidental: dates look like floats, integers look like floats,
// `rgb`/`hsv` look like plain identifiers, and numeric tokens look like
// identifiers too, so reordering these silently changes what a given
// input parses as.
func (p *parser) parseValue() (*value.Value, bool) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.String:
		p.advance()
		return value.NewStr(tok.Literal), true

	case lexer.Word:
		return p.parseWordValue()

	case lexer.LBrace:
		return p.parseListOrMap()

	default:
		return nil, false
	}
}

func (p *parser) parseWordValue() (*value.Value, bool) {
	tok := p.cur()
	kind, i, f := literal.Classify(tok.Literal)
	switch kind {
	case literal.Date:
		p.advance()
		return value.NewStr(tok.Literal), true
	case literal.Integer:
		p.advance()
		return value.NewInt(i), true
	case literal.FloatKind:
		p.advance()
		return value.NewFloat(f), true
	default:
		if (tok.Literal == "rgb" || tok.Literal == "hsv") && p.at(1).Kind == lexer.LBrace {
			if v, ok := p.parseColor(); ok {
				return v, true
			}
			// Malformed color body: fall back to treating the token as a
			// plain unquoted identifier, same as the rest of this branch.
		}
		p.advance()
		return value.NewStr(tok.Literal), true
	}
}

// parseColor parses `("rgb"|"hsv") "{" float float float "}"`. The caller
// has already confirmed the leading word is "rgb"/"hsv" followed by "{".
func (p *parser) parseColor() (*value.Value, bool) {
	m := p.mark()
	space := p.advance().Literal
	p.advance() // "{"

	v1, ok := p.parseColorComponent()
	if !ok {
		p.reset(m)
		return nil, false
	}
	v2, ok := p.parseColorComponent()
	if !ok {
		p.reset(m)
		return nil, false
	}
	v3, ok := p.parseColorComponent()
	if !ok {
		p.reset(m)
		return nil, false
	}
	if p.cur().Kind != lexer.RBrace {
		p.reset(m)
		return nil, false
	}
	p.advance()
	return value.NewColor(space, v1, v2, v3), true
}

func (p *parser) parseColorComponent() (float64, bool) {
	tok := p.cur()
	if tok.Kind != lexer.Word {
		return 0, false
	}
	kind, i, f := literal.Classify(tok.Literal)
	switch kind {
	case literal.Integer:
		p.advance()
		return float64(i), true
	case literal.FloatKind:
		p.advance()
		return f, true
	default:
		return 0, false
	}
}

// parseListOrMap disambiguates the two brace-delimited composites. List is
// tried first: a braced body that parses cleanly as whitespace-separated
// values (e.g. `{ 0 3991148998 }`) must be read as a List even though it
// would also satisfy the map grammar one pair at a time.
func (p *parser) parseListOrMap() (*value.Value, bool) {
	m := p.mark()
	if items, ok := p.tryList(); ok {
		return value.NewList(items), true
	}
	p.reset(m)
	if mv, ok := p.tryMap(); ok {
		return value.NewMap(mv), true
	}
	p.reset(m)
	return nil, false
}

func (p *parser) tryList() ([]*value.Value, bool) {
	if p.cur().Kind != lexer.LBrace {
		return nil, false
	}
	p.advance()
	var items []*value.Value
	for {
		if p.cur().Kind == lexer.RBrace {
			p.advance()
			return items, true
		}
		v, ok := p.parseValue()
		if !ok {
			return nil, false
		}
		items = append(items, v)
	}
}

func (p *parser) tryMap() (*value.MapValue, bool) {
	if p.cur().Kind != lexer.LBrace {
		return nil, false
	}
	p.advance()
	pairs := p.parsePairs()
	if len(pairs) == 0 {
		return nil, false
	}
	if p.cur().Kind != lexer.RBrace {
		return nil, false
	}
	p.advance()
	return fold(pairs), true
}
