// Package parser parses Stellaris save-game documents: the bespoke
// brace-delimited key/value text format used for a save's meta and
// gamestate entries. The grammar itself lives in internal/parser; this
// package is the public surface -- parsing a single document, parsing a
// full SaveFile, and the Value tree (see the value package) that both
// operations produce.
package parser

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	grammar "github.com/stellaris-save/parser/internal/parser"
	"github.com/stellaris-save/parser/value"
)

// SaveFile is the input record handed to ParseSave. Filename and GameID
// are supplied by the (out of scope) container reader that unzipped the
// archive and derived the identifier from its containing directory name.
type SaveFile struct {
	Filename  string
	GameID    string
	Meta      string
	Gamestate string
}

// ParsedSaveFile is the result of successfully parsing both documents of a
// SaveFile. Both Meta and Gamestate are Map values.
type ParsedSaveFile struct {
	Meta      *value.Value
	Gamestate *value.Value
	GameID    string
	ParsedAt  time.Time
}

// ParseDocument parses a single document (named by the document argument,
// conventionally "meta" or "gamestate") into a Value tree. document is
// used only for diagnostics: it appears in error messages and log lines,
// not in the grammar itself.
func ParseDocument(document string, src []byte, opts ...Option) (*value.Value, error) {
	cfg := newConfig(opts)
	id := uuid.New()

	cfg.logger.Debug("parsing document",
		"document", document, "correlation_id", id, "bytes", len(src))

	v, err := grammar.ParseTopLevel(document, src)
	if err != nil {
		cfg.logger.Error("document parse failed",
			"document", document, "correlation_id", id, "error", err)
		return nil, err
	}

	cfg.logger.Debug("document parsed",
		"document", document, "correlation_id", id)
	return v, nil
}

// ParseSave parses both documents of sf. Parsing is all-or-nothing: if
// either document fails, ParseSave returns a single error naming which
// document failed and the underlying cause, and no partial result.
func ParseSave(sf SaveFile, opts ...Option) (*ParsedSaveFile, error) {
	cfg := newConfig(opts)
	id := uuid.New()

	cfg.logger.Info("parsing save",
		"filename", sf.Filename, "game_id", sf.GameID, "correlation_id", id)

	// Tag both sub-parses' log lines with this call's ID so that a meta
	// failure and a gamestate failure from the same call can be matched up.
	subOpts := append(append([]Option{}, opts...), WithLogger(cfg.logger.With("save_correlation_id", id)))

	meta, err := ParseDocument("meta", []byte(sf.Meta), subOpts...)
	if err != nil {
		return nil, fmt.Errorf("save %s: failed to parse meta: %w", sf.Filename, err)
	}

	gamestate, err := ParseDocument("gamestate", []byte(sf.Gamestate), subOpts...)
	if err != nil {
		return nil, fmt.Errorf("save %s: failed to parse gamestate: %w", sf.Filename, err)
	}

	return &ParsedSaveFile{
		Meta:      meta,
		Gamestate: gamestate,
		GameID:    sf.GameID,
		ParsedAt:  time.Now(),
	}, nil
}
