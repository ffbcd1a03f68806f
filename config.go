package parser

import (
	"log/slog"
	"os"
)

// config holds parse-time options assembled from a list of Option values,
// following the same append-only functional-options shape as the rest of
// the pack's configuration surfaces.
type config struct {
	logger *slog.Logger
}

// Option configures a call to ParseDocument or ParseSave.
type Option func(*config)

// WithLogger directs diagnostic logging to l instead of the default
// handler written to stderr. A nil logger discards all log output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{
		logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(discard{}, nil))
	}
	return c
}

// discard is an io.Writer that throws away everything written to it, used
// to back a logger when the caller passes WithLogger(nil).
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
