package csvcodec

import (
	"errors"
	"io"
	"log/slog"
	"slices"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfig    = errors.New("invalid config")
	ErrInvalidSeparator = errors.New("separator must be exactly one character")
	ErrInvalidQuote     = errors.New("quote char must be exactly one character")
	ErrUnknownKind      = errors.New("unknown conversion type")
	ErrCoercion         = errors.New("coercion failed")
)

// NoQuote is the quote char sentinel that disables quote interpretation.
const NoQuote = "\x00"

const noQuoteRune rune = 0

// Codec decodes single lines of delimited text into records and encodes
// records back into lines.
//
// A Codec is not safe for concurrent use. Decode and Reset mutate the captured
// header, so calls on one instance must be ordered by the caller. Separate
// instances share nothing.
type Codec struct {
	cfg   Config
	sep   rune
	quote rune
	log   *slog.Logger

	// header is nil until a header line has been captured.
	header []string
}

// New returns a Codec configured by opts on top of [DefaultConfig].
func New(opts ...Option) (*Codec, error) {
	cfg := DefaultConfig()
	o := &settings{cfg: &cfg}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	c, err := NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if o.log != nil {
		c.log = o.log
	}
	return c, nil
}

// NewFromConfig validates cfg and returns a Codec using it. The config is
// copied; later changes to cfg do not affect the Codec.
func NewFromConfig(cfg Config) (*Codec, error) {
	sep, quote, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	return &Codec{
		cfg:   cfg.clone(),
		sep:   sep,
		quote: quote,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Config returns a copy of the codec configuration.
func (c *Codec) Config() Config { return c.cfg.clone() }

// Header returns a copy of the captured header, or nil if none.
func (c *Codec) Header() []string { return slices.Clone(c.header) }

// Reset forgets the captured header so the next decoded line is read as a
// header again. It is a no-op when no header has been captured.
func (c *Codec) Reset() {
	if c.header == nil {
		return
	}
	c.log.Debug("csvcodec: header reset", slog.Int("columns", len(c.header)))
	c.header = nil
}

// capturesHeader reports whether the next decoded line is a header line.
func (c *Codec) capturesHeader() bool {
	return c.cfg.IncludeHeaders && c.cfg.Columns == nil && c.header == nil
}

// names returns the resolved column names, configured columns first.
func (c *Codec) names() []string {
	if c.cfg.Columns != nil {
		return c.cfg.Columns
	}
	return c.header
}
