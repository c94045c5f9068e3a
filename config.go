package csvcodec

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"
)

// Config holds the codec settings. The zero value is not usable; start from
// [DefaultConfig] or decode a document with [ParseConfig].
type Config struct {
	// Columns names the fields by position. Nil means no configured columns.
	// When set, it takes precedence over a captured header.
	Columns []string `json:"columns,omitempty" yaml:"columns,omitempty"`

	// Separator is the field delimiter, exactly one character.
	Separator string `json:"separator" yaml:"separator"`

	// QuoteChar is the quote character, exactly one character.
	// [NoQuote] disables quote handling.
	QuoteChar string `json:"quote_char" yaml:"quote_char"`

	// SkipEmptyColumns drops fields whose raw value is empty.
	SkipEmptyColumns bool `json:"skip_empty_columns" yaml:"skip_empty_columns"`

	// AutogenerateColumnNames names fields beyond the known columns
	// "column<N>" (1-based). When false those fields are dropped.
	AutogenerateColumnNames bool `json:"autogenerate_column_names" yaml:"autogenerate_column_names"`

	// IncludeHeaders reads the first decoded line as column names.
	// Ignored when Columns is set.
	IncludeHeaders bool `json:"include_headers" yaml:"include_headers"`

	// Convert maps final field names to the type their value is coerced to.
	Convert map[string]Kind `json:"convert,omitempty" yaml:"convert,omitempty"`
}

// DefaultConfig returns the default settings: comma separator, double quote,
// autogenerated column names.
func DefaultConfig() Config {
	return Config{
		Separator:               ",",
		QuoteChar:               `"`,
		AutogenerateColumnNames: true,
	}
}

func (c Config) validate() (sep, quote rune, err error) {
	sep, ok := singleRune(c.Separator)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrInvalidSeparator, c.Separator)
	}
	quote, ok = singleRune(c.QuoteChar)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrInvalidQuote, c.QuoteChar)
	}
	if sep == quote {
		return 0, 0, fmt.Errorf("%w: separator and quote char are both %q", ErrInvalidConfig, c.Separator)
	}
	if sep == '\n' || sep == '\r' {
		return 0, 0, fmt.Errorf("%w: %w: line break %q", ErrInvalidConfig, ErrInvalidSeparator, c.Separator)
	}
	for i, name := range c.Columns {
		if name == "" {
			return 0, 0, fmt.Errorf("%w: column %d has an empty name", ErrInvalidConfig, i+1)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(c.Convert)) {
		if !c.Convert[name].valid() {
			return 0, 0, fmt.Errorf("%w: %w %q for field %q", ErrInvalidConfig, ErrUnknownKind, c.Convert[name].String(), name)
		}
	}
	return sep, quote, nil
}

func (c Config) clone() Config {
	out := c
	out.Columns = slices.Clone(c.Columns)
	out.Convert = maps.Clone(c.Convert)
	return out
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, false
	}
	return r, true
}
