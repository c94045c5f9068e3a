package csvcodec

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Option configures a Codec built with [New].
type Option func(*settings) error

type settings struct {
	cfg *Config
	log *slog.Logger
}

// WithColumns sets the column names used for decoding and the field order
// used for encoding.
func WithColumns(names ...string) Option {
	return func(s *settings) error {
		s.cfg.Columns = slices.Clone(names)
		if s.cfg.Columns == nil {
			s.cfg.Columns = []string{}
		}
		return nil
	}
}

// WithSeparator sets the field delimiter. Default: ",".
func WithSeparator(sep string) Option {
	return func(s *settings) error {
		s.cfg.Separator = sep
		return nil
	}
}

// WithQuoteChar sets the quote character. Default: `"`.
func WithQuoteChar(quote string) Option {
	return func(s *settings) error {
		s.cfg.QuoteChar = quote
		return nil
	}
}

// WithoutQuoting disables quote handling. Same as WithQuoteChar(NoQuote).
func WithoutQuoting() Option {
	return WithQuoteChar(NoQuote)
}

// WithSkipEmptyColumns drops empty fields from decoded records.
func WithSkipEmptyColumns(skip bool) Option {
	return func(s *settings) error {
		s.cfg.SkipEmptyColumns = skip
		return nil
	}
}

// WithAutogenerateColumnNames controls naming of fields beyond the known
// columns. Default: true.
func WithAutogenerateColumnNames(auto bool) Option {
	return func(s *settings) error {
		s.cfg.AutogenerateColumnNames = auto
		return nil
	}
}

// WithIncludeHeaders reads the first decoded line as the column names.
func WithIncludeHeaders(include bool) Option {
	return func(s *settings) error {
		s.cfg.IncludeHeaders = include
		return nil
	}
}

// WithConvert coerces the named field to kind. It can be given more than once.
func WithConvert(field string, kind Kind) Option {
	return func(s *settings) error {
		if s.cfg.Convert == nil {
			s.cfg.Convert = make(map[string]Kind)
		}
		s.cfg.Convert[field] = kind
		return nil
	}
}

// WithConvertNames is like [WithConvert] but takes kind names such as
// "integer", as found in pipeline config files.
func WithConvertNames(m map[string]string) Option {
	return func(s *settings) error {
		for _, field := range slices.Sorted(maps.Keys(m)) {
			kind, err := ParseKind(m[field])
			if err != nil {
				return fmt.Errorf("%w: field %q: %w", ErrInvalidConfig, field, err)
			}
			if err := WithConvert(field, kind)(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithLogger sets the logger used for header capture and reset events.
// Default: discard.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) error {
		s.log = log
		return nil
	}
}
