package csvcodec

import (
	"strings"
	"unicode/utf8"
)

type splitState int

const (
	fieldStart   splitState = iota // nothing read for the current field yet
	unquoted                       // inside a bare field
	quoted                         // inside a quoted span
	quotePending                   // quote seen in a quoted span: close or escape
)

// split breaks line into raw fields on sep, honoring quoted spans. A doubled
// quote inside a span is a literal quote. Malformed quoting never fails:
// a quote in the middle of a bare field is literal, text after a closing
// quote is appended to the field, and an unterminated span runs to the end
// of the line. With quote set to noQuoteRune the line is split on sep alone.
//
// Bytes are copied through unchanged, including invalid UTF-8. A single
// trailing line break is ignored. An empty line has no fields.
func split(line string, sep, quote rune) []string {
	line = trimLineBreak(line)
	if line == "" {
		return nil
	}
	if quote == noQuoteRune {
		return strings.Split(line, string(sep))
	}

	// Compare encoded bytes, not decoded runes: an invalid byte decodes as
	// utf8.RuneError and must not match a U+FFFD separator or quote.
	sepStr, quoteStr := string(sep), string(quote)
	var (
		fields []string
		field  strings.Builder
		state  = fieldStart
	)
	flush := func() {
		fields = append(fields, field.String())
		field.Reset()
		state = fieldStart
	}
	for i := 0; i < len(line); {
		_, size := utf8.DecodeRuneInString(line[i:])
		raw := line[i : i+size]
		i += size
		switch state {
		case fieldStart, unquoted:
			switch {
			case raw == sepStr:
				flush()
			case raw == quoteStr && state == fieldStart:
				state = quoted
			default:
				field.WriteString(raw)
				state = unquoted
			}
		case quoted:
			if raw == quoteStr {
				state = quotePending
				continue
			}
			field.WriteString(raw)
		case quotePending:
			switch raw {
			case quoteStr:
				field.WriteString(raw)
				state = quoted
			case sepStr:
				flush()
			default:
				field.WriteString(raw)
				state = unquoted
			}
		}
	}
	flush()
	return fields
}

func trimLineBreak(line string) string {
	if s, ok := strings.CutSuffix(line, "\n"); ok {
		return strings.TrimSuffix(s, "\r")
	}
	return line
}
