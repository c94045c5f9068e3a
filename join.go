package csvcodec

import (
	"io"
	"strings"
)

// join renders fields as one newline-terminated line. A field is quoted when
// it contains sep, quote or a line break, with inner quotes doubled. A lone
// empty field is quoted too so it does not decode as an empty line. With
// quote set to noQuoteRune fields are written as-is.
func join(fields []string, sep, quote rune) string {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteRune(sep)
		}
		if quote == noQuoteRune || !fieldNeedsQuotes(field, sep, quote, len(fields)) {
			b.WriteString(field)
			continue
		}
		q := string(quote)
		b.WriteString(q)
		b.WriteString(strings.ReplaceAll(field, q, q+q))
		b.WriteString(q)
	}
	b.WriteByte('\n')
	return b.String()
}

func fieldNeedsQuotes(field string, sep, quote rune, n int) bool {
	if field == "" {
		return n == 1
	}
	return strings.Contains(field, string(sep)) ||
		strings.Contains(field, string(quote)) ||
		strings.ContainsAny(field, "\r\n")
}

// writeJoined writes the joined line to w.
func writeJoined(w io.Writer, fields []string, sep, quote rune) error {
	_, err := io.WriteString(w, join(fields, sep, quote))
	return err
}
