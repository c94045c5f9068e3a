package csvcodec

import (
	"fmt"
	"io"
	"strconv"
)

// Encode renders rec as one newline-terminated line. With Columns configured
// the fields are written in that order: names missing from rec are skipped
// and fields not named are left out. Otherwise every field is written in
// record order. An empty record encodes as "\n".
//
// Encode never writes a header line; see [Codec.EncodeHeader].
func (c *Codec) Encode(rec *Record) string {
	return join(c.fields(rec), c.sep, c.quote)
}

// EncodeTo writes the encoded record to w.
func (c *Codec) EncodeTo(w io.Writer, rec *Record) error {
	return writeJoined(w, c.fields(rec), c.sep, c.quote)
}

// EncodeHeader renders the configured columns, or the captured header, as
// one line. It returns "" when there are neither.
func (c *Codec) EncodeHeader() string {
	names := c.names()
	if len(names) == 0 {
		return ""
	}
	return join(names, c.sep, c.quote)
}

func (c *Codec) fields(rec *Record) []string {
	if c.cfg.Columns == nil {
		out := make([]string, 0, rec.Len())
		for _, v := range rec.All() {
			out = append(out, formatValue(v))
		}
		return out
	}
	out := make([]string, 0, len(c.cfg.Columns))
	for _, name := range c.cfg.Columns {
		if v, ok := rec.Get(name); ok {
			out = append(out, formatValue(v))
		}
	}
	return out
}

// formatValue renders a field value as text.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
