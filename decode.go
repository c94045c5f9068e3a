package csvcodec

import (
	"log/slog"
	"strconv"
)

const autogeneratedPrefix = "column"

// Decode parses one line into a record. It reports false with a nil record
// when the line was consumed as the header: IncludeHeaders is set, no
// Columns are configured and no header has been captured yet. An empty line
// is never taken as a header.
//
// A value that cannot be converted to its configured kind fails the whole
// call with a [*CoercionError]. The captured header is unaffected and later
// lines decode normally.
func (c *Codec) Decode(line string) (*Record, bool, error) {
	fields := split(line, c.sep, c.quote)

	if c.capturesHeader() {
		if len(fields) == 0 {
			return nil, false, nil
		}
		c.header = fields
		c.log.Debug("csvcodec: header captured", slog.Any("columns", fields))
		return nil, false, nil
	}

	names := c.names()
	rec := &Record{}
	for i, raw := range fields {
		name, ok := fieldName(names, i, c.cfg.AutogenerateColumnNames)
		if !ok {
			// Names run out at i; with autogeneration off every later field drops.
			break
		}
		if raw == "" && c.cfg.SkipEmptyColumns {
			continue
		}
		var value any = raw
		if kind, ok := c.cfg.Convert[name]; ok {
			v, err := coerce(raw, kind)
			if err != nil {
				return nil, false, &CoercionError{Field: name, Kind: kind, Value: raw, Err: err}
			}
			value = v
		}
		rec.Set(name, value)
	}
	return rec, true, nil
}

// DecodeFunc decodes line and passes the record, if any, to emit.
func (c *Codec) DecodeFunc(line string, emit func(*Record)) error {
	rec, ok, err := c.Decode(line)
	if err != nil {
		return err
	}
	if ok {
		emit(rec)
	}
	return nil
}

// fieldName returns the name for the field at position i. A blank name in a
// captured header is replaced by the positional name, so "a,,c" names the
// second field column2.
func fieldName(names []string, i int, autogenerate bool) (string, bool) {
	switch {
	case i < len(names) && names[i] != "":
		return names[i], true
	case i >= len(names) && !autogenerate:
		return "", false
	}
	return autogeneratedPrefix + strconv.Itoa(i+1), true
}
