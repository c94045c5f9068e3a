// Package csvcodec converts between single lines of delimited text and
// structured records.
//
// A [Codec] is built once with [New] or [NewFromConfig] and then used line by
// line. [Codec.Decode] turns a line into a [Record]; [Codec.Encode] turns a
// record into a newline-terminated line. The codec does no I/O of its own:
// framing lines out of a byte stream is left to the caller.
//
// # Decoding
//
// Each line is split on the separator, honoring quoted spans. Fields are then
// named by position, in order of precedence:
//
//   - the configured columns ([WithColumns])
//   - the header captured from the first line ([WithIncludeHeaders])
//   - "column1", "column2", ... generated from the 1-based position
//
// When a line has more fields than there are names, the extra fields get
// generated names, or are dropped when [WithAutogenerateColumnNames] is false.
// Names without a matching field are not assigned.
//
//	c, _ := csvcodec.New(csvcodec.WithColumns("first", "last"))
//	rec, _, _ := c.Decode("big,bird")
//	rec.Get("first") // "big"
//
// # Headers
//
// With [WithIncludeHeaders] and no configured columns, the first decoded line
// is stored as the header and produces no record. The header is kept until
// [Codec.Reset], which callers invoke when a new input stream begins.
//
// # Conversion
//
// [WithConvert] coerces a field, by its final name, to [Integer] (int64),
// [Float] (float64) or [Boolean] (exactly "true" or "false"). Values that do
// not parse fail the decode call with a [*CoercionError].
//
// # Quoting
//
// A field starting with the quote character is read up to the matching quote,
// with doubled quotes standing for one. Malformed quoting is tolerated rather
// than reported. [WithoutQuoting] (or [NoQuote]) turns quote handling off.
//
// # Encoding
//
// With configured columns a record is written in column order, skipping
// missing fields and leaving out unnamed ones. Without columns every field is
// written in record order. Fields containing the separator, the quote
// character or a line break are quoted. No header line is written;
// [Codec.EncodeHeader] renders one on request.
//
// # Configuration
//
// Options map one to one onto [Config] fields. [ParseConfig] reads the same
// settings from a YAML or JSON document.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidConfig] — rejected configuration, returned by the constructors
//   - [ErrInvalidSeparator], [ErrInvalidQuote] — not exactly one character
//   - [ErrUnknownKind] — unrecognized conversion type name
//   - [ErrCoercion] — a field value did not parse as its configured kind
package csvcodec
