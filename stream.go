package csvcodec

import (
	"io"
	"iter"
)

// DecodeAll decodes lines as they arrive. Header lines produce nothing.
// A line that fails to decode yields a nil record and its error; iteration
// continues for as long as the consumer keeps asking.
func (c *Codec) DecodeAll(lines iter.Seq[string]) iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		for line := range lines {
			rec, ok, err := c.Decode(line)
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}
			if !ok {
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// DecodeChan decodes lines received from ch.
// It is a thin wrapper around [Codec.DecodeAll].
func (c *Codec) DecodeChan(ch <-chan string) iter.Seq2[*Record, error] {
	return c.DecodeAll(chanToIter(ch))
}

// EncodeAll encodes records from seq and writes each line to w as it is
// produced. It stops at the first write error.
func (c *Codec) EncodeAll(w io.Writer, seq iter.Seq[*Record]) error {
	for rec := range seq {
		if err := c.EncodeTo(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// EncodeChan encodes records received from ch and writes them to w.
// It is a thin wrapper around [Codec.EncodeAll].
func (c *Codec) EncodeChan(w io.Writer, ch <-chan *Record) error {
	return c.EncodeAll(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
