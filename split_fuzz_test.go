package csvcodec

import (
	"slices"
	"testing"
)

func FuzzSplitJoin(f *testing.F) {
	seeds := []string{
		"",
		"a,b,c",
		`big,bird,"sesame, street"`,
		`a,"say ""hi""",c`,
		`"unterminated`,
		`a"b,c`,
		`"a"b,c`,
		",,",
		"a,b\r\n",
		"\"multi\nline\"\n",
		"'single','quoted'",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1<<12 {
			t.Skip()
		}
		for _, quote := range []rune{'"', '\'', noQuoteRune} {
			fields := split(input, ',', quote)
			if len(fields) == 0 || quote == noQuoteRune {
				continue
			}
			again := split(join(fields, ',', quote), ',', quote)
			if !slices.Equal(fields, again) {
				t.Fatalf("round trip mismatch with quote %q:\nfirst=%q\nagain=%q\ninput=%q", quote, fields, again, input)
			}
		}
	})
}

func FuzzDecode(f *testing.F) {
	f.Add("size,animal,movie", "big,bird,sesame street")
	f.Add("a,a", `1,"2`)
	f.Add("", ",,")

	f.Fuzz(func(t *testing.T, header, line string) {
		c, err := New(
			WithIncludeHeaders(true),
			WithSkipEmptyColumns(true),
			WithConvert("column2", Integer),
		)
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := c.Decode(header); err != nil {
			t.Fatalf("header line failed: %v", err)
		}
		captured := c.Header() != nil
		rec, ok, err := c.Decode(line)
		if err != nil {
			return
		}
		if captured && !ok {
			t.Fatalf("no record after header for %q", line)
		}
		if ok && rec == nil {
			t.Fatal("nil record reported as produced")
		}
	})
}

func BenchmarkSplit(b *testing.B) {
	line := `xxxxxxxxxxxxxxxx,"yyyy, yyyy ""yy""",zzzzzzzzzzzzzzzz,,wwwwwwwwwwwwwwwwwwwwwwwwwwww`
	b.ReportAllocs()
	b.SetBytes(int64(len(line)))
	for b.Loop() {
		split(line, ',', '"')
	}
}

func BenchmarkDecode(b *testing.B) {
	c, err := New(WithColumns("a", "b", "c", "d", "e"), WithConvert("d", Integer))
	if err != nil {
		b.Fatal(err)
	}
	line := `big,"bird, yellow",sesame street,1234,`
	b.ReportAllocs()
	for b.Loop() {
		if _, _, err := c.Decode(line); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	c, err := New()
	if err != nil {
		b.Fatal(err)
	}
	rec := NewRecord("a", "big", "b", "bird, yellow", "c", int64(1234), "d", true)
	b.ReportAllocs()
	for b.Loop() {
		c.Encode(rec)
	}
}
