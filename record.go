package csvcodec

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Record is an insertion-ordered mapping from field name to value. Decoded
// values are string, int64, float64 or bool. The zero value is an empty
// record ready to use.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord builds a record from alternating key/value pairs. It panics if
// given an odd number of arguments or a non-string key.
func NewRecord(kv ...any) *Record {
	if len(kv)%2 == 1 {
		panic("csvcodec: NewRecord: odd argument count")
	}
	r := &Record{}
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("csvcodec: NewRecord: key %v is %T, not string", kv[i], kv[i]))
		}
		r.Set(key, kv[i+1])
	}
	return r
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Delete removes key.
func (r *Record) Delete(key string) {
	if r == nil {
		return
	}
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.keys)
}

// All iterates over fields in insertion order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r == nil {
			return
		}
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// Map returns the fields as a plain map.
func (r *Record) Map() map[string]any {
	if r == nil {
		return map[string]any{}
	}
	m := maps.Clone(r.values)
	if m == nil {
		m = map[string]any{}
	}
	return m
}

// String renders the record as {k=v, ...} in field order.
func (r *Record) String() string {
	b := []byte{'{'}
	i := 0
	for k, v := range r.All() {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = fmt.Appendf(b, "%s=%v", k, v)
		i++
	}
	return string(append(b, '}'))
}
