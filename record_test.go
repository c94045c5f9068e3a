package csvcodec_test

import (
	"encoding/json"
	"testing"

	"github.com/bjaus/csvcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecordSetKeepsPosition(t *testing.T) {
	t.Parallel()
	rec := csvcodec.NewRecord("a", "1", "b", "2")
	rec.Set("a", "3")
	rec.Set("c", "4")
	assert.Equal(t, []string{"a", "b", "c"}, rec.Keys())
	v, ok := rec.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestRecordDelete(t *testing.T) {
	t.Parallel()
	rec := csvcodec.NewRecord("a", "1", "b", "2", "c", "3")
	rec.Delete("b")
	rec.Delete("missing")
	assert.Equal(t, []string{"a", "c"}, rec.Keys())
	assert.False(t, rec.Has("b"))
	assert.Equal(t, 2, rec.Len())
}

func TestRecordZeroValue(t *testing.T) {
	t.Parallel()
	var rec csvcodec.Record
	assert.Zero(t, rec.Len())
	assert.Empty(t, rec.Map())
	rec.Set("a", 1)
	assert.Equal(t, 1, rec.Len())
}

func TestRecordNil(t *testing.T) {
	t.Parallel()
	var rec *csvcodec.Record
	assert.Zero(t, rec.Len())
	assert.Nil(t, rec.Keys())
	assert.False(t, rec.Has("a"))
	assert.Equal(t, map[string]any{}, rec.Map())
	assert.Equal(t, "{}", rec.String())
	rec.Delete("a")
}

func TestRecordAllStopsEarly(t *testing.T) {
	t.Parallel()
	rec := csvcodec.NewRecord("a", 1, "b", 2, "c", 3)
	var keys []string
	for k := range rec.All() {
		keys = append(keys, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestRecordKeysIsCopy(t *testing.T) {
	t.Parallel()
	rec := csvcodec.NewRecord("a", 1)
	keys := rec.Keys()
	keys[0] = "z"
	assert.Equal(t, []string{"a"}, rec.Keys())
}

func TestRecordString(t *testing.T) {
	t.Parallel()
	rec := csvcodec.NewRecord("size", "big", "count", int64(2), "ok", true)
	assert.Equal(t, "{size=big, count=2, ok=true}", rec.String())
}

func TestNewRecordPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { csvcodec.NewRecord("a") })
	assert.Panics(t, func() { csvcodec.NewRecord(1, "a") })
}

// --- JSON ---

func TestRecordMarshalJSON(t *testing.T) {
	t.Parallel()
	rec := csvcodec.NewRecord("z", "last", "a", int64(1), "m", 2.5, "b", false)
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last","a":1,"m":2.5,"b":false}`, string(data))
}

func TestRecordMarshalJSONEmpty(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(&csvcodec.Record{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestRecordMarshalJSONError(t *testing.T) {
	t.Parallel()
	_, err := json.Marshal(csvcodec.NewRecord("ch", make(chan int)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "ch"`)
}

func TestRecordUnmarshalJSON(t *testing.T) {
	t.Parallel()
	var rec csvcodec.Record
	err := json.Unmarshal([]byte(`{"z":"last","a":1,"m":2.5,"b":false}`), &rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m", "b"}, rec.Keys())
	assert.Equal(t, map[string]any{"z": "last", "a": int64(1), "m": 2.5, "b": false}, rec.Map())
}

func TestRecordUnmarshalJSONRejectsArray(t *testing.T) {
	t.Parallel()
	var rec csvcodec.Record
	err := json.Unmarshal([]byte(`["a"]`), &rec)
	require.Error(t, err)
}

// --- YAML ---

func TestRecordMarshalYAML(t *testing.T) {
	t.Parallel()
	rec := csvcodec.NewRecord("size", "big", "count", int64(2), "ok", true)
	data, err := yaml.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, "size: big\ncount: 2\nok: true\n", string(data))
}

func TestRecordUnmarshalYAML(t *testing.T) {
	t.Parallel()
	var rec csvcodec.Record
	err := yaml.Unmarshal([]byte("host: example.com\nport: 8080\nratio: 0.5\nup: true\n"), &rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "port", "ratio", "up"}, rec.Keys())
	assert.Equal(t, map[string]any{
		"host":  "example.com",
		"port":  int64(8080),
		"ratio": 0.5,
		"up":    true,
	}, rec.Map())
}

func TestRecordUnmarshalYAMLRejectsSequence(t *testing.T) {
	t.Parallel()
	var rec csvcodec.Record
	err := yaml.Unmarshal([]byte("- a\n- b\n"), &rec)
	require.Error(t, err)
}

func TestEncodeYAMLFixture(t *testing.T) {
	t.Parallel()
	var rec csvcodec.Record
	require.NoError(t, yaml.Unmarshal([]byte(`
column1: big
column2: bird
column3: sesame street
column4: extra data
`), &rec))
	c := newCodec(t, csvcodec.WithColumns("column1", "column2", "column3"))
	assert.Equal(t, "big,bird,sesame street\n", c.Encode(&rec))
}
