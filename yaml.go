package csvcodec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseConfig decodes a YAML (or JSON) config document on top of
// [DefaultConfig] and validates it. Unknown keys are rejected.
//
//	columns: [host, country, city]
//	separator: ";"
//	convert:
//	  port: integer
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, _, err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MarshalYAML renders the record as a mapping in field order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range r.All() {
		val := &yaml.Node{}
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			val,
		)
	}
	return node, nil
}

// UnmarshalYAML replaces the record with the fields of a mapping, in
// document order. Integers become int64.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("csvcodec: line %d: record must be a mapping", node.Line)
	}
	out := Record{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var v any
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if n, ok := v.(int); ok {
			v = int64(n)
		}
		out.Set(key, v)
	}
	*r = out
	return nil
}
