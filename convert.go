package csvcodec

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind is the type a field value is coerced to during decoding.
type Kind int

const (
	Integer Kind = iota + 1 // int64, base 10
	Float                   // float64
	Boolean                 // exactly "true" or "false"
)

var kindNames = map[Kind]string{
	Integer: "integer",
	Float:   "float",
	Boolean: "boolean",
}

// Kinds returns all conversion kinds.
func Kinds() []Kind { return []Kind{Integer, Float, Boolean} }

// ParseKind parses a kind name: "integer", "float" or "boolean".
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a type name", ErrUnknownKind, node.Line)
	}
	return k.UnmarshalText([]byte(node.Value))
}

// CoercionError reports a field value that could not be converted to its
// configured kind. It wraps [ErrCoercion] and the parse error.
type CoercionError struct {
	Field string
	Kind  Kind
	Value string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%v: field %q: cannot convert %q to %s: %v", ErrCoercion, e.Field, e.Value, e.Kind, e.Err)
}

// Unwrap returns both ErrCoercion and the underlying parse error.
func (e *CoercionError) Unwrap() []error { return []error{ErrCoercion, e.Err} }

var errNotBoolean = errors.New(`want "true" or "false"`)

// coerce converts raw to kind. Only exact lowercase boolean literals are
// accepted; strconv.ParseBool would also take "1", "T" and friends.
func coerce(raw string, kind Kind) (any, error) {
	switch kind {
	case Integer:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, unwrapNumError(err)
		}
		return n, nil
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, unwrapNumError(err)
		}
		return f, nil
	case Boolean:
		switch raw {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, errNotBoolean
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// unwrapNumError drops the strconv prefix, which repeats the input.
func unwrapNumError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
