package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromJSON builds a document from a single JSON object. Anything after the
// object other than whitespace is rejected.
//
// Integral numbers that fit in an int are stored as int, all other numbers
// as float64, so a JSON-loaded document narrows the same way as one built
// in code.
func FromJSON(data []byte) (*Base, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var props map[string]any
	if err := dec.Decode(&props); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrDecode, err)
	}
	if props == nil {
		return nil, fmt.Errorf("%w: json: top-level value must be an object", ErrDecode)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: json: unexpected data after top-level object", ErrDecode)
	}
	for k, v := range props {
		props[k] = normalizeNumbers(v)
	}
	return &Base{props: props}, nil
}

// FromYAML builds a document from a YAML mapping.
func FromYAML(data []byte) (*Base, error) {
	var props map[string]any
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
	}
	if props == nil {
		return nil, fmt.Errorf("%w: yaml: top-level value must be a mapping", ErrDecode)
	}
	return &Base{props: props}, nil
}

// MarshalJSON encodes the properties as a JSON object.
func (b *Base) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Items())
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, inner := range t {
			t[k] = normalizeNumbers(inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = normalizeNumbers(inner)
		}
		return t
	default:
		return v
	}
}
