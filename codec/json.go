package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FromJSON parses a JSON document into mapping form. Integral numbers come
// back as int rather than float64, so literal loop bounds and other integer
// constants survive the wire: encoding/json alone would widen every number
// and a statically-known bound would stop looking like one.
func FromJSON(data []byte) (Mapping, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing tree JSON: %w", err)
	}
	m, ok := normalize(raw).(Mapping)
	if !ok {
		return nil, fmt.Errorf("tree JSON root must be an object, got %T", raw)
	}
	return m, nil
}

// ToJSON renders a mapping as indented JSON.
func ToJSON(m Mapping) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalize(val)
		}
		return x
	case []any:
		for i, val := range x {
			x[i] = normalize(val)
		}
		return x
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n)
		}
		f, _ := x.Float64()
		return f
	default:
		return v
	}
}
