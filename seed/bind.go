package seed

import "fmt"

// StringField extracts an optional string override. Returns nil when the key
// is absent and an error when the value has the wrong type.
func StringField(overrides map[string]any, key string) (*string, error) {
	raw, ok := overrides[key]
	if !ok {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("field %q: expected string, got %T", key, raw)
	}
	return &s, nil
}

// Int64Field extracts an optional integer override. YAML decodes integers as
// int; both int and int64 are accepted.
func Int64Field(overrides map[string]any, key string) (*int64, error) {
	raw, ok := overrides[key]
	if !ok {
		return nil, nil
	}
	switch v := raw.(type) {
	case int:
		n := int64(v)
		return &n, nil
	case int64:
		return &v, nil
	default:
		return nil, fmt.Errorf("field %q: expected integer, got %T", key, raw)
	}
}
