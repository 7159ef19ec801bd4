package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Map is an insertion-ordered entity map. Ordering is not load-bearing for
// state transitions, but reference resolution picks "the first string-typed
// entity", so iteration has to be deterministic across turns.
type Map struct {
	keys   []string
	values map[string]Value
}

func NewMap() Map {
	return Map{values: map[string]Value{}}
}

func (m *Map) Set(key string, value Value) {
	if m.values == nil {
		m.values = map[string]Value{}
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m Map) Get(key string) (Value, bool) {
	value, ok := m.values[key]
	return value, ok
}

func (m Map) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values is an iterator over key/value pairs in insertion order.
func (m Map) Values(yield func(string, Value) bool) {
	for _, key := range m.keys {
		if !yield(key, m.values[key]) {
			return
		}
	}
}

// Merge applies other on top of m: new keys are appended, colliding keys are
// overwritten in place. Keys never disappear.
func (m *Map) Merge(other Map) {
	for _, key := range other.keys {
		m.Set(key, other.values[key].clone())
	}
}

func (m Map) Clone() Map {
	out := NewMap()
	for _, key := range m.keys {
		out.Set(key, m.values[key].clone())
	}
	return out
}

func (m Map) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		valueJSON, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Map) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("failed to decode entity map: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("entity map is not a JSON object")
	}

	out := NewMap()
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("failed to decode entity map key: %w", err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("entity map key is not a string")
		}

		var raw any
		if err := decoder.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode entity %q: %w", key, err)
		}
		value, ok := FromAny(raw)
		if !ok {
			continue
		}
		out.Set(key, value)
	}

	*m = out
	return nil
}

// CoerceAny defensively converts a loose payload into a Map. Anything that
// is not a map-shaped payload yields an empty Map and false so the caller
// can log the anomaly instead of failing the turn.
func CoerceAny(payload any) (Map, bool) {
	switch typed := payload.(type) {
	case nil:
		return NewMap(), true
	case Map:
		return typed.Clone(), true
	case map[string]Value:
		out := NewMap()
		for key, value := range typed {
			out.Set(key, value.clone())
		}
		return out, true
	case map[string]any:
		out := NewMap()
		for _, key := range sortedKeys(typed) {
			value, ok := FromAny(typed[key])
			if !ok {
				continue
			}
			out.Set(key, value)
		}
		return out, true
	}
	return NewMap(), false
}

// sortedKeys pins an iteration order for payloads that arrive as unordered
// Go maps, so coercion is deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
