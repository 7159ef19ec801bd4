package entities

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the variants an entity value can hold.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindList   Kind = "list"
	KindObject Kind = "object"
)

// Value is a tagged entity value. Entity payloads arrive from the
// understanding collaborator as loose JSON; tagging them at the boundary
// keeps everything past the boundary schema-checked.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []Value
	obj  map[string]Value
}

func String(s string) Value  { return Value{kind: KindString, str: s} }
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }

func List(values ...Value) Value {
	return Value{kind: KindList, list: values}
}

func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, obj: fields}
}

func (v Value) Kind() Kind { return v.kind }

// AsString returns the held string and whether the value is string-kinded.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsList() ([]Value, bool) {
	return v.list, v.kind == KindList
}

func (v Value) AsObject() (map[string]Value, bool) {
	return v.obj, v.kind == KindObject
}

// Any converts the value back into the loose representation used at the
// collaborator boundary.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindList:
		out := make([]any, 0, len(v.list))
		for _, item := range v.list {
			out = append(out, item.Any())
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for key, item := range v.obj {
			out[key] = item.Any()
		}
		return out
	}
	return nil
}

func (v Value) clone() Value {
	out := v
	if v.list != nil {
		out.list = make([]Value, len(v.list))
		for i, item := range v.list {
			out.list[i] = item.clone()
		}
	}
	if v.obj != nil {
		out.obj = make(map[string]Value, len(v.obj))
		for key, item := range v.obj {
			out.obj[key] = item.clone()
		}
	}
	return out
}

// FromAny tags an arbitrary decoded JSON value. The second return reports
// whether the dynamic type was representable; unrepresentable values (nil,
// channels, ...) yield a zero Value and false.
func FromAny(value any) (Value, bool) {
	switch typed := value.(type) {
	case Value:
		return typed.clone(), true
	case string:
		return String(typed), true
	case bool:
		return Bool(typed), true
	case float64:
		return Number(typed), true
	case float32:
		return Number(float64(typed)), true
	case int:
		return Number(float64(typed)), true
	case int32:
		return Number(float64(typed)), true
	case int64:
		return Number(float64(typed)), true
	case json.Number:
		num, err := typed.Float64()
		if err != nil {
			return String(typed.String()), true
		}
		return Number(num), true
	case []any:
		list := make([]Value, 0, len(typed))
		for _, item := range typed {
			tagged, ok := FromAny(item)
			if !ok {
				continue
			}
			list = append(list, tagged)
		}
		return List(list...), true
	case map[string]any:
		fields := make(map[string]Value, len(typed))
		for key, item := range typed {
			tagged, ok := FromAny(item)
			if !ok {
				continue
			}
			fields[key] = tagged
		}
		return Object(fields), true
	}
	return Value{}, false
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode entity value: %w", err)
	}
	tagged, ok := FromAny(raw)
	if !ok {
		return fmt.Errorf("unrepresentable entity value: %s", string(data))
	}
	*v = tagged
	return nil
}
