package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements the straightforward mapping described for the
// downstream JSON adapter: Str -> string, Int/Float -> number, List ->
// array, Map -> object (keys always rendered as strings; the integer-key
// remap used for host object conversion does not apply to JSON), Color ->
// the 4-element array [space, v1, v2, v3].
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Str:
		return json.Marshal(v.str)
	case Int:
		return json.Marshal(v.i)
	case Float:
		return json.Marshal(v.f)
	case List:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case Map:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range v.m.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			child, _ := v.m.Get(k)
			vb, err := child.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(vb)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case Color:
		return json.Marshal([]interface{}{v.color.Space, v.color.V1, v.color.V2, v.color.V3})
	default:
		return nil, fmt.Errorf("value: cannot marshal invalid Value")
	}
}

// JSON is a convenience wrapper around json.Marshal(v) for callers that
// don't want to import encoding/json themselves.
func (v *Value) JSON() ([]byte, error) {
	return json.Marshal(v)
}
