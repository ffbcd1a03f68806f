package value

import "strconv"

// ToHostObject converts v into the host application's native object graph,
// per the external interface described for the bridge component: Str, Int
// and Float become their analogous Go scalars; List becomes []any; Color
// becomes a 4-element []any of (space, v1, v2, v3); Map becomes map[any]any
// with each key remapped to an int64 when it parses cleanly as one,
// otherwise left as the original text. This preserves numeric-key shapes
// (object tables indexed by id) the way the host's own dict expects them.
func ToHostObject(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case Str:
		return v.str
	case Int:
		return v.i
	case Float:
		return v.f
	case List:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = ToHostObject(item)
		}
		return out
	case Map:
		out := make(map[any]any, v.m.Len())
		v.m.Range(func(key string, child *Value) bool {
			out[hostKey(key)] = ToHostObject(child)
			return true
		})
		return out
	case Color:
		return []any{v.color.Space, v.color.V1, v.color.V2, v.color.V3}
	default:
		return nil
	}
}

// hostKey remaps a map key to an int64 when it parses cleanly as a signed
// 64-bit integer, and leaves it as text otherwise. Per the external
// interface spec this remap applies only at the host-object boundary, not
// to JSON output.
func hostKey(key string) any {
	if i, err := strconv.ParseInt(key, 10, 64); err == nil {
		return i
	}
	return key
}
