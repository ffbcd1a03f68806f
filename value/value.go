// Package value defines the single tree node type produced by parsing a
// save document: Value, a tagged union over strings, integers, floats,
// lists, maps and color literals (see Kind). A Value tree is the sole
// output of this module's grammar; everything downstream (JSON encoding,
// host object conversion) operates over it.
package value

import "fmt"

// Kind tags which variant a Value holds.
type Kind int

const (
	// Invalid is the zero Kind; no Value is ever deliberately constructed
	// with it.
	Invalid Kind = iota
	Str
	Int
	Float
	List
	Map
	Color
)

func (k Kind) String() string {
	switch k {
	case Str:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case List:
		return "list"
	case Map:
		return "map"
	case Color:
		return "color"
	default:
		return "invalid"
	}
}

// ColorLiteral is the payload of a Color Value: a color space token ("rgb"
// or "hsv") and its three float components.
type ColorLiteral struct {
	Space      string
	V1, V2, V3 float64
}

// Value is the sole node type of a parsed document tree. The zero Value is
// not meaningful; construct one with the New* functions.
type Value struct {
	kind  Kind
	str   string
	i     int64
	f     float64
	list  []*Value
	m     *MapValue
	color ColorLiteral
}

// Kind reports which variant v holds.
func (v *Value) Kind() Kind { return v.kind }

// NewStr builds a Str Value. Used for quoted-string contents (raw, not
// unescaped), unquoted identifiers, and date tokens.
func NewStr(s string) *Value { return &Value{kind: Str, str: s} }

// NewInt builds an Int Value.
func NewInt(i int64) *Value { return &Value{kind: Int, i: i} }

// NewFloat builds a Float Value.
func NewFloat(f float64) *Value { return &Value{kind: Float, f: f} }

// NewList builds a List Value. A nil or empty items is a valid empty list.
func NewList(items []*Value) *Value {
	if items == nil {
		items = []*Value{}
	}
	return &Value{kind: List, list: items}
}

// NewMap builds a Map Value from an already-folded MapValue (see
// MapValue.Set and the repeated-key folder in the parser).
func NewMap(m *MapValue) *Value {
	if m == nil {
		m = NewMapValue()
	}
	return &Value{kind: Map, m: m}
}

// NewColor builds a Color Value. space must be "rgb" or "hsv"; NewColor
// panics otherwise, since the parser is the only caller and must have
// already validated the token.
func NewColor(space string, v1, v2, v3 float64) *Value {
	if space != "rgb" && space != "hsv" {
		panic(fmt.Sprintf("value: invalid color space %q", space))
	}
	return &Value{kind: Color, color: ColorLiteral{Space: space, V1: v1, V2: v2, V3: v3}}
}

// Str returns the string payload and reports whether v is a Str.
func (v *Value) Str() (string, bool) {
	if v.kind != Str {
		return "", false
	}
	return v.str, true
}

// Int returns the integer payload and reports whether v is an Int.
func (v *Value) Int() (int64, bool) {
	if v.kind != Int {
		return 0, false
	}
	return v.i, true
}

// Float returns the float payload and reports whether v is a Float.
func (v *Value) Float() (float64, bool) {
	if v.kind != Float {
		return 0, false
	}
	return v.f, true
}

// List returns the element slice and reports whether v is a List. The
// returned slice must not be mutated by callers.
func (v *Value) List() ([]*Value, bool) {
	if v.kind != List {
		return nil, false
	}
	return v.list, true
}

// Map returns the underlying MapValue and reports whether v is a Map.
func (v *Value) Map() (*MapValue, bool) {
	if v.kind != Map {
		return nil, false
	}
	return v.m, true
}

// Color returns the color literal payload and reports whether v is a Color.
func (v *Value) Color() (ColorLiteral, bool) {
	if v.kind != Color {
		return ColorLiteral{}, false
	}
	return v.color, true
}

// String renders v for debugging/logging; it is not a serialization format.
func (v *Value) String() string {
	switch v.kind {
	case Str:
		return v.str
	case Int:
		return fmt.Sprintf("%d", v.i)
	case Float:
		return fmt.Sprintf("%g", v.f)
	case List:
		return fmt.Sprintf("%v", v.list)
	case Map:
		return fmt.Sprintf("%v", v.m)
	case Color:
		return fmt.Sprintf("%s { %g %g %g }", v.color.Space, v.color.V1, v.color.V2, v.color.V3)
	default:
		return "<invalid>"
	}
}
