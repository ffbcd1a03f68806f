package parser

import (
	"strings"
	"testing"

	errs "github.com/stellaris-save/parser/errors"
	"github.com/stellaris-save/parser/value"
)

func parseOrFatal(t *testing.T, src string) *value.Value {
	t.Helper()
	v, err := ParseTopLevel("test", []byte(src))
	if err != nil {
		t.Fatalf("ParseTopLevel(%q) error: %v", src, err)
	}
	return v
}

func mustMap(t *testing.T, v *value.Value) *value.MapValue {
	t.Helper()
	m, ok := v.Map()
	if !ok {
		t.Fatalf("value is a %s, not a map", v.Kind())
	}
	return m
}

func TestParseSimpleAssignment(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `key=value`))
	v, ok := m.Get("key")
	if !ok {
		t.Fatal("missing key \"key\"")
	}
	if s, ok := v.Str(); !ok || s != "value" {
		t.Errorf("key = %v; want Str(\"value\")", v)
	}
}

func TestParseColorLiteral(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `color = rgb { 1 2 3 }`))
	v, ok := m.Get("color")
	if !ok {
		t.Fatal("missing key \"color\"")
	}
	c, ok := v.Color()
	if !ok {
		t.Fatalf("color value is a %s, not a color", v.Kind())
	}
	if c.Space != "rgb" || c.V1 != 1 || c.V2 != 2 || c.V3 != 3 {
		t.Errorf("color = %+v; want rgb{1,2,3}", c)
	}
}

func TestParseListOfQuotedStrings(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `required_dlcs={ "Ancient Relics Story Pack" "Anniversary Portraits" "Apocalypse" }`))
	v, ok := m.Get("required_dlcs")
	if !ok {
		t.Fatal("missing key \"required_dlcs\"")
	}
	items, ok := v.List()
	if !ok {
		t.Fatalf("required_dlcs is a %s, not a list", v.Kind())
	}
	want := []string{"Ancient Relics Story Pack", "Anniversary Portraits", "Apocalypse"}
	if len(items) != len(want) {
		t.Fatalf("got %d items; want %d", len(items), len(want))
	}
	for i, w := range want {
		if s, ok := items[i].Str(); !ok || s != w {
			t.Errorf("item %d = %v; want Str(%q)", i, items[i], w)
		}
	}
}

func TestParseRepeatedKeyMixedComposites(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `x={1 1 1} x={2 2 2} x={3 3 3}`))
	v, _ := m.Get("x")
	outer, ok := v.List()
	if !ok || len(outer) != 3 {
		t.Fatalf("x = %v; want a 3-element list of lists", v)
	}
	for i, want := range [][]int64{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}} {
		inner, ok := outer[i].List()
		if !ok || len(inner) != 3 {
			t.Fatalf("x[%d] = %v; want a 3-element list", i, outer[i])
		}
		for j, w := range want {
			if n, ok := inner[j].Int(); !ok || n != w {
				t.Errorf("x[%d][%d] = %v; want Int(%d)", i, j, inner[j], w)
			}
		}
	}
}

func TestParseIndexedSubRecords(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `intel={ { 77 { intel=10 stale_intel={ } } } }`))
	v, _ := m.Get("intel")
	outer, ok := v.List()
	if !ok || len(outer) != 1 {
		t.Fatalf("intel = %v; want a 1-element list", v)
	}
	record, ok := outer[0].List()
	if !ok || len(record) != 2 {
		t.Fatalf("intel[0] = %v; want a 2-element list", outer[0])
	}
	if n, ok := record[0].Int(); !ok || n != 77 {
		t.Errorf("intel[0][0] = %v; want Int(77)", record[0])
	}
	inner, ok := record[1].Map()
	if !ok {
		t.Fatalf("intel[0][1] = %v; want a map", record[1])
	}
	if v, ok := inner.Get("intel"); !ok {
		t.Fatal("missing nested key \"intel\"")
	} else if n, ok := v.Int(); !ok || n != 10 {
		t.Errorf("nested intel = %v; want Int(10)", v)
	}
	if v, ok := inner.Get("stale_intel"); !ok {
		t.Fatal("missing nested key \"stale_intel\"")
	} else if items, ok := v.List(); !ok || len(items) != 0 {
		t.Errorf("stale_intel = %v; want an empty list", v)
	}
}

func TestParseSkipKeyForm(t *testing.T) {
	src := "expired=yes\nevent_id= scope={ type=none id=0 random={ 0 3991148998 } }"
	m := mustMap(t, parseOrFatal(t, src))
	if v, ok := m.Get("expired"); !ok {
		t.Fatal("missing key \"expired\"")
	} else if s, ok := v.Str(); !ok || s != "yes" {
		t.Errorf("expired = %v; want Str(\"yes\")", v)
	}
	v, ok := m.Get("event_id")
	if !ok {
		t.Fatal("missing key \"event_id\"")
	}
	scope, ok := v.Map()
	if !ok {
		t.Fatalf("event_id = %v; want a map (the skip-key's discarded inner key is \"scope\")", v)
	}
	if v, _ := scope.Get("type"); v == nil {
		t.Fatal("missing nested key \"type\"")
	} else if s, _ := v.Str(); s != "none" {
		t.Errorf("type = %v; want Str(\"none\")", v)
	}
	if v, _ := scope.Get("id"); v == nil {
		t.Fatal("missing nested key \"id\"")
	} else if n, _ := v.Int(); n != 0 {
		t.Errorf("id = %v; want Int(0)", v)
	}
	if v, _ := scope.Get("random"); v == nil {
		t.Fatal("missing nested key \"random\"")
	} else if items, ok := v.List(); !ok || len(items) != 2 {
		t.Errorf("random = %v; want a 2-element list", v)
	}
}

func TestParseRepeatedScalarKeys(t *testing.T) {
	cases := []struct {
		src  string
		want []int64
	}{
		{"x=1 x=1", []int64{1, 1}},
		{"y=1 y=2 y=3", []int64{1, 2, 3}},
	}
	for _, c := range cases {
		m := mustMap(t, parseOrFatal(t, c.src))
		key := c.src[:1]
		v, ok := m.Get(key)
		if !ok {
			t.Fatalf("%q: missing key %q", c.src, key)
		}
		items, ok := v.List()
		if !ok || len(items) != len(c.want) {
			t.Fatalf("%q: %s = %v; want %d elements", c.src, key, v, len(c.want))
		}
		for i, w := range c.want {
			if n, ok := items[i].Int(); !ok || n != w {
				t.Errorf("%q: item %d = %v; want Int(%d)", c.src, i, items[i], w)
			}
		}
	}
}

func TestParseRepeatedMixedScalarKinds(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `z=1 z="asdf"`))
	v, _ := m.Get("z")
	items, ok := v.List()
	if !ok || len(items) != 2 {
		t.Fatalf("z = %v; want a 2-element list", v)
	}
	if n, ok := items[0].Int(); !ok || n != 1 {
		t.Errorf("z[0] = %v; want Int(1)", items[0])
	}
	if s, ok := items[1].Str(); !ok || s != "asdf" {
		t.Errorf("z[1] = %v; want Str(\"asdf\")", items[1])
	}
}

func TestParseNanGuard(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `1=nano_shipyard`))
	v, ok := m.Get("1")
	if !ok {
		t.Fatal("missing key \"1\"")
	}
	if s, ok := v.Str(); !ok || s != "nano_shipyard" {
		t.Errorf("1 = %v; want Str(\"nano_shipyard\")", v)
	}
}

func TestParseEscapedBackslashString(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `prefix="GATE \\"`))
	v, _ := m.Get("prefix")
	if s, ok := v.Str(); !ok || s != `GATE \\` {
		t.Errorf("prefix = %v; want Str(`GATE \\\\`)", v)
	}
}

func TestParseEscapedQuoteString(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `key="\"Escaped\""`))
	v, _ := m.Get("key")
	if s, ok := v.Str(); !ok || s != `\"Escaped\"` {
		t.Errorf("key = %v; want the raw escaped-quote sequence", v)
	}
}

func TestParseEmptyListBody(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `items={ }`))
	v, _ := m.Get("items")
	items, ok := v.List()
	if !ok || len(items) != 0 {
		t.Errorf("items = %v; want an empty list", v)
	}
}

func TestParseIntegerBeforeFloat(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `n=123`))
	v, _ := m.Get("n")
	if v.Kind() != value.Int {
		t.Errorf("n has kind %s; want Int", v.Kind())
	}
}

func TestParseDateToken(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `date=2200.04.03`))
	v, _ := m.Get("date")
	if s, ok := v.Str(); !ok || s != "2200.04.03" {
		t.Errorf("date = %v; want Str(\"2200.04.03\") verbatim", v)
	}
}

func TestParseListBeforeMapDisambiguation(t *testing.T) {
	m := mustMap(t, parseOrFatal(t, `random={ 0 3991148998 }`))
	v, _ := m.Get("random")
	items, ok := v.List()
	if !ok {
		t.Fatalf("random = %v; want a list, not a map", v)
	}
	if n, ok := items[0].Int(); !ok || n != 0 {
		t.Errorf("random[0] = %v; want Int(0)", items[0])
	}
	if n, ok := items[1].Int(); !ok || n != 3991148998 {
		t.Errorf("random[1] = %v; want Int(3991148998)", items[1])
	}
}

func TestParseWhitespaceOnlyInputFails(t *testing.T) {
	if _, err := ParseTopLevel("test", []byte("   \n\t  ")); err == nil {
		t.Fatal("expected whitespace-only input to fail")
	}
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 250
	src := "k=" + strings.Repeat("{ x=", depth) + "1" + strings.Repeat(" }", depth)
	v, err := ParseTopLevel("test", []byte(src))
	if err != nil {
		t.Fatalf("deep nesting to %d levels failed: %v", depth, err)
	}
	cur := v
	for i := 0; i <= depth; i++ {
		m, ok := cur.Map()
		if !ok {
			t.Fatalf("level %d: not a map", i)
		}
		key := "k"
		if i > 0 {
			key = "x"
		}
		next, ok := m.Get(key)
		if !ok {
			t.Fatalf("level %d: missing key %q", i, key)
		}
		cur = next
	}
	if n, ok := cur.Int(); !ok || n != 1 {
		t.Errorf("innermost value = %v; want Int(1)", cur)
	}
}

func TestParseTrailingGarbageIsIncomplete(t *testing.T) {
	_, err := ParseTopLevel("test", []byte(`key=value <`))
	if err == nil {
		t.Fatal("expected trailing garbage after a valid body to fail")
	}
	if _, ok := err.(*errs.IncompleteParseError); !ok {
		t.Errorf("error = %T (%v); want *errors.IncompleteParseError", err, err)
	}
}
