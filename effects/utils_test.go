package effects

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestResolveUtils(t *testing.T) {
	tests := []struct {
		in   []Util
		want []Util
	}{
		{nil, []Util{}},
		{[]Util{Hash}, []Util{Hash}},
		{[]Util{FBM}, []Util{Hash, Noise, FBM}},
		{[]Util{FBM, Noise, Hash}, []Util{Hash, Noise, FBM}},
		{[]Util{Noise, Noise, Hash}, []Util{Hash, Noise}},
		{[]Util{"bogus", Noise}, []Util{Hash, Noise}},
	}
	for _, tc := range tests {
		got := ResolveUtils(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ResolveUtils(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestUtilSourceEmitsOnceInDependencyOrder(t *testing.T) {
	src := UtilSource([]Util{FBM, Noise, Hash, FBM})
	for _, sig := range []string{"float hash(", "float noise(", "float fbm("} {
		if n := strings.Count(src, sig); n != 1 {
			t.Errorf("%q appears %d times", sig, n)
		}
	}
	h, n, f := strings.Index(src, "float hash("), strings.Index(src, "float noise("), strings.Index(src, "float fbm(")
	if !(h < n && n < f) {
		t.Errorf("wrong order: hash@%d noise@%d fbm@%d", h, n, f)
	}
}

func TestValueJSON(t *testing.T) {
	in := `{"a":1.5,"b":"#ff0000","c":[0.25,2]}`
	var m map[string]Value
	if err := json.Unmarshal([]byte(in), &m); err != nil {
		t.Fatal(err)
	}
	if v, ok := m["a"].Num(); !ok || v != 1.5 {
		t.Errorf("a = %v", m["a"])
	}
	if v, ok := m["b"].Str(); !ok || v != "#ff0000" {
		t.Errorf("b = %v", m["b"])
	}
	if v, ok := m["c"].Vec(); !ok || v.X != 0.25 || v.Y != 2 {
		t.Errorf("c = %v", m["c"])
	}
	var bad Value
	if err := json.Unmarshal([]byte(`[1,2,3]`), &bad); err == nil {
		t.Error("three component vector accepted")
	}
}

func TestValueSchemaShapes(t *testing.T) {
	s := Value{}.JSONSchema()
	if len(s.OneOf) != 3 {
		t.Fatalf("OneOf has %d shapes, want 3", len(s.OneOf))
	}
	var types []string
	for _, o := range s.OneOf {
		types = append(types, o.Type)
	}
	if got := strings.Join(types, ","); got != "number,string,array" {
		t.Errorf("shapes = %s", got)
	}
	vec := s.OneOf[2]
	if vec.Items == nil || vec.Items.Type != "number" || vec.MinItems != 2 || vec.MaxItems != 2 {
		t.Errorf("vector shape = %+v", vec)
	}
}
