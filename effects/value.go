package effects

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/invopop/jsonschema"
	"github.com/soypat/geometry/ms2"
)

// ValueKind tags the JSON shape of a Value.
type ValueKind uint8

const (
	NumberKind ValueKind = iota
	TextKind
	PairKind
)

// Value is a parameter value: a number (float, bool and select params),
// a hex color string, or a 2-vector. The zero Value is the number 0.
type Value struct {
	kind ValueKind
	num  float64
	text string
	pair ms2.Vec
}

func Number(v float64) Value { return Value{kind: NumberKind, num: v} }

func Text(s string) Value { return Value{kind: TextKind, text: s} }

func Pair(x, y float32) Value { return Value{kind: PairKind, pair: ms2.Vec{X: x, Y: y}} }

func (v Value) Kind() ValueKind { return v.kind }

// Num returns the numeric payload.
func (v Value) Num() (float64, bool) { return v.num, v.kind == NumberKind }

// Str returns the string payload, a hex color for color params.
func (v Value) Str() (string, bool) { return v.text, v.kind == TextKind }

// Vec returns the 2-vector payload.
func (v Value) Vec() (ms2.Vec, bool) { return v.pair, v.kind == PairKind }

// Finite reports whether every numeric component is a finite number.
func (v Value) Finite() bool {
	switch v.kind {
	case NumberKind:
		return !math.IsNaN(v.num) && !math.IsInf(v.num, 0)
	case PairKind:
		x, y := float64(v.pair.X), float64(v.pair.Y)
		return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
	}
	return true
}

// Matches reports whether v has the shape expected by a parameter of type t.
func (v Value) Matches(t ParamType) bool {
	switch t {
	case Color:
		return v.kind == TextKind
	case Vec2:
		return v.kind == PairKind
	default:
		return v.kind == NumberKind
	}
}

func (v Value) String() string {
	switch v.kind {
	case TextKind:
		return v.text
	case PairKind:
		return fmt.Sprintf("[%g, %g]", v.pair.X, v.pair.Y)
	}
	return fmt.Sprintf("%g", v.num)
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case TextKind:
		return json.Marshal(v.text)
	case PairKind:
		return json.Marshal([2]float32{v.pair.X, v.pair.Y})
	}
	if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return nil, fmt.Errorf("effects: cannot encode non-finite value %v", v.num)
	}
	return json.Marshal(v.num)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("effects: empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	case '[':
		var p []float32
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		if len(p) != 2 {
			return fmt.Errorf("effects: vec2 value needs 2 components, got %d", len(p))
		}
		*v = Pair(p[0], p[1])
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Number(0)
		if b {
			*v = Number(1)
		}
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Number(n)
	}
	return nil
}

// JSONSchema describes the three accepted JSON shapes.
func (Value) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "number"},
			{Type: "string", Pattern: "^#[0-9a-fA-F]{6}$"},
			{Type: "array", Items: &jsonschema.Schema{Type: "number"}, MinItems: 2, MaxItems: 2},
		},
	}
}
