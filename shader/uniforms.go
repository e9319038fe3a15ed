package shader

import (
	"math"

	"github.com/olzn/glint-studio/effects"
)

// Uniform is a value ready to hand to a renderer's SetUniform.
type Uniform struct {
	Name  string
	Type  effects.ParamType
	Value effects.Value
}

// ResolveParams pairs every param with its stored value, falling back to the
// block default when the value is missing, non-finite or of the wrong shape.
// Degree params are converted to radians.
func ResolveParams(params []ShaderParam, values map[string]effects.Value) []Uniform {
	out := make([]Uniform, 0, len(params))
	for _, p := range params {
		v, ok := values[p.ID]
		if !ok || !v.Matches(p.Spec.Type) || !v.Finite() {
			v = p.Spec.Default
		}
		if p.Spec.DisplayUnit == effects.Degrees {
			if n, isNum := v.Num(); isNum {
				v = effects.Number(n * math.Pi / 180)
			}
		}
		out = append(out, Uniform{Name: p.UniformName, Type: p.Spec.Type, Value: v})
	}
	return out
}

// ColorUniforms returns the u_colorN and u_stopN uniforms for a gradient.
// Missing stops are filled from EqualStops.
func ColorUniforms(colors []string, stops []float64) []Uniform {
	if len(stops) != len(colors) {
		stops = EqualStops(len(colors))
	}
	out := make([]Uniform, 0, 2*len(colors))
	for i, c := range colors {
		out = append(out,
			Uniform{Name: ColorUniform(i), Type: effects.Color, Value: effects.Text(c)},
			Uniform{Name: StopUniform(i), Type: effects.Float, Value: effects.Number(stops[i])},
		)
	}
	return out
}

// Components converts a value into the float components of its GLSL
// uniform: vec3 for colors, vec2 for pairs, one float otherwise.
func Components(typ effects.ParamType, v effects.Value) ([]float32, bool) {
	if !v.Matches(typ) || !v.Finite() {
		return nil, false
	}
	switch typ {
	case effects.Color:
		s, _ := v.Str()
		c, err := ParseHex(s)
		if err != nil {
			return nil, false
		}
		return []float32{c.X, c.Y, c.Z}, true
	case effects.Vec2:
		p, _ := v.Vec()
		return []float32{p.X, p.Y}, true
	}
	n, _ := v.Num()
	return []float32{float32(n)}, true
}
