package shader

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/olzn/glint-studio/effects"
)

// AppendFloat appends v as a GLSL float literal: shortest representation
// that round-trips at bitSize, always with a decimal point, negatives
// parenthesized so the literal is safe after any operator.
func AppendFloat(b []byte, v float64, bitSize int) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	neg := v < 0
	if neg {
		b = append(b, '(')
	}
	start := len(b)
	b = strconv.AppendFloat(b, v, 'f', -1, bitSize)
	if bytes.IndexByte(b[start:], '.') < 0 {
		b = append(b, ".0"...)
	}
	if neg {
		b = append(b, ')')
	}
	return b
}

// FormatFloat is AppendFloat for a float64 into a new string.
func FormatFloat(v float64) string {
	return string(AppendFloat(nil, v, 64))
}

// Literal renders a uniform value as a GLSL constant expression.
func Literal(u Uniform) string {
	var b []byte
	switch u.Type {
	case effects.Color:
		s, _ := u.Value.Str()
		c, err := ParseHex(s)
		if err != nil {
			return "vec3(0.0)"
		}
		b = append(b, "vec3("...)
		b = AppendFloat(b, float64(c.X), 32)
		b = append(b, ", "...)
		b = AppendFloat(b, float64(c.Y), 32)
		b = append(b, ", "...)
		b = AppendFloat(b, float64(c.Z), 32)
		b = append(b, ')')
	case effects.Vec2:
		v, _ := u.Value.Vec()
		b = append(b, "vec2("...)
		b = AppendFloat(b, float64(v.X), 32)
		b = append(b, ", "...)
		b = AppendFloat(b, float64(v.Y), 32)
		b = append(b, ')')
	default:
		n, _ := u.Value.Num()
		b = AppendFloat(b, n, 64)
	}
	return string(b)
}

// BakeParams inlines the current value of every param uniform.
func BakeParams(glsl string, params []ShaderParam, values map[string]effects.Value) string {
	return BakeUniforms(glsl, ResolveParams(params, values))
}

// BakeColors inlines the gradient colors and stops.
func BakeColors(glsl string, colors []string, stops []float64) string {
	return BakeUniforms(glsl, ColorUniforms(colors, stops))
}

// Bake inlines params, colors and stops, leaving only the runtime
// u_resolution and u_time uniforms.
func Bake(res ComposeResult, values map[string]effects.Value, colors []string, stops []float64) string {
	uniforms := ResolveParams(res.Params, values)
	uniforms = append(uniforms, ColorUniforms(colors, stops)...)
	return BakeUniforms(res.GLSL, uniforms)
}

// BakeUniforms removes the declaration of every given uniform and replaces
// each whole-identifier reference with its literal. Baking a source that no
// longer mentions the uniforms returns it unchanged.
func BakeUniforms(glsl string, uniforms []Uniform) string {
	if len(uniforms) == 0 {
		return glsl
	}
	literals := make(map[string]string, len(uniforms))
	for _, u := range uniforms {
		literals[u.Name] = Literal(u)
	}

	out := make([]byte, 0, len(glsl))
	lines := strings.SplitAfter(glsl, "\n")
	for _, line := range lines {
		if name, ok := uniformDeclName(line); ok {
			if _, baked := literals[name]; baked {
				continue
			}
		}
		out = replaceIdents(out, line, literals)
	}
	return string(out)
}

// uniformDeclName extracts NAME from a "uniform TYPE NAME;" line.
func uniformDeclName(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "uniform ") || !strings.HasSuffix(s, ";") {
		return "", false
	}
	fields := strings.Fields(strings.TrimSuffix(s, ";"))
	if len(fields) != 3 {
		return "", false
	}
	return fields[2], true
}
