package effects

import "strings"

// Util names a shared GLSL helper function that blocks may call.
type Util string

const (
	Hash  Util = "hash"
	Noise Util = "noise"
	FBM   Util = "fbm"
)

// utilOrder is the canonical visiting order, which keeps the resolved
// order independent of the order utilities were requested in.
var utilOrder = []Util{Hash, Noise, FBM}

var utilDeps = map[Util][]Util{
	Hash:  nil,
	Noise: {Hash},
	FBM:   {Noise, Hash},
}

const glslHash = `float hash(vec2 p) {
  return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453123);
}`

const glslNoise = `float noise(vec2 p) {
  vec2 i = floor(p);
  vec2 f = fract(p);
  vec2 u = f * f * (3.0 - 2.0 * f);
  return mix(
    mix(hash(i), hash(i + vec2(1.0, 0.0)), u.x),
    mix(hash(i + vec2(0.0, 1.0)), hash(i + vec2(1.0, 1.0)), u.x),
    u.y
  );
}`

const glslFBM = `float fbm(vec2 p) {
  float v = 0.0;
  float a = 0.5;
  for (int i = 0; i < 4; i++) {
    v += a * noise(p);
    p *= 2.0;
    a *= 0.5;
  }
  return v;
}`

var utilSource = map[Util]string{
	Hash:  glslHash,
	Noise: glslNoise,
	FBM:   glslFBM,
}

// ResolveUtils returns the requested utilities plus their transitive
// dependencies, each once, dependencies first. Unknown names are dropped.
func ResolveUtils(requested []Util) []Util {
	want := make(map[Util]bool, len(requested))
	for _, u := range requested {
		want[u] = true
	}

	seen := make(map[Util]bool, len(utilOrder))
	ordered := make([]Util, 0, len(utilOrder))
	var visit func(u Util)
	visit = func(u Util) {
		if seen[u] {
			return
		}
		seen[u] = true
		for _, dep := range utilDeps[u] {
			visit(dep)
		}
		ordered = append(ordered, u)
	}
	for _, u := range utilOrder {
		if want[u] {
			visit(u)
		}
	}
	return ordered
}

// UtilSource returns the GLSL for the resolved utilities, separated by
// blank lines.
func UtilSource(requested []Util) string {
	resolved := ResolveUtils(requested)
	parts := make([]string, 0, len(resolved))
	for _, u := range resolved {
		parts = append(parts, utilSource[u])
	}
	return strings.Join(parts, "\n\n")
}
