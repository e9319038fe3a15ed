package recipe

import (
	"maps"
	"slices"
	"strings"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/shader"
)

const (
	MaxColors           = 5
	DefaultFunctionName = "renderShader"
)

// ExportSettings controls the generated function module.
type ExportSettings struct {
	FunctionName string `json:"functionName" jsonschema:"pattern=^[A-Za-z_$][A-Za-z0-9_$]*$,description=Name of the exported render function"`
	UsesTexture  bool   `json:"usesTexture,omitempty" jsonschema:"description=Bind a user texture to sampler u_texture"`
	Async        bool   `json:"async,omitempty" jsonschema:"description=Export an async function that waits for the texture to load"`
}

// State is the undoable recipe: everything needed to recompose and
// re-render a shader.
type State struct {
	Name     string                   `json:"name" jsonschema:"maxLength=120"`
	PresetID string                   `json:"presetId,omitempty" jsonschema:"description=Preset the recipe was loaded from"`
	Effects  []effects.ActiveEffect   `json:"effects" jsonschema:"maxItems=32"`
	Values   map[string]effects.Value `json:"values" jsonschema:"description=Parameter values keyed {instanceId}_{paramId}"`
	Colors   []string                 `json:"colors" jsonschema:"maxItems=5"`
	Stops    []float64                `json:"stops,omitempty" jsonschema:"description=Gradient stop per color in [0 1]"`
	Export   ExportSettings           `json:"export"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Effects = slices.Clone(s.Effects)
	s.Values = maps.Clone(s.Values)
	s.Colors = slices.Clone(s.Colors)
	s.Stops = slices.Clone(s.Stops)
	return s
}

// Instance returns the position of the instance with the given id, or -1.
func (s *State) Instance(id string) int {
	return slices.IndexFunc(s.Effects, func(ae effects.ActiveEffect) bool { return ae.InstanceID == id })
}

// OwnerOf splits a scoped param key into the index of its instance and the
// unscoped param id.
func (s *State) OwnerOf(key string) (int, string) {
	idx, param := -1, ""
	for i, ae := range s.Effects {
		p, ok := strings.CutPrefix(key, ae.InstanceID+"_")
		if ok && p != "" && (idx < 0 || len(ae.InstanceID) > len(s.Effects[idx].InstanceID)) {
			idx, param = i, p
		}
	}
	return idx, param
}

// repairStops keeps one stop per color, re-spacing when the lengths drift.
func (s *State) repairStops() {
	if len(s.Stops) != len(s.Colors) {
		s.Stops = shader.EqualStops(len(s.Colors))
	}
}

// Compose composes the enabled effects of s through reg.
func (s *State) Compose(reg *effects.Registry) shader.ComposeResult {
	return shader.NewComposer(reg).Compose(s.Effects, len(s.Colors))
}

// Uniforms resolves every uniform of a composed shader against s, colors
// and stops included.
func (s *State) Uniforms(res shader.ComposeResult) []shader.Uniform {
	out := shader.ResolveParams(res.Params, s.Values)
	return append(out, shader.ColorUniforms(s.Colors, s.Stops)...)
}

func newState() State {
	return State{
		Values: map[string]effects.Value{},
		Export: ExportSettings{FunctionName: DefaultFunctionName},
	}
}
