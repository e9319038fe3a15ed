package recipe

import (
	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/shader"
)

// Preset is a named starting recipe. Overrides are keyed blockId.paramId
// and apply to every instance of that block.
type Preset struct {
	ID          string
	Name        string
	Description string
	Blocks      []string
	Overrides   map[string]effects.Value
	Colors      []string
	Stops       []float64
}

// State instantiates the preset, allocating instance ids from ids. Blocks
// missing from reg are skipped.
func (p *Preset) State(reg *effects.Registry, ids *IDSource) State {
	st := newState()
	st.Name = p.Name
	st.PresetID = p.ID
	for _, blockID := range p.Blocks {
		block, ok := reg.Get(blockID)
		if !ok {
			continue
		}
		id := ids.Next()
		st.Effects = append(st.Effects, effects.ActiveEffect{InstanceID: id, BlockID: blockID, Enabled: true})
		for _, param := range block.Params {
			v, ok := p.Overrides[blockID+"."+param.ID]
			if !ok || !v.Matches(param.Type) {
				v = param.Default
			}
			st.Values[shader.ScopedID(id, param.ID)] = v
		}
	}
	st.Colors = append([]string(nil), p.Colors...)
	st.Stops = append([]float64(nil), p.Stops...)
	st.repairStops()
	return st
}

var presets = []*Preset{
	{
		ID:          "blank",
		Name:        "Blank",
		Description: "Empty canvas",
	},
	{
		ID:          "swirl",
		Name:        "Swirl",
		Description: "Organic domain-warped noise flow",
		Blocks:      []string{"domain-warp", "brightness", "vignette", "film-grain"},
		Overrides: map[string]effects.Value{
			"domain-warp.noiseScale":    effects.Number(0.8),
			"domain-warp.warpIntensity": effects.Number(4),
			"domain-warp.rotation":      effects.Number(40),
			"domain-warp.driftSpeed1":   effects.Number(0.03),
			"domain-warp.driftSpeed2":   effects.Number(0.04),
			"domain-warp.mixLow":        effects.Number(0.25),
			"domain-warp.mixHigh":       effects.Number(0.75),
			"brightness.amount":         effects.Number(0),
			"vignette.strength":         effects.Number(0),
			"vignette.radius":           effects.Number(0.7),
			"film-grain.intensity":      effects.Number(0.08),
		},
		Colors: []string{"#3c1ea8", "#ff7130"},
	},
	{
		ID:          "glow",
		Name:        "Glow",
		Description: "Sine-wave displacement with warm glow",
		Blocks:      []string{"glow-waves", "vignette", "film-grain"},
		Overrides: map[string]effects.Value{
			"glow-waves.maskStart":    effects.Number(0.45),
			"glow-waves.waveFreq":     effects.Number(5),
			"glow-waves.waveSpeed":    effects.Number(0.25),
			"glow-waves.displacement": effects.Number(0.3),
			"glow-waves.brightness":   effects.Number(0.3),
			"glow-waves.breathColor":  effects.Text("#1a0a00"),
			"vignette.strength":       effects.Number(0),
			"vignette.radius":         effects.Number(0.7),
			"film-grain.intensity":    effects.Number(0.04),
		},
		Colors: []string{"#432cdc", "#ff7130"},
		Stops:  []float64{0.6, 0.9},
	},
	{
		ID:          "cells",
		Name:        "Cells",
		Description: "Organic cell patterns with shifting boundaries",
		Blocks:      []string{"voronoi", "brightness", "vignette", "film-grain"},
		Overrides: map[string]effects.Value{
			"voronoi.scale":        effects.Number(5),
			"voronoi.speed":        effects.Number(0.25),
			"voronoi.jitter":       effects.Number(0.9),
			"voronoi.edgeWidth":    effects.Number(0.12),
			"brightness.amount":    effects.Number(0.05),
			"vignette.strength":    effects.Number(0.4),
			"vignette.radius":      effects.Number(0.75),
			"film-grain.intensity": effects.Number(0.03),
		},
		Colors: []string{"#0a1628", "#1e88e5", "#e0f7fa"},
	},
	{
		ID:          "neon",
		Name:        "Neon",
		Description: "Fast spiral with chromatic split and scanlines",
		Blocks:      []string{"spiral", "chromatic-aberration", "crt-scanlines", "vignette"},
		Overrides: map[string]effects.Value{
			"spiral.arms":                 effects.Number(2),
			"spiral.tightness":            effects.Number(15),
			"spiral.speed":                effects.Number(0.8),
			"chromatic-aberration.amount": effects.Number(0.015),
			"crt-scanlines.lineWidth":     effects.Number(600),
			"crt-scanlines.intensity":     effects.Number(0.15),
			"crt-scanlines.flicker":       effects.Number(0.03),
			"vignette.strength":           effects.Number(0.5),
			"vignette.radius":             effects.Number(0.65),
		},
		Colors: []string{"#0a0020", "#ff006e", "#00f5d4"},
	},
	{
		ID:          "silk",
		Name:        "Silk",
		Description: "Kaleidoscopic domain-warp mandala",
		Blocks:      []string{"kaleidoscope", "domain-warp", "chromatic-aberration", "vignette", "film-grain"},
		Overrides: map[string]effects.Value{
			"kaleidoscope.segments":       effects.Number(6),
			"kaleidoscope.rotation":       effects.Number(0),
			"domain-warp.noiseScale":      effects.Number(0.6),
			"domain-warp.warpIntensity":   effects.Number(3),
			"domain-warp.rotation":        effects.Number(20),
			"domain-warp.driftSpeed1":     effects.Number(0.025),
			"domain-warp.driftSpeed2":     effects.Number(0.03),
			"domain-warp.mixLow":          effects.Number(0.2),
			"domain-warp.mixHigh":         effects.Number(0.8),
			"chromatic-aberration.amount": effects.Number(0.008),
			"vignette.strength":           effects.Number(0.3),
			"vignette.radius":             effects.Number(0.8),
			"film-grain.intensity":        effects.Number(0.03),
		},
		Colors: []string{"#1a0033", "#8b5cf6", "#f59e0b"},
	},
	{
		ID:          "mist",
		Name:        "Mist",
		Description: "Soft atmospheric noise layers",
		Blocks:      []string{"diffuse-blur", "noise", "brightness", "vignette", "film-grain"},
		Overrides: map[string]effects.Value{
			"diffuse-blur.amount":  effects.Number(0.05),
			"diffuse-blur.scale":   effects.Number(15),
			"diffuse-blur.speed":   effects.Number(0.1),
			"noise.scale":          effects.Number(2.5),
			"noise.speed":          effects.Number(0.15),
			"brightness.amount":    effects.Number(-0.05),
			"vignette.strength":    effects.Number(0.5),
			"vignette.radius":      effects.Number(0.65),
			"film-grain.intensity": effects.Number(0.05),
		},
		Colors: []string{"#0f172a", "#475569", "#94a3b8", "#e2e8f0"},
	},
	{
		ID:          "prism",
		Name:        "Prism",
		Description: "Radial rainbow wave refraction",
		Blocks:      []string{"polar", "wave", "chromatic-aberration", "brightness", "vignette"},
		Overrides: map[string]effects.Value{
			"polar.scale":                 effects.Number(2),
			"polar.rotation":              effects.Number(0),
			"wave.frequency":              effects.Number(8),
			"wave.amplitude":              effects.Number(0.5),
			"wave.speed":                  effects.Number(0.4),
			"wave.angle":                  effects.Number(0),
			"chromatic-aberration.amount": effects.Number(0.02),
			"brightness.amount":           effects.Number(0.1),
			"vignette.strength":           effects.Number(0.3),
			"vignette.radius":             effects.Number(0.8),
		},
		Colors: []string{"#ff006e", "#fb5607", "#ffbe0b", "#3a86ff", "#8338ec"},
	},
	{
		ID:          "signal",
		Name:        "Signal",
		Description: "Scrolling noise rendered as terminal characters",
		Blocks:      []string{"noise", "ascii"},
		Overrides: map[string]effects.Value{
			"noise.scale":     effects.Number(10),
			"noise.speed":     effects.Number(0.12),
			"ascii.charset":   effects.Number(3),
			"ascii.font":      effects.Number(1),
			"ascii.cellSize":  effects.Number(28),
			"ascii.threshold": effects.Number(0.15),
			"ascii.intensity": effects.Number(1),
			"ascii.padding":   effects.Number(0.12),
			"ascii.invert":    effects.Number(0),
		},
		Colors: []string{"#000a00", "#22c55e"},
	},
}

// DefaultPreset is loaded into a fresh store.
const DefaultPreset = "glow"

// Presets returns the built-in presets in display order.
func Presets() []*Preset {
	return append([]*Preset(nil), presets...)
}

func GetPreset(id string) (*Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// InitialState is the state of a fresh session: the default preset with
// its glow waves running faster than the preset itself specifies.
func InitialState(reg *effects.Registry, ids *IDSource) State {
	p, _ := GetPreset(DefaultPreset)
	st := p.State(reg, ids)
	for _, ae := range st.Effects {
		if ae.BlockID == "glow-waves" {
			st.Values[shader.ScopedID(ae.InstanceID, "waveSpeed")] = effects.Number(1.2)
		}
	}
	return st
}
