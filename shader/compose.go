package shader

import (
	"strings"

	"github.com/olzn/glint-studio/effects"
)

// ShaderParam is the instance-scoped projection of a block parameter.
type ShaderParam struct {
	ID          string // {instanceId}_{paramId}
	UniformName string // u_{instanceId}_{paramId}
	InstanceID  string
	BlockID     string
	Spec        effects.ParamSpec
}

// ComposeResult is the composed fragment source and the uniforms it declares
// for effect parameters, in declaration order.
type ComposeResult struct {
	GLSL   string
	Params []ShaderParam
}

// Composer assembles fragment shaders from a block registry.
type Composer struct {
	registry *effects.Registry
}

// NewComposer returns a composer resolving blocks through reg.
func NewComposer(reg *effects.Registry) *Composer {
	return &Composer{registry: reg}
}

// Compose builds a shader from the built-in catalog.
func Compose(active []effects.ActiveEffect, colorCount int) ComposeResult {
	return NewComposer(effects.Default()).Compose(active, colorCount)
}

type instance struct {
	effects.ActiveEffect
	block  *effects.EffectBlock
	params []ShaderParam
	names  map[string]string // unscoped param id -> uniform name
}

// Compose turns an ordered recipe into a fragment shader. Disabled
// instances and unknown blocks are skipped. Output depends only on the
// structural content of the arguments.
func (c *Composer) Compose(active []effects.ActiveEffect, colorCount int) ComposeResult {
	if colorCount < 0 {
		colorCount = 0
	}
	instances := c.resolve(active)

	var utils []effects.Util
	var params []ShaderParam
	for _, in := range instances {
		utils = append(utils, in.block.RequiredUtils...)
		params = append(params, in.params...)
	}

	b := make([]byte, 0, 8192)
	b = append(b, preamble...)

	if src := effects.UtilSource(utils); src != "" {
		b = append(b, "\n"...)
		b = append(b, src...)
		b = append(b, '\n')
	}

	for _, in := range instances {
		b = append(b, '\n')
		b = appendHeader(b, "", in)
		for _, p := range in.params {
			b = AppendUniformDecl(b, p.Spec.Type.GLSLType(), p.UniformName)
		}
	}

	if colorCount > 0 {
		b = append(b, '\n')
		for i := 0; i < colorCount; i++ {
			b = AppendUniformDecl(b, "vec3", ColorUniform(i))
			b = AppendUniformDecl(b, "float", StopUniform(i))
		}
	}

	b = append(b, '\n')
	b = appendColorRamp(b, colorCount)

	b = append(b, '\n')
	b = append(b, mainHeader...)
	b = appendUVTransforms(b, instances)
	b = appendGenerators(b, instances)
	b = appendPost(b, instances)
	b = append(b, mainFooter...)

	return ComposeResult{GLSL: string(b), Params: params}
}

func (c *Composer) resolve(active []effects.ActiveEffect) []instance {
	out := make([]instance, 0, len(active))
	for _, ae := range active {
		if !ae.Enabled {
			continue
		}
		block, ok := c.registry.Get(ae.BlockID)
		if !ok {
			continue
		}
		in := instance{
			ActiveEffect: ae,
			block:        block,
			params:       make([]ShaderParam, 0, len(block.Params)),
			names:        make(map[string]string, len(block.Params)),
		}
		for _, spec := range block.Params {
			p := ShaderParam{
				ID:          ScopedID(ae.InstanceID, spec.ID),
				UniformName: UniformName(ae.InstanceID, spec.ID),
				InstanceID:  ae.InstanceID,
				BlockID:     block.ID,
				Spec:        spec,
			}
			in.params = append(in.params, p)
			in.names[spec.ID] = p.UniformName
		}
		out = append(out, in)
	}
	return out
}

func appendUVTransforms(b []byte, instances []instance) []byte {
	for _, in := range instances {
		if in.block.Category != effects.UVTransform {
			continue
		}
		b = append(b, '\n')
		b = appendHeader(b, "  ", in)
		b = appendIndented(b, "  ", Substitute(in.block.GLSLBody, in.names))
	}
	return b
}

// appendGenerators wraps the generator group in its own scope so that
// mixFactor is invisible to post effects. The first generator sets the
// color from the ramp, later ones screen-blend over it.
func appendGenerators(b []byte, instances []instance) []byte {
	first := true
	for _, in := range instances {
		if in.block.Category != effects.Generator {
			continue
		}
		if first {
			b = append(b, "\n  {\n    float mixFactor = 0.0;\n"...)
		}
		b = append(b, '\n')
		b = appendHeader(b, "    ", in)
		b = appendIndented(b, "    ", Substitute(in.block.GLSLBody, in.names))
		if first {
			b = append(b, "    color = colorRamp(mixFactor);\n"...)
		} else {
			b = append(b, "    color = 1.0 - (1.0 - color) * (1.0 - colorRamp(mixFactor));\n"...)
		}
		if in.block.PostMixGLSL != "" {
			b = appendIndented(b, "    ", Substitute(in.block.PostMixGLSL, in.names))
		}
		first = false
	}
	if !first {
		b = append(b, "  }\n"...)
	}
	return b
}

func appendPost(b []byte, instances []instance) []byte {
	for _, in := range instances {
		if in.block.Category != effects.Post {
			continue
		}
		b = append(b, '\n')
		b = appendHeader(b, "  ", in)
		b = appendIndented(b, "  ", Substitute(in.block.GLSLBody, in.names))
	}
	return b
}

func appendHeader(b []byte, indent string, in instance) []byte {
	b = append(b, indent...)
	b = append(b, "// "...)
	b = append(b, in.block.Name...)
	b = append(b, " ("...)
	b = append(b, in.InstanceID...)
	b = append(b, ")\n"...)
	return b
}

func appendIndented(b []byte, indent, src string) []byte {
	src = strings.Trim(src, "\n")
	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) != "" {
			b = append(b, indent...)
			b = append(b, line...)
		}
		b = append(b, '\n')
	}
	return b
}

// AppendUniformDecl appends "uniform <typ> <name>;\n".
func AppendUniformDecl(b []byte, typ, name string) []byte {
	b = append(b, "uniform "...)
	b = append(b, typ...)
	b = append(b, ' ')
	b = append(b, name...)
	b = append(b, ";\n"...)
	return b
}
