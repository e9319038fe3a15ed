package shader

// VertexSource is the full-screen quad vertex stage paired with every
// composed fragment shader.
const VertexSource = `#version 300 es
layout (location = 0) in vec2 in_vert;
void main() {
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// Runtime uniforms supplied by the host every frame. They are never baked.
const (
	ResolutionUniform = "u_resolution"
	TimeUniform       = "u_time"
)

const preamble = `#version 300 es
precision highp float;

uniform vec2 u_resolution;
uniform float u_time;

out vec4 fragColor;
`

// mainHeader sets up the ambient inputs every template may read:
// uv (0..1), aspect, st (aspect corrected uv), t (scaled seconds) and the
// running color.
const mainHeader = `void main() {
  vec2 uv = gl_FragCoord.xy / u_resolution;
  float aspect = u_resolution.x / u_resolution.y;
  vec2 st = uv * vec2(aspect, 1.0);
  float t = u_time;
  vec3 color = vec3(0.0);
`

const mainFooter = `
  fragColor = vec4(clamp(color, 0.0, 1.0), 1.0);
}
`
