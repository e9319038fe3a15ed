package renderer

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/graphics"
	"github.com/olzn/glint-studio/shader"
	"github.com/olzn/glint-studio/translator"
)

// glLoader runs an init function once and remembers its result, so every
// caller sees a failed load and not only the first.
type glLoader struct {
	once sync.Once
	err  error
}

func (l *glLoader) load(init func() error) error {
	l.once.Do(func() {
		l.err = init()
	})
	return l.err
}

var glFuncs glLoader

// Config describes the surface a Renderer draws into.
type Config struct {
	Context graphics.Context
	Logger  *log.Logger

	// Width and Height fix the render size. When zero the renderer follows
	// the framebuffer of Context and resizes with it.
	Width, Height int
}

// Renderer draws one composed fragment shader with a full-screen quad. All
// methods must be called from the goroutine that owns the GL context.
type Renderer struct {
	context graphics.Context
	logger  *log.Logger
	clock   *Clock

	quadVAO     uint32
	quadVBO     uint32
	blitProgram uint32
	target      *OffscreenRenderer
	fixedSize   bool

	program       uint32
	locations     map[string]int32
	resolutionLoc int32
	timeLoc       int32

	// values holds the last value set for every uniform so a recompiled
	// program starts from the current state.
	values map[string][]float32
	dirty  map[string]bool
}

func NewRenderer(cfg Config) (*Renderer, error) {
	if cfg.Context == nil {
		return nil, fmt.Errorf("renderer needs a graphics context")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	r := &Renderer{
		context:       cfg.Context,
		logger:        logger,
		clock:         NewClock(),
		fixedSize:     cfg.Width > 0 && cfg.Height > 0,
		locations:     map[string]int32{},
		resolutionLoc: -1,
		timeLoc:       -1,
		values:        map[string][]float32{},
		dirty:         map[string]bool{},
	}

	r.context.MakeCurrent()
	if err := glFuncs.load(gl.Init); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	var err error
	r.blitProgram, err = newProgram(blitVertexSource, blitFragmentSource)
	if err != nil {
		r.Shutdown()
		return nil, fmt.Errorf("failed to create blit program: %w", err)
	}

	width, height := cfg.Width, cfg.Height
	if !r.fixedSize {
		width, height = r.context.GetFramebufferSize()
	}
	r.target, err = NewOffscreenRenderer(width, height)
	if err != nil {
		r.Shutdown()
		return nil, fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	return r, nil
}

func (r *Renderer) Shutdown() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.blitProgram != 0 {
		gl.DeleteProgram(r.blitProgram)
		r.blitProgram = 0
	}
	if r.target != nil {
		r.target.Destroy()
		r.target = nil
	}
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
}

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

const blitVertexSource = `#version 410 core
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

const blitFragmentSource = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
void main() { fragColor = texture(u_texture, frag_uv); }
`

// Compile translates and links a WebGL2 shader pair. On failure the
// previous program stays active and the diagnostics are returned.
func (r *Renderer) Compile(vs, fs string) []translator.Diagnostic {
	vsShader, err := translator.Translate(vs, "vertex")
	if err != nil {
		diags := translator.FromError(err)
		for i := range diags {
			diags[i].Message = "vertex: " + diags[i].Message
		}
		r.logger.Printf("vertex shader translation failed: %v", err)
		return diags
	}
	fsShader, err := translator.Translate(fs, "fragment")
	if err != nil {
		r.logger.Printf("fragment shader translation failed: %v", err)
		return translator.FromError(err)
	}
	program, err := newProgram(vsShader.Code, fsShader.Code)
	if err != nil {
		r.logger.Printf("failed to create shader program: %v", err)
		return translator.FromError(err)
	}

	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	r.program = program
	gl.UseProgram(program)

	r.resolutionLoc, r.timeLoc = -1, -1
	clear(r.locations)
	for name, v := range fsShader.Variables {
		loc := gl.GetUniformLocation(program, gl.Str(v.MappedName+"\x00"))
		if loc < 0 {
			continue
		}
		switch name {
		case shader.ResolutionUniform:
			r.resolutionLoc = loc
		case shader.TimeUniform:
			r.timeLoc = loc
		default:
			r.locations[name] = loc
		}
	}
	for name := range r.values {
		r.dirty[name] = true
	}
	return nil
}

// SetUniform records a uniform value. It is uploaded before the next frame
// and survives recompilation. Values that do not fit typ are ignored.
func (r *Renderer) SetUniform(name string, typ effects.ParamType, v effects.Value) {
	data, ok := shader.Components(typ, v)
	if !ok {
		r.logger.Printf("ignoring %s value %v for uniform %s", typ, v, name)
		return
	}
	r.values[name] = data
	r.dirty[name] = true
}

func (r *Renderer) flushUniforms() {
	for name := range r.dirty {
		if loc, ok := r.locations[name]; ok {
			uploadUniform(loc, r.values[name])
		}
		delete(r.dirty, name)
	}
}

func uploadUniform(loc int32, data []float32) {
	switch len(data) {
	case 1:
		gl.Uniform1f(loc, data[0])
	case 2:
		gl.Uniform2f(loc, data[0], data[1])
	case 3:
		gl.Uniform3f(loc, data[0], data[1], data[2])
	}
}

func (r *Renderer) Clock() *Clock { return r.clock }

func (r *Renderer) Play() { r.clock.Play() }

func (r *Renderer) Pause() { r.clock.Pause() }

func (r *Renderer) Reset() { r.clock.Reset() }

func (r *Renderer) SetTimeScale(s float64) { r.clock.SetTimeScale(s) }

// Subscribe registers a per-frame time observer.
func (r *Renderer) Subscribe(fn func(t float64)) (unsubscribe func()) {
	return r.clock.Subscribe(fn)
}

// Size is the current render target size.
func (r *Renderer) Size() (int, int) {
	return r.target.width, r.target.height
}

// RenderFrame draws the active program at shader time t into the offscreen
// target. Nothing is drawn before the first successful Compile.
func (r *Renderer) RenderFrame(t float64) {
	if !r.fixedSize {
		fbWidth, fbHeight := r.context.GetFramebufferSize()
		if fbWidth > 0 && fbHeight > 0 && (fbWidth != r.target.width || fbHeight != r.target.height) {
			r.target.Resize(fbWidth, fbHeight)
		}
	}
	width, height := r.target.width, r.target.height

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.target.fbo)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if r.program != 0 {
		gl.UseProgram(r.program)
		if r.resolutionLoc != -1 {
			gl.Uniform2f(r.resolutionLoc, float32(width), float32(height))
		}
		if r.timeLoc != -1 {
			gl.Uniform1f(r.timeLoc, float32(t))
		}
		r.flushUniforms()
		gl.BindVertexArray(r.quadVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Run renders to the window until it is asked to close. Each iteration
// calls frame, when non-nil, before drawing.
func (r *Renderer) Run(frame func()) {
	for !r.context.ShouldClose() {
		if frame != nil {
			frame()
		}
		t := r.clock.Tick(r.context.Time())
		r.RenderFrame(t)

		fbWidth, fbHeight := r.context.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(r.blitProgram)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.target.textureID)
		gl.BindVertexArray(r.quadVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
		gl.BindTexture(gl.TEXTURE_2D, 0)

		r.context.EndFrame()
	}
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}
