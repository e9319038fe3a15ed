package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

// Config describes the window to open.
type Config struct {
	Width, Height int
	Title         string

	// Visible false opens a hidden window, used as a context for offline
	// recording.
	Visible bool
}

// Key is a keyboard key with its modifiers, the unit key callbacks are
// registered for.
type Key struct {
	Key  glfw.Key
	Mods glfw.ModifierKey
}

// Context is a glfw window with an OpenGL 4.1 core context.
type Context struct {
	window *glfw.Window
	// A map to store functions to be called on key presses.
	keyCallbacks map[Key]func()
}

// New creates a window and its context. InitGraphics must have been called.
func New(cfg Config) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	title := cfg.Title
	if title == "" {
		title = "glint studio"
	}
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[Key]func()),
	}
	win.SetKeyCallback(c.glfwKeyCallback)
	return c, nil
}

// RegisterKeyCallback runs f whenever key is pressed with exactly mods held.
func (c *Context) RegisterKeyCallback(key glfw.Key, mods glfw.ModifierKey, f func()) {
	c.keyCallbacks[Key{Key: key, Mods: mods}] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	// lock keys never take part in a binding
	mods &^= glfw.ModCapsLock | glfw.ModNumLock
	if callback, ok := c.keyCallbacks[Key{Key: key, Mods: mods}]; ok {
		callback()
	}
}

// SetTitle replaces the window title.
func (c *Context) SetTitle(title string) {
	c.window.SetTitle(title)
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
