package graphics

// Context defines the interface for an OpenGL context the renderer draws
// through.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
}
