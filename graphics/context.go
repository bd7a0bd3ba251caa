package graphics

import "github.com/richinsley/goglib/input"

// Context defines the interface for a window owning an OpenGL context.
type Context interface {
	MakeCurrent()
	// Shutdown destroys the window and shuts the platform toolkit down.
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	// EndFrame polls pending events, then swaps buffers.
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// SetResizeCallback registers the handler run from event polling whenever
	// the framebuffer size changes.
	SetResizeCallback(func(width, height int))
	// Input returns the tracker. The context keeps its size in window
	// coordinates, which can be smaller than the framebuffer.
	Input() *input.Tracker
}
