package glfwcontext

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goglib/input"
	options "github.com/richinsley/goglib/options"
)

var (
	ErrInit         = errors.New("cannot init glfw")
	ErrWindow       = errors.New("cannot create window")
	ErrLoader       = errors.New("cannot load OpenGL functions")
	ErrWindowExists = errors.New("a window is already open")
	ErrTerminated   = errors.New("glfw was terminated")
)

// Process wide toolkit state. GLFW allows a single init/terminate cycle here
// and one window at a time.
var (
	stateMu     sync.Mutex
	initialized bool
	terminated  bool
	windowOpen  bool

	glInitOnce sync.Once
	glInitErr  error
)

// Context tracks the GLFW window, its input state and the registered callbacks.
type Context struct {
	window   *glfw.Window
	input    *input.Tracker
	onResize func(width, height int)
	// A map to store functions to be called on key presses.
	keyCallbacks map[input.Key]func()
}

// New creates the window, makes its context current, loads the OpenGL function
// pointers and wires the input callbacks. Only one window may exist.
func New(opts *options.Options) (*Context, error) {
	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	stateMu.Lock()
	defer stateMu.Unlock()
	switch {
	case terminated:
		return nil, ErrTerminated
	case !initialized:
		return nil, fmt.Errorf("%w: InitGraphics was not called", ErrInit)
	case windowOpen:
		return nil, ErrWindowExists
	}

	glfw.WindowHint(glfw.ContextVersionMajor, *opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, *opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if *opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if !*opts.Visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindow, err)
	}
	win.MakeContextCurrent()

	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		win.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrLoader, glInitErr)
	}

	if *opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	var maxAttribs int32
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &maxAttribs)
	log.Printf("OpenGL %s, maximum vertex attributes supported: %d", gl.GoStr(gl.GetString(gl.VERSION)), maxAttribs)

	// The cursor is reported in screen coordinates, which differ from pixels
	// on HiDPI displays.
	winWidth, winHeight := win.GetSize()
	c := &Context{
		window:       win,
		input:        input.NewTracker(winWidth, winHeight),
		keyCallbacks: make(map[input.Key]func()),
	}

	win.SetSizeCallback(c.glfwSizeCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)

	windowOpen = true
	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key input.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) SetResizeCallback(f func(width, height int)) {
	c.onResize = f
}

func (c *Context) glfwSizeCallback(w *glfw.Window, width, height int) {
	c.input.SetWindowSize(width, height)
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.onResize != nil {
		c.onResize(width, height)
	}
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := input.Key(key)
	c.input.HandleKey(k, toAction(action))

	// Handle the default Escape key behavior
	if k == input.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[k]; ok {
			callback()
		}
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	c.input.HandleCursorPos(xpos, ypos)
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	c.input.HandleMouseButton(input.MouseButton(button), toAction(action))
}

func toAction(a glfw.Action) input.Action {
	switch a {
	case glfw.Press:
		return input.Press
	case glfw.Repeat:
		return input.Repeat
	default:
		return input.Release
	}
}

func (c *Context) Input() *input.Tracker {
	return c.input
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window and terminates GLFW. No window can be created
// afterwards.
func (c *Context) Shutdown() {
	c.window.Destroy()

	stateMu.Lock()
	windowOpen = false
	stateMu.Unlock()

	TerminateGraphics()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) EndFrame() {
	glfw.PollEvents()
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	stateMu.Lock()
	defer stateMu.Unlock()
	if terminated {
		return ErrTerminated
	}
	if initialized {
		return nil
	}

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInit, err)
	}
	initialized = true
	log.Printf("GLFW %s Initialized", glfw.GetVersionString())
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	stateMu.Lock()
	defer stateMu.Unlock()
	if !initialized || terminated {
		return
	}
	glfw.Terminate()
	terminated = true
	log.Printf("GLFW Terminated")
}
