// Package renderer drives the per-frame loop of a window: clear, bind the
// default shader and texture, run the user callback and frame hooks, then
// poll events and swap.
package renderer

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goglib/graphics"
	"github.com/richinsley/goglib/input"
	"github.com/richinsley/goglib/mesh"
	options "github.com/richinsley/goglib/options"
	shader "github.com/richinsley/goglib/shader"
	texture "github.com/richinsley/goglib/texture"
)

// FrameHook runs every frame after the render callback, before the buffers
// are swapped. A hook returning an error is logged and removed.
type FrameHook func(width, height int) error

type Renderer struct {
	context graphics.Context
	device  device

	defaultShader  *shader.Program
	defaultTexture *texture.Texture

	clearColor     [4]float32
	rebindDefaults bool

	onRender func()
	onResize func(width, height int)
	hooks    []FrameHook
	closers  []func()

	frame    uint64
	shutdown bool
}

// NewRenderer makes ctx current, enables depth testing and builds the
// default shader and texture.
func NewRenderer(ctx graphics.Context, opts *options.Options) (*Renderer, error) {
	ctx.MakeCurrent()
	gl.Enable(gl.DEPTH_TEST)

	prog, err := shader.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to create default shader: %w", err)
	}
	tex, err := texture.Default()
	if err != nil {
		prog.Delete()
		return nil, fmt.Errorf("failed to create default texture: %w", err)
	}
	prog.SetTextureSlot("tex0", int32(texture.Slot0))

	r := newRenderer(ctx, glDevice{}, prog, tex)
	r.SetClearColorHex(uint32(*opts.ClearColor))
	r.SetRebindDefaults(*opts.RebindDefaults)
	return r, nil
}

func newRenderer(ctx graphics.Context, dev device, prog *shader.Program, tex *texture.Texture) *Renderer {
	r := &Renderer{
		context:        ctx,
		device:         dev,
		defaultShader:  prog,
		defaultTexture: tex,
		clearColor:     [4]float32{0, 0, 0, 1},
		rebindDefaults: true,
	}
	r.device.ClearColor(r.clearColor)

	width, height := ctx.GetFramebufferSize()
	r.device.Viewport(width, height)
	ctx.SetResizeCallback(r.handleResize)
	return r
}

func (r *Renderer) handleResize(width, height int) {
	r.device.Viewport(width, height)
	if r.onResize != nil {
		r.onResize(width, height)
	}
}

// SetRenderCallback sets the function called once per frame. nil clears it.
func (r *Renderer) SetRenderCallback(f func()) {
	r.onRender = f
}

// SetResizeCallback sets the function called after the viewport follows a
// framebuffer resize. nil clears it.
func (r *Renderer) SetResizeCallback(f func(width, height int)) {
	r.onResize = f
}

func (r *Renderer) SetClearColor(red, green, blue, alpha float32) {
	r.clearColor = [4]float32{red, green, blue, alpha}
	r.device.ClearColor(r.clearColor)
}

// SetClearColorHex sets the clear color from a packed 0xRRGGBBAA value.
func (r *Renderer) SetClearColorHex(hex uint32) {
	c := mesh.HexToRGBA(hex)
	r.SetClearColor(c[0], c[1], c[2], c[3])
}

func (r *Renderer) ClearColor() [4]float32 {
	return r.clearColor
}

// SetRebindDefaults controls whether the default texture and shader are bound
// at the start of every frame. It is on by default, so state left bound by one
// frame does not leak into the next.
func (r *Renderer) SetRebindDefaults(v bool) {
	r.rebindDefaults = v
}

// WiredDraw rasterizes polygons as outlines.
func (r *Renderer) WiredDraw() {
	r.device.PolygonMode(true)
}

// FilledDraw restores filled polygons.
func (r *Renderer) FilledDraw() {
	r.device.PolygonMode(false)
}

func (r *Renderer) AddFrameHook(h FrameHook) {
	r.hooks = append(r.hooks, h)
}

// OnShutdown registers f to run during Shutdown while the GL context is still
// current. Functions run in reverse order of registration.
func (r *Renderer) OnShutdown(f func()) {
	r.closers = append(r.closers, f)
}

func (r *Renderer) DefaultShader() *shader.Program {
	return r.defaultShader
}

func (r *Renderer) DefaultTexture() *texture.Texture {
	return r.defaultTexture
}

func (r *Renderer) Input() *input.Tracker {
	return r.context.Input()
}

// Time is the number of seconds since the toolkit was initialized.
func (r *Renderer) Time() float64 {
	return r.context.Time()
}

// Frame is the number of frames completed so far.
func (r *Renderer) Frame() uint64 {
	return r.frame
}

// Close asks Run to return after the current frame.
func (r *Renderer) Close() {
	r.context.SetShouldClose(true)
}

// Run blocks until the window is asked to close, then shuts the window and
// the toolkit down. It can only run once.
func (r *Renderer) Run() {
	if r.shutdown {
		log.Printf("Renderer already shut down")
		return
	}

	for !r.context.ShouldClose() {
		r.RenderFrame()
		r.context.EndFrame()
		r.frame++
	}

	r.Shutdown()
}

// RenderFrame draws one frame without presenting it.
func (r *Renderer) RenderFrame() {
	r.device.Clear()
	if r.rebindDefaults {
		r.device.BindDefaults(r.defaultShader, r.defaultTexture)
	}
	if r.onRender != nil {
		r.onRender()
	}
	r.runHooks()
}

func (r *Renderer) runHooks() {
	if len(r.hooks) == 0 {
		return
	}
	width, height := r.context.GetFramebufferSize()
	kept := r.hooks[:0]
	for _, h := range r.hooks {
		if err := h(width, height); err != nil {
			log.Printf("Frame hook removed on frame %d: %v", r.frame, err)
			continue
		}
		kept = append(kept, h)
	}
	r.hooks = kept
}

// Shutdown releases the default resources, destroys the window and terminates
// the toolkit.
func (r *Renderer) Shutdown() {
	if r.shutdown {
		return
	}
	r.shutdown = true
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
	if r.defaultShader != nil {
		r.defaultShader.Delete()
	}
	if r.defaultTexture != nil {
		r.defaultTexture.Delete()
	}
	r.context.Shutdown()
}
