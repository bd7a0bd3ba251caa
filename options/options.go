package options

import (
	"errors"
	"fmt"
)

// Options configures the window, the render loop and the optional recorder.
// Fields are pointers so they can be bound straight to flag values.
type Options struct {
	Width          *int
	Height         *int
	Title          *string
	GLMajor        *int
	GLMinor        *int
	Resizable      *bool
	Visible        *bool
	VSync          *bool
	RebindDefaults *bool   // Rebind the fallback texture and shader before every render callback.
	ClearColor     *uint   // Packed 0xRRGGBBAA.
	Example        *string // Scene selected by the demo runner.

	// Recording options
	OutputFile *string // Empty disables recording.
	FFMPEGPath *string
	FPS        *int
	Codec      *string
	MaxFrames  *int // Stop recording after this many frames; 0 records until the window closes.
}

const (
	DefaultWidth      = 900
	DefaultHeight     = 600
	DefaultTitle      = "goglib"
	DefaultGLMajor    = 4
	DefaultGLMinor    = 1
	DefaultClearColor = 0x000000FF
	DefaultFPS        = 60
	DefaultCodec      = "h264"
)

var ErrInvalid = errors.New("invalid options")

func intPtr(v int) *int          { return &v }
func uintPtr(v uint) *uint       { return &v }
func boolPtr(v bool) *bool       { return &v }
func stringPtr(v string) *string { return &v }

// New returns a fully populated set of default options.
func New() *Options {
	o := &Options{}
	o.Normalize()
	return o
}

// Normalize replaces every nil field with its default value.
func (o *Options) Normalize() {
	if o.Width == nil {
		o.Width = intPtr(DefaultWidth)
	}
	if o.Height == nil {
		o.Height = intPtr(DefaultHeight)
	}
	if o.Title == nil {
		o.Title = stringPtr(DefaultTitle)
	}
	if o.GLMajor == nil {
		o.GLMajor = intPtr(DefaultGLMajor)
	}
	if o.GLMinor == nil {
		o.GLMinor = intPtr(DefaultGLMinor)
	}
	if o.Resizable == nil {
		o.Resizable = boolPtr(true)
	}
	if o.Visible == nil {
		o.Visible = boolPtr(true)
	}
	if o.VSync == nil {
		o.VSync = boolPtr(true)
	}
	if o.RebindDefaults == nil {
		o.RebindDefaults = boolPtr(true)
	}
	if o.ClearColor == nil {
		o.ClearColor = uintPtr(DefaultClearColor)
	}
	if o.Example == nil {
		o.Example = stringPtr("triangle")
	}
	if o.OutputFile == nil {
		o.OutputFile = stringPtr("")
	}
	if o.FFMPEGPath == nil {
		o.FFMPEGPath = stringPtr("")
	}
	if o.FPS == nil {
		o.FPS = intPtr(DefaultFPS)
	}
	if o.Codec == nil {
		o.Codec = stringPtr(DefaultCodec)
	}
	if o.MaxFrames == nil {
		o.MaxFrames = intPtr(0)
	}
}

// Validate checks the options after Normalize has been applied.
func (o *Options) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, *o.Width, *o.Height)
	}
	if *o.GLMajor < 4 || (*o.GLMajor == 4 && *o.GLMinor < 1) {
		return fmt.Errorf("%w: OpenGL %d.%d is below the 4.1 core profile", ErrInvalid, *o.GLMajor, *o.GLMinor)
	}
	if *o.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalid, *o.FPS)
	}
	if *o.MaxFrames < 0 {
		return fmt.Errorf("%w: max frames %d", ErrInvalid, *o.MaxFrames)
	}
	return nil
}

// Recording reports whether a recorder should be attached to the render loop.
func (o *Options) Recording() bool {
	return o.OutputFile != nil && *o.OutputFile != ""
}
