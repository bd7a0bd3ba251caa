package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goglib/input"
	options "github.com/richinsley/goglib/options"
	"github.com/stretchr/testify/assert"
)

func TestToAction(t *testing.T) {
	assert.Equal(t, input.Press, toAction(glfw.Press))
	assert.Equal(t, input.Repeat, toAction(glfw.Repeat))
	assert.Equal(t, input.Release, toAction(glfw.Release))
}

func TestNewRequiresInit(t *testing.T) {
	_, err := New(options.New())
	assert.ErrorIs(t, err, ErrInit)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	o := options.New()
	*o.Width = 0
	_, err := New(o)
	assert.ErrorIs(t, err, options.ErrInvalid)
}

func TestCursorFollowsWindowSize(t *testing.T) {
	c := &Context{input: input.NewTracker(400, 300)}
	var resized [2]int
	c.SetResizeCallback(func(w, h int) { resized = [2]int{w, h} })

	// HiDPI: the framebuffer is twice the window.
	c.glfwFramebufferSizeCallback(nil, 1600, 1200)
	c.glfwSizeCallback(nil, 800, 600)
	c.glfwCursorPosCallback(nil, 800, 0)

	assert.Equal(t, [2]int{1600, 1200}, resized)
	w, h := c.input.WindowSize()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.InDelta(t, 1, c.input.MouseX(), 1e-6)
	assert.InDelta(t, -1, c.input.MouseY(), 1e-6)
}

func TestFramebufferResizeKeepsTracker(t *testing.T) {
	c := &Context{input: input.NewTracker(400, 300)}
	c.glfwFramebufferSizeCallback(nil, 800, 600)

	w, h := c.input.WindowSize()
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
}
