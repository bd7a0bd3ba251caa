package renderer

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	shader "github.com/richinsley/goglib/shader"
	texture "github.com/richinsley/goglib/texture"
)

// device is the GL state the render loop touches directly.
type device interface {
	Viewport(width, height int)
	ClearColor(c [4]float32)
	Clear()
	PolygonMode(wired bool)
	// BindDefaults binds tex to Slot0 and makes program current.
	BindDefaults(program *shader.Program, tex *texture.Texture)
}

type glDevice struct{}

func (glDevice) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (glDevice) ClearColor(c [4]float32) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (glDevice) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (glDevice) PolygonMode(wired bool) {
	if wired {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (glDevice) BindDefaults(program *shader.Program, tex *texture.Texture) {
	if tex != nil {
		tex.Use(texture.Slot0)
	}
	if program != nil {
		program.Use()
	}
}
