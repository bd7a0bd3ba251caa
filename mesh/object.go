// Package mesh creates GPU render objects from interleaved vertex data.
//
// Every object uses the fixed 9 float layout described by Layout. Objects
// created with indices are drawn with DrawElements, objects without indices
// with DrawArrays over all of their vertices.
package mesh

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var ErrNoVertices = errors.New("object has no vertex data")

// DrawMode selects how an object is submitted for drawing.
type DrawMode int

const (
	DrawModeArrays DrawMode = iota
	DrawModeElements
)

func (m DrawMode) String() string {
	switch m {
	case DrawModeElements:
		return "elements"
	default:
		return "arrays"
	}
}

// Object owns the vertex array, vertex buffer and optional element buffer of
// one mesh. Vertices and Indices reference the caller's slices.
type Object struct {
	VAO uint32
	VBO uint32
	EBO uint32 // 0 when the object has no indices

	Vertices []float32
	Indices  []uint32
}

// Create uploads vertices and, when present, indices into a new vertex array.
// No validation is done on the counts beyond requiring some vertex data.
func Create(vertices []float32, indices []uint32) (*Object, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}

	obj := &Object{
		Vertices: vertices,
		Indices:  indices,
	}

	gl.GenVertexArrays(1, &obj.VAO)
	gl.GenBuffers(1, &obj.VBO)

	// Bind the vertex array first, then the buffers, then configure the attributes.
	gl.BindVertexArray(obj.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, obj.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &obj.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, obj.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	enableLayout()

	// The element buffer binding is part of the vertex array state, so only
	// the array buffer is unbound here.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return obj, nil
}

// CreateArrays creates an object without an element buffer.
func CreateArrays(vertices []float32) (*Object, error) {
	return Create(vertices, nil)
}

// VertexCount is the number of whole vertices in the vertex data.
func (o *Object) VertexCount() int32 {
	return int32(len(o.Vertices) / Stride)
}

// DrawCall reports how Draw submits the object and how many vertices or
// indices it draws.
func (o *Object) DrawCall() (DrawMode, int32) {
	if o.EBO != 0 && len(o.Indices) > 0 {
		return DrawModeElements, int32(len(o.Indices))
	}
	return DrawModeArrays, o.VertexCount()
}

func (o *Object) Draw() {
	gl.BindVertexArray(o.VAO)
	switch mode, count := o.DrawCall(); mode {
	case DrawModeElements:
		gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	default:
		gl.DrawArrays(gl.TRIANGLES, 0, count)
	}
}

// Delete releases the GL objects. It is safe to call more than once.
func (o *Object) Delete() {
	if o.EBO != 0 {
		gl.DeleteBuffers(1, &o.EBO)
		o.EBO = 0
	}
	if o.VBO != 0 {
		gl.DeleteBuffers(1, &o.VBO)
		o.VBO = 0
	}
	if o.VAO != 0 {
		gl.DeleteVertexArrays(1, &o.VAO)
		o.VAO = 0
	}
}
