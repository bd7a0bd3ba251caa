package mesh

import "github.com/go-gl/gl/v4.1-core/gl"

// Attribute is one float attribute of the interleaved vertex layout.
type Attribute struct {
	Location uint32
	Size     int32 // number of float components
	Offset   int32 // in floats from the start of the vertex
}

// Layout is the fixed vertex format shared by every object:
//   - Loc0: vec3 position
//   - Loc1: vec4 color
//   - Loc2: vec2 texcoord
var Layout = []Attribute{
	{Location: 0, Size: 3, Offset: 0},
	{Location: 1, Size: 4, Offset: 3},
	{Location: 2, Size: 2, Offset: 7},
}

// Stride is the number of floats per vertex.
const Stride = 9

const floatSize = 4

// enableLayout configures the attributes of the currently bound vertex array
// against the currently bound vertex buffer.
func enableLayout() {
	for _, a := range Layout {
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, Stride*floatSize, gl.PtrOffset(int(a.Offset)*floatSize))
		gl.EnableVertexAttribArray(a.Location)
	}
}
