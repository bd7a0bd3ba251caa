package mesh

import "github.com/bloeys/gglm/gglm"

// White is the color of the plain shape helpers.
const White uint32 = 0xFFFFFFFF

var (
	triangleIndices = []uint32{0, 1, 2}
	quadIndices     = []uint32{
		0, 1, 2,
		0, 2, 3,
	}
)

// HexToRGBA decodes a packed 0xRRGGBBAA color into normalized floats.
func HexToRGBA(hex uint32) [4]float32 {
	return [4]float32{
		float32((hex>>24)&0xFF) / 255,
		float32((hex>>16)&0xFF) / 255,
		float32((hex>>8)&0xFF) / 255,
		float32(hex&0xFF) / 255,
	}
}

// shapeVertices lays out points on the z=0 plane with a single color. The
// texture coordinate of each vertex is its xy position.
func shapeVertices(color uint32, points ...gglm.Vec2) []float32 {
	c := HexToRGBA(color)
	out := make([]float32, 0, len(points)*Stride)
	for _, p := range points {
		out = append(out,
			p.X(), p.Y(), 0,
			c[0], c[1], c[2], c[3],
			p.X(), p.Y(),
		)
	}
	return out
}

// TriangleVertices returns the vertex and index data of a triangle.
func TriangleVertices(a, b, c gglm.Vec2, color uint32) ([]float32, []uint32) {
	indices := make([]uint32, len(triangleIndices))
	copy(indices, triangleIndices)
	return shapeVertices(color, a, b, c), indices
}

// QuadVertices returns the vertex and index data of a quad made of the two
// triangles abc and acd.
func QuadVertices(a, b, c, d gglm.Vec2, color uint32) ([]float32, []uint32) {
	indices := make([]uint32, len(quadIndices))
	copy(indices, quadIndices)
	return shapeVertices(color, a, b, c, d), indices
}

func Triangle(a, b, c gglm.Vec2) (*Object, error) {
	return TriangleColor(a, b, c, White)
}

func TriangleColor(a, b, c gglm.Vec2, color uint32) (*Object, error) {
	return Create(TriangleVertices(a, b, c, color))
}

func Quad(a, b, c, d gglm.Vec2) (*Object, error) {
	return QuadColor(a, b, c, d, White)
}

func QuadColor(a, b, c, d gglm.Vec2, color uint32) (*Object, error) {
	return Create(QuadVertices(a, b, c, d, color))
}

// Vec2 is shorthand for building shape points.
func Vec2(x, y float32) gglm.Vec2 {
	return gglm.Vec2{Data: [2]float32{x, y}}
}
