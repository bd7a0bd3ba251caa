package mesh

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGBA(t *testing.T) {
	tests := []struct {
		hex  uint32
		want [4]float32
	}{
		{0xFFFFFFFF, [4]float32{1, 1, 1, 1}},
		{0x00000000, [4]float32{0, 0, 0, 0}},
		{0xFF0000FF, [4]float32{1, 0, 0, 1}},
		{0x00FF0080, [4]float32{0, 1, 0, 128.0 / 255}},
		{0x336699CC, [4]float32{0x33 / 255.0, 0x66 / 255.0, 0x99 / 255.0, 0xCC / 255.0}},
	}
	for _, tt := range tests {
		got := HexToRGBA(tt.hex)
		for i := range got {
			assert.InDelta(t, tt.want[i], got[i], 1e-6, "hex %08x channel %d", tt.hex, i)
		}
	}
}

func TestLayout(t *testing.T) {
	total := int32(0)
	for i, a := range Layout {
		assert.Equal(t, uint32(i), a.Location)
		assert.Equal(t, total, a.Offset)
		total += a.Size
	}
	assert.Equal(t, int32(Stride), total)
}

func TestTriangleVertices(t *testing.T) {
	v, idx := TriangleVertices(Vec2(-0.5, -0.5), Vec2(0.5, -0.5), Vec2(0, 0.5), White)
	require.Len(t, v, 3*Stride)
	assert.Equal(t, []uint32{0, 1, 2}, idx)

	assert.Equal(t, []float32{
		-0.5, -0.5, 0, 1, 1, 1, 1, -0.5, -0.5,
		0.5, -0.5, 0, 1, 1, 1, 1, 0.5, -0.5,
		0, 0.5, 0, 1, 1, 1, 1, 0, 0.5,
	}, v)
}

func TestQuadVertices(t *testing.T) {
	v, idx := QuadVertices(Vec2(-1, -1), Vec2(1, -1), Vec2(1, 1), Vec2(-1, 1), White)
	require.Len(t, v, 4*Stride)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, idx)

	for i := 0; i < 4; i++ {
		vert := v[i*Stride : (i+1)*Stride]
		assert.Equal(t, float32(0), vert[2], "z of vertex %d", i)
		assert.Equal(t, vert[0:2], vert[7:9], "texcoord of vertex %d", i)
	}
}

func TestColorShapesIgnorePosition(t *testing.T) {
	want := HexToRGBA(0x11223344)
	points := [][4]gglm.Vec2{
		{Vec2(0, 0), Vec2(1, 0), Vec2(1, 1), Vec2(0, 1)},
		{Vec2(-3, 7), Vec2(100, -2), Vec2(0.25, 0.75), Vec2(9, 9)},
	}
	for _, p := range points {
		v, _ := QuadVertices(p[0], p[1], p[2], p[3], 0x11223344)
		for i := 0; i < 4; i++ {
			assert.Equal(t, want[:], v[i*Stride+3:i*Stride+7])
		}
		v, _ = TriangleVertices(p[0], p[1], p[2], 0x11223344)
		for i := 0; i < 3; i++ {
			assert.Equal(t, want[:], v[i*Stride+3:i*Stride+7])
		}
	}
}

func TestShapeIndicesAreCopies(t *testing.T) {
	_, idx := QuadVertices(Vec2(0, 0), Vec2(1, 0), Vec2(1, 1), Vec2(0, 1), White)
	idx[0] = 42
	_, idx = QuadVertices(Vec2(0, 0), Vec2(1, 0), Vec2(1, 1), Vec2(0, 1), White)
	assert.Equal(t, uint32(0), idx[0])
}

func TestDrawCall(t *testing.T) {
	quadV, quadI := QuadVertices(Vec2(0, 0), Vec2(1, 0), Vec2(1, 1), Vec2(0, 1), White)

	tests := []struct {
		name      string
		obj       Object
		wantMode  DrawMode
		wantCount int32
	}{
		{"indexed", Object{EBO: 3, Vertices: quadV, Indices: quadI}, DrawModeElements, 6},
		{"arrays", Object{Vertices: quadV}, DrawModeArrays, 4},
		{"empty indices", Object{Vertices: quadV, Indices: []uint32{}}, DrawModeArrays, 4},
		{"partial vertex", Object{Vertices: make([]float32, Stride*2+4)}, DrawModeArrays, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, count := tt.obj.DrawCall()
			assert.Equal(t, tt.wantMode, mode)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestCreateRejectsEmpty(t *testing.T) {
	_, err := Create(nil, []uint32{0, 1, 2})
	assert.ErrorIs(t, err, ErrNoVertices)
	_, err = CreateArrays([]float32{})
	assert.ErrorIs(t, err, ErrNoVertices)
}

func TestDeleteZeroObject(t *testing.T) {
	var o Object
	assert.NotPanics(t, o.Delete)
}

func TestDrawModeString(t *testing.T) {
	assert.Equal(t, "arrays", DrawModeArrays.String())
	assert.Equal(t, "elements", DrawModeElements.String())
}

// The model importer links libassimp through cgo, so it must stay out of this
// package and everything built on it.
func TestNoModelImporterImport(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	fset := token.NewFileSet()
	for _, name := range files {
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, imp := range f.Imports {
			assert.False(t, strings.Contains(imp.Path.Value, "assimp-go"), "%s imports %s", name, imp.Path.Value)
		}
	}
}
