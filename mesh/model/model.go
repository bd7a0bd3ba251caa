// Package model imports model files into mesh objects.
package model

import (
	"errors"
	"fmt"
	"log"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/richinsley/goglib/mesh"
)

var ErrNoMeshes = errors.New("no meshes found")

// LoadFlags are applied to every model import. Triangulation is required since
// objects are always drawn as triangle lists.
var LoadFlags asig.PostProcess = asig.PostProcessTriangulate

// meshData is the subset of an imported mesh needed to build vertices.
type meshData struct {
	positions []gglm.Vec3
	colors    []gglm.Vec4 // color set 0, may be empty
	uvs       []gglm.Vec3 // uv set 0, may be empty
	faces     [][3]uint32
}

// LoadOBJ imports a model file and flattens every mesh in it into a single
// non-indexed object.
func LoadOBJ(path string) (*mesh.Object, error) {
	scene, release, err := asig.ImportFile(path, LoadFlags)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", path, err)
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return nil, fmt.Errorf("%w in file: %s", ErrNoMeshes, path)
	}

	var vertices []float32
	for _, m := range scene.Meshes {
		vertices = append(vertices, flatten(fromScene(m))...)
	}
	log.Printf("Loaded model %s: %d meshes, %d vertices", path, len(scene.Meshes), len(vertices)/mesh.Stride)

	return mesh.CreateArrays(vertices)
}

func fromScene(m *asig.Mesh) meshData {
	d := meshData{
		positions: m.Vertices,
		faces:     make([][3]uint32, 0, len(m.Faces)),
	}
	if len(m.ColorSets) > 0 {
		d.colors = m.ColorSets[0]
	}
	if len(m.TexCoords) > 0 {
		d.uvs = m.TexCoords[0]
	}
	for _, f := range m.Faces {
		// Points and lines survive triangulation, skip them.
		if len(f.Indices) != 3 {
			continue
		}
		d.faces = append(d.faces, [3]uint32{uint32(f.Indices[0]), uint32(f.Indices[1]), uint32(f.Indices[2])})
	}
	return d
}

func (d meshData) validFace(face [3]uint32) bool {
	for _, idx := range face {
		if int(idx) >= len(d.positions) {
			return false
		}
	}
	return true
}

// flatten expands indexed faces into the interleaved layout, one vertex per
// face corner.
func flatten(d meshData) []float32 {
	white := mesh.HexToRGBA(mesh.White)
	out := make([]float32, 0, len(d.faces)*3*mesh.Stride)
	for _, face := range d.faces {
		if !d.validFace(face) {
			continue
		}
		for _, idx := range face {
			p := d.positions[idx]
			c := white
			if int(idx) < len(d.colors) {
				c = d.colors[idx].Data
			}
			var uv [2]float32
			if int(idx) < len(d.uvs) {
				uv = [2]float32{d.uvs[idx].X(), d.uvs[idx].Y()}
			}
			out = append(out,
				p.X(), p.Y(), p.Z(),
				c[0], c[1], c[2], c[3],
				uv[0], uv[1],
			)
		}
	}
	return out
}
