// Package geometry provides the primitive meshes the scene is built from.
package geometry

import "fmt"

// Kind identifies a primitive mesh.
type Kind string

const (
	KindCube Kind = "cube"
	KindQuad Kind = "quad"
)

// Mesh is an indexed triangle list with tightly packed XYZ positions and
// one normal per vertex.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Cube returns a unit cube spanning [-1, 1] on every axis.
// Each face has its own four vertices so faces can be shaded flat.
func Cube() Mesh {
	return Mesh{
		Positions: []float32{
			// front (+Z)
			-1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1, 1,
			// back (-Z)
			1, -1, -1, -1, -1, -1, -1, 1, -1, 1, 1, -1,
			// left (-X)
			-1, -1, -1, -1, -1, 1, -1, 1, 1, -1, 1, -1,
			// right (+X)
			1, -1, 1, 1, -1, -1, 1, 1, -1, 1, 1, 1,
			// top (+Y)
			-1, 1, 1, 1, 1, 1, 1, 1, -1, -1, 1, -1,
			// bottom (-Y)
			-1, -1, -1, 1, -1, -1, 1, -1, 1, -1, -1, 1,
		},
		Normals: faceNormals(
			0, 0, 1,
			0, 0, -1,
			-1, 0, 0,
			1, 0, 0,
			0, 1, 0,
			0, -1, 0,
		),
		Indices: quadIndices(6),
	}
}

// Quad returns a unit quad in the XZ plane spanning [-1, 1], facing +Y.
func Quad() Mesh {
	return Mesh{
		Positions: []float32{
			-1, 0, 1,
			1, 0, 1,
			1, 0, -1,
			-1, 0, -1,
		},
		Normals: faceNormals(0, 1, 0),
		Indices: quadIndices(1),
	}
}

// ForKind returns the mesh for a primitive kind.
func ForKind(k Kind) (Mesh, error) {
	switch k {
	case KindCube:
		return Cube(), nil
	case KindQuad:
		return Quad(), nil
	default:
		return Mesh{}, fmt.Errorf("unknown mesh kind %q", k)
	}
}

// quadIndices emits two counter-clockwise triangles per four-vertex face.
func quadIndices(faces int) []uint32 {
	indices := make([]uint32, 0, faces*6)
	for f := 0; f < faces; f++ {
		base := uint32(f * 4)
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return indices
}

// faceNormals repeats each XYZ face normal for the face's four vertices.
func faceNormals(n ...float32) []float32 {
	out := make([]float32, 0, len(n)*4)
	for f := 0; f+2 < len(n); f += 3 {
		for v := 0; v < 4; v++ {
			out = append(out, n[f], n[f+1], n[f+2])
		}
	}
	return out
}
