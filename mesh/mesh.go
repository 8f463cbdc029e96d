// Package mesh holds the slicing pipeline's core data model: vertices,
// triangles with their trusted-from-file normals, and the flat triangle
// list that makes up a Mesh.
package mesh

import "github.com/evancho/slicecore/math3d"

// Vertex is a point in 3D space, millimeters, double precision.
type Vertex = math3d.Vec3

// Triangle is three vertices in the winding order read from the STL file,
// plus the outward unit normal as read from the file. The normal is
// trusted, never recomputed.
type Triangle struct {
	V      [3]Vertex
	Normal Vertex
}

// Mesh is an ordered sequence of triangles sharing one coordinate frame.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// New creates an empty, named mesh.
func New(name string) *Mesh {
	return &Mesh{Name: name}
}

// Bounds returns the axis-aligned bounding box of every vertex in the
// mesh. Bounds of an empty mesh are both the zero vector.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.Triangles) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}
	min = m.Triangles[0].V[0]
	max = min
	for _, t := range m.Triangles {
		for _, v := range t.V {
			min = min.Min(v)
			max = max.Max(v)
		}
	}
	return min, max
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	min, max := m.Bounds()
	return max.Sub(min)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// VertexCount returns the number of vertex occurrences across all
// triangles (triangles are not deduplicated; each carries its own three).
func (m *Mesh) VertexCount() int {
	return len(m.Triangles) * 3
}

// Transform applies mat to every vertex and renormalizes every face
// normal with the same matrix, in place.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Triangles {
		t := &m.Triangles[i]
		for j := range t.V {
			t.V[j] = mat.MulVec3(t.V[j])
		}
		t.Normal = mat.MulVec3Dir(t.Normal).Normalize()
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Triangles: make([]Triangle, len(m.Triangles)),
	}
	copy(clone.Triangles, m.Triangles)
	return clone
}
