package placement

import (
	"github.com/evancho/slicecore/math3d"
	"github.com/evancho/slicecore/mesh"
)

// Axis names a rotation axis for the rigid orientation hook.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Rotate applies quarter 90° turns about axis to m, in place, and
// returns m. quarter is taken mod 4; negative values rotate the other
// way. Only multiples of 90° are exposed here (never an arbitrary
// angle) so orientation changes stay exact in floating point: the
// rotation matrix is built from clean 0/±1 sine/cosine values rather
// than a computed angle.
//
// Rotate does not re-place the mesh. Callers must invoke placement.Place
// again afterward (see §4.3) — left explicit so several rotations can be
// applied before paying for one re-placement.
func Rotate(m *mesh.Mesh, axis Axis, quarter int) *mesh.Mesh {
	cos, sin := quarterTurn(quarter)
	var rot math3d.Mat4
	switch axis {
	case AxisX:
		rot = math3d.RotateX4(cos, sin)
	case AxisY:
		rot = math3d.RotateY4(cos, sin)
	case AxisZ:
		rot = math3d.RotateZ4(cos, sin)
	}
	m.Transform(rot)
	return m
}

// quarterTurn returns the exact cosine/sine for a rotation of quarter
// 90° steps, without ever calling math.Sin/math.Cos.
func quarterTurn(quarter int) (cos, sin float64) {
	q := ((quarter % 4) + 4) % 4
	switch q {
	case 0:
		return 1, 0
	case 1:
		return 0, 1
	case 2:
		return -1, 0
	default: // 3
		return 0, -1
	}
}

// RotateX rotates m by quarter 90° steps about the X axis.
func RotateX(m *mesh.Mesh, quarter int) *mesh.Mesh { return Rotate(m, AxisX, quarter) }

// RotateY rotates m by quarter 90° steps about the Y axis.
func RotateY(m *mesh.Mesh, quarter int) *mesh.Mesh { return Rotate(m, AxisY, quarter) }

// RotateZ rotates m by quarter 90° steps about the Z axis.
func RotateZ(m *mesh.Mesh, quarter int) *mesh.Mesh { return Rotate(m, AxisZ, quarter) }
