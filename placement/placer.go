// Package placement centers and scales a mesh to fit a build volume, and
// exposes the discrete 90°-rotation hook the hosting viewer drives before
// a final placement.
package placement

import (
	"math"

	"github.com/evancho/slicecore/math3d"
	"github.com/evancho/slicecore/mesh"
	"github.com/evancho/slicecore/settings"
)

// Place centers m at the origin, uniformly scales it to fit bv on every
// axis (at least one axis touches the limit), then seats it on the bed:
// centered over the plate footprint in X and Z, with its lowest Y face
// resting on Y=0. It mutates and returns m.
//
// The Y convention matches the hosting viewer, which treats Y as print
// height; the slicer is responsible for remapping Y to print-Z (§4.4).
func Place(m *mesh.Mesh, bv settings.BuildVolume) *mesh.Mesh {
	centerAtOrigin(m)
	fitToVolume(m, bv)
	seatOnBed(m, bv)
	return m
}

func centerAtOrigin(m *mesh.Mesh) {
	min, max := m.Bounds()
	offset := min.Add(max).Scale(0.5)
	m.Transform(math3d.Translate4(offset.Scale(-1)))
}

func fitToVolume(m *mesh.Mesh, bv settings.BuildVolume) {
	min, max := m.Bounds()
	extent := max.Sub(min)
	s := fitScale(extent, bv)
	m.Transform(math3d.Scale4(s))
}

// fitScale returns the largest uniform scale that keeps extent within bv
// on every axis. Axes with zero extent (a flat mesh) are ignored so a
// degenerate dimension never forces scale to zero.
func fitScale(extent math3d.Vec3, bv settings.BuildVolume) float64 {
	best := math.Inf(1)
	for _, ratio := range []struct{ dim, ext float64 }{
		{bv.XDim, extent.X},
		{bv.YDim, extent.Y},
		{bv.ZDim, extent.Z},
	} {
		if ratio.ext <= 0 {
			continue
		}
		if s := ratio.dim / ratio.ext; s < best {
			best = s
		}
	}
	if math.IsInf(best, 1) {
		return 1
	}
	return best
}

func seatOnBed(m *mesh.Mesh, bv settings.BuildVolume) {
	_, max := m.Bounds()
	offset := math3d.V3(bv.XDim/2, max.Y, bv.ZDim/2)
	m.Transform(math3d.Translate4(offset))
}
