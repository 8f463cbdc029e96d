// Package slicer computes, for a given Z height, the unordered set of
// line-segment fragments where a mesh's triangles cross the slice plane.
package slicer

import (
	"math"

	"github.com/evancho/slicecore/mesh"
	"github.com/evancho/slicecore/settings"
)

// SliceEdge is one line-segment fragment in slice-plane coordinates,
// millimeters. The implicit Z is the plane the caller sliced at.
type SliceEdge struct {
	X1, Y1, X2, Y2 float64
}

// length returns the 2-D distance between the edge's endpoints.
func (e SliceEdge) length() float64 {
	dx, dy := e.X2-e.X1, e.Y2-e.Y1
	return math.Sqrt(dx*dx + dy*dy)
}

// SliceAt returns every edge where m's triangles cross the plane at
// height z. The mesh is read in the hosting viewer's frame (Y up); each
// triangle is remapped into the print frame (Z up, the slicing axis)
// inline, per triangle, so the mesh itself is never mutated — Phase A
// reads the same placed mesh at every Z level.
func SliceAt(m *mesh.Mesh, z float64) []SliceEdge {
	edges := make([]SliceEdge, 0, len(m.Triangles)/4+1)
	for _, t := range m.Triangles {
		if e, ok := intersectTriangle(t, z); ok {
			edges = append(edges, e)
		}
	}
	return edges
}

// printPoint is a triangle vertex remapped into the print frame and
// rounded to suppress float noise ahead of intersection. The viewer's
// Y (print height) becomes the print frame's Z, the slicing axis; X and
// Y of the print frame come from the viewer's Z and X respectively.
type printPoint struct {
	X, Y, Z float64
}

func toPrintFrame(v mesh.Vertex) printPoint {
	const places = 5
	return printPoint{
		X: roundTo(v.Z, places),
		Y: roundTo(v.X, places),
		Z: roundTo(v.Y, places),
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// interpolate returns the point where the segment p1-p2 crosses height z,
// assuming p1.Z and p2.Z straddle z (p1.Z != p2.Z).
func interpolate(p1, p2 printPoint, z float64) (x, y float64) {
	a := (z - p1.Z) / (p2.Z - p1.Z)
	return a*(p2.X-p1.X) + p1.X, a*(p2.Y-p1.Y) + p1.Y
}

// intersectTriangle computes the single line segment where t crosses the
// plane at height z, if any. A triangle contributes 0 points (entirely
// above or below), 1 (touches the plane at a single vertex, not a path
// pair, discarded), or 2 (the usual case — the segment returned). The
// three points exactly on the plane case (a face lying flat in it) is
// also discarded: it is handled by neighboring faces' edge crossings.
func intersectTriangle(t mesh.Triangle, z float64) (SliceEdge, bool) {
	p := [3]printPoint{toPrintFrame(t.V[0]), toPrintFrame(t.V[1]), toPrintFrame(t.V[2])}

	var pts [][2]float64
	edgeCrosses := func(i, j int) {
		if (p[j].Z < z && z < p[i].Z) || (p[i].Z < z && z < p[j].Z) {
			x, y := interpolate(p[i], p[j], z)
			pts = append(pts, [2]float64{x, y})
		}
	}
	edgeCrosses(0, 1)
	edgeCrosses(0, 2)
	edgeCrosses(1, 2)

	switch {
	case p[0].Z == z:
		pts = append(pts, [2]float64{p[0].X, p[0].Y})
	case p[1].Z == z:
		pts = append(pts, [2]float64{p[1].X, p[1].Y})
	case p[2].Z == z:
		pts = append(pts, [2]float64{p[2].X, p[2].Y})
	}

	if len(pts) != 2 {
		return SliceEdge{}, false
	}
	e := SliceEdge{X1: pts[0][0], Y1: pts[0][1], X2: pts[1][0], Y2: pts[1][1]}
	if e.length() <= settings.EpsilonMM {
		return SliceEdge{}, false
	}
	e.X1, e.Y1 = roundTo(e.X1, 5), roundTo(e.Y1, 5)
	e.X2, e.Y2 = roundTo(e.X2, 5), roundTo(e.Y2, 5)
	return e, true
}

// ZSchedule returns the sequence of slice heights for bv, in the print
// frame: k*h + nudge for k in [0, N], and (N+1)*h - nudge for the final
// level, where N = floor(y_dim / layer_height). The nudge keeps every
// slice off a vertex-shared horizontal feature.
func ZSchedule(bv settings.BuildVolume) []float64 {
	h := bv.LayerHeight
	n := int(math.Floor(bv.YDim / h))
	levels := make([]float64, 0, n+2)
	for k := 0; k <= n; k++ {
		levels = append(levels, float64(k)*h+settings.ZNudgeMM)
	}
	levels = append(levels, float64(n+1)*h-settings.ZNudgeMM)
	return levels
}
