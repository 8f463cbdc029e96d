// Package contour stitches a slice's unordered line-segment fragments
// into ordered, directed contour loops.
package contour

import (
	"github.com/evancho/slicecore/internal/errs"
	"github.com/evancho/slicecore/settings"
	"github.com/evancho/slicecore/slicer"
)

// DirectedEdge is one stitched segment of a contour: its direction
// matters (the print head travels from (X1,Y1) to (X2,Y2)), and
// ContourIndex groups it with the other edges of the same loop,
// starting at 1.
type DirectedEdge struct {
	X1, Y1, X2, Y2 float64
	ContourIndex   int
}

// Diagnostic reports a non-fatal condition encountered while stitching.
type Diagnostic struct {
	Kind         errs.Kind
	ContourIndex int
}

type point struct{ x, y float64 }

func near(a, b point) bool {
	dx, dy := a.x-b.x, a.y-b.y
	return dx > -settings.EpsilonMM && dx < settings.EpsilonMM &&
		dy > -settings.EpsilonMM && dy < settings.EpsilonMM
}

// Build stitches edges into directed contour loops. Tie-breaking among
// multiple candidates within ε of the current tail always takes the
// first one encountered in edges' construction order, which is the
// order slicer.SliceAt produced them in — deterministic, never
// resorted.
func Build(edges []slicer.SliceEdge) (out []DirectedEdge, diagnostics []Diagnostic) {
	remaining := append([]slicer.SliceEdge(nil), edges...)
	contourIndex := 0

	for len(remaining) > 0 {
		contourIndex++
		seed := remaining[0]
		remaining = remaining[1:]
		head := point{seed.X1, seed.Y1}
		tail := point{seed.X2, seed.Y2}
		out = append(out, DirectedEdge{seed.X1, seed.Y1, seed.X2, seed.Y2, contourIndex})

		unproductive := 0
		for len(remaining) > 0 {
			budget := 2 * len(remaining)
			matchAt := -1
			var emit DirectedEdge
			for i, e := range remaining {
				p1, p2 := point{e.X1, e.Y1}, point{e.X2, e.Y2}
				switch {
				case near(p1, tail):
					emit = DirectedEdge{e.X1, e.Y1, e.X2, e.Y2, contourIndex}
					tail = p2
					matchAt = i
				case near(p2, tail):
					emit = DirectedEdge{e.X2, e.Y2, e.X1, e.Y1, contourIndex}
					tail = p1
					matchAt = i
				}
				if matchAt >= 0 {
					break
				}
			}

			if matchAt >= 0 {
				out = append(out, emit)
				remaining = append(remaining[:matchAt], remaining[matchAt+1:]...)
				unproductive = 0
			} else {
				unproductive++
			}

			if near(tail, head) {
				break
			}
			if unproductive > budget {
				diagnostics = append(diagnostics, Diagnostic{Kind: errs.OpenContour, ContourIndex: contourIndex})
				break
			}
		}
	}
	return out, diagnostics
}
