// Package infill generates axis-aligned scanline fill patterns that cut
// a slice's polygonal region.
package infill

import (
	"math"
	"sort"

	"github.com/evancho/slicecore/slicer"
)

// Axis names the coordinate held fixed along each line of an infill
// pass: AxisX lines sit at a fixed X and run parallel to Y, AxisY lines
// sit at a fixed Y and run parallel to X.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "?"
	}
}

// Line is one infill pass: a fixed coordinate on Axis, and the sorted
// crossing coordinates on the perpendicular axis. Crossings alternate
// enter/exit, so the caller draws (Crossings[0],Crossings[1]),
// (Crossings[2],Crossings[3]), and so on.
type Line struct {
	Axis      Axis
	Fixed     float64
	Crossings []float64
}

const defaultSpacing = 0.1

// Generate produces one Line per scanline pass over edges, spaced
// "spacing" apart along axis, from the minimum to maximum edge endpoint
// on that axis. It operates directly on a slice's raw edges, the same
// as the contour builder does — before stitching, since crossing a
// scanline against an edge needs no ordering information.
//
// dropped counts passes that grazed a vertex and produced an
// odd-length crossing list; those are discarded rather than emitting a
// corrupt enter/exit alternation. Callers log dropped occurrences the
// same way contour.Build's caller logs its diagnostics.
func Generate(edges []slicer.SliceEdge, axis Axis, spacing float64) (lines []Line, dropped int) {
	if len(edges) == 0 {
		return nil, 0
	}
	if spacing <= 0 {
		spacing = defaultSpacing
	}

	minC, maxC := axisBounds(edges, axis)
	passes := int(math.Floor((maxC - minC) / spacing))

	lines = make([]Line, 0, passes+1)
	for p := 0; p <= passes; p++ {
		fixed := minC + float64(p)*spacing
		crossings := crossingsAt(edges, axis, fixed)
		if len(crossings)%2 != 0 {
			dropped++
			continue
		}
		sort.Float64s(crossings)
		lines = append(lines, Line{Axis: axis, Fixed: fixed, Crossings: crossings})
	}
	return lines, dropped
}

func axisBounds(edges []slicer.SliceEdge, axis Axis) (min, max float64) {
	c1, c2 := coord(edges[0], axis, 1), coord(edges[0], axis, 2)
	min, max = c1, c2
	if c2 < c1 {
		min, max = c2, c1
	}
	for _, e := range edges[1:] {
		for _, c := range [2]float64{coord(e, axis, 1), coord(e, axis, 2)} {
			if c < min {
				min = c
			}
			if c > max {
				max = c
			}
		}
	}
	return min, max
}

// coord returns edge e's endpoint 1 or 2 coordinate along axis.
func coord(e slicer.SliceEdge, axis Axis, endpoint int) float64 {
	if axis == AxisX {
		if endpoint == 1 {
			return e.X1
		}
		return e.X2
	}
	if endpoint == 1 {
		return e.Y1
	}
	return e.Y2
}

// perp returns edge e's endpoint 1 or 2 coordinate on the axis
// perpendicular to axis.
func perp(e slicer.SliceEdge, axis Axis, endpoint int) float64 {
	if axis == AxisX {
		if endpoint == 1 {
			return e.Y1
		}
		return e.Y2
	}
	if endpoint == 1 {
		return e.X1
	}
	return e.X2
}

// crossingsAt computes, for every edge straddling fixed on axis, the
// perpendicular-axis coordinate where it crosses. Expressing the line
// equation as perp = slope*(coord-c1) + p1 (slope = Δperp/Δcoord) keeps
// a single formula for both axes — the axis-X pass's "slope" is the
// axis-Y pass's reciprocal slope, so there is no separate vertical-slope
// case to special-case: a segment with constant perpendicular
// coordinate (p1 == p2) simply has slope 0, which reproduces that
// constant directly.
func crossingsAt(edges []slicer.SliceEdge, axis Axis, fixed float64) []float64 {
	var crossings []float64
	for _, e := range edges {
		c1, c2 := coord(e, axis, 1), coord(e, axis, 2)
		if !((c1 < fixed && fixed < c2) || (c2 < fixed && fixed < c1)) {
			continue
		}
		p1, p2 := perp(e, axis, 1), perp(e, axis, 2)
		slope := (p2 - p1) / (c2 - c1)
		crossings = append(crossings, slope*(fixed-c1)+p1)
	}
	return crossings
}
