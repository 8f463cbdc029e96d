package contour

import (
	"testing"

	"github.com/evancho/slicecore/slicer"
	"github.com/stretchr/testify/require"
)

func square() []slicer.SliceEdge {
	return []slicer.SliceEdge{
		{X1: 0, Y1: 0, X2: 10, Y2: 0},
		{X1: 10, Y1: 10, X2: 0, Y2: 10},
		{X1: 10, Y1: 0, X2: 10, Y2: 10},
		{X1: 0, Y1: 10, X2: 0, Y2: 0},
	}
}

// TestBuildClosesSquare covers §8 invariant 2: a well-formed slice
// stitches into one closed contour whose tail returns to its head.
func TestBuildClosesSquare(t *testing.T) {
	out, diags := Build(square())
	require.Empty(t, diags)
	require.Len(t, out, 4)
	for _, e := range out {
		require.Equal(t, 1, e.ContourIndex)
	}
	first, last := out[0], out[len(out)-1]
	require.InDelta(t, first.X1, last.X2, 1e-9)
	require.InDelta(t, first.Y1, last.Y2, 1e-9)
	// Each edge's head meets the previous edge's tail.
	for i := 1; i < len(out); i++ {
		require.InDelta(t, out[i-1].X2, out[i].X1, 1e-9)
		require.InDelta(t, out[i-1].Y2, out[i].Y1, 1e-9)
	}
}

func TestBuildOrderIndependent(t *testing.T) {
	shuffled := []slicer.SliceEdge{square()[2], square()[0], square()[3], square()[1]}
	out, diags := Build(shuffled)
	require.Empty(t, diags)
	require.Len(t, out, 4)
}

func TestBuildTwoSeparateContours(t *testing.T) {
	edges := append(square(), []slicer.SliceEdge{
		{X1: 20, Y1: 20, X2: 30, Y2: 20},
		{X1: 30, Y1: 30, X2: 20, Y2: 30},
		{X1: 30, Y1: 20, X2: 30, Y2: 30},
		{X1: 20, Y1: 30, X2: 20, Y2: 20},
	}...)
	out, diags := Build(edges)
	require.Empty(t, diags)
	require.Len(t, out, 8)
	require.Equal(t, 1, out[0].ContourIndex)
	require.Equal(t, 2, out[4].ContourIndex)
}

// TestBuildOpenContourStillEmitted covers §9's resolution of the open
// question: an unstitchable remainder still gets written, flagged.
func TestBuildOpenContourStillEmitted(t *testing.T) {
	broken := []slicer.SliceEdge{
		{X1: 0, Y1: 0, X2: 10, Y2: 0},
		{X1: 10, Y1: 0, X2: 10, Y2: 10},
		// Missing the two edges that would close the loop; instead an
		// unrelated, unjoinable fragment.
		{X1: 50, Y1: 50, X2: 60, Y2: 50},
	}
	out, diags := Build(broken)
	require.Len(t, diags, 1) // the first loop fails to close; the lone
	// trailing fragment forms its own one-edge "contour" with nothing
	// left to scan against, so it never enters the match loop at all.
	require.Len(t, out, 3)
}
