package pathwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evancho/slicecore/contour"
	"github.com/evancho/slicecore/infill"
	"github.com/stretchr/testify/require"
)

func squareContour() []contour.DirectedEdge {
	return []contour.DirectedEdge{
		{X1: 0, Y1: 0, X2: 10, Y2: 0, ContourIndex: 1},
		{X1: 10, Y1: 0, X2: 10, Y2: 10, ContourIndex: 1},
		{X1: 10, Y1: 10, X2: 0, Y2: 10, ContourIndex: 1},
		{X1: 0, Y1: 10, X2: 0, Y2: 0, ContourIndex: 1},
	}
}

func TestAppendContourEmitsTravelThenDeposits(t *testing.T) {
	w := NewWriter()
	w.AppendContour(squareContour(), 5)
	recs := w.Records()
	// travel to start, 4 deposits drawing the square, 1 closing deposit.
	require.Len(t, recs, 6)
	require.False(t, recs[0].Extrude)
	for _, r := range recs[1:] {
		require.True(t, r.Extrude)
	}
	// First and last positions coincide (the closing deposit returns to start).
	require.InDelta(t, recs[0].XIn, recs[len(recs)-1].XIn, 1e-9)
	require.InDelta(t, recs[0].YIn, recs[len(recs)-1].YIn, 1e-9)
}

func TestAppendContourClosesOnIndexChange(t *testing.T) {
	edges := append(squareContour(), contour.DirectedEdge{X1: 20, Y1: 20, X2: 30, Y2: 20, ContourIndex: 2})
	w := NewWriter()
	w.AppendContour(edges, 5)
	recs := w.Records()
	// square (travel + 4 deposits) + index-change close + travel to the
	// new contour + 1 deposit + final close = 9 records.
	require.Len(t, recs, 9)
}

func TestAppendInfillAlternatesTravelDeposit(t *testing.T) {
	lines := []infill.Line{{Axis: infill.AxisX, Fixed: 5, Crossings: []float64{0, 10}}}
	w := NewWriter()
	w.AppendInfill(lines, 2)
	recs := w.Records()
	require.Len(t, recs, 2)
	require.False(t, recs[0].Extrude)
	require.True(t, recs[1].Extrude)
	require.InDelta(t, recs[0].XIn, recs[1].XIn, 1e-9) // fixed X for an X-axis pass
}

// TestStampTimesMonotonic covers §8 invariant 5.
func TestStampTimesMonotonic(t *testing.T) {
	w := NewWriter()
	w.AppendContour(squareContour(), 5)
	w.AppendInfill([]infill.Line{{Axis: infill.AxisX, Fixed: 5, Crossings: []float64{0, 10}}}, 5)
	w.StampTimes(1.0)
	recs := w.Records()
	require.Zero(t, recs[0].T)
	for i := 1; i < len(recs); i++ {
		require.GreaterOrEqual(t, recs[i].T, recs[i-1].T)
	}
}

func TestPrepareDirClearsDirectoryFirst(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))

	require.NoError(t, PrepareDir(dir))

	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestWriteCSVLeavesOtherFilesInDirAlone(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, PrepareDir(dir))
	sibling := filepath.Join(dir, "0.500.svg")
	require.NoError(t, os.WriteFile(sibling, []byte("<svg/>"), 0o644))

	w := NewWriter()
	w.AppendContour(squareContour(), 5)
	w.StampTimes(1.0)
	require.NoError(t, w.WriteCSV(dir))

	// WriteCSV must not wipe files written into dir before it ran (e.g.
	// per-slice debug SVGs emitted during the slice loop).
	_, err := os.Stat(sibling)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "path.csv"))
	require.NoError(t, err)
	require.NotEmpty(t, content)
}
