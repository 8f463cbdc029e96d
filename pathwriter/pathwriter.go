// Package pathwriter assembles the print head's timed trajectory and
// writes it out as path.csv.
package pathwriter

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/evancho/slicecore/contour"
	"github.com/evancho/slicecore/infill"
	"github.com/evancho/slicecore/internal/errs"
	"github.com/evancho/slicecore/settings"
)

// Record is one print-head waypoint, inches, with the extruder state
// for the move that ends at this point.
type Record struct {
	T, XIn, YIn, ZIn float64
	Extrude          bool
}

// Writer accumulates Phase A records in memory across every slice, then
// stamps Phase B timing and writes the finished trajectory. Buffering
// avoids a seek-heavy on-disk rewrite for Phase B's second pass.
type Writer struct {
	records []Record
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Records returns the accumulated records, read-only.
func (w *Writer) Records() []Record {
	return w.records
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func (w *Writer) append(xmm, ymm, zmm float64, extrude bool) {
	w.records = append(w.records, Record{
		XIn:     round4(xmm / settings.InchMM),
		YIn:     round4(ymm / settings.InchMM),
		ZIn:     round4(zmm / settings.InchMM),
		Extrude: extrude,
	})
}

// AppendContour appends one travel-then-deposit sequence per contour in
// edges, at slice height zMM. edges must already be grouped by
// ContourIndex in the order contour.Build produced them. The first edge
// of each contour becomes a travel move to its head; every edge
// (including that first one) then contributes a deposit move to its
// tail. When the contour index changes mid-stream, the previous
// contour is closed first with a deposit back to its stored start.
func (w *Writer) AppendContour(edges []contour.DirectedEdge, zMM float64) {
	if len(edges) == 0 {
		return
	}
	currentIndex := edges[0].ContourIndex
	startX, startY := edges[0].X1, edges[0].Y1
	w.append(startX, startY, zMM, false)

	for _, e := range edges {
		if e.ContourIndex != currentIndex {
			w.append(startX, startY, zMM, true)
			startX, startY = e.X1, e.Y1
			w.append(startX, startY, zMM, false)
			currentIndex = e.ContourIndex
		}
		w.append(e.X2, e.Y2, zMM, true)
	}
	// Last edge's tail already coincides with startX/startY for a closed
	// contour, so this is a zero-length deposit rather than a folded-in
	// close. Matches §4.7's literal "close each contour" wording and
	// keeps StampTimes monotonic either way.
	w.append(startX, startY, zMM, true)
}

// AppendInfill appends one travel-then-deposit move per (enter, exit)
// crossing pair in lines, at slice height zMM. Call once per axis, in
// the order the two axes should be printed.
func (w *Writer) AppendInfill(lines []infill.Line, zMM float64) {
	for _, l := range lines {
		for i := 0; i+1 < len(l.Crossings); i += 2 {
			enter, exit := l.Crossings[i], l.Crossings[i+1]
			var x1, y1, x2, y2 float64
			if l.Axis == infill.AxisX {
				x1, y1 = l.Fixed, enter
				x2, y2 = l.Fixed, exit
			} else {
				x1, y1 = enter, l.Fixed
				x2, y2 = exit, l.Fixed
			}
			w.append(x1, y1, zMM, false)
			w.append(x2, y2, zMM, true)
		}
	}
}

// StampTimes computes Phase B's cumulative time for every record, at
// the given head speed (inches/second). The first record always has
// t=0. Travel and deposit moves share the same nominal speed.
func (w *Writer) StampTimes(speed float64) {
	for i := range w.records {
		if i == 0 {
			w.records[i].T = 0
			continue
		}
		prev, cur := w.records[i-1], &w.records[i]
		dx, dy, dz := cur.XIn-prev.XIn, cur.YIn-prev.YIn, cur.ZIn-prev.ZIn
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
		cur.T = round4(prev.T + dist/speed)
	}
}

// PrepareDir clears dir and recreates it empty. Callers run this once,
// before any per-slice output (e.g. svgdebug's per-slice SVGs) is
// written into dir, so that output never gets wiped by a later
// WriteCSV call into the same directory.
func PrepareDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errs.New(errs.IOError, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.New(errs.IOError, err)
	}
	return nil
}

// WriteCSV writes path.csv into dir: one space-separated record per
// line, "t x y z extrude_flag". dir must already exist (see
// PrepareDir) — WriteCSV only creates it if missing, it never clears
// an existing one, so it is safe to call after other files have
// already been written into dir.
func (w *Writer) WriteCSV(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.New(errs.IOError, err)
	}

	f, err := os.Create(filepath.Join(dir, "path.csv"))
	if err != nil {
		return errs.New(errs.IOError, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	for _, r := range w.records {
		extrude := 0
		if r.Extrude {
			extrude = 1
		}
		if _, err := fmt.Fprintf(bw, "%.4f %.4f %.4f %.4f %d\n", r.T, r.XIn, r.YIn, r.ZIn, extrude); err != nil {
			return errs.New(errs.IOError, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return errs.New(errs.IOError, err)
	}
	return nil
}
