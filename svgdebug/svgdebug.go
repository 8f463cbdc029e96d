// Package svgdebug renders one slice's outline and infill as an SVG,
// purely for visual inspection; it plays no part in path generation.
package svgdebug

import (
	"fmt"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/evancho/slicecore/infill"
	"github.com/evancho/slicecore/internal/errs"
	"github.com/evancho/slicecore/slicer"
)

const stroke = "stroke:black;stroke-width:1"

// WriteSlice writes dir/<zInches rounded to 3 places>.svg: one line per
// SliceEdge, and one per infill enter/exit segment from both axes. The
// SVG Y axis is inverted relative to the slicing frame, since SVG's +Y
// points down.
func WriteSlice(dir string, zInches float64, edges []slicer.SliceEdge, infillX, infillY []infill.Line) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.New(errs.IOError, err)
	}
	name := fmt.Sprintf("%.3f.svg", zInches)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return errs.New(errs.IOError, err)
	}
	defer f.Close()

	yMax := sliceYMax(edges, infillX, infillY)
	width, height := int(yMax)+1, int(yMax)+1

	canvas := svg.New(f)
	canvas.Start(width, height)
	for _, e := range edges {
		canvas.Line(int(e.X1), int(yMax-e.Y1), int(e.X2), int(yMax-e.Y2), stroke)
	}
	for _, l := range infillX {
		drawInfill(canvas, l, yMax)
	}
	for _, l := range infillY {
		drawInfill(canvas, l, yMax)
	}
	canvas.End()
	return nil
}

func drawInfill(canvas *svg.SVG, l infill.Line, yMax float64) {
	for i := 0; i+1 < len(l.Crossings); i += 2 {
		x1, y1, x2, y2 := crossingEndpoints(l, i)
		canvas.Line(int(x1), int(yMax-y1), int(x2), int(yMax-y2), stroke)
	}
}

func crossingEndpoints(l infill.Line, i int) (x1, y1, x2, y2 float64) {
	enter, exit := l.Crossings[i], l.Crossings[i+1]
	if l.Axis == infill.AxisX {
		return l.Fixed, enter, l.Fixed, exit
	}
	return enter, l.Fixed, exit, l.Fixed
}

func sliceYMax(edges []slicer.SliceEdge, infillX, infillY []infill.Line) float64 {
	max := 0.0
	for _, e := range edges {
		if e.Y1 > max {
			max = e.Y1
		}
		if e.Y2 > max {
			max = e.Y2
		}
	}
	for _, group := range [][]infill.Line{infillX, infillY} {
		for _, l := range group {
			if l.Axis == infill.AxisY && l.Fixed > max {
				max = l.Fixed
			}
			for _, c := range l.Crossings {
				if l.Axis == infill.AxisX && c > max {
					max = c
				}
			}
		}
	}
	return max
}
