// Package slicecore composes the mesh reader, placer, slicer, contour
// builder, infill generator, and path writer into one end-to-end run.
package slicecore

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/evancho/slicecore/contour"
	"github.com/evancho/slicecore/infill"
	"github.com/evancho/slicecore/internal/errs"
	"github.com/evancho/slicecore/internal/logging"
	"github.com/evancho/slicecore/mesh"
	"github.com/evancho/slicecore/pathwriter"
	"github.com/evancho/slicecore/placement"
	"github.com/evancho/slicecore/settings"
	"github.com/evancho/slicecore/slicer"
	"github.com/evancho/slicecore/svgdebug"
)

// Pipeline drives one slicing run: load, place, optionally rotate,
// re-place, slice every Z level, and write the timed path.
type Pipeline struct {
	BuildVolume settings.BuildVolume
	Log         logging.Logger

	// SVGDir, if non-empty, receives one debug SVG per slice.
	SVGDir string
}

// New returns a Pipeline with a silent logger; callers typically
// replace Log with logging.New(os.Stderr) or similar.
func New(bv settings.BuildVolume) *Pipeline {
	return &Pipeline{BuildVolume: bv, Log: logging.New(io.Discard)}
}

// Load parses an ASCII STL and rejects an empty result: a mesh with no
// triangles can never produce a meaningful slice.
func (p *Pipeline) Load(r io.Reader) (*mesh.Mesh, error) {
	m, err := mesh.ReadASCIISTL(r)
	if err != nil {
		return nil, err
	}
	if m.TriangleCount() == 0 {
		return nil, errs.New(errs.EmptyMesh, fmt.Errorf("mesh %q has no triangles", m.Name))
	}
	p.Log.Parsed(m.Name, m.TriangleCount())
	return m, nil
}

// Rotation is one discrete 90°-multiple turn to apply before placement.
type Rotation struct {
	Axis    placement.Axis
	Quarter int
}

// Prepare centers and scales m to the pipeline's build volume, applies
// every rotation in order, and re-places afterward so the rotated mesh
// is re-centered and re-seated on the bed.
func (p *Pipeline) Prepare(m *mesh.Mesh, rotations []Rotation) *mesh.Mesh {
	placement.Place(m, p.BuildVolume)
	for _, r := range rotations {
		placement.Rotate(m, r.Axis, r.Quarter)
		p.Log.Rotated(r.Axis.String(), r.Quarter)
	}
	if len(rotations) > 0 {
		placement.Place(m, p.BuildVolume)
	}
	p.Log.Placed(p.BuildVolume.XDim, p.BuildVolume.YDim, p.BuildVolume.ZDim)
	return m
}

// sliceResult is one Z level's computed edges, contours, and infill.
type sliceResult struct {
	z        float64
	edges    []slicer.SliceEdge
	contours []contour.DirectedEdge
	infillX  []infill.Line
	infillY  []infill.Line
}

func (p *Pipeline) computeSlice(m *mesh.Mesh, z float64) sliceResult {
	edges := slicer.SliceAt(m, z)
	contours, diags := contour.Build(edges)
	for _, d := range diags {
		p.Log.OpenContour(z, d.ContourIndex)
	}
	infillX, droppedX := infill.Generate(edges, infill.AxisX, p.BuildVolume.InfillSpacing)
	infillY, droppedY := infill.Generate(edges, infill.AxisY, p.BuildVolume.InfillSpacing)
	for i := 0; i < droppedX; i++ {
		p.Log.DegenerateInfill(z, infill.AxisX.String())
	}
	for i := 0; i < droppedY; i++ {
		p.Log.DegenerateInfill(z, infill.AxisY.String())
	}
	p.Log.SliceDone(z, len(edges), countContours(contours))
	return sliceResult{z: z, edges: edges, contours: contours, infillX: infillX, infillY: infillY}
}

func countContours(edges []contour.DirectedEdge) int {
	max := 0
	for _, e := range edges {
		if e.ContourIndex > max {
			max = e.ContourIndex
		}
	}
	return max
}

// Run slices every Z level of m sequentially, in schedule order, and
// returns a Writer with Phase A already recorded and Phase B already
// stamped at the build volume's head speed.
func (p *Pipeline) Run(m *mesh.Mesh) (*pathwriter.Writer, error) {
	w := pathwriter.NewWriter()
	for _, z := range slicer.ZSchedule(p.BuildVolume) {
		r := p.computeSlice(m, z)
		if err := p.emit(w, r); err != nil {
			return nil, err
		}
	}
	w.StampTimes(p.BuildVolume.HeadSpeed)
	return w, nil
}

func (p *Pipeline) emit(w *pathwriter.Writer, r sliceResult) error {
	w.AppendContour(r.contours, r.z)
	w.AppendInfill(r.infillX, r.z)
	w.AppendInfill(r.infillY, r.z)
	if p.SVGDir == "" {
		return nil
	}
	zInches := r.z / settings.InchMM
	if err := svgdebug.WriteSlice(p.SVGDir, zInches, r.edges, r.infillX, r.infillY); err != nil {
		return err
	}
	return nil
}

// RunParallel computes every Z level's slice on a worker pool, then
// reassembles the results in Z order before Phase A is ever written —
// workers share only the jobs channel of schedule indices and the
// results slice, in which each worker writes only the slots of the
// indices it received.
// ctx is checked between dispatch and collection so a cancellation
// between slices leaves no partial Writer behind: the caller gets
// ctx.Err() and discards whatever was computed so far, per §5's
// "partial output is not guaranteed to be valid."
func (p *Pipeline) RunParallel(ctx context.Context, m *mesh.Mesh, workers int) (*pathwriter.Writer, error) {
	if workers <= 1 {
		return p.Run(m)
	}

	levels := slicer.ZSchedule(p.BuildVolume)
	results := make([]sliceResult, len(levels))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = p.computeSlice(m, levels[idx])
			}
		}()
	}
	for i := range levels {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// results is already in Z order: each worker wrote to its own
	// schedule index, never to another's.
	w := pathwriter.NewWriter()
	for _, r := range results {
		if err := p.emit(w, r); err != nil {
			return nil, err
		}
	}
	w.StampTimes(p.BuildVolume.HeadSpeed)
	return w, nil
}
