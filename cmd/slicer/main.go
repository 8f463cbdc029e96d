// slicer - headless STL slicing pipeline
//
// Loads an ASCII STL, places and optionally rotates it within a build
// volume, slices it into layers, and writes a timed print-head path.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/evancho/slicecore"
	"github.com/evancho/slicecore/internal/errs"
	"github.com/evancho/slicecore/internal/logging"
	"github.com/evancho/slicecore/mesh"
	"github.com/evancho/slicecore/pathwriter"
	"github.com/evancho/slicecore/placement"
	"github.com/evancho/slicecore/settings"
)

var flags struct {
	xDim, yDim, zDim           float64
	layerHeight, infillSpacing float64
	headSpeed                  float64
	rotateX, rotateY, rotateZ  int
	out                        string
	svg                        bool
	parallel                   int
}

func main() {
	root := &cobra.Command{
		Use:   "slicer",
		Short: "Headless 3D-printing slicer",
	}
	root.AddCommand(sliceCmd(), infoCmd())

	if err := fang.Execute(context.Background(), root); err != nil {
		os.Exit(1)
	}
}

func sliceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slice <model.stl>",
		Short: "Slice an ASCII STL into a timed print-head path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlice(args[0])
		},
	}
	f := cmd.Flags()
	f.Float64Var(&flags.xDim, "x-dim", 203.2, "build volume X (mm)")
	f.Float64Var(&flags.yDim, "y-dim", 152.4, "build volume Y (mm)")
	f.Float64Var(&flags.zDim, "z-dim", 203.2, "build volume Z (mm)")
	f.Float64Var(&flags.layerHeight, "layer-height", 12.7, "slice spacing (mm)")
	f.Float64Var(&flags.infillSpacing, "infill-spacing", 12.7, "infill grid pitch (mm)")
	f.Float64Var(&flags.headSpeed, "head-speed", 1.0, "print head speed (inch/s)")
	f.IntVar(&flags.rotateX, "rotate-x", 0, "number of +90° steps about X, applied before placement")
	f.IntVar(&flags.rotateY, "rotate-y", 0, "number of +90° steps about Y")
	f.IntVar(&flags.rotateZ, "rotate-z", 0, "number of +90° steps about Z")
	f.StringVar(&flags.out, "out", "./out", "output directory")
	f.BoolVar(&flags.svg, "svg", false, "also emit per-slice debug SVGs")
	f.IntVar(&flags.parallel, "parallel", 0, "worker count for parallel slicing (0 = sequential)")
	return cmd
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <model.stl>",
		Short: "Print triangle count, vertex count, bounding box, and name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runSlice(modelPath string) error {
	f, err := os.Open(modelPath)
	if err != nil {
		return errs.New(errs.IOError, err)
	}
	defer f.Close()

	bv, coerced := settings.NewBuildVolume(
		flags.xDim, flags.yDim, flags.zDim,
		flags.layerHeight, flags.infillSpacing, flags.headSpeed,
	)

	if err := pathwriter.PrepareDir(flags.out); err != nil {
		return err
	}

	log := logging.New(os.Stderr)
	p := slicecore.New(bv)
	p.Log = log
	if flags.svg {
		p.SVGDir = flags.out
	}

	for name, pair := range coerced {
		log.InvalidSetting(name, pair[0], pair[1])
	}

	m, err := p.Load(f)
	if err != nil {
		return err
	}

	var rotations []slicecore.Rotation
	for _, r := range []slicecore.Rotation{
		{Axis: placement.AxisX, Quarter: flags.rotateX},
		{Axis: placement.AxisY, Quarter: flags.rotateY},
		{Axis: placement.AxisZ, Quarter: flags.rotateZ},
	} {
		if r.Quarter%4 != 0 {
			rotations = append(rotations, r)
		}
	}
	p.Prepare(m, rotations)

	var w *pathwriter.Writer
	if flags.parallel > 0 {
		w, err = p.RunParallel(context.Background(), m, flags.parallel)
	} else {
		w, err = p.Run(m)
	}
	if err != nil {
		return err
	}
	if err := w.WriteCSV(flags.out); err != nil {
		return err
	}
	log.RunComplete(len(w.Records()), flags.out)
	return nil
}

func runInfo(modelPath string) error {
	f, err := os.Open(modelPath)
	if err != nil {
		return errs.New(errs.IOError, err)
	}
	defer f.Close()

	m, err := mesh.ReadASCIISTL(f)
	if err != nil {
		return err
	}

	min, max := m.Bounds()
	size := m.Size()
	fmt.Printf("Name:       %s\n", m.Name)
	fmt.Printf("Triangles:  %d\n", m.TriangleCount())
	fmt.Printf("Vertices:   %d\n", m.VertexCount())
	fmt.Printf("Bounds Min: (%.3f, %.3f, %.3f)\n", min.X, min.Y, min.Z)
	fmt.Printf("Bounds Max: (%.3f, %.3f, %.3f)\n", max.X, max.Y, max.Z)
	fmt.Printf("Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	return nil
}
