// Package logging provides the slicing pipeline's structured, per-stage
// event log. It wraps zerolog so call sites read as one-line fielded
// events instead of ad hoc fmt.Printf calls scattered through the
// pipeline.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger emits structured events for one pipeline run.
type Logger struct {
	z zerolog.Logger
}

// New returns a Logger writing to w.
func New(w io.Writer) Logger {
	return Logger{z: zerolog.New(w).With().Timestamp().Logger()}
}

// Parsed logs a successful mesh parse.
func (l Logger) Parsed(name string, triangles int) {
	l.z.Info().Str("mesh", name).Int("triangles", triangles).Msg("parsed mesh")
}

// Placed logs the build volume a mesh was fit into.
func (l Logger) Placed(xDim, yDim, zDim float64) {
	l.z.Info().Float64("x_dim", xDim).Float64("y_dim", yDim).Float64("z_dim", zDim).Msg("placed mesh")
}

// Rotated logs a discrete 90°-multiple rotation.
func (l Logger) Rotated(axis string, quarters int) {
	l.z.Info().Str("axis", axis).Int("quarters", quarters).Msg("rotated mesh")
}

// SliceDone logs the result of slicing one Z level.
func (l Logger) SliceDone(z float64, edges, contours int) {
	l.z.Debug().Float64("z", z).Int("edges", edges).Int("contours", contours).Msg("slice complete")
}

// OpenContour logs a contour that could not be closed within the scan
// budget and was written anyway.
func (l Logger) OpenContour(z float64, index int) {
	l.z.Warn().Float64("z", z).Int("contour", index).Msg("contour left open")
}

// DegenerateInfill logs an odd-length infill crossing list that was
// dropped rather than risk corrupting the enter/exit alternation.
func (l Logger) DegenerateInfill(z float64, axis string) {
	l.z.Warn().Float64("z", z).Str("axis", axis).Msg("dropped odd-length infill pass")
}

// InvalidSetting logs a non-positive setting that was silently coerced.
func (l Logger) InvalidSetting(name string, got, coerced float64) {
	l.z.Warn().Str("setting", name).Float64("got", got).Float64("coerced", coerced).Msg("coerced invalid setting")
}

// RunComplete logs the final record count written.
func (l Logger) RunComplete(records int, dir string) {
	l.z.Info().Int("records", records).Str("dir", dir).Msg("run complete")
}
