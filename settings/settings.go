// Package settings holds the BuildVolume configuration consumed from the
// hosting viewer (build-volume dimensions, slice height, infill spacing,
// head speed), plus the join tolerance and Z-nudge design constants.
package settings

// EpsilonMM is the join tolerance: the distance below which two float
// endpoints are considered "the same" point. Chosen well below typical
// printer resolution and well above accumulated float error in
// plane-line interpolation. This is a hard constant, not user-tunable.
const EpsilonMM = 0.005

// ZNudgeMM is the offset added to each nominal Z level (and subtracted
// from the final level) to avoid sampling the slice plane exactly at a
// vertex. A hard constant, not user-tunable.
const ZNudgeMM = 0.01

// InchMM is the number of millimeters in one inch. All internal math is
// mm; only the path file is inches.
const InchMM = 25.4

const (
	defaultXDim          = 203.2
	defaultYDim          = 152.4
	defaultZDim          = 203.2
	defaultLayerHeight   = 12.7
	defaultInfillSpacing = 12.7
	defaultHeadSpeed     = 1.0

	// safeMinimum is substituted for any user-supplied layer height or
	// infill spacing that is zero or negative.
	safeMinimum = 0.1
)

// BuildVolume describes the printable box and the slicing/infill/speed
// settings for one run. All fields are in millimeters except HeadSpeed
// (inch/s). Construct via NewBuildVolume so invalid settings are coerced
// exactly once, at the boundary.
type BuildVolume struct {
	XDim, YDim, ZDim           float64
	LayerHeight, InfillSpacing float64
	HeadSpeed                  float64
}

// Default returns the documented external-interface defaults.
func Default() BuildVolume {
	return BuildVolume{
		XDim:          defaultXDim,
		YDim:          defaultYDim,
		ZDim:          defaultZDim,
		LayerHeight:   defaultLayerHeight,
		InfillSpacing: defaultInfillSpacing,
		HeadSpeed:     defaultHeadSpeed,
	}
}

// NewBuildVolume constructs a BuildVolume, coercing a non-positive
// layerHeight or infillSpacing to a safe positive default (0.1 mm) rather
// than failing the run — an InvalidSetting is a UI slip, not a fatal
// condition. coerced reports which fields (if any) were coerced, keyed
// by field name, for logging at the call site.
func NewBuildVolume(xDim, yDim, zDim, layerHeight, infillSpacing, headSpeed float64) (bv BuildVolume, coerced map[string][2]float64) {
	bv = BuildVolume{
		XDim:          xDim,
		YDim:          yDim,
		ZDim:          zDim,
		LayerHeight:   layerHeight,
		InfillSpacing: infillSpacing,
		HeadSpeed:     headSpeed,
	}
	coerced = map[string][2]float64{}
	if layerHeight <= 0 {
		coerced["layer_height"] = [2]float64{layerHeight, safeMinimum}
		bv.LayerHeight = safeMinimum
	}
	if infillSpacing <= 0 {
		coerced["infill_spacing"] = [2]float64{infillSpacing, safeMinimum}
		bv.InfillSpacing = safeMinimum
	}
	if len(coerced) == 0 {
		coerced = nil
	}
	return bv, coerced
}
