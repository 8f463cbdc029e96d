// Package errs defines the error-kind taxonomy shared across the slicing
// pipeline, so callers can distinguish a fatal condition (parse failure,
// empty mesh, I/O failure) from one that is handled locally and never
// interrupts the per-slice loop.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error by how the pipeline should react to it.
type Kind int

const (
	// InputParse indicates malformed STL input. Fatal.
	InputParse Kind = iota
	// InvalidSetting indicates a non-positive layer height or infill
	// spacing. Never returned as an error: callers coerce silently.
	InvalidSetting
	// EmptyMesh indicates a mesh with no triangles after parsing. Fatal.
	EmptyMesh
	// DegenerateSlice indicates a dropped 1-/3-point triangle
	// intersection or an odd-length infill crossing list. Never
	// returned as an error: logged and the element is dropped.
	DegenerateSlice
	// OpenContour indicates the contour builder's scan budget was
	// exhausted before closure. Never returned as an error: the partial
	// contour is still written, with a diagnostic recorded.
	OpenContour
	// IOError indicates a failure reading or writing pipeline output.
	// Fatal.
	IOError
)

func (k Kind) String() string {
	switch k {
	case InputParse:
		return "InputParse"
	case InvalidSetting:
		return "InvalidSetting"
	case EmptyMesh:
		return "EmptyMesh"
	case DegenerateSlice:
		return "DegenerateSlice"
	case OpenContour:
		return "OpenContour"
	case IOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying error with its Kind so callers can
// errors.As to it and inspect Kind for a specific failure category.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with kind. Returns nil if err is nil.
func New(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// IsFatal reports whether err, if non-nil, belongs to one of the three
// kinds that must stop the run: InputParse, EmptyMesh, or IOError.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		// An error with no Kind attached (e.g. from os.Open before it is
		// wrapped) is treated as fatal by default.
		return true
	}
	switch e.Kind {
	case InputParse, EmptyMesh, IOError:
		return true
	default:
		return false
	}
}
