package surface

import "errors"

// Sentinel errors returned by surface evaluation.
var (
	// ErrNilTriangulation indicates a nil or unbuilt triangulation.
	ErrNilTriangulation = errors.New("surface: triangulation is nil")

	// ErrFieldSize indicates a field or gradient slice whose length differs
	// from the node count; rejected before evaluating anything.
	ErrFieldSize = errors.New("surface: field length does not match node count")

	// ErrShapeMismatch indicates batch coordinate slices of different length.
	ErrShapeMismatch = errors.New("surface: coordinate slices must have equal length")
)
