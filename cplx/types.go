package cplx

import "errors"

// Tolerances used across all geometry packages.
const (
	// LinearTolerance is the distance below which two lengths are equal.
	LinearTolerance = 1e-9

	// AngularTolerance is the difference below which two angles are equal.
	AngularTolerance = 1e-3

	// LinearToleranceSquared compares squared moduli without a square root.
	LinearToleranceSquared = LinearTolerance * LinearTolerance

	// MaxLength bounds coordinates that are still considered finite geometry.
	MaxLength = 100
)

// ErrZeroModulus is returned when a zero-length vector is normalized.
var ErrZeroModulus = errors.New("cplx: zero modulus")
