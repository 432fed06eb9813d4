// Package cplx provides the numeric core of hyperdisc: tolerance-aware helpers
// over Go's native complex128.
//
// What
//
//   - Tolerance constants shared by every geometric package
//     (LinearTolerance, AngularTolerance, LinearToleranceSquared, MaxLength).
//   - Tolerant comparisons: Equal, IsZero, LengthEquals, AngleEquals, ...
//   - Small constructors and accessors: Polar, Arg, ModulusSquared, FastModulus,
//     Dot, Normalize, IsFinite.
//
// Why
//
//	Points of the Poincaré disc are plain complex numbers. Keeping them as
//	complex128 lets the Möbius and circle code use Go's built-in arithmetic,
//	while this package pins down the one thing the built-ins do not offer:
//	equality under a numeric tolerance.
//
// Errors
//
//   - ErrZeroModulus  if Normalize is asked to scale a (tolerance-)zero vector.
package cplx
