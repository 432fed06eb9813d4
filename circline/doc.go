// Package circline implements generalized circles: circles and straight lines
// unified under the quadratic form
//
//	a·|z|² + 2·Re(conj(b)·z) + c = 0,   a, c real, b complex.
//
// What
//
//   - CircLine is a tagged variant (KindCircle | KindLine) carrying the
//     canonical (a, b, c) triple. Circles are normalized to a = 1; lines keep
//     a = 0 exactly with b scaled by its fast modulus.
//   - Constructors: New (dispatch on a ≈ 0), NewCircle, NewCircleRadiusSquared,
//     NewLine, NewLineAngle, NewLineCoeffs, Unit.
//   - Geometry: Evaluate, Project, Intersect, MinorInterval, Polyline,
//     ContainsPoint, IsPointOnLeft, ArePointsOnSameSide, IsNormalTo.
//   - Algebra: Translate, Scale, Conjugate, Inverse, Normalized, AsInversion,
//     and Transform, which pushes the form through a Möbius map.
//   - Trimmed pairs a CircLine with a parameter Interval and samples it as a
//     polygon.
//
// Why
//
//	Möbius maps send circles to circles or lines and back. Treating both as
//	one Hermitian form
//
//	  H = [ a        conj(b) ]
//	      [ b        c       ]
//
//	lets Transform compute  Nᵀ·H·conj(N)  with N = m⁻¹ and read (a, b, c)
//	back off the result. There is one code path whatever the variant, and no
//	case split on whether the image degenerates to a line.
//
// Parametrization
//
//	Circle: Evaluate(t) = Center + Radius·e^{it}, t in radians.
//	Line:   Evaluate(t) = Origin + t·Direction, |Direction| = 1.
//
// Errors
//
//   - ErrNoIntersection  separated circles or parallel lines. A tangent-inside
//     or concentric pair instead yields an empty slice and a nil error;
//     callers rely on telling the two apart.
//   - ErrZeroSpan        Trimmed.Polygon on an empty interval.
package circline
