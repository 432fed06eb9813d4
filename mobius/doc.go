// Package mobius implements the group of Möbius transformations
// z ↦ (Az+B)/(Cz+D) acting on the extended complex plane.
//
// What
//
//   - Mobius stores the 2×2 complex matrix [[A,B],[C,D]].
//   - Mul composes maps as matrices: m.Mul(n) applies n first, then m.
//   - Inverse, Conjugate, Transpose and ConjugateTranspose are the algebraic
//     companions needed to push generalized circles through a map.
//   - Rotation, Translation, DiscAutomorphism and DiscTranslation build the
//     isometries of the Poincaré disc used by the tiling engine.
//
// Determinant policy
//
//	Matrices are never normalized: Inverse returns (D,-B,-C,A) and the
//	determinant is whatever composition produced. A quadruple whose
//	determinant is within tolerance of zero collapses to the identity when
//	built through New. Callers must therefore not assume that New(a,b,c,d)
//	acts like the requested map when the input is singular.
//
// Complexity
//
//	Every operation is O(1).
package mobius
