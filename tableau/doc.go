// Package tableau implements the dense, arbitrary-precision integer
// tableau used by Lemke's complementary-pivoting algorithm.
//
// A Tableau is an n × (n+2) matrix of *big.Int accompanied by a single
// determinant scalar. It supports a fraction-free pivot operation —
// the classical Gauss/Jordan update
//
//	A[i,j] = (A[i,j]·A[r,c] - A[i,c]·A[r,j]) / det
//
// — that keeps every entry an exact integer across any number of pivots,
// row/column negation, and a signed cross-ratio comparator used by the
// lexicographic minimum-ratio test in package lemke.
//
// Tableau has no notion of basic/cobasic variables; that bookkeeping
// lives in package lemke. This package is purely the numeric kernel:
// dense storage, fraction-free pivoting, and ratio comparison.
package tableau
