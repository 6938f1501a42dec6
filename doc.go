// Package lemke is the repository root for an exact-arithmetic solver
// for the Linear Complementarity Problem (LCP).
//
// What is this?
//
//	Given a square matrix M, a vector q, and a covering vector d, find
//	z ≥ 0 with w = Mz + q ≥ 0 and zᵀw = 0 (complementarity), using
//	Lemke's complementary-pivoting algorithm with lexicographic
//	minimum-ratio anti-cycling — or report that no solution is
//	reachable along the chosen ray.
//
// Every arithmetic operation in the pivot path is exact: big.Int
// tableau cells under fraction-free Gauss-Jordan pivoting, never a
// float, so the result is bit-exact even on badly degenerate problems.
//
// The engine is organized under three subpackages:
//
//	bigrat/  — gcd/lcm and per-column scale factors for rational input
//	tableau/ — the dense big.Int matrix and its fraction-free pivot
//	lemke/   — variable bookkeeping, the lex-min-ratio test, and the driver
//
// Quick start:
//
//	z, err := lemke.Solve(M, q, d, lemke.WithMaxPivots(1000))
//
// See the lemke package doc for the algorithm in detail.
package lemke
