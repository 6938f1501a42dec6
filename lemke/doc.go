// Package lemke implements Lemke's complementary-pivoting algorithm for
// the Linear Complementarity Problem (LCP): given a square matrix M, a
// vector q, and a covering vector d, find z ≥ 0 with w = Mz + q ≥ 0 and
// zᵀw = 0, or report that no solution is reachable along the chosen ray.
//
// # Variables
//
// The symbolic variable set {z0, z1, ..., zn} ∪ {w1, ..., wn} is encoded
// as a compact integer index and tracked by Variables, a bijection
// between that index space and the rows/columns of a tableau.Dense: a
// variable is "basic" when it indexes a row (its value comes from the
// RHS) and "cobasic" when it indexes a column (its value is pinned to
// zero). Variable i's complement is the other half of its pair — wi for
// zi and vice versa; z0 has no complement.
//
// # Lexicographic minimum ratio
//
// LexMinRatio selects the leaving variable for a given entering variable
// using a lexicographic tie-break: candidates are narrowed first against
// the RHS column, then against each unit column w1, w2, ..., in turn,
// until exactly one candidate remains. This is equivalent to an
// infinitesimal symbolic perturbation of the RHS and is what prevents
// Lemke's algorithm from cycling on degenerate problems.
//
// # Driver
//
// New builds the scaled integer tableau from (M, q, d) and Solve runs
// the pivot loop: enter z0, find the leaving variable, pivot, set the
// next entering variable to the complement of whatever just left, and
// repeat until z0 is among the rows that survive the RHS ratio test
// (the pivot on the chosen leaving variable is made and the solution
// read out), no candidate column has a positive entry (ray termination),
// or a caller configured pivot budget is exhausted.
//
//	z, err := lemke.Solve(M, q, d) // unlimited pivots by default
//
// See https://en.wikipedia.org/wiki/Lemke%27s_algorithm for the
// underlying mathematics; this package implements it in exact
// big.Int/big.Rat arithmetic.
package lemke
