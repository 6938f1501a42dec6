// Package bigrat provides the small set of exact-arithmetic helpers the
// LCP engine needs to convert rational input matrices/vectors into the
// scaled integer form the tableau operates on: GCD, LCM, and per-column
// scale-factor computation.
//
// There is no general-purpose rational-number library anywhere in this
// module's dependency surface (see DESIGN.md); math/big's *big.Int and
// *big.Rat already cover arbitrary-precision arithmetic, so this package
// only adds the number-theoretic glue that math/big itself doesn't
// provide as a one-liner.
package bigrat
