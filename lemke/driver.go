// Package lemke: the LCP driver. See doc.go for the package-level
// overview; this file owns construction, input validation, and the
// pivot loop.
package lemke

import (
	"fmt"
	"math/big"

	"github.com/exactlcp/lemke/bigrat"
	"github.com/exactlcp/lemke/tableau"
)

// LCP holds one solver instance: the scaled integer tableau, the
// variable map, and the per-column scale factors needed to recover a
// rational solution. An LCP is built once by New and solved once by
// Solve; it is not safe for concurrent use and is not meant to be
// reused across independent solves.
type LCP struct {
	n       int
	tableau *tableau.Dense
	vars    *Variables
	scale   []*big.Int

	trivial  bool
	trivialZ []*big.Rat
}

// New validates (M, q, d) and builds the scaled integer tableau for a
// Solve call. M is n×n in row-major form (one []*big.Rat per row); q
// and d are length n.
//
// New returns the zero-pivot TrivialSolution path directly: if q has no
// negative entries, z = 0 already satisfies the LCP and Solve will
// return it without touching the tableau at all.
func New(m [][]*big.Rat, q, d []*big.Rat) (*LCP, error) {
	n := len(q)
	if n == 0 {
		return nil, fmt.Errorf("lemke: %w: q must be non-empty", ErrDimensionMismatch)
	}
	if len(m) != n {
		return nil, fmt.Errorf("lemke: %w: M has %d rows, want %d", ErrDimensionMismatch, len(m), n)
	}
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("lemke: %w: M row %d has %d columns, want %d (non-square)", ErrNonSquareMatrix, i, len(row), n)
		}
	}
	if len(d) != n {
		return nil, fmt.Errorf("lemke: %w: d has length %d, want %d", ErrDimensionMismatch, len(d), n)
	}

	if err := validateInputs(q, d); err != nil {
		return nil, err
	}

	if isTrivial(q) {
		z := make([]*big.Rat, n)
		for i := range z {
			z[i] = new(big.Rat)
		}

		return &LCP{n: n, trivial: true, trivialZ: z}, nil
	}

	vars := NewVariables(n)
	t, err := tableau.New(n)
	if err != nil {
		return nil, err
	}

	scale := make([]*big.Int, n+2)

	for j := 1; j <= n+1; j++ {
		var column []*big.Rat
		if j <= n {
			column = make([]*big.Rat, n)
			for i := 0; i < n; i++ {
				column[i] = m[i][j-1]
			}
		} else {
			column = q
		}

		sigma := bigrat.ScaleFactor(column)
		scale[j] = sigma
		scaled := bigrat.ScaleColumn(column, sigma)
		for i := 0; i < n; i++ {
			if err := t.Set(i, j, scaled[i]); err != nil {
				return nil, err
			}
		}
	}

	sigma0 := bigrat.ScaleFactor(d)
	scale[0] = sigma0
	scaledD := bigrat.ScaleColumn(d, sigma0)
	for i := 0; i < n; i++ {
		if err := t.Set(i, 0, scaledD[i]); err != nil {
			return nil, err
		}
	}

	return &LCP{n: n, tableau: t, vars: vars, scale: scale}, nil
}

// validateInputs enforces the covering-vector preconditions: every
// d[i] must be non-negative, and a negative q[i] needs a strictly
// positive d[i] to be reachable by the initial ray.
func validateInputs(q, d []*big.Rat) error {
	for i, di := range d {
		if di.Sign() < 0 {
			return &BadCoveringVectorError{Index: i, Reason: "d[i] must be >= 0"}
		}
	}
	for i, qi := range q {
		if qi.Sign() < 0 && d[i].Sign() == 0 {
			return &BadCoveringVectorError{Index: i, Reason: "q[i] < 0 requires d[i] > 0"}
		}
	}

	return nil
}

// isTrivial reports whether z = 0 already satisfies the LCP: q has no
// negative entries, so w = q >= 0 with z = 0 is immediately feasible
// and complementary.
func isTrivial(q []*big.Rat) bool {
	for _, qi := range q {
		if qi.Sign() < 0 {
			return false
		}
	}

	return true
}

// Solve runs Lemke's pivot loop to completion (or until a configured
// pivot budget or ray termination stops it) and returns the rational
// solution vector z, length n.
func (l *LCP) Solve(opts ...Option) ([]*big.Rat, error) {
	if l.trivial {
		out := make([]*big.Rat, len(l.trivialZ))
		for i, v := range l.trivialZ {
			out[i] = new(big.Rat).Set(v)
		}

		return out, nil
	}

	o := gatherOptions(opts...)

	enter := l.vars.Z(0)
	leave, z0CanLeave, err := LexMinRatio(l.tableau, l.vars, enter)
	if err != nil {
		return nil, err
	}

	l.vars.NegateRHS(l.tableau)

	pivotCount := 1
	for {
		if o.Trace != nil {
			fmt.Fprintf(o.Trace, "pivot %d: %s enters, %s leaves\n", pivotCount, enter, leave)
		}

		if err := l.vars.Pivot(l.tableau, leave, enter); err != nil {
			panic(err)
		}

		if z0CanLeave {
			break
		}

		enter = leave.Complement()

		leave, z0CanLeave, err = LexMinRatio(l.tableau, l.vars, enter)
		if err != nil {
			return nil, err
		}

		if o.MaxPivots != 0 && pivotCount == o.MaxPivots {
			return nil, &PivotLimitError{MaxPivots: o.MaxPivots, PivotsRun: pivotCount}
		}

		pivotCount++
	}

	return l.vars.Solution(l.tableau, l.scale), nil
}

// Solve builds an LCP instance from (M, q, d) and solves it in one
// call, the top-level facade most callers want.
func Solve(m [][]*big.Rat, q, d []*big.Rat, opts ...Option) ([]*big.Rat, error) {
	lcp, err := New(m, q, d)
	if err != nil {
		return nil, err
	}

	return lcp.Solve(opts...)
}
