package lemke

import (
	"fmt"

	"github.com/exactlcp/lemke/tableau"
)

// LexMinRatio selects the leaving variable for the given entering
// variable using the lexicographic minimum-ratio test (spec.md §4.3).
// enter must be cobasic; entering an already-basic variable is a
// programmer error and panics. An empty candidate set — no positive
// entry in the entering column — is ray termination and is reported as
// ErrRayTermination, not a panic: it is a legitimate algorithmic outcome.
//
// It also returns whether z0 was among the rows that survived the ratio
// test on the RHS column alone — the driver uses this to detect the
// terminating pivot, since the lex-min test still runs to completion
// even when z0 could leave, so the leaving variable returned is not
// necessarily z0 itself.
func LexMinRatio(t *tableau.Dense, vs *Variables, enter Variable) (leave Variable, z0CanLeave bool, err error) {
	if vs.IsBasic(enter) {
		panic("lemke: " + enter.String() + " is already in the basis; must be cobasic to enter")
	}

	enterCol := vs.ToCol(enter)

	candidates := make([]int, 0, vs.N())
	for i := 0; i < vs.N(); i++ {
		v, atErr := t.At(i, enterCol)
		if atErr != nil {
			panic(atErr)
		}
		if v.Sign() > 0 {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 {
		return Variable{}, false, ErrRayTermination
	}

	z0CanLeave = processCandidates(t, vs, enterCol, &candidates)

	return vs.FromRow(candidates[0]), z0CanLeave, nil
}

// processCandidates narrows candidates first against the RHS column,
// then against W(1), W(2), ... until exactly one row survives.
func processCandidates(t *tableau.Dense, vs *Variables, enterCol int, candidates *[]int) bool {
	z0CanLeave := processRHS(t, vs, enterCol, candidates)

	for j := 1; len(*candidates) > 1; j++ {
		if j > vs.N() {
			// The perturbed RHS has full rank, so the unit columns
			// w1..wn must separate any remaining candidates before j
			// runs out. Reaching this point means the tableau state is
			// corrupt.
			panic(fmt.Sprintf("lemke: lexicographic ratio test failed to reduce %d candidates after %d columns", len(*candidates), vs.N()))
		}

		wj := vs.W(j)
		if vs.IsBasic(wj) {
			removeRow(candidates, vs.ToRow(wj))
			continue
		}

		testCol := vs.ToCol(wj)
		if testCol != enterCol {
			takeMinRatioRows(t, enterCol, testCol, candidates)
		}
	}

	return z0CanLeave
}

// processRHS performs the first narrowing pass, against the RHS column,
// and reports whether z0's row survived it.
func processRHS(t *tableau.Dense, vs *Variables, enterCol int, candidates *[]int) bool {
	takeMinRatioRows(t, enterCol, vs.RHSCol(), candidates)

	for _, row := range *candidates {
		if vs.FromRow(row).IsZ0() {
			return true
		}
	}

	return false
}

// removeRow deletes row from candidates if present, preserving order.
func removeRow(candidates *[]int, row int) {
	for i, r := range *candidates {
		if r == row {
			*candidates = append((*candidates)[:i], (*candidates)[i+1:]...)
			return
		}
	}
}

// takeMinRatioRows narrows candidates to those achieving the minimum of
// A[row, testCol] / A[row, enterCol] over the current candidate rows,
// comparing only via the tableau's exact sign-based ratio test (never
// dividing). Only positive entries of the entering column are ever
// compared, and that invariant is established by the caller.
//
// The write cursor num never outruns the read cursor i, so this
// rewrites candidates in place exactly like the reference algorithm's
// single backing vector.
func takeMinRatioRows(t *tableau.Dense, enterCol, testCol int, candidates *[]int) {
	c := *candidates
	num := 0

	for i := 1; i < len(c); i++ {
		switch t.RatioTest(c[0], c[i], enterCol, testCol) {
		case tableau.Equal:
			num++
			c[num] = c[i]
		case tableau.Greater:
			num = 0
			c[num] = c[i]
		case tableau.Less:
			// row is dominated, drop it
		}
	}

	*candidates = c[:num+1]
}
