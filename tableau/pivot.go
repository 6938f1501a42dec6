package tableau

import (
	"fmt"
	"math/big"
)

// Ordering is a three-valued comparison result, used instead of a plain
// bool so RatioTest's caller can distinguish a strict order from a tie —
// essential for the lexicographic minimum-ratio test in package lemke.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Pivot performs the fraction-free Gauss/Jordan update on A[row,col],
// which must be nonzero. It preserves integrality of every cell whenever
// the tableau invariant held before the call (every entry divisible by
// the previous determinant at the rational level).
//
// Stage 1 (Validate): the pivot element must be nonzero.
// Stage 2 (Execute): update every cell outside the pivot row/column via
//
//	A[i,j] = (A[i,j]·|p| ± A[r,j]·A[i,c]) / det
//
// where the sign is chosen by the pivot's sign, and every off-pivot-row
// entry of the pivot column is negated (sign flip deferred via row
// negation when the pivot itself was negative).
// Stage 3 (Finalize): write the old determinant into the pivot cell,
// negate the pivot row if the pivot was negative, and set the new
// determinant to |p|.
//
// A non-zero remainder on the exact division in Stage 2 indicates a
// broken invariant elsewhere in the caller (corrupted tableau state, not
// a user-triggered condition) and panics rather than being silently
// truncated — see spec.md §7.
func (d *Dense) Pivot(row, col int) error {
	p, err := d.At(row, col)
	if err != nil {
		return err
	}
	if p.Sign() == 0 {
		return ErrZeroPivot
	}

	absPivot := new(big.Int).Abs(p)
	negPivot := p.Sign() < 0
	prevDet := d.Determinant

	for i := 0; i < d.nrows; i++ {
		if i == row {
			continue
		}
		nonzero := d.entry(i, col).Sign() != 0

		for j := 0; j < d.ncols; j++ {
			if j == col {
				continue
			}

			tmp := new(big.Int).Mul(d.entry(i, j), absPivot)
			if nonzero {
				cross := new(big.Int).Mul(d.entry(row, j), d.entry(i, col))
				if negPivot {
					tmp.Add(tmp, cross)
				} else {
					tmp.Sub(tmp, cross)
				}
			}

			quot, rem := new(big.Int).QuoRem(tmp, prevDet, new(big.Int))
			if rem.Sign() != 0 {
				panic(fmt.Sprintf("tableau: fraction-free pivot produced a non-integer entry at (%d,%d): remainder %s", i, j, rem.String()))
			}
			d.setEntry(i, j, quot)
		}

		if nonzero && !negPivot {
			d.setEntry(i, col, new(big.Int).Neg(d.entry(i, col)))
		}
	}

	d.setEntry(row, col, prevDet)
	if negPivot {
		d.NegateRow(row)
	}
	d.Determinant = absPivot

	return nil
}

// NegateRow negates every entry in row r in place.
func (d *Dense) NegateRow(r int) {
	for j := 0; j < d.ncols; j++ {
		d.setEntry(r, j, new(big.Int).Neg(d.entry(r, j)))
	}
}

// NegateCol negates every entry in column c in place.
func (d *Dense) NegateCol(c int) {
	for i := 0; i < d.nrows; i++ {
		d.setEntry(i, c, new(big.Int).Neg(d.entry(i, c)))
	}
}

// RatioTest returns the sign of
//
//	A[ra,cb]·A[rb,ca] - A[rb,cb]·A[ra,ca]
//
// which equals the sign of A[ra,cb]/A[ra,ca] - A[rb,cb]/A[rb,ca] whenever
// both denominators are positive — a precondition the caller guarantees
// by restricting ra, rb to rows where column ca is positive.
func (d *Dense) RatioTest(ra, rb, ca, cb int) Ordering {
	lhs := new(big.Int).Mul(d.entry(ra, cb), d.entry(rb, ca))
	rhs := new(big.Int).Mul(d.entry(rb, cb), d.entry(ra, ca))

	switch lhs.Cmp(rhs) {
	case -1:
		return Less
	case 1:
		return Greater
	default:
		return Equal
	}
}
