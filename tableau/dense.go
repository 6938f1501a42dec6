package tableau

import (
	"fmt"
	"math/big"
)

// Dense is a row-major n × (n+2) matrix of *big.Int, paired with a single
// determinant scalar shared by the whole tableau.
//
// Column 0 holds the (scaled) covering vector d, columns 1..n hold the
// (scaled) matrix M, and column n+1 holds the (scaled, sign-adjusted) RHS.
// Layout and row/column ownership of those columns is the concern of
// package lemke; Dense only knows about shape, storage, and arithmetic.
type Dense struct {
	nrows, ncols int
	data         []*big.Int // flat backing store, length nrows*ncols, row-major
	Determinant  *big.Int
}

// New allocates an n × (n+2) Dense tableau with every entry zeroed and
// Determinant initialized to -1, per the sign convention documented in
// spec.md §3 (chosen so the first pivot yields a positive determinant).
//
// Stage 1 (Validate): n must be positive.
// Stage 2 (Prepare): allocate the flat backing slice and zero every cell.
// Stage 3 (Finalize): return the new Dense.
func New(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	ncols := n + 2
	data := make([]*big.Int, n*ncols)
	for i := range data {
		data[i] = big.NewInt(0)
	}

	return &Dense{
		nrows:       n,
		ncols:       ncols,
		data:        data,
		Determinant: big.NewInt(-1),
	}, nil
}

// Rows returns the number of tableau rows (n).
func (d *Dense) Rows() int { return d.nrows }

// Cols returns the number of tableau columns (n+2).
func (d *Dense) Cols() int { return d.ncols }

func (d *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.nrows || col < 0 || col >= d.ncols {
		return 0, fmt.Errorf("tableau: (%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*d.ncols + col, nil
}

// At retrieves the entry at (row, col).
func (d *Dense) At(row, col int) (*big.Int, error) {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return nil, err
	}

	return d.data[idx], nil
}

// Set assigns v at (row, col). v is stored by reference; callers must not
// mutate a *big.Int after handing it to Set.
func (d *Dense) Set(row, col int, v *big.Int) error {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// entry is the unchecked fast path used internally once a loop bound has
// already guaranteed (row, col) is in range — mirrors the teacher's
// "safe: bounds ensured" convention of discarding the error return after a
// loop invariant makes it unreachable (see matrix/impl_linear_algebra.go).
func (d *Dense) entry(row, col int) *big.Int {
	return d.data[row*d.ncols+col]
}

func (d *Dense) setEntry(row, col int, v *big.Int) {
	d.data[row*d.ncols+col] = v
}

// Clone returns a deep copy of the tableau, including the determinant.
func (d *Dense) Clone() *Dense {
	out := &Dense{
		nrows:       d.nrows,
		ncols:       d.ncols,
		data:        make([]*big.Int, len(d.data)),
		Determinant: new(big.Int).Set(d.Determinant),
	}
	for i, v := range d.data {
		out.data[i] = new(big.Int).Set(v)
	}

	return out
}
