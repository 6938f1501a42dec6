package lemke

import (
	"math/big"

	"github.com/exactlcp/lemke/tableau"
)

// Variables is the bijection between the 2n+1 symbolic variables
// {z0..zn, w1..wn} and the rows/columns of an n × (n+2) tableau.Dense.
//
// A variable is basic when varToPos[v] < n (its position is a row
// index); cobasic when varToPos[v] >= n (its position is n + its column
// index, column in [0, n]). posToVar is the inverse lookup: positions
// 0..n-1 are basic rows, n..2n are cobasic columns 0..n.
//
// The initial layout (spec.md §3) has z0..zn cobasic at columns 0..n and
// w1..wn basic at rows 0..n-1.
type Variables struct {
	n        int
	varToPos []int
	posToVar []int
}

// NewVariables builds the initial complementary basis/cobasis for an
// n-dimensional LCP: w1..wn basic at rows 0..n-1, z0..zn cobasic at
// columns 0..n.
func NewVariables(n int) *Variables {
	vs := &Variables{
		n:        n,
		varToPos: make([]int, 2*n+1),
		posToVar: make([]int, 2*n+1),
	}

	for i := 1; i <= n; i++ {
		vs.posToVar[i-1] = i + n
		vs.varToPos[i+n] = i - 1
	}
	for i := 0; i <= n; i++ {
		vs.posToVar[i+n] = i
		vs.varToPos[i] = n + i
	}

	return vs
}

// N returns the problem dimension n.
func (vs *Variables) N() int { return vs.n }

// Z constructs the handle for zi, i in [0, n].
func (vs *Variables) Z(i int) Variable { return Variable{idx: i, n: vs.n} }

// W constructs the handle for wi, i in [1, n].
func (vs *Variables) W(i int) Variable { return Variable{idx: i + vs.n, n: vs.n} }

// FromRow returns the variable currently basic at the given row.
func (vs *Variables) FromRow(row int) Variable { return Variable{idx: vs.posToVar[row], n: vs.n} }

// FromCol returns the variable currently cobasic at the given column.
func (vs *Variables) FromCol(col int) Variable {
	return Variable{idx: vs.posToVar[col+vs.n], n: vs.n}
}

// ToRow returns v's tableau row. Precondition: v is basic (IsBasic(v));
// violating it is a programmer error and panics. Callers always check
// IsBasic first, as LexMinRatio and the driver do.
func (vs *Variables) ToRow(v Variable) int {
	if !vs.IsBasic(v) {
		panic("lemke: ToRow(" + v.String() + "): variable is not basic")
	}

	return vs.varToPos[v.idx]
}

// ToCol returns v's tableau column. Precondition: v is cobasic
// (!IsBasic(v)); see ToRow. In particular ToCol(z0) while z0 is basic
// would yield a negative column, so the precondition is enforced here
// rather than left to the caller.
func (vs *Variables) ToCol(v Variable) int {
	if vs.IsBasic(v) {
		panic("lemke: ToCol(" + v.String() + "): variable is not cobasic")
	}

	return vs.varToPos[v.idx] - vs.n
}

// IsBasic reports whether v currently indexes a tableau row.
func (vs *Variables) IsBasic(v Variable) bool { return vs.varToPos[v.idx] < vs.n }

// RHSCol returns the tableau column holding the right-hand side, n+1.
func (vs *Variables) RHSCol() int { return vs.n + 1 }

// NegateRHS flips the sign of the RHS column of t.
func (vs *Variables) NegateRHS(t *tableau.Dense) { t.NegateCol(vs.RHSCol()) }

// swap exchanges enter and leave's positions in the variable map and
// returns the (row, col) coordinates of the pivot element this implies:
// leave's old row becomes enter's column's new row, and vice versa.
func (vs *Variables) swap(enter, leave Variable) (row, col int) {
	leaveRow := vs.ToRow(leave)
	enterCol := vs.ToCol(enter)

	vs.varToPos[leave.idx] = enterCol + vs.n
	vs.posToVar[enterCol+vs.n] = leave.idx

	vs.varToPos[enter.idx] = leaveRow
	vs.posToVar[leaveRow] = enter.idx

	return leaveRow, enterCol
}

// Pivot verifies that leave is basic and enter is cobasic, swaps their
// positions in the variable map, and pivots the tableau on the resulting
// (row, col) coordinates.
func (vs *Variables) Pivot(t *tableau.Dense, leave, enter Variable) error {
	if !vs.IsBasic(leave) {
		panic("lemke: " + leave.String() + " is not in the basis")
	}
	if vs.IsBasic(enter) {
		panic("lemke: " + enter.String() + " is already in the basis")
	}

	row, col := vs.swap(enter, leave)

	return t.Pivot(row, col)
}

// Solution reconstructs z1..zn as exact rationals from the current
// tableau state, using the per-column scale factors that were applied
// when the tableau was built. z0 is not included — on correct
// termination it is zero and not part of the returned vector.
func (vs *Variables) Solution(t *tableau.Dense, scale []*big.Int) []*big.Rat {
	z := make([]*big.Rat, vs.n)
	for i := 1; i <= vs.n; i++ {
		z[i-1] = vs.result(t, scale, vs.Z(i))
	}

	return z
}

// result computes the rational value of var:
//
//	zi basic:  scfa[i]  * A[row,rhs] / (det * scfa[rhs])
//	wi basic:  1        * A[row,rhs] / (det * scfa[rhs])
//	cobasic:   0
//
// The numerator scale factor is indexed by the variable's original
// tableau column (σ[i] for zi, σ[0] for z0), not by its current row:
// the scale undone here is the one applied to the column the variable
// started in when the tableau was built.
func (vs *Variables) result(t *tableau.Dense, scale []*big.Int, v Variable) *big.Rat {
	if !vs.IsBasic(v) {
		return new(big.Rat)
	}

	row := vs.ToRow(v)
	scaleFactor := big.NewInt(1)
	if v.IsZ() {
		scaleFactor = scale[v.idx]
	}

	rhsCol := vs.RHSCol()
	rhsEntry, _ := t.At(row, rhsCol) // safe: row/rhsCol are in range by construction
	numer := new(big.Int).Mul(scaleFactor, rhsEntry)
	denom := new(big.Int).Mul(t.Determinant, scale[rhsCol])

	return new(big.Rat).SetFrac(numer, denom)
}
