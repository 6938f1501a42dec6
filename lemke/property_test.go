package lemke_test

import (
	"math/big"
	"testing"

	"github.com/exactlcp/lemke/lemke"
	"github.com/exactlcp/lemke/tableau"
	"github.com/stretchr/testify/require"
)

// TestSolve_Complementarity checks property 5 from spec.md §8: for the
// returned z and w = Mz + q, z[i]*w[i] = 0 and both sides are
// non-negative, for every scenario that actually pivots.
func TestSolve_Complementarity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		m    [][]*big.Rat
		q, d []*big.Rat
	}{
		{
			name: "2x2",
			m:    [][]*big.Rat{row(2, 1), row(1, 3)},
			q:    row(-1, -1),
			d:    row(2, 1),
		},
		{
			name: "3x3",
			m: [][]*big.Rat{
				row(0, -1, 2),
				row(2, 0, -2),
				row(-1, 1, 0),
			},
			q: row(-3, 6, -1),
			d: row(1, 1, 1),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			z, err := lemke.Solve(tc.m, tc.q, tc.d)
			require.NoError(t, err)

			n := len(tc.q)
			for i := 0; i < n; i++ {
				require.True(t, z[i].Sign() >= 0, "z[%d] must be >= 0", i)

				w := new(big.Rat).Set(tc.q[i])
				for j := 0; j < n; j++ {
					w.Add(w, new(big.Rat).Mul(tc.m[i][j], z[j]))
				}
				require.True(t, w.Sign() >= 0, "w[%d] must be >= 0", i)

				product := new(big.Rat).Mul(z[i], w)
				require.Equal(t, 0, product.Sign(), "z[%d]*w[%d] must be 0", i, i)
			}
		})
	}
}

// TestVariables_BijectionAfterPivot checks property 1: var_to_pos and
// pos_to_var remain mutual inverses after a pivot.
func TestVariables_BijectionAfterPivot(t *testing.T) {
	t.Parallel()

	const n = 3
	vars := lemke.NewVariables(n)

	a, err := tableau.New(n)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, bi(1)))
	require.NoError(t, vars.Pivot(a, vars.W(1), vars.Z(0)))

	for i := 0; i <= 2*n; i++ {
		var v lemke.Variable
		if i <= n {
			v = vars.Z(i)
		} else {
			v = vars.W(i - n)
		}

		if vars.IsBasic(v) {
			require.True(t, v.Equal(vars.FromRow(vars.ToRow(v))))
		} else {
			require.True(t, v.Equal(vars.FromCol(vars.ToCol(v))))
		}
	}
}

// TestVariable_ComplementInvolution checks property 6: complement is
// its own inverse for every variable except z0.
func TestVariable_ComplementInvolution(t *testing.T) {
	t.Parallel()

	vars := lemke.NewVariables(5)

	for i := 1; i <= vars.N(); i++ {
		z := vars.Z(i)
		require.True(t, z.Equal(z.Complement().Complement()))

		w := vars.W(i)
		require.True(t, w.Equal(w.Complement().Complement()))
	}
}
