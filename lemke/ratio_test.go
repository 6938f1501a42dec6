package lemke_test

import (
	"math/big"
	"testing"

	"github.com/exactlcp/lemke/lemke"
	"github.com/exactlcp/lemke/tableau"
	"github.com/stretchr/testify/require"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func TestLexMinRatio_Scenario(t *testing.T) {
	t.Parallel()

	// mirrors original_source/src/lemke/lex_min_ratio.rs::lexminvar_works
	const n = 2
	vars := lemke.NewVariables(n)

	a, err := tableau.New(n)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, bi(2)))
	require.NoError(t, a.Set(0, 1, bi(2)))
	require.NoError(t, a.Set(0, 2, bi(1)))
	require.NoError(t, a.Set(0, 3, bi(-1)))
	require.NoError(t, a.Set(1, 0, bi(1)))
	require.NoError(t, a.Set(1, 1, bi(1)))
	require.NoError(t, a.Set(1, 2, bi(3)))
	require.NoError(t, a.Set(1, 3, bi(-1)))

	leave, z0CanLeave, err := lemke.LexMinRatio(a, vars, vars.Z(0))
	require.NoError(t, err)
	require.True(t, leave.Equal(vars.W(2)))
	require.False(t, z0CanLeave)

	leave, z0CanLeave, err = lemke.LexMinRatio(a, vars, vars.Z(1))
	require.NoError(t, err)
	require.True(t, leave.Equal(vars.W(2)))
	require.False(t, z0CanLeave)

	leave, z0CanLeave, err = lemke.LexMinRatio(a, vars, vars.Z(2))
	require.NoError(t, err)
	require.True(t, leave.Equal(vars.W(1)))
	require.False(t, z0CanLeave)
}

func TestLexMinRatio_RayTermination(t *testing.T) {
	t.Parallel()

	const n = 1
	vars := lemke.NewVariables(n)

	a, err := tableau.New(n)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, bi(-1)))
	require.NoError(t, a.Set(0, 1, bi(-1)))
	require.NoError(t, a.Set(0, 2, bi(-1)))

	_, _, err = lemke.LexMinRatio(a, vars, vars.Z(0))
	require.ErrorIs(t, err, lemke.ErrRayTermination)
}

func TestLexMinRatio_EnteringBasicVariablePanics(t *testing.T) {
	t.Parallel()

	const n = 2
	vars := lemke.NewVariables(n)

	a, err := tableau.New(n)
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _, _ = lemke.LexMinRatio(a, vars, vars.W(1))
	})
}
