package lemke_test

import (
	"testing"

	"github.com/exactlcp/lemke/lemke"
	"github.com/stretchr/testify/require"
)

func TestVariable_Complement(t *testing.T) {
	t.Parallel()

	vars := lemke.NewVariables(4)

	for i := 1; i <= vars.N(); i++ {
		comp := vars.Z(i).Complement()
		require.True(t, comp.Equal(vars.W(i)))

		comp = vars.W(i).Complement()
		require.True(t, comp.Equal(vars.Z(i)))
	}
}

func TestVariable_ComplementOfZ0Panics(t *testing.T) {
	t.Parallel()

	vars := lemke.NewVariables(4)
	require.Panics(t, func() { vars.Z(0).Complement() })
}

func TestVariable_Predicates(t *testing.T) {
	t.Parallel()

	vars := lemke.NewVariables(3)

	z0 := vars.Z(0)
	require.True(t, z0.IsZ())
	require.True(t, z0.IsZ0())
	require.False(t, z0.IsW())

	z2 := vars.Z(2)
	require.True(t, z2.IsZ())
	require.False(t, z2.IsZ0())

	w2 := vars.W(2)
	require.True(t, w2.IsW())
	require.False(t, w2.IsZ())
}

func TestVariable_String(t *testing.T) {
	t.Parallel()

	vars := lemke.NewVariables(3)

	require.Equal(t, "z0", vars.Z(0).String())
	require.Equal(t, "z2", vars.Z(2).String())
	require.Equal(t, "w1", vars.W(1).String())
}
