package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coxctl/braid/coxeter"
)

func buildFor(t *testing.T, rows [][]int) (*coxeter.System, *Graph) {
	t.Helper()
	mx, err := coxeter.NewMatrix(rows)
	require.NoError(t, err)
	sys, err := coxeter.NewSystem(mx)
	require.NoError(t, err)
	g, err := Build(sys)
	require.NoError(t, err)
	return sys, g
}

func word(s string) []int {
	idx := make([]int, len(s))
	for i, c := range s {
		idx[i] = int(c - 'a')
	}
	return idx
}

// TestS3 is scenario S1: S_3. Minimal roots: 3, states: 6.
// "aba" reduced; "abab" rejects at the 4th symbol.
func TestS3(t *testing.T) {
	sys, g := buildFor(t, [][]int{
		{1, 3},
		{3, 1},
	})
	require.Len(t, sys.Minimal, 3)
	require.Equal(t, 6, g.Catalog.Len())

	res, err := g.Reduce(word("aba"))
	require.NoError(t, err)
	require.True(t, res.Reduced)

	res, err = g.Reduce(word("abab"))
	require.NoError(t, err)
	require.False(t, res.Reduced)
	require.Equal(t, 4, res.Position)
}

// TestInfiniteDihedral is scenario S2: states: 3 (initial, after a, after b).
// Any alternating word is reduced; "aa" rejects at symbol 2.
func TestInfiniteDihedral(t *testing.T) {
	_, g := buildFor(t, [][]int{
		{1, 0},
		{0, 1},
	})
	require.Equal(t, 3, g.Catalog.Len())

	res, err := g.Reduce(word("abababab"))
	require.NoError(t, err)
	require.True(t, res.Reduced)

	res, err = g.Reduce(word("aa"))
	require.NoError(t, err)
	require.False(t, res.Reduced)
	require.Equal(t, 2, res.Position)
}

// TestS4 is scenario S3: S_4. Minimal roots: 6, states: 24.
// "abcba" reduced; "aa" rejects at 2; "acac" rejects at 3.
func TestS4(t *testing.T) {
	sys, g := buildFor(t, [][]int{
		{1, 3, 2},
		{3, 1, 3},
		{2, 3, 1},
	})
	require.Len(t, sys.Minimal, 6)
	require.Equal(t, 24, g.Catalog.Len())

	res, err := g.Reduce(word("abcba"))
	require.NoError(t, err)
	require.True(t, res.Reduced)

	res, err = g.Reduce(word("aa"))
	require.NoError(t, err)
	require.False(t, res.Reduced)
	require.Equal(t, 2, res.Position)

	res, err = g.Reduce(word("acac"))
	require.NoError(t, err)
	require.False(t, res.Reduced)
	require.Equal(t, 3, res.Position)
}

func TestInitialStateNeverRejects(t *testing.T) {
	_, g := buildFor(t, [][]int{
		{1, 3},
		{3, 1},
	})
	for a := 0; a < 2; a++ {
		require.False(t, g.Initial.Next(a).IsReject())
	}
	require.Equal(t, 0, g.Initial.Len())
}

func TestStateCap(t *testing.T) {
	mx, err := coxeter.NewMatrix([][]int{
		{1, 3, 2},
		{3, 1, 3},
		{2, 3, 1},
	})
	require.NoError(t, err)
	sys, err := coxeter.NewSystem(mx)
	require.NoError(t, err)

	_, err = Build(sys, WithMaxStates(3))
	require.ErrorIs(t, err, ErrStateCap)
}

func TestReduceInvalidGenerator(t *testing.T) {
	_, g := buildFor(t, [][]int{
		{1, 3},
		{3, 1},
	})
	_, err := g.Reduce([]int{5})
	require.ErrorIs(t, err, ErrInvalidGenerator)
}

// TestRejectCorrectness is invariant 6 of §8: U.next_state[a] = reject iff
// simple_roots[a] ∈ U.roots.
func TestRejectCorrectness(t *testing.T) {
	sys, g := buildFor(t, [][]int{
		{1, 3, 2},
		{3, 1, 3},
		{2, 3, 1},
	})
	for _, st := range g.States() {
		for a := 0; a < sys.Matrix.N(); a++ {
			has := containsRoot(st.roots, sys.Simple[a], sys.Epsilon())
			require.Equal(t, has, st.Next(a).IsReject())
		}
	}
}

// TestStateUniqueness is invariant 5 of §8: no two catalog entries compare
// equal under the state order.
func TestStateUniqueness(t *testing.T) {
	sys, g := buildFor(t, [][]int{
		{1, 3, 2},
		{3, 1, 3},
		{2, 3, 1},
	})
	states := g.States()
	for i := range states {
		for j := i + 1; j < len(states); j++ {
			require.NotEqual(t, 0, compareStates(states[i], states[j], sys.Epsilon()))
		}
	}
}
