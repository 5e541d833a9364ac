package automaton

import (
	"errors"
	"fmt"
)

// ErrInvalidGenerator is returned by Reduce when a word contains a generator
// index outside the group's range.
var ErrInvalidGenerator = errors.New("automaton: generator index out of range")

// ReduceResult is the outcome of classifying a word against the automaton.
// Per §4.6, the reducer only classifies — it never produces a reduced form.
type ReduceResult struct {
	Reduced bool
	// Position is the 1-based index of the first symbol that rejects.
	// Zero when Reduced is true.
	Position int
}

// Reduce walks the automaton from its initial state, one generator index at
// a time. It returns not-reduced at the first transition that rejects,
// reporting the offending symbol's 1-based position; otherwise reduced.
func (g *Graph) Reduce(word []int) (ReduceResult, error) {
	state := g.Initial
	n := len(state.next)
	for i, a := range word {
		if a < 0 || a >= n {
			return ReduceResult{}, fmt.Errorf("%w: %d at position %d", ErrInvalidGenerator, a, i+1)
		}
		next := state.Next(a)
		if next.IsReject() {
			return ReduceResult{Reduced: false, Position: i + 1}, nil
		}
		state = next
	}
	return ReduceResult{Reduced: true}, nil
}
