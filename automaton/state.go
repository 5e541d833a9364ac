package automaton

import "github.com/coxctl/braid/coxeter"

// Reject is the distinguished sentinel for State.Next: it means applying the
// queried generator at this state would produce a non-reduced word. It
// carries no roots and compares unequal to every real state by identity.
var Reject = &State{}

// State is a node of the automaton's state graph: an ordered, duplicate-free
// list of minimal roots (the roots sent negative by some word prefix), plus
// one transition per generator.
type State struct {
	id    int
	roots []*coxeter.Root // kept sorted by the root lexicographic order
	next  []*State        // next[a] is either another *State or Reject
}

func newState(numGenerators int) *State {
	return &State{next: make([]*State, numGenerators)}
}

// ID is a stable serial number assigned when the state was first cataloged.
func (st *State) ID() int {
	return st.id
}

// Roots returns the state's root list in lexicographic order. Callers must
// not mutate the returned slice.
func (st *State) Roots() []*coxeter.Root {
	return st.roots
}

// Len returns the cardinality of the state's root list.
func (st *State) Len() int {
	return len(st.roots)
}

// Next returns the transition on generator a: another *State, or Reject.
func (st *State) Next(a int) *State {
	return st.next[a]
}

// IsReject reports whether st is the distinguished reject sentinel.
func (st *State) IsReject() bool {
	return st == Reject
}

// compareStates implements the total state order of §3: the state with more
// roots is greater; equal-cardinality states compare root sequences in
// parallel, the first differing pair (by root order) deciding.
func compareStates(u, v *State, eps float64) int {
	if len(u.roots) != len(v.roots) {
		if len(u.roots) < len(v.roots) {
			return -1
		}
		return 1
	}
	for i := range u.roots {
		if c := coxeter.CompareRoots(u.roots[i], v.roots[i], eps); c != 0 {
			return c
		}
	}
	return 0
}

// insertRoot inserts r into a sorted root list, dropping r silently if an
// equal root is already present (§4.5: "duplicates ... are silently
// dropped").
func insertRoot(roots []*coxeter.Root, r *coxeter.Root, eps float64) []*coxeter.Root {
	lo, hi := 0, len(roots)
	for lo < hi {
		mid := (lo + hi) / 2
		if coxeter.CompareRoots(roots[mid], r, eps) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(roots) && coxeter.CompareRoots(roots[lo], r, eps) == 0 {
		return roots
	}
	roots = append(roots, nil)
	copy(roots[lo+1:], roots[lo:])
	roots[lo] = r
	return roots
}

// containsRoot reports whether r is present in a sorted root list, via
// binary search (the root-registry lookup of §4.5 step 1's reject test).
func containsRoot(roots []*coxeter.Root, r *coxeter.Root, eps float64) bool {
	lo, hi := 0, len(roots)
	for lo < hi {
		mid := (lo + hi) / 2
		c := coxeter.CompareRoots(roots[mid], r, eps)
		if c == 0 {
			return true
		}
		if c < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return false
}
