package automaton

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Catalog is the deduplicating state store of §4.4: a binary search tree
// keyed on the total state order, supporting insert-or-find. It is the Go
// analogue of the source program's automaton_binary_tree.c
// (add_state_to_binary_tree) and mirrors the shape of gorgo/lr/tables.go's
// CFSM.states, but uses gods' redblacktree directly instead of its treeset
// wrapper so that InsertOrFind is a genuine O(log n) comparator-keyed lookup
// rather than a linear scan over Values().
type Catalog struct {
	eps    float64
	tree   *redblacktree.Tree
	nextID int
}

func newCatalog(eps float64) *Catalog {
	c := &Catalog{eps: eps}
	c.tree = redblacktree.NewWith(func(a, b interface{}) int {
		return compareStates(a.(*State), b.(*State), c.eps)
	})
	return c
}

// InsertOrFind implements §4.4's insert_or_find contract: if a state
// comparing equal to s is already cataloged, it is returned with added=false
// (the caller should free s's shell and point its parent transition at the
// returned entry). Otherwise s is assigned a serial ID, cataloged, and
// returned with added=true (the caller should continue expanding it).
func (c *Catalog) InsertOrFind(s *State) (entry *State, added bool) {
	if v, found := c.tree.Get(s); found {
		return v.(*State), false
	}
	s.id = c.nextID
	c.nextID++
	c.tree.Put(s, s)
	return s, true
}

// Len returns the number of distinct states cataloged so far.
func (c *Catalog) Len() int {
	return c.tree.Size()
}

// States returns all cataloged states in state order.
func (c *Catalog) States() []*State {
	keys := c.tree.Keys()
	out := make([]*State, len(keys))
	for i, k := range keys {
		out[i] = k.(*State)
	}
	return out
}
