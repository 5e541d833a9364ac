package automaton

import (
	"errors"

	"github.com/coxctl/braid/coxeter"
)

// ErrStateCap is returned by Build when construction would catalog more than
// the configured maximum number of states — a guard against a malformed
// matrix producing an ill-formed (non-finite) state space, per §4.5/§9.
var ErrStateCap = errors.New("automaton: state count exceeded configured cap")

// Graph is the constructed automaton: a System's root space, the catalog of
// all distinct states reached, and the initial state.
type Graph struct {
	System  *coxeter.System
	Catalog *Catalog
	Initial *State
}

// States returns every cataloged state, in state order.
func (g *Graph) States() []*State {
	return g.Catalog.States()
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	maxStates int
}

// WithMaxStates caps the number of distinct states Build will catalog before
// aborting with ErrStateCap. 0 (the default) means unbounded.
func WithMaxStates(n int) BuildOption {
	return func(o *buildOptions) { o.maxStates = n }
}

// Build constructs the state graph for sys per §4.5: starting from the
// initial (empty) state, depth-first, expanding all of a newly-added state's
// transitions before returning to its caller.
func Build(sys *coxeter.System, opts ...BuildOption) (*Graph, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	b := &builder{
		system:    sys,
		catalog:   newCatalog(sys.Epsilon()),
		n:         sys.Matrix.N(),
		eps:       sys.Epsilon(),
		maxStates: o.maxStates,
	}
	initial, _ := b.catalog.InsertOrFind(newState(b.n))
	if err := b.expand(initial); err != nil {
		return nil, err
	}
	tracer().Infof("built automaton with %d states", b.catalog.Len())
	return &Graph{System: sys, Catalog: b.catalog, Initial: initial}, nil
}

type builder struct {
	system    *coxeter.System
	catalog   *Catalog
	n         int
	eps       float64
	maxStates int
}

// expand fills in u.next[a] for every generator a, recursing into any
// newly-cataloged successor before moving to the next generator — the DFS
// order mandated by §4.5, iterating generators in index order 0..N-1.
func (b *builder) expand(u *State) error {
	for a := 0; a < b.n; a++ {
		simple := b.system.Simple[a]
		if containsRoot(u.roots, simple, b.eps) {
			// §4.5 step 1 / §3 invariant: s_a already sent negative ⇒ reject.
			u.next[a] = Reject
			continue
		}

		var roots []*coxeter.Root
		for _, r := range u.roots {
			result, ok := b.system.Act(a, r)
			if !ok {
				// s_a·r is negative; excluded from the successor (§3 invariant 2).
				continue
			}
			if result.PositiveMinimal() {
				roots = insertRoot(roots, result, b.eps)
			}
		}
		roots = insertRoot(roots, simple, b.eps)

		v := &State{roots: roots, next: make([]*State, b.n)}
		entry, added := b.catalog.InsertOrFind(v)
		if b.maxStates > 0 && b.catalog.Len() > b.maxStates {
			return ErrStateCap
		}
		u.next[a] = entry

		if added {
			tracer().Debugf("state %d --%d--> new state %d (%d roots)", u.id, a, entry.id, entry.Len())
			if err := b.expand(entry); err != nil {
				return err
			}
		} else {
			tracer().Debugf("state %d --%d--> existing state %d", u.id, a, entry.id)
		}
	}
	return nil
}
