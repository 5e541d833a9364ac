package coxeter

import "math"

// System bundles the precomputed scalar-product and simple-action tables for
// a Coxeter matrix, together with the root registry and the derived
// positive-minimal root list. It is built once by NewSystem and is read-only
// thereafter — per §5, safe to share across goroutines once construction has
// returned. This plays the role the source program gives to its process-wide
// MATRIX_DATA and ROOT_TABLE globals (see design note in §9 of the spec:
// "group all precomputed matrices... into a single value").
type System struct {
	Matrix   *Matrix
	Registry *Registry
	Simple   []*Root // Simple[a] is the canonical simple root e_a
	Minimal  []*Root // positive-minimal roots, in discovery order (simple roots first)

	eps float64
	g   [][]float64 // scalar-product matrix: g[i][j] = ⟨e_i, e_j⟩
	act [][]float64 // simple-action table: act[i][a] = -2·g[i][a]
}

// newKernel allocates the N×N tables and fills g and act per §4.1.
func newKernel(mx *Matrix, eps float64) *System {
	n := mx.N()
	g := make([][]float64, n)
	act := make([][]float64, n)
	for i := 0; i < n; i++ {
		g[i] = make([]float64, n)
		act[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				g[i][j] = 1
				continue
			}
			mij := mx.At(i, j)
			if mij == Infinity {
				g[i][j] = -1
			} else {
				g[i][j] = -math.Cos(math.Pi / float64(mij))
			}
		}
	}
	for i := 0; i < n; i++ {
		for a := 0; a < n; a++ {
			act[i][a] = -2 * g[i][a]
		}
	}
	return &System{
		Matrix:   mx,
		Registry: NewRegistry(eps),
		eps:      eps,
		g:        g,
		act:      act,
	}
}

// ScalarProduct returns ⟨e_i, e_j⟩.
func (s *System) ScalarProduct(i, j int) float64 {
	return s.g[i][j]
}

// Epsilon returns the comparison threshold this system was built with.
func (s *System) Epsilon() float64 {
	return s.eps
}

// reflect computes the coefficients of s_a·r for the coefficient vector
// coeffs, per §4.1:
//   - if |r_i| < ε, contributes nothing;
//   - if i = a, subtracts r_a from the a-th output coefficient;
//   - else, adds r_i to the i-th output coefficient and r_i·act[i][a] to the
//     a-th output coefficient.
func (s *System) reflect(a int, coeffs []float64) []float64 {
	n := len(coeffs)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		ri := coeffs[i]
		if math.Abs(ri) < s.eps {
			continue
		}
		if i == a {
			out[a] -= ri
		} else {
			out[i] += ri
			out[a] += ri * s.act[i][a]
		}
	}
	return out
}

// dominance computes d = ⟨e_a, r⟩ = Σ_i r_i·g[i][a], the quantity the
// dominance predicate of §4.3 tests against 1.
func (s *System) dominance(a int, coeffs []float64) float64 {
	var d float64
	for i, ri := range coeffs {
		d += ri * s.g[i][a]
	}
	return d
}

// Act returns the canonical registry root equal to s_a·r, memoizing through
// r's next[a] slot. It only returns roots already present in the registry —
// for a positive-minimal r, whose every positive image was registered during
// enumeration, this is either another registered root or ok=false (meaning
// s_a·r is negative). For a registered root that is not positive-minimal,
// ok=false only means s_a·r is not registered.
// Act never registers a new root; see actOrRegister below for that.
func (s *System) Act(a int, r *Root) (*Root, bool) {
	if cached := r.next[a]; cached != nil {
		return cached, true
	}
	coeffs := s.reflect(a, r.coeffs)
	found, ok := s.Registry.find(coeffs)
	if ok {
		r.next[a] = found
		tracer().Debugf("memoized s_%d · %s = %s", a, r, found)
	}
	return found, ok
}

// actOrRegister computes s_a·r, memoizing the result and, if the result is
// not yet registered, inserting it (with its positive-minimal flag computed
// per the dominance predicate of §4.3). It reports whether the result was
// newly inserted, which the enumerator uses to decide whether to recurse.
// A negative result is neither registered nor memoized, keeping every
// registry root positive; it is reported as (nil, false).
func (s *System) actOrRegister(a int, r *Root) (result *Root, isNew bool) {
	if cached := r.next[a]; cached != nil {
		return cached, false
	}
	coeffs := s.reflect(a, r.coeffs)
	if existing, ok := s.Registry.find(coeffs); ok {
		r.next[a] = existing
		return existing, false
	}
	nr := newRoot(coeffs)
	if !nr.Positive(s.eps) {
		return nil, false
	}
	nr.positiveMinimal = nr.Positive(s.eps) && s.dominance(a, coeffs) < 1-s.eps
	canonical, inserted := s.Registry.insert(nr)
	r.next[a] = canonical
	if inserted {
		tracer().Debugf("registered root %s [sig=%s] minimal=%v", canonical, Signature(canonical, s.eps), canonical.positiveMinimal)
	}
	return canonical, inserted
}
