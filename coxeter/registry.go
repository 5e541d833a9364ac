package coxeter

// Registry is the canonical, lexicographically ordered store of roots for a
// single System. It is purely additive: no root is ever removed once
// inserted. All roots in a Registry are positive (§3 invariant 1).
type Registry struct {
	eps   float64
	roots []*Root // ordered by compareCoeffs
}

// NewRegistry creates an empty registry using the given epsilon for
// coefficient comparisons.
func NewRegistry(eps float64) *Registry {
	return &Registry{eps: eps}
}

// Len returns the number of roots currently registered.
func (reg *Registry) Len() int {
	return len(reg.roots)
}

// find performs the linear scan described in §4.2, terminating early once it
// passes the point where an equal root would sort.
func (reg *Registry) find(coeffs []float64) (*Root, bool) {
	for _, r := range reg.roots {
		c := compareCoeffs(coeffs, r.coeffs, reg.eps)
		if c == 0 {
			return r, true
		}
		if c < 0 {
			break // roots are ordered; nothing further can match
		}
	}
	return nil, false
}

// Find looks up a root by coefficient vector without registering it.
func (reg *Registry) Find(coeffs []float64) (*Root, bool) {
	return reg.find(coeffs)
}

// Insert registers a root with the given coefficients (treated as positive
// by construction — this is a low-level constructor for callers outside the
// enumerator, such as tests). It reports added=false and the existing
// canonical root if an equal root is already registered.
func (reg *Registry) Insert(coeffs []float64) (root *Root, added bool) {
	return reg.insert(newRoot(coeffs))
}

// insert performs the ordered insertion of §4.2. It reports "already exists"
// (ok=false) if an equal root is already registered; the caller owns the
// rejected candidate (under Go's GC this just means discarding it).
func (reg *Registry) insert(r *Root) (*Root, bool) {
	lo, hi := 0, len(reg.roots)
	for lo < hi {
		mid := (lo + hi) / 2
		if compareCoeffs(reg.roots[mid].coeffs, r.coeffs, reg.eps) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(reg.roots) && compareCoeffs(reg.roots[lo].coeffs, r.coeffs, reg.eps) == 0 {
		return reg.roots[lo], false
	}
	reg.roots = append(reg.roots, nil)
	copy(reg.roots[lo+1:], reg.roots[lo:])
	reg.roots[lo] = r
	return r, true
}

// Iter returns the roots in registry (lexicographic) order. The returned
// slice must not be mutated.
func (reg *Registry) Iter() []*Root {
	return reg.roots
}

