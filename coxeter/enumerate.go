package coxeter

import "errors"

// ErrRootCap is returned by NewSystem when enumeration would register more
// than the configured MaxRoots, the Go analogue of the out-of-memory abort
// path of §4.3/§7 — a configurable guard against a malformed matrix that
// would otherwise produce an infinite root system.
var ErrRootCap = errors.New("coxeter: root count exceeded configured cap")

// Option configures NewSystem.
type Option func(*systemOptions)

type systemOptions struct {
	eps     float64
	maxRoot int // 0 means unbounded
}

// WithEpsilon overrides DefaultEpsilon for coefficient comparisons.
func WithEpsilon(eps float64) Option {
	return func(o *systemOptions) { o.eps = eps }
}

// WithMaxRoots caps the number of roots the enumerator will register before
// aborting with ErrRootCap. 0 (the default) means unbounded.
func WithMaxRoots(n int) Option {
	return func(o *systemOptions) { o.maxRoot = n }
}

// NewSystem builds the coefficient kernel for mx and enumerates its
// positive-minimal root set (§4.1–§4.3). The returned System is fully
// constructed and read-only.
func NewSystem(mx *Matrix, opts ...Option) (*System, error) {
	o := systemOptions{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	s := newKernel(mx, o.eps)
	if err := s.enumerate(o.maxRoot); err != nil {
		return nil, err
	}
	return s, nil
}

// enumerate implements §4.3's algorithm: register each simple root (adding it
// to the minimal-root list), then explore s_a·r breadth-first for every
// minimal root r and generator a, registering every positive root reached
// (to populate the memo) but expanding only the positive-minimal ones.
func (s *System) enumerate(maxRoots int) error {
	n := s.Matrix.N()
	s.Simple = make([]*Root, n)
	for a := 0; a < n; a++ {
		coeffs := make([]float64, n)
		coeffs[a] = 1
		if existing, ok := s.Registry.find(coeffs); ok {
			// Duplicate generators (m[i][j] collapsing two indices to the
			// same simple root) are possible only under a malformed matrix;
			// the source program guards the same case.
			s.Simple[a] = existing
			continue
		}
		r := newRoot(coeffs)
		r.positiveMinimal = true
		canonical, _ := s.Registry.insert(r)
		s.Simple[a] = canonical
		s.Minimal = append(s.Minimal, canonical)
	}
	if maxRoots > 0 && s.Registry.Len() > maxRoots {
		return ErrRootCap
	}

	// Breadth-first walk over the minimal-root worklist. s.Minimal grows as we go; ranging
	// by index (not range, which snapshots length) lets newly-appended
	// minimal roots be visited in the same pass.
	for i := 0; i < len(s.Minimal); i++ {
		r := s.Minimal[i]
		for a := 0; a < n; a++ {
			result, isNew := s.actOrRegister(a, r)
			if maxRoots > 0 && s.Registry.Len() > maxRoots {
				return ErrRootCap
			}
			if isNew && result.positiveMinimal {
				s.Minimal = append(s.Minimal, result)
			}
		}
	}
	tracer().Infof("enumerated %d roots, %d positive-minimal", s.Registry.Len(), len(s.Minimal))
	return nil
}
