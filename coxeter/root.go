package coxeter

import (
	"fmt"
	"math"
	"strings"
)

// DefaultEpsilon is the coefficient-comparison threshold used throughout this
// package and package automaton, matching EPSILON_COMP_VAL from the source
// program.
const DefaultEpsilon = 1e-5

// Root is a vector in the geometric representation, expressed by its N
// coefficients. Roots are owned by a Registry for the lifetime of a System;
// all other references to a Root (state root-lists, memo slots) are
// non-owning.
type Root struct {
	coeffs []float64
	next   []*Root // memo: next[a] is the canonical root equal to s_a·r, once known
	// positiveMinimal is true iff this root is positive and dominates no
	// simple root (the dominance test of §4.3). Set once, at registration.
	positiveMinimal bool
}

func newRoot(coeffs []float64) *Root {
	return &Root{
		coeffs: coeffs,
		next:   make([]*Root, len(coeffs)),
	}
}

// Coeffs returns the root's coefficient vector. Callers must not mutate it.
func (r *Root) Coeffs() []float64 {
	return r.coeffs
}

// PositiveMinimal reports whether r is a positive-minimal (dominance-minimal)
// root, per §4.3. Roots that dominate a simple root are still stored (the
// memo needs them) but are excluded from automaton state construction.
func (r *Root) PositiveMinimal() bool {
	return r.positiveMinimal
}

// Positive reports whether r's first non-zero coefficient (under eps) is
// positive. The source asserts the zero vector never reaches this test; we
// keep that assumption (no simple root or generated root is ever all-zero).
func (r *Root) Positive(eps float64) bool {
	for _, c := range r.coeffs {
		if math.Abs(c) >= eps {
			return c > 0
		}
	}
	return false
}

func (r *Root) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range r.coeffs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.4f", c)
	}
	b.WriteByte(')')
	return b.String()
}

// CompareRoots exposes the lexicographic root order of §3 for consumers
// (package automaton's state order is built on top of it).
func CompareRoots(a, b *Root, eps float64) int {
	return compareCoeffs(a.coeffs, b.coeffs, eps)
}

// compareCoeffs implements the lexicographic root order of §3: the first
// coefficient index at which a and b differ by ≥ eps decides; otherwise the
// vectors are equal.
func compareCoeffs(a, b []float64, eps float64) int {
	for i := range a {
		d := a[i] - b[i]
		if math.Abs(d) >= eps {
			if d < 0 {
				return -1
			}
			return 1
		}
	}
	return 0
}
