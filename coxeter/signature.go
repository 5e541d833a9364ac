package coxeter

import (
	"math"

	"github.com/cnf/structhash"
)

// roundedCoeffs is a hashable stand-in for a Root's coefficient vector: raw
// float64s hash unstably across equal-but-not-identical bit patterns, so we
// round to the comparison epsilon's resolution before hashing.
type roundedCoeffs struct {
	Coeffs []int64
}

// Signature returns a stable hash of r's coefficients, rounded to the given
// epsilon's resolution. It is used only for trace/debug output (e.g. to spot
// near-duplicate roots while developing a new matrix) — it is never used for
// root identity, which stays the ε-equality comparator of §3.
func Signature(r *Root, eps float64) string {
	scale := 1.0 / eps
	rc := roundedCoeffs{Coeffs: make([]int64, len(r.coeffs))}
	for i, c := range r.coeffs {
		rc.Coeffs[i] = int64(math.Round(c * scale))
	}
	hash, err := structhash.Hash(rc, 1)
	if err != nil {
		return "sig:error"
	}
	return hash
}
