/*
Package coxeter computes the positive-minimal (dominance-minimal) root system
of a finitely-presented Coxeter group from its Coxeter matrix.

Given a symmetric integer matrix M with m[i][i]=1 and m[i][j]≥2 (or 0 for ∞),
package coxeter fills the scalar-product and simple-reflection-action tables
for the geometric representation, then enumerates the (finite, by
Brink–Howlett) set of positive roots that dominate no simple root. Package
automaton builds the short-lex recognizer on top of this root set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package coxeter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'coxeter.kernel'.
func tracer() tracing.Trace {
	return tracing.Select("coxeter.kernel")
}
