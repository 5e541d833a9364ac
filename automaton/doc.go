/*
Package automaton builds the Brink–Howlett short-lex automaton for a Coxeter
group on top of the positive-minimal root set computed by package coxeter,
and reduces words against it.

A State is a set of minimal roots — the ones sent negative by some word
prefix. States are cataloged in a binary-search-tree keyed on the total
state order of §3 (by cardinality, then lexicographic root sequence), and the
state graph is built depth-first starting from the initial (empty) state.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'automaton.builder'.
func tracer() tracing.Trace {
	return tracing.Select("automaton.builder")
}
