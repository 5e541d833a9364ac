package coxeter

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Dump writes a textual listing of the root table to w, one root per line,
// capped at maxLines (0 means unbounded). This is the Go analogue of
// output_root_table from the source program. Roots are staged into an
// arraylist first (mirroring gorgo/lr/tables.go's use of arraylist.List to
// stage a CFSM's edges before rendering them) so that future renderers
// (graphviz export, HTML table) can share the staged list instead of
// re-walking the registry.
func (reg *Registry) Dump(w io.Writer, maxLines int) error {
	staged := arraylist.New()
	for _, r := range reg.roots {
		staged.Add(r)
	}

	n := staged.Size()
	if maxLines > 0 && n > maxLines {
		n = maxLines
	}
	for i := 0; i < n; i++ {
		v, _ := staged.Get(i)
		r := v.(*Root)
		minimal := " "
		if r.positiveMinimal {
			minimal = "*"
		}
		if _, err := fmt.Fprintf(w, "%3d %s %s\n", i, minimal, r.String()); err != nil {
			return err
		}
	}
	if maxLines > 0 && staged.Size() > maxLines {
		fmt.Fprintf(w, "... (%d more roots omitted)\n", staged.Size()-maxLines)
	}
	return nil
}
