package graph

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
)

// WriteDOT renders g in Graphviz DOT format. Vertices are labelled with
// their Label and arcs with a multiplicity other than one show it.
func WriteDOT(w io.Writer, g graph.Graph, name string) error {
	b, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dot: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}
