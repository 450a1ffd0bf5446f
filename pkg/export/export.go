// Package export drives a render backend from a finished admin graph.
//
// [Export] emits, in this order:
//
//  1. every node of the graph, in first-seen order
//  2. for every node and each of its neighbors: the neighbor node (a no-op
//     when it already exists) and a structural edge colored with the
//     neighbor's category color
//  3. for every consecutive pair on the path: a dotted overlay edge
//  4. Persist to the output path, unless ctx is already done
//
// Neighbor references are validated before the first backend call, so an
// unresolved reference never produces a partial diagram.
package export

import (
	"context"
	"fmt"

	"github.com/powergraph/adminviz/pkg/graph"
	"github.com/powergraph/adminviz/pkg/render"
)

// Edge styling.
const (
	// EdgeWidth is the stroke width of structural and overlay edges.
	EdgeWidth = 2.0
	// OverlayColor is the color of the path overlay edges.
	OverlayColor = "#0000ff"
	// OverlayLine is the stroke style of the path overlay edges.
	OverlayLine = render.LineDotted
)

// Summary describes what Export sent to the backend.
type Summary struct {
	Nodes           int    // Distinct nodes in the graph
	StructuralEdges int    // Session and admin edges
	OverlayEdges    int    // Path highlight edges
	Output          string // Path passed to Persist
}

// Export sends g and path to b and persists the result to output.
// ctx is checked before Persist and passed on to the backend.
func Export(ctx context.Context, g *graph.Graph, path graph.Path, b render.Backend, output string) (Summary, error) {
	if err := g.Validate(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Nodes: g.Len(), Output: output}

	for _, n := range g.Nodes() {
		if err := addNode(b, n); err != nil {
			return Summary{}, err
		}
	}

	for _, n := range g.Nodes() {
		for _, name := range n.Neighbors {
			nb, err := g.Resolve(name)
			if err != nil {
				return Summary{}, err
			}
			if err := addNode(b, nb); err != nil {
				return Summary{}, err
			}
			attrs := render.EdgeAttrs{Color: nb.Color(), Width: EdgeWidth, Line: render.LineSolid}
			if err := b.AddEdge(n.Name, nb.Name, attrs); err != nil {
				return Summary{}, fmt.Errorf("edge %s->%s: %w", n.Name, nb.Name, err)
			}
			sum.StructuralEdges++
		}
	}

	for _, hop := range path.Hops() {
		attrs := render.EdgeAttrs{Color: OverlayColor, Width: EdgeWidth, Line: OverlayLine}
		if err := b.AddEdge(hop.From, hop.To, attrs); err != nil {
			return Summary{}, fmt.Errorf("path edge %s->%s: %w", hop.From, hop.To, err)
		}
		sum.OverlayEdges++
	}

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	if err := b.Persist(ctx, output); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

func addNode(b render.Backend, n graph.Node) error {
	attrs := render.NodeAttrs{Label: n.Name, Shape: n.Shape(), Fill: n.Color()}
	if err := b.AddNode(n.Name, attrs); err != nil {
		return fmt.Errorf("node %s: %w", n.Name, err)
	}
	return nil
}
