package graph

import (
	apperr "github.com/powergraph/adminviz/pkg/errors"
)

// Graph maps node names to records, iterating in first-seen order.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes map[string]*Node
	order []string
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Put inserts n, replacing any record with the same name entirely.
// A replaced record keeps its original iteration position.
// It reports whether a record was replaced.
func (g *Graph) Put(n Node) bool {
	if existing, ok := g.nodes[n.Name]; ok {
		*existing = n
		return true
	}
	node := n
	g.nodes[n.Name] = &node
	g.order = append(g.order, n.Name)
	return false
}

// Node returns the record for name.
func (g *Graph) Node(name string) (Node, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Has reports whether name has its own record.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Resolve returns the record a neighbor reference points at.
// It returns an UNRESOLVED_NODE error if the name never appeared as a record.
func (g *Graph) Resolve(name string) (Node, error) {
	n, ok := g.Node(name)
	if !ok {
		return Node{}, apperr.New(apperr.ErrCodeUnresolvedNode, "node %q is referenced as a neighbor but has no record", name)
	}
	return n, nil
}

// Nodes returns all records in first-seen order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.order))
	for i, name := range g.order {
		out[i] = *g.nodes[name]
	}
	return out
}

// Names returns all node names in first-seen order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of records.
func (g *Graph) Len() int { return len(g.order) }

// Edges returns the structural edges in node order, then neighbor order.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, name := range g.order {
		for _, nb := range g.nodes[name].Neighbors {
			out = append(out, Edge{From: name, To: nb})
		}
	}
	return out
}

// EdgeCount returns the number of structural edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, n := range g.nodes {
		count += len(n.Neighbors)
	}
	return count
}

// Unresolved returns neighbor references that have no record of their own,
// each listed once in order of first reference.
func (g *Graph) Unresolved() []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range g.order {
		for _, nb := range g.nodes[name].Neighbors {
			if g.Has(nb) || seen[nb] {
				continue
			}
			seen[nb] = true
			out = append(out, nb)
		}
	}
	return out
}

// AddPlaceholders synthesizes a host-category record for every unresolved
// neighbor reference and returns the names that were added.
func (g *Graph) AddPlaceholders() []string {
	missing := g.Unresolved()
	for _, name := range missing {
		g.Put(Node{Name: name, Placeholder: true})
	}
	return missing
}

// Validate checks that every neighbor reference resolves to a record.
func (g *Graph) Validate() error {
	if missing := g.Unresolved(); len(missing) > 0 {
		return g.resolveErr(missing)
	}
	return nil
}

func (g *Graph) resolveErr(missing []string) error {
	if len(missing) == 1 {
		_, err := g.Resolve(missing[0])
		return err
	}
	return apperr.New(apperr.ErrCodeUnresolvedNode, "%d neighbor references have no record (first: %q)", len(missing), missing[0])
}
