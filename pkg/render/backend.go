package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LineStyle is the stroke style of an edge.
type LineStyle string

const (
	LineSolid  LineStyle = "line"
	LineDotted LineStyle = "dotted"
	LineDashed LineStyle = "dashed"
)

// NodeAttrs are the visual attributes of a diagram node.
type NodeAttrs struct {
	Label string // Display text (the node name)
	Shape string // "roundrectangle" or "rectangle"
	Fill  string // Fill color as #rrggbb
}

// EdgeAttrs are the visual attributes of a diagram edge.
type EdgeAttrs struct {
	Color string    // Stroke color as #rrggbb
	Width float64   // Stroke width in points
	Line  LineStyle // Stroke style; empty means LineSolid
}

// Backend receives a finished graph as node and edge requests and writes it
// out in a concrete diagram format.
type Backend interface {
	// AddNode inserts a node unless one with the same id exists.
	// Re-adding an existing id is a no-op and keeps the stored attributes.
	AddNode(id string, attrs NodeAttrs) error

	// AddEdge appends a directed edge between two node ids.
	AddEdge(from, to string, attrs EdgeAttrs) error

	// Persist writes the accumulated diagram to path. Backends that run
	// external renderers stop when ctx is done and write nothing.
	Persist(ctx context.Context, path string) error

	// Extension returns the output file extension without the dot.
	Extension() string
}

// DiagramNode is a node stored in a [Diagram].
type DiagramNode struct {
	ID string
	NodeAttrs
}

// DiagramEdge is an edge stored in a [Diagram].
type DiagramEdge struct {
	From string
	To   string
	EdgeAttrs
}

// Diagram is the in-memory node/edge store shared by all backends.
// Nodes keep insertion order; edges keep request order.
//
// The zero value is ready to use.
type Diagram struct {
	nodes []DiagramNode
	index map[string]int
	edges []DiagramEdge
}

// AddNode inserts the node if its id is new. It never fails.
func (d *Diagram) AddNode(id string, attrs NodeAttrs) error {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if _, ok := d.index[id]; ok {
		return nil
	}
	d.index[id] = len(d.nodes)
	d.nodes = append(d.nodes, DiagramNode{ID: id, NodeAttrs: attrs})
	return nil
}

// AddEdge appends the edge. Both endpoints must already be nodes.
func (d *Diagram) AddEdge(from, to string, attrs EdgeAttrs) error {
	if _, ok := d.index[from]; !ok {
		return fmt.Errorf("edge %s->%s: unknown source node", from, to)
	}
	if _, ok := d.index[to]; !ok {
		return fmt.Errorf("edge %s->%s: unknown target node", from, to)
	}
	if attrs.Line == "" {
		attrs.Line = LineSolid
	}
	d.edges = append(d.edges, DiagramEdge{From: from, To: to, EdgeAttrs: attrs})
	return nil
}

// Node returns the stored node for id.
func (d *Diagram) Node(id string) (DiagramNode, bool) {
	i, ok := d.index[id]
	if !ok {
		return DiagramNode{}, false
	}
	return d.nodes[i], true
}

// Nodes returns the stored nodes in insertion order.
func (d *Diagram) Nodes() []DiagramNode { return d.nodes }

// Edges returns the stored edges in request order.
func (d *Diagram) Edges() []DiagramEdge { return d.edges }

// WriteFile writes data to path in one call, creating the parent directory
// if needed. Backends use it from Persist.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
