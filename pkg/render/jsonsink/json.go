// Package jsonsink writes admin graph diagrams as a plain JSON document.
//
// The document lists nodes and edges with their visual attributes:
//
//	{
//	  "nodes": [{"id": "S", "label": "S", "shape": "rectangle", "fill": "#e67873"}],
//	  "edges": [{"from": "S", "to": "W1", "color": "#e67873", "width": 2, "line": "line"}]
//	}
//
// Edges appear in request order, so structural edges precede the path
// overlay edges (those with line "dotted").
package jsonsink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/powergraph/adminviz/pkg/render"
)

// Extension is the file extension of JSON output.
const Extension = "json"

type document struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Shape string `json:"shape"`
	Fill  string `json:"fill"`
}

type edge struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Line  string  `json:"line"`
}

// Backend accumulates nodes and edges and writes them as JSON.
type Backend struct {
	render.Diagram
}

// New creates a JSON backend.
func New() *Backend { return &Backend{} }

// Extension implements render.Backend.
func (b *Backend) Extension() string { return Extension }

// Persist implements render.Backend.
func (b *Backend) Persist(_ context.Context, path string) error {
	data, err := b.Marshal()
	if err != nil {
		return err
	}
	return render.WriteFile(path, data)
}

// Marshal returns the indented JSON document.
func (b *Backend) Marshal() ([]byte, error) {
	out := document{
		Nodes: make([]node, 0, len(b.Nodes())),
		Edges: make([]edge, 0, len(b.Edges())),
	}
	for _, n := range b.Nodes() {
		out.Nodes = append(out.Nodes, node{ID: n.ID, Label: n.Label, Shape: n.Shape, Fill: n.Fill})
	}
	for _, e := range b.Edges() {
		out.Edges = append(out.Edges, edge{From: e.From, To: e.To, Color: e.Color, Width: e.Width, Line: string(e.Line)})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}
