package jsonsink

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/powergraph/adminviz/pkg/render"
)

func TestMarshal(t *testing.T) {
	b := New()
	_ = b.AddNode("S", render.NodeAttrs{Label: "S", Shape: "rectangle", Fill: "#e67873"})
	_ = b.AddNode("U1", render.NodeAttrs{Label: "U1", Shape: "roundrectangle", Fill: "#17e625"})
	_ = b.AddNode("S", render.NodeAttrs{Label: "dup"})
	_ = b.AddEdge("S", "U1", render.EdgeAttrs{Color: "#17e625", Width: 2})
	_ = b.AddEdge("S", "U1", render.EdgeAttrs{Color: "#0000ff", Width: 2, Line: render.LineDotted})

	data, err := b.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var got document
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(got.Nodes))
	}
	if got.Nodes[0].Label != "S" {
		t.Errorf("duplicate AddNode changed label to %q", got.Nodes[0].Label)
	}
	if len(got.Edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(got.Edges))
	}
	if got.Edges[0].Line != "line" || got.Edges[1].Line != "dotted" {
		t.Errorf("edge lines = %q, %q", got.Edges[0].Line, got.Edges[1].Line)
	}
}

func TestMarshalEmpty(t *testing.T) {
	data, err := New().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var got map[string][]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["nodes"] == nil || got["edges"] == nil {
		t.Errorf("empty document should have empty arrays, got %s", data)
	}
}

func TestPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := New().Persist(context.Background(), path); err != nil {
		t.Fatalf("Persist() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output not written: %v", err)
	}
}
