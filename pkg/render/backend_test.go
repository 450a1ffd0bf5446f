package render

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiagramAddNodeIdempotent(t *testing.T) {
	var d Diagram
	first := NodeAttrs{Label: "WS01", Shape: "rectangle", Fill: "#e67873"}

	if err := d.AddNode("WS01", first); err != nil {
		t.Fatalf("AddNode() error: %v", err)
	}
	if err := d.AddNode("WS01", NodeAttrs{Label: "other", Shape: "roundrectangle", Fill: "#17e625"}); err != nil {
		t.Fatalf("duplicate AddNode() should not fail: %v", err)
	}

	if len(d.Nodes()) != 1 {
		t.Fatalf("Nodes() = %d, want 1", len(d.Nodes()))
	}
	got, ok := d.Node("WS01")
	if !ok {
		t.Fatal("Node(WS01) not found")
	}
	if got.NodeAttrs != first {
		t.Errorf("attrs changed on duplicate add: %+v", got.NodeAttrs)
	}
}

func TestDiagramNodeOrder(t *testing.T) {
	var d Diagram
	for _, id := range []string{"c", "a", "c", "b"} {
		_ = d.AddNode(id, NodeAttrs{Label: id})
	}
	var ids []string
	for _, n := range d.Nodes() {
		ids = append(ids, n.ID)
	}
	if len(ids) != 3 || ids[0] != "c" || ids[1] != "a" || ids[2] != "b" {
		t.Errorf("node order = %v, want [c a b]", ids)
	}
}

func TestDiagramAddEdge(t *testing.T) {
	var d Diagram
	_ = d.AddNode("a", NodeAttrs{})
	_ = d.AddNode("b", NodeAttrs{})

	if err := d.AddEdge("a", "b", EdgeAttrs{Color: "#17e625", Width: 2}); err != nil {
		t.Fatalf("AddEdge() error: %v", err)
	}
	if err := d.AddEdge("a", "b", EdgeAttrs{Color: "#0000ff", Width: 2, Line: LineDotted}); err != nil {
		t.Fatalf("parallel AddEdge() error: %v", err)
	}

	edges := d.Edges()
	if len(edges) != 2 {
		t.Fatalf("Edges() = %d, want 2", len(edges))
	}
	if edges[0].Line != LineSolid {
		t.Errorf("default line = %q, want %q", edges[0].Line, LineSolid)
	}
	if edges[1].Line != LineDotted {
		t.Errorf("line = %q, want %q", edges[1].Line, LineDotted)
	}
}

func TestDiagramAddEdgeUnknownNode(t *testing.T) {
	var d Diagram
	_ = d.AddNode("a", NodeAttrs{})

	if err := d.AddEdge("a", "x", EdgeAttrs{}); err == nil {
		t.Error("AddEdge() to unknown target should fail")
	}
	if err := d.AddEdge("x", "a", EdgeAttrs{}); err == nil {
		t.Error("AddEdge() from unknown source should fail")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "graph.txt")
	if err := WriteFile(path, []byte("data")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "data" {
		t.Errorf("content = %q", got)
	}
}
