package nodelink

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/powergraph/adminviz/pkg/render"
)

func sample(opts Options) *Backend {
	b := New(opts)
	_ = b.AddNode("S", render.NodeAttrs{Label: "S", Shape: "rectangle", Fill: "#e67873"})
	_ = b.AddNode("U1", render.NodeAttrs{Label: "U1", Shape: "roundrectangle", Fill: "#17e625"})
	_ = b.AddEdge("S", "U1", render.EdgeAttrs{Color: "#17e625", Width: 2})
	_ = b.AddEdge("S", "U1", render.EdgeAttrs{Color: "#0000ff", Width: 2, Line: render.LineDotted})
	return b
}

func TestToDOT(t *testing.T) {
	dot := sample(Options{}).ToDOT()

	wants := []string{
		"digraph G {",
		"layout=circo;",
		`"S" [label="S", shape=box, style="filled", fillcolor="#e67873"];`,
		`"U1" [label="U1", shape=box, style="rounded,filled", fillcolor="#17e625"];`,
		`"S" -> "U1" [color="#17e625", penwidth=2];`,
		`"S" -> "U1" [color="#0000ff", penwidth=2, style=dotted];`,
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %s\n%s", want, dot)
		}
	}
}

func TestToDOTEngine(t *testing.T) {
	dot := sample(Options{Engine: "dot"}).ToDOT()
	if !strings.Contains(dot, "layout=dot;") {
		t.Errorf("ToDOT() should honor engine:\n%s", dot)
	}
}

func TestToDOTQuotesNames(t *testing.T) {
	b := New(Options{})
	_ = b.AddNode(`CORP\alice "admin"`, render.NodeAttrs{Label: `CORP\alice "admin"`, Shape: "roundrectangle", Fill: "#17e625"})
	dot := b.ToDOT()
	if !strings.Contains(dot, `"CORP\\alice \"admin\""`) {
		t.Errorf("node name not escaped:\n%s", dot)
	}
}

func TestFmtEdgeAttrsDashed(t *testing.T) {
	attrs := fmtEdgeAttrs(render.EdgeAttrs{Color: "#000000", Width: 1.5, Line: render.LineDashed})
	joined := strings.Join(attrs, " ")
	if !strings.Contains(joined, "style=dashed") || !strings.Contains(joined, "penwidth=1.5") {
		t.Errorf("fmtEdgeAttrs() = %v", attrs)
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"", "svg"},
		{FormatDOT, "dot"},
		{FormatPNG, "png"},
		{FormatPDF, "pdf"},
	}
	for _, tt := range tests {
		if got := New(Options{Format: tt.format}).Extension(); got != tt.want {
			t.Errorf("Extension() for %q = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestRenderDOT(t *testing.T) {
	b := sample(Options{Format: FormatDOT})
	data, err := b.Render(context.Background())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(data) != b.ToDOT() {
		t.Error("dot format should return the DOT source unchanged")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := sample(Options{Format: "bmp"}).Render(context.Background()); err == nil {
		t.Error("Render() should fail for unknown format")
	}
}

func TestPersistDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")
	if err := sample(Options{Format: FormatDOT}).Persist(context.Background(), path); err != nil {
		t.Fatalf("Persist() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph G {") {
		t.Errorf("persisted DOT = %q", data)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := sample(Options{Format: FormatSVG, Engine: "dot"}).Render(context.Background())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("Render() output missing <svg> tag")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"WS01.CORP.LOCAL", `"WS01.CORP.LOCAL"`},
		{`CORP\alice`, `"CORP\\alice"`},
		{`say "hi"`, `"say \"hi\""`},
		{"two\nlines", `"two\nlines"`},
		{"tab\there\x01", `"tab here "`},
		{"Zürich-Ä", `"Zürich-Ä"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := quote(tt.in); got != tt.want {
				t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestToDOTEscapesNames(t *testing.T) {
	b := New(Options{Format: FormatDOT})
	_ = b.AddNode(`CORP\bob`, render.NodeAttrs{Label: `CORP\bob`, Shape: "roundrectangle", Fill: "#17e625"})
	dot := b.ToDOT()
	want := `"CORP\\bob" [label="CORP\\bob"`
	if !strings.Contains(dot, want) {
		t.Errorf("ToDOT() missing %s\n%s", want, dot)
	}
	if strings.Contains(dot, `\x`) || strings.Contains(dot, `\u`) {
		t.Errorf("ToDOT() contains Go escapes:\n%s", dot)
	}
}

func TestPersistCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "graph.svg")
	err := sample(Options{Format: FormatSVG}).Persist(ctx, path)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Persist() error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("artifact written after cancellation: %v", err)
	}
}
