package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-graphviz"

	"github.com/powergraph/adminviz/pkg/render"
)

// Output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// DefaultEngine is the layout engine used when none is set.
const DefaultEngine = "circo"

// ValidEngines is the set of supported Graphviz layout engines.
var ValidEngines = map[string]bool{
	"circo": true,
	"dot":   true,
	"neato": true,
	"fdp":   true,
	"sfdp":  true,
	"twopi": true,
}

// Options configures the Graphviz backend.
type Options struct {
	// Format is one of FormatDOT, FormatSVG, FormatPNG or FormatPDF.
	Format string
	// Engine is the Graphviz layout engine. Empty means DefaultEngine.
	Engine string
}

// Backend accumulates nodes and edges and renders them with Graphviz.
type Backend struct {
	render.Diagram
	opts Options
}

// New creates a Graphviz backend. An empty format selects SVG.
func New(opts Options) *Backend {
	if opts.Format == "" {
		opts.Format = FormatSVG
	}
	if opts.Engine == "" {
		opts.Engine = DefaultEngine
	}
	return &Backend{opts: opts}
}

// Extension implements render.Backend.
func (b *Backend) Extension() string { return b.opts.Format }

// Persist implements render.Backend.
func (b *Backend) Persist(ctx context.Context, path string) error {
	data, err := b.Render(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return render.WriteFile(path, data)
}

// Render returns the diagram in the configured format.
func (b *Backend) Render(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dot := b.ToDOT()
	switch b.opts.Format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		svg, err := renderGraphviz(ctx, dot, b.opts.Engine, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return normalizeViewBox(svg), nil
	case FormatPNG:
		return renderGraphviz(ctx, dot, b.opts.Engine, graphviz.PNG)
	case FormatPDF:
		svg, err := renderGraphviz(ctx, dot, b.opts.Engine, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, svg)
	default:
		return nil, fmt.Errorf("unknown format: %s", b.opts.Format)
	}
}

// ToDOT converts the accumulated diagram to Graphviz DOT source.
func (b *Backend) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", b.opts.Engine)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range b.Nodes() {
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(n.ID), strings.Join(fmtNodeAttrs(n.NodeAttrs), ", "))
	}

	buf.WriteString("\n")
	for _, e := range b.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", quote(e.From), quote(e.To), strings.Join(fmtEdgeAttrs(e.EdgeAttrs), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtNodeAttrs(a render.NodeAttrs) []string {
	style := "filled"
	if a.Shape == "roundrectangle" {
		style = "rounded,filled"
	}
	return []string{
		"label=" + quote(a.Label),
		"shape=box",
		"style=" + quote(style),
		"fillcolor=" + quote(a.Fill),
	}
}

func fmtEdgeAttrs(a render.EdgeAttrs) []string {
	attrs := []string{
		"color=" + quote(a.Color),
		"penwidth=" + strconv.FormatFloat(a.Width, 'f', -1, 64),
	}
	switch a.Line {
	case render.LineDotted:
		attrs = append(attrs, "style=dotted")
	case render.LineDashed:
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// quote returns s as a DOT double-quoted string. Newlines become the \n
// line break; other control characters become spaces.
func quote(s string) string {
	s = dotEscaper.Replace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return `"` + s + `"`
}

func renderGraphviz(ctx context.Context, dot, engine string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(engine))

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox moves the SVG viewBox to the origin and sets explicit
// pixel dimensions so browsers size the image consistently.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
