// Package nodelink renders admin graph diagrams with Graphviz.
//
// # Overview
//
// The backend accumulates nodes and edges like every other render backend,
// converts them to Graphviz DOT source at Persist time, and either writes the
// DOT text itself or lays it out and renders it through the embedded
// Graphviz build from github.com/goccy/go-graphviz:
//
//	b := nodelink.New(nodelink.Options{Format: nodelink.FormatSVG, Engine: "circo"})
//	// ... AddNode / AddEdge ...
//	err := b.Persist(ctx, "graph.svg")
//
// # Formats
//
//   - dot: DOT source, no layout (render later with any Graphviz tool)
//   - svg: laid out and rendered by Graphviz, viewBox normalized to the origin
//   - png: laid out and rendered by Graphviz
//   - pdf: SVG converted with rsvg-convert (requires librsvg)
//
// # Layout Engines
//
// Graphviz provides several layout engines via the Engine option:
//
//   - circo: Circular (default) - matches the recommended yEd layout
//   - dot: Hierarchical - follows BFS depth top to bottom
//   - neato: Spring model
//   - fdp: Force-directed
//   - twopi: Radial around the traversal root
//
// # Mapping
//
// GraphML shapes map to DOT node styles: "roundrectangle" becomes a rounded
// filled box, "rectangle" a filled box. Edge line styles map to the DOT
// "style" attribute and widths to "penwidth".
package nodelink
