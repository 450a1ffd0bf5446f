// Package render defines the rendering backend contract for admin graph diagrams.
//
// # Overview
//
// The graph model never talks to a diagram format directly. It drives a
// [Backend] through four operations:
//
//   - AddNode: insert a node if its id is not present yet
//   - AddEdge: append a directed edge with color, width and line style
//   - Persist: write the finished diagram to a file
//   - Extension: the file extension used to name the output
//
// Adding a node whose id already exists is a no-op, never an error, and
// never changes the stored attributes. The same host is legitimately reached
// from many edges, so callers re-request nodes freely.
//
// # Backends
//
//   - [graphml]: yEd GraphML, the default (open in yEd, then Layout → Circular)
//   - [nodelink]: Graphviz DOT source, or SVG/PNG/PDF rendered through Graphviz
//   - [jsonsink]: Plain JSON node/edge document for other tooling
//
// All backends embed a [Diagram], which holds the insert-if-absent node set
// and the ordered edge list, and serialize it in Persist. Output is built in
// memory and written with a single call, so a failed run leaves no partial
// file behind.
//
// # Format Conversion
//
// [ToPDF] converts SVG to PDF with the external rsvg-convert tool (librsvg).
//
// [graphml]: github.com/powergraph/adminviz/pkg/render/graphml
// [nodelink]: github.com/powergraph/adminviz/pkg/render/nodelink
// [jsonsink]: github.com/powergraph/adminviz/pkg/render/jsonsink
package render
