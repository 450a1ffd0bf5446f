// Package pkg provides the core libraries for adminviz.
//
// # Overview
//
// adminviz turns the output of a derivative local admin traversal (a
// breadth-first walk from a starting host through local administrator
// sessions) into a diagram that a graph editor or image viewer can open.
// The pkg directory is organized by pipeline stage:
//
//  1. [io] - Read the traversal CSV row by row
//  2. [graph] - Node store and overlay path reconstruction
//  3. [export] - Drive a rendering backend in a fixed call order
//  4. [render] - Backends (GraphML, Graphviz, JSON)
//  5. [pipeline] - Orchestration (parse → build → export)
//
// # Architecture
//
// The data flow through adminviz:
//
//	traversal.csv
//	     ↓
//	[io] package (one graph.Node per row)
//	     ↓
//	[graph] package (Builder: last write wins, path in the same pass)
//	     ↓
//	[export] package (nodes, structural edges, overlay edges)
//	     ↓
//	[render] backend → .graphml / .dot / .svg / .png / .pdf / .json
//
// # Quick Start
//
// Read a traversal and write a yEd diagram:
//
//	import (
//	    "context"
//	    "github.com/powergraph/adminviz/pkg/export"
//	    "github.com/powergraph/adminviz/pkg/graph"
//	    "github.com/powergraph/adminviz/pkg/io"
//	    "github.com/powergraph/adminviz/pkg/render/graphml"
//	)
//
//	// 1. Stream rows into a builder
//	ctx := context.Background()
//	b := graph.NewBuilder(graph.BuildOptions{})
//	err := io.ImportCSV(ctx, "traversal.csv", func(n graph.Node) error {
//	    b.Add(n)
//	    return nil
//	})
//
//	// 2. Finish the graph and the overlay path
//	g, path, err := b.Build()
//
//	// 3. Export to a backend
//	summary, err := export.Export(ctx, g, path, graphml.New(), "traversal.graphml")
//
// The [pipeline] package wraps these steps with option defaults, output
// naming, logging and [observability] hooks.
//
// # Main Packages
//
// [graph] - Node records, host/user categories with their shapes and
// colors, and two path reconstructions: the distance run (default) and the
// predecessor chain.
//
// [io] - Positional CSV decoding with line-numbered MALFORMED_ROW and
// INVALID_DISTANCE errors.
//
// [render] - The Backend interface and the insert-if-absent Diagram store
// shared by all backends.
//
//   - [render/graphml]: yEd GraphML with ShapeNode and PolyLineEdge
//   - [render/nodelink]: Graphviz DOT, rendered to SVG or PNG (and PDF via rsvg-convert)
//   - [render/jsonsink]: a node/edge JSON document
//
// [config] - Optional TOML file with defaults for the command-line flags.
//
// [errors] - Structured errors with machine-readable codes and hints.
//
// [observability] - Pipeline hooks. [observability.MetricsHooks] records
// stage counts and durations in a Prometheus registry that batch runs write
// to a node_exporter textfile.
//
// # Testing
//
// Run tests:
//
//	go test ./...                    # All tests
//	go test ./pkg/graph/...          # Specific package
//	go test -run Example ./pkg/...   # Examples only
package pkg
