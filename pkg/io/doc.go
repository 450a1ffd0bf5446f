// Package io reads derivative admin traversal tables.
//
// # CSV Format
//
// The input is a CSV file with a header row followed by one row per node.
// Columns are positional; the header names are not checked:
//
//	"NodeName","IsUser","Edges","Distance","Visited","Predecessor"
//	"WS01","False","ALICE,BOB","0","True",""
//	"ALICE","True","SRV02","1","True","WS01"
//
// Column semantics:
//   - NodeName: unique node identifier
//   - IsUser: "true" in any case marks a user principal, anything else a host
//   - Edges: comma-joined neighbor names, empty for none; tokens are kept verbatim
//   - Distance: non-negative base-10 BFS depth
//   - Visited: boolean-like token, parsed like IsUser
//   - Predecessor: node the row was reached from, empty for the root
//
// Spaces directly after a field delimiter are skipped. Extra trailing columns
// are ignored; fewer than six columns is an error.
//
// # Streaming
//
// [ReadCSV] calls a function for every parsed row in input order, so callers
// can build the graph and the path in a single pass:
//
//	b := graph.NewBuilder(graph.BuildOptions{})
//	err := io.ImportCSV(ctx, "graph.csv", func(n graph.Node) error {
//	    b.Add(n)
//	    return nil
//	})
//
// The first malformed row aborts the read. Errors carry the input line
// number and a code from pkg/errors (MALFORMED_ROW or INVALID_DISTANCE).
package io
