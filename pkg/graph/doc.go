// Package graph provides the in-memory model of a derivative admin graph.
//
// A derivative admin graph links principals (users) and hosts through two
// relationships: a user holding an active session on a host, and a user
// holding local admin privileges on a host. The input records one BFS
// traversal of that graph, so every node also carries its distance from the
// traversal's root and the node it was reached from.
//
// # Core Types
//
//   - [Node]: One input record (name, category, neighbors, distance, predecessor)
//   - [Category]: User or host; determines the node's shape and color
//   - [Graph]: Insertion-ordered map from node name to [Node]
//   - [Path]: The highlighted shortest path overlay
//   - [Builder]: Accumulates nodes into a [Graph] and a [Path] in one pass
//
// # Last Write Wins
//
// A later record with the same name replaces the earlier one entirely,
// neighbors included. The node keeps the position of its first appearance,
// so iteration order is the first-seen order of distinct names.
//
// # Path Reconstruction
//
// Two strategies are available through [PathMode]:
//
//	graph.PathByDistance     // scan rows in input order, keep the 0,1,2,... run
//	graph.PathByPredecessor  // walk predecessor links back from the target
//
// [PathByDistance] is the default and depends on the input being written in
// traversal order. [PathByPredecessor] follows the
// recorded predecessor links and is independent of row order.
//
// # Usage
//
//	b := graph.NewBuilder(graph.BuildOptions{Mode: graph.PathByDistance})
//	for _, n := range nodes {
//	    b.Add(n)
//	}
//	g, path, err := b.Build()
package graph
