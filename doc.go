// Package allpairs computes all-pairs shortest paths on small directed,
// weighted graphs and reports them as plain-text tables.
//
// What is in the module?
//
//	A thread-safe graph store, a per-source Dijkstra engine producing a
//	full distance/predecessor table, loaders for the text and YAML graph
//	formats, and the allpairs command that ties them together.
//
// Packages:
//
//	core/         Graph, Vertex, Edge, Description; edge insert/remove under locks
//	dijkstra/     Compute(g) → Table; Dist, Path, Backtrack, PathSeq
//	pathfinder/   Finder: graph + table + staleness tracking + slog logging
//	loader/       text and YAML decoders yielding core.Description values
//	report/       the all-pairs table and single-path reports
//	builder/      deterministic generated descriptions (Path, Cycle, Grid, RandomSparse, ...)
//	cmd/allpairs  command-line entry point
//
// Quick start:
//
//	g, _ := core.Build(core.Description{
//		Names: []string{"A", "B", "C"},
//		Edges: []core.EdgeSpec{{From: 1, To: 2, Weight: 3}, {From: 2, To: 3, Weight: 5}},
//	})
//	table, _ := dijkstra.Compute(g)
//	path, _ := table.Path(1, 3) // [1 2 3]
//
// Vertex numbers in every public API are 1-based, as in the input files.
package allpairs
