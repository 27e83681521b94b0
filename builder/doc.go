// Package builder generates deterministic graph descriptions for tests,
// benchmarks and sample inputs.
//
// A Constructor appends one component (its vertices and edges) to a
// core.Description; BuildDescription runs constructors in order, so several
// constructors compose into a disjoint union. Edge triples use 1-based vertex
// numbers, exactly like parsed input, and can be passed to core.Build or
// written out by loader.
//
// Topologies (all directed):
//
//	Path(n)              0→1→…→n-1
//	Cycle(n)             Path plus n-1→0
//	Star(n)              center 0 to each leaf and back
//	Complete(n)          every ordered pair i≠j
//	Grid(rows, cols)     4-neighbourhood, both directions, row-major ids
//	RandomSparse(n, p)   each ordered pair i≠j with probability p
//
// Options:
//
//	WithSeed / WithRand     RNG for RandomSparse and random weights
//	WithIDScheme            vertex names (DefaultIDFn, SymbolIDFn, ExcelColumnIDFn)
//	WithConstantWeight      every edge gets w
//	WithUniformWeight       weights ~U[min,max] (needs an RNG)
//
// Same options, seed and constructor order always give the same Description.
package builder
