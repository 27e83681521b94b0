// Package dijkstra computes the all-pairs shortest-path table of a small
// directed graph by running a linear-scan Dijkstra from every vertex.
//
// Overview:
//
//   - Compute(g) returns a *Table holding, for each (source, destination)
//     pair, the shortest distance and the predecessor of destination on one
//     shortest path.
//   - Selection picks the unvisited destination with the smallest finite
//     distance; ties go to the lowest vertex number.
//   - Relaxation records only strict improvements, so among equal-cost
//     paths the first one discovered is kept.
//   - Distances are int64 and saturate at Infinite; weights must be
//     non-negative, which core.Graph already enforces.
//
// Table conventions:
//
//	Dist(s,s) == 0 and Cell(s,s).Path == BasePath.
//	Unreachable pairs: Dist == Infinite, Path == NoPath.
//	Otherwise Path is the 1-based number of the predecessor vertex.
//
// Path reconstruction:
//
//	Backtrack(s,d) – lazy predecessor walk, destination first.
//	Path(s,d)      – source-first []int, ErrNoPath when unreachable.
//	PathSeq(s,d)   – the same as an iter.Seq.
//
// Options:
//
//	WithLegacyScanBound() – reproduce the historical selection scan that
//	never considers the highest-numbered vertex. With it, the last vertex
//	still receives a distance through relaxation but is never used as an
//	intermediate hop, so some distances through it come out longer.
//
// Complexity:
//
//   - Time:  O(V³) (V sources × V rounds × V-wide scan; edge relaxations add O(V·E)).
//   - Space: O(V²) for the table.
//
// Thread safety:
//
//   - Compute snapshots the adjacency of g before running; a returned Table
//     is never modified and may be read concurrently. It does not follow
//     later mutations of g: recompute after every edge change.
package dijkstra
