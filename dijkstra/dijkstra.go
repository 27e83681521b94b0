// Package dijkstra implements the all-pairs table by running a linear-scan
// Dijkstra once per source vertex.
//
// Complexity:
//
//   - Time:  O(V·(V² + E)) = O(V³) for the dense scan, V runs of V selections.
//   - Space: O(V²) for the table, O(E) for the adjacency snapshot.
//
// Notes on implementation choices:
//
//   - Selection is a linear scan with strict "<"; the lowest index wins ties.
//   - Relaxation records only strict improvements, so the first shortest path
//     found is kept.
//   - Each source performs exactly V selection rounds; rounds after the
//     frontier is exhausted do nothing.
//   - Distances saturate at Infinite instead of overflowing.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/allpairs/core"
)

// Graph is the read view Compute needs. *core.Graph satisfies it.
// Vertex numbers are 1-based; Edge.To is 0-based.
type Graph interface {
	Size() int
	Edges(v int) ([]core.Edge, error)
}

// Compute builds a fresh all-pairs table for g.
//
// For every source s:
//  1. cell(s,s) = {Visited: true, Dist: 0, Path: BasePath}.
//  2. Relax the edges of s.
//  3. Repeat V times: select the unvisited destination with the smallest
//     finite Dist; if one exists mark it visited and relax its edges.
//
// Returns ErrNilGraph for a nil graph. An empty graph yields an empty table.
func Compute(g Graph, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Snapshot adjacency once so a run sees one consistent edge set.
	n := g.Size()
	adjacency := make([][]core.Edge, n)
	var err error
	for i := 0; i < n; i++ {
		if adjacency[i], err = g.Edges(i + 1); err != nil {
			return nil, fmt.Errorf("dijkstra: edges of vertex %d: %w", i+1, err)
		}
	}

	r := &runner{
		table:     newTable(n),
		adjacency: adjacency,
		scanLimit: n,
	}
	if cfg.LegacyScanBound {
		r.scanLimit = n - 1
	}

	var s, round, next int
	for s = 0; s < n; s++ {
		r.table.set(s, s, Cell{Visited: true, Dist: 0, Path: BasePath})
		r.relax(s, s)

		for round = 0; round < n; round++ {
			next = r.lowestUnvisited(s)
			if next < 0 {
				continue
			}
			r.table.cells[s*n+next].Visited = true
			r.relax(s, next)
		}
	}

	return r.table, nil
}

// runner holds the mutable state for a single Compute call.
type runner struct {
	table     *Table
	adjacency [][]core.Edge // 0-based snapshot
	scanLimit int           // destinations [0, scanLimit) are candidates for selection
}

// lowestUnvisited returns the unvisited destination with the smallest finite
// Dist from source, or -1 when none remains. Ties keep the lowest index.
func (r *runner) lowestUnvisited(source int) int {
	row := r.table.row(source)
	best, bestDist := -1, Infinite
	for d := 0; d < r.scanLimit; d++ {
		if !row[d].Visited && row[d].Dist < bestDist {
			best, bestDist = d, row[d].Dist
		}
	}

	return best
}

// relax updates the neighbors of u, whose distance from source is final.
// A neighbor is updated when it is unvisited and either has no path yet or
// the candidate distance is strictly smaller.
func (r *runner) relax(source, u int) {
	row := r.table.row(source)
	base := row[u].Dist

	var e core.Edge
	var cand int64
	for _, e = range r.adjacency[u] {
		cell := &row[e.To]
		if cell.Visited {
			continue
		}
		cand = addSat(base, e.Weight)
		if cand == Infinite {
			continue
		}
		if cell.Path == NoPath || cand < cell.Dist {
			cell.Dist = cand
			cell.Path = u + 1
		}
	}
}

// addSat returns a+b for non-negative operands, clamped to Infinite.
func addSat(a, b int64) int64 {
	if a >= Infinite-b {
		return Infinite
	}

	return a + b
}
