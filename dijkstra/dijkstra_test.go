// Package dijkstra_test contains unit tests for the all-pairs engine.
// These tests validate the table invariants (diagonal, unreachable cells),
// distances against brute-force enumeration, tie-breaking, the legacy scan
// bound and path reconstruction.
package dijkstra_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/allpairs/builder"
	"github.com/katalvlaran/allpairs/core"
	"github.com/katalvlaran/allpairs/dijkstra"
)

// build is a test helper that fails the test on construction errors.
func build(t *testing.T, names []string, edges ...core.EdgeSpec) *core.Graph {
	t.Helper()
	g, err := core.Build(core.Description{Names: names, Edges: edges})
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestCompute_NilGraph(t *testing.T) {
	_, err := dijkstra.Compute(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	var g *core.Graph
	_, err = dijkstra.Compute(g)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestCompute_ClearedGraph(t *testing.T) {
	g := build(t, []string{"A"})
	g.Clear()

	table, err := dijkstra.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Size())
}

// ------------------------------------------------------------------------
// 2. Known graphs
// ------------------------------------------------------------------------

func TestCompute_TriangleIndirectBeatsDirect(t *testing.T) {
	// A→B(5), B→C(3), A→C(100): A to C costs 8 via B.
	g := build(t, []string{"A", "B", "C"},
		core.EdgeSpec{From: 1, To: 2, Weight: 5},
		core.EdgeSpec{From: 2, To: 3, Weight: 3},
		core.EdgeSpec{From: 1, To: 3, Weight: 100},
	)
	table, err := dijkstra.Compute(g)
	require.NoError(t, err)

	d, err := table.Dist(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(8), d)

	p, err := table.Path(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, p)

	// Directed: nothing leads back to A.
	assert.False(t, table.Reachable(3, 1))
	assert.False(t, table.Reachable(2, 1))
}

func TestCompute_IsolatedVertex(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"},
		core.EdgeSpec{From: 1, To: 2, Weight: 1},
		core.EdgeSpec{From: 2, To: 3, Weight: 1},
		core.EdgeSpec{From: 3, To: 1, Weight: 1},
	)
	table, err := dijkstra.Compute(g)
	require.NoError(t, err)

	for x := 1; x <= 3; x++ {
		d, err := table.Dist(x, 4)
		require.NoError(t, err)
		assert.Equal(t, dijkstra.Infinite, d, "dist(%d,D)", x)

		c, err := table.Cell(x, 4)
		require.NoError(t, err)
		assert.Equal(t, dijkstra.NoPath, c.Path)

		_, err = table.Path(x, 4)
		assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	}
	d, err := table.Dist(4, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(0), d)
}

func TestCompute_Diagonal(t *testing.T) {
	g := build(t, []string{"A", "B", "C"},
		core.EdgeSpec{From: 1, To: 1, Weight: 9},
		core.EdgeSpec{From: 1, To: 2, Weight: 2},
		core.EdgeSpec{From: 2, To: 1, Weight: 2},
	)
	table, err := dijkstra.Compute(g)
	require.NoError(t, err)

	for v := 1; v <= 3; v++ {
		c, err := table.Cell(v, v)
		require.NoError(t, err)
		assert.Equal(t, dijkstra.Cell{Visited: true, Dist: 0, Path: dijkstra.BasePath}, c, "cell(%d,%d)", v, v)

		p, err := table.Path(v, v)
		require.NoError(t, err)
		assert.Equal(t, []int{v}, p)
	}
}

func TestCompute_TieBreakLowestIndex(t *testing.T) {
	// Two equal-cost routes to D; B is finalized before C, so D keeps B.
	// Edge order out of A is deliberately C first.
	g := build(t, []string{"A", "B", "C", "D"},
		core.EdgeSpec{From: 1, To: 3, Weight: 1},
		core.EdgeSpec{From: 1, To: 2, Weight: 1},
		core.EdgeSpec{From: 3, To: 4, Weight: 1},
		core.EdgeSpec{From: 2, To: 4, Weight: 1},
	)
	table, err := dijkstra.Compute(g)
	require.NoError(t, err)

	p, err := table.Path(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, p)
}

func TestCompute_StrictImprovementKeepsFirst(t *testing.T) {
	// A→B(2) is found first; A→C→B also costs 2 and must not replace it.
	g := build(t, []string{"A", "B", "C"},
		core.EdgeSpec{From: 1, To: 2, Weight: 2},
		core.EdgeSpec{From: 1, To: 3, Weight: 1},
		core.EdgeSpec{From: 3, To: 2, Weight: 1},
	)
	table, err := dijkstra.Compute(g)
	require.NoError(t, err)

	c, err := table.Cell(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.Dist)
	pred, ok := c.Predecessor()
	assert.True(t, ok)
	assert.Equal(t, 1, pred)
}

func TestCompute_ZeroWeights(t *testing.T) {
	g := build(t, []string{"A", "B", "C"},
		core.EdgeSpec{From: 1, To: 2, Weight: 0},
		core.EdgeSpec{From: 2, To: 3, Weight: 0},
	)
	table, err := dijkstra.Compute(g)
	require.NoError(t, err)

	d, err := table.Dist(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), d)
	assert.True(t, table.Reachable(1, 3))
}

func TestCompute_HugeWeightsSaturate(t *testing.T) {
	big := dijkstra.Infinite - 1
	g := build(t, []string{"A", "B", "C"},
		core.EdgeSpec{From: 1, To: 2, Weight: big},
		core.EdgeSpec{From: 2, To: 3, Weight: big},
	)
	table, err := dijkstra.Compute(g)
	require.NoError(t, err)

	d, err := table.Dist(1, 2)
	require.NoError(t, err)
	assert.Equal(t, big, d)
	// The sum does not fit; C stays unreachable instead of wrapping negative.
	assert.False(t, table.Reachable(1, 3))
}

// ------------------------------------------------------------------------
// 3. Scan bound
// ------------------------------------------------------------------------

func TestCompute_LastVertexAsIntermediate(t *testing.T) {
	// A→C(1), C→B(1), A→B(10): the short route to B goes through the last vertex.
	g := build(t, []string{"A", "B", "C"},
		core.EdgeSpec{From: 1, To: 3, Weight: 1},
		core.EdgeSpec{From: 3, To: 2, Weight: 1},
		core.EdgeSpec{From: 1, To: 2, Weight: 10},
	)

	full, err := dijkstra.Compute(g)
	require.NoError(t, err)
	d, _ := full.Dist(1, 2)
	assert.Equal(t, int64(2), d)
	p, err := full.Path(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, p)

	legacy, err := dijkstra.Compute(g, dijkstra.WithLegacyScanBound())
	require.NoError(t, err)
	d, _ = legacy.Dist(1, 2)
	assert.Equal(t, int64(10), d)
	// The last vertex still gets its distance through relaxation.
	d, _ = legacy.Dist(1, 3)
	assert.Equal(t, int64(1), d)
	c, _ := legacy.Cell(1, 3)
	assert.False(t, c.Visited)
}

// ------------------------------------------------------------------------
// 4. Ground truth and idempotence
// ------------------------------------------------------------------------

// bruteForce returns the minimum simple-path weight from s to d (0-based),
// or -1 if unreachable.
func bruteForce(n int, w map[[2]int]int64, s, d int) int64 {
	if s == d {
		return 0
	}
	best := int64(-1)
	onPath := make([]bool, n)
	var walk func(u int, acc int64)
	walk = func(u int, acc int64) {
		if u == d {
			if best < 0 || acc < best {
				best = acc
			}
			return
		}
		onPath[u] = true
		for v := 0; v < n; v++ {
			if wt, ok := w[[2]int{u, v}]; ok && !onPath[v] {
				walk(v, acc+wt)
			}
		}
		onPath[u] = false
	}
	walk(s, 0)

	return best
}

func TestCompute_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 40; trial++ {
		n := 2 + rng.IntN(6)
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('A' + i))
		}
		weights := make(map[[2]int]int64)
		var edges []core.EdgeSpec
		for k := 0; k < n*2; k++ {
			s, d, wt := rng.IntN(n), rng.IntN(n), int64(rng.IntN(20))
			edges = append(edges, core.EdgeSpec{From: s + 1, To: d + 1, Weight: wt})
			weights[[2]int{s, d}] = wt // later inserts replace earlier ones
		}
		g := build(t, names, edges...)
		table, err := dijkstra.Compute(g)
		require.NoError(t, err)

		for s := 0; s < n; s++ {
			for d := 0; d < n; d++ {
				want := bruteForce(n, weights, s, d)
				got, err := table.Dist(s+1, d+1)
				require.NoError(t, err)
				if want < 0 {
					assert.Equal(t, dijkstra.Infinite, got, "trial %d dist(%d,%d)", trial, s+1, d+1)
					continue
				}
				assert.Equal(t, want, got, "trial %d dist(%d,%d)", trial, s+1, d+1)

				// The reconstructed path must realize the distance.
				p, err := table.Path(s+1, d+1)
				require.NoError(t, err)
				assert.Equal(t, s+1, p[0])
				assert.Equal(t, d+1, p[len(p)-1])
				var sum int64
				for i := 1; i < len(p); i++ {
					wt, ok := g.Weight(p[i-1], p[i])
					require.True(t, ok, "edge %d→%d on path", p[i-1], p[i])
					sum += wt
				}
				assert.Equal(t, got, sum)
			}
		}
	}
}

func TestCompute_GeneratedTopologies(t *testing.T) {
	const w = 3
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}

	// Cycle: distance is the forward hop count.
	d, err := builder.BuildDescription([]builder.BuilderOption{builder.WithConstantWeight(w)}, builder.Cycle(6))
	require.NoError(t, err)
	g, err := core.Build(d)
	require.NoError(t, err)
	table, err := dijkstra.Compute(g)
	require.NoError(t, err)
	for s := 0; s < 6; s++ {
		for dst := 0; dst < 6; dst++ {
			got, err := table.Dist(s+1, dst+1)
			require.NoError(t, err)
			assert.Equal(t, int64(((dst-s+6)%6)*w), got, "cycle dist(%d,%d)", s+1, dst+1)
		}
	}

	// Grid: distance is the Manhattan distance.
	const rows, cols = 3, 4
	d, err = builder.BuildDescription([]builder.BuilderOption{builder.WithConstantWeight(w)}, builder.Grid(rows, cols))
	require.NoError(t, err)
	g, err = core.Build(d)
	require.NoError(t, err)
	table, err = dijkstra.Compute(g)
	require.NoError(t, err)
	for u := 0; u < rows*cols; u++ {
		for v := 0; v < rows*cols; v++ {
			want := (abs(u/cols-v/cols) + abs(u%cols-v%cols)) * w
			got, err := table.Dist(u+1, v+1)
			require.NoError(t, err)
			assert.Equal(t, int64(want), got, "grid dist(%d,%d)", u+1, v+1)
		}
	}

	// Two disjoint components never reach each other.
	d, err = builder.BuildDescription(nil, builder.Complete(3), builder.Star(3))
	require.NoError(t, err)
	g, err = core.Build(d)
	require.NoError(t, err)
	table, err = dijkstra.Compute(g)
	require.NoError(t, err)
	for s := 1; s <= 3; s++ {
		for dst := 4; dst <= 6; dst++ {
			assert.False(t, table.Reachable(s, dst))
			assert.False(t, table.Reachable(dst, s))
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"},
		core.EdgeSpec{From: 1, To: 2, Weight: 4},
		core.EdgeSpec{From: 2, To: 4, Weight: 1},
		core.EdgeSpec{From: 1, To: 3, Weight: 2},
		core.EdgeSpec{From: 3, To: 2, Weight: 1},
	)
	first, err := dijkstra.Compute(g)
	require.NoError(t, err)
	second, err := dijkstra.Compute(g)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.True(t, first.Equal(first.Clone()))

	// A table is a snapshot: mutating the graph leaves it untouched.
	require.NoError(t, g.InsertEdge(1, 4, 1))
	third, err := dijkstra.Compute(g)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
	assert.False(t, first.Equal(third))
}

// ------------------------------------------------------------------------
// 5. Path helpers
// ------------------------------------------------------------------------

func TestTable_PathHelpers(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"},
		core.EdgeSpec{From: 1, To: 2, Weight: 1},
		core.EdgeSpec{From: 2, To: 3, Weight: 1},
		core.EdgeSpec{From: 3, To: 4, Weight: 1},
	)
	table, err := dijkstra.Compute(g)
	require.NoError(t, err)

	back := slices.Collect(table.Backtrack(1, 4))
	if diff := cmp.Diff([]int{4, 3, 2, 1}, back); diff != "" {
		t.Errorf("Backtrack(1,4) mismatch (-want +got):\n%s", diff)
	}
	fwd := slices.Collect(table.PathSeq(1, 4))
	if diff := cmp.Diff([]int{1, 2, 3, 4}, fwd); diff != "" {
		t.Errorf("PathSeq(1,4) mismatch (-want +got):\n%s", diff)
	}

	// Early stop.
	var first []int
	for v := range table.PathSeq(1, 4) {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, first)

	// Unreachable and invalid pairs.
	assert.Empty(t, slices.Collect(table.Backtrack(4, 1)))
	assert.Empty(t, slices.Collect(table.PathSeq(4, 1)))
	_, err = table.Path(0, 1)
	assert.ErrorIs(t, err, core.ErrInvalidIndex)
	_, err = table.Dist(1, 5)
	assert.ErrorIs(t, err, core.ErrInvalidIndex)
	assert.False(t, table.Reachable(9, 1))
}
