// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep method-level tests stdlib-only.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/allpairs/core"
)

// Common vertex names used across core tests.
var (
	NamesABC  = []string{"A", "B", "C"}
	NamesABCD = []string{"A", "B", "C", "D"}
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0
	Weight3   = 3
	Weight5   = 5
	Weight7   = 7
	Weight100 = 100
)

// NewTriangle RETURNS the graph {A,B,C} with edges 1→2(5), 2→3(3), 1→3(100).
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.Build(core.Description{
		Names: NamesABC,
		Edges: []core.EdgeSpec{
			{From: 1, To: 2, Weight: Weight5},
			{From: 2, To: 3, Weight: Weight3},
			{From: 1, To: 3, Weight: Weight100},
		},
	})
	MustNoError(t, err, "Build(triangle)")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %v; want %v", op, got, want)
}

// MustEdges FAILS the test unless vertex v has exactly the edges in want, in order.
func MustEdges(t *testing.T, g *core.Graph, v int, want []core.Edge, op string) {
	t.Helper()

	got, err := g.Edges(v)
	MustNoError(t, err, op)
	if len(got) != len(want) {
		t.Fatalf("%s: got %d edges %v; want %d edges %v", op, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: edge[%d] = %+v; want %+v", op, i, got[i], want[i])
		}
	}
}
