// Package core defines the central Graph, Vertex, and Edge types used by the
// all-pairs engine, and provides thread-safe primitives for building,
// mutating, and cloning graphs.
//
// This file declares Vertex, Edge, EdgeSpec, Description, Graph, GraphOption,
// sentinel errors, and the NewGraph/Build constructors.
//
// Errors:
//
//	ErrEmptyGraph       - a graph was requested with zero vertices.
//	ErrTooManyVertices  - vertex count exceeds the configured capacity.
//	ErrInvalidIndex     - vertex number outside [1, Size()].
//	ErrInvalidWeight    - negative edge weight.
//	ErrEmptyAdjacency   - RemoveEdge on a vertex that has no outgoing edges.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultMaxVertices is the vertex capacity used when WithMaxVertices is not given.
const DefaultMaxVertices = 100

// Sentinel errors for core graph operations.
var (
	// ErrEmptyGraph indicates that a graph was requested with no vertex names.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrTooManyVertices indicates that the vertex list exceeds the graph capacity.
	ErrTooManyVertices = errors.New("core: too many vertices")

	// ErrInvalidIndex indicates a vertex number outside [1, Size()].
	ErrInvalidIndex = errors.New("core: vertex index out of range")

	// ErrInvalidWeight indicates a negative edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

	// ErrEmptyAdjacency indicates RemoveEdge was called on a vertex with no outgoing edges.
	ErrEmptyAdjacency = errors.New("core: vertex has no outgoing edges")
)

// Vertex is a named node of the graph. Its Name is display text only;
// vertices are addressed by position.
type Vertex struct {
	// Name is the display name read from the graph description.
	Name string
}

// Edge is one entry in a vertex's adjacency slice.
//
// To is the 0-based index of the destination vertex. Callers outside this
// package receive copies and never observe internal storage.
type Edge struct {
	// To is the 0-based destination index.
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// EdgeSpec is an edge triple as it appears in external input: 1-based
// source and destination vertex numbers plus a weight.
type EdgeSpec struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// Description is the parsed form of one graph: ordered vertex names and
// ordered edge triples.
type Description struct {
	Names []string   `yaml:"vertices"`
	Edges []EdgeSpec `yaml:"edges"`
}

// RejectHook is invoked by Build for every edge triple that could not be inserted.
type RejectHook func(spec EdgeSpec, err error)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxVertices overrides DefaultMaxVertices. Values < 1 are ignored.
func WithMaxVertices(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxVertices = n
		}
	}
}

// WithRejectHook registers a callback for edges that Build skips.
func WithRejectHook(hook RejectHook) GraphOption {
	return func(g *Graph) { g.onReject = hook }
}

// Graph is a directed, weighted graph with a fixed, ordered vertex set.
//
// Public methods take 1-based vertex numbers; adjacency stores 0-based indices.
// mu guards vertices, adjacency and version. version increments on every
// successful mutation so that derived tables can detect staleness.
type Graph struct {
	mu sync.RWMutex

	maxVertices int
	onReject    RejectHook

	vertices  []Vertex
	adjacency [][]Edge // adjacency[i] is the ordered edge list of vertex i
	version   uint64
}

// NewGraph creates a graph holding one vertex per name, in order, and no edges.
//
// Errors:
//   - ErrEmptyGraph if names is empty.
//   - ErrTooManyVertices if len(names) exceeds the capacity.
//
// Complexity: O(V).
func NewGraph(names []string, opts ...GraphOption) (*Graph, error) {
	g := &Graph{maxVertices: DefaultMaxVertices}
	var opt GraphOption
	for _, opt = range opts {
		opt(g)
	}

	if len(names) == 0 {
		return nil, ErrEmptyGraph
	}
	if len(names) > g.maxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, len(names), g.maxVertices)
	}

	g.vertices = make([]Vertex, len(names))
	g.adjacency = make([][]Edge, len(names))
	for i, name := range names {
		g.vertices[i] = Vertex{Name: name}
	}

	return g, nil
}

// Build constructs a fresh graph from a Description: vertices first, then
// every edge triple in order through InsertEdge.
//
// Invalid triples (bad index, negative weight) are skipped without failing
// the build; each one is passed to the RejectHook when one is configured.
//
// Complexity: O(V + E·d) where d is the maximum out-degree.
func Build(desc Description, opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(desc.Names, opts...)
	if err != nil {
		return nil, err
	}

	var spec EdgeSpec
	for _, spec = range desc.Edges {
		if err = g.InsertEdge(spec.From, spec.To, spec.Weight); err != nil && g.onReject != nil {
			g.onReject(spec, err)
		}
	}

	return g, nil
}

// index converts a 1-based vertex number into a 0-based index.
// Caller must hold mu.
func (g *Graph) index(v int) (int, bool) {
	if v < 1 || v > len(g.vertices) {
		return 0, false
	}

	return v - 1, true
}
