// Package core provides the in-memory Graph Store used by the all-pairs
// shortest-path engine.
//
// A Graph G = (V,E) here is deliberately small and rigid:
//
//   - Directed, weighted edges with non-negative int64 weights.
//   - An ordered vertex set fixed at construction (NewGraph / Build); the
//     graph never grows vertex by vertex, rebuilding replaces it.
//   - At most one edge per ordered (source, destination) pair. Inserting a
//     duplicate overwrites the weight and keeps the edge's position.
//   - Capacity bounded by DefaultMaxVertices unless WithMaxVertices is given.
//
// Addressing:
//
//	Every exported method takes 1-based vertex numbers, matching the input
//	format (vertex 1 is the first name read). Edge.To inside adjacency
//	slices is 0-based; Edges(v) hands out copies of those slices.
//
// Core Methods:
//
//	// Construction
//	NewGraph(names []string, opts ...GraphOption) (*Graph, error)  // O(V)
//	Build(desc Description, opts ...GraphOption) (*Graph, error)   // O(V + E·d)
//
//	// Edge lifecycle
//	InsertEdge(source, destination int, weight int64) error        // O(d)
//	RemoveEdge(source, destination int) error                      // O(d)
//
//	// Query
//	Size() int
//	Name(v int) (string, error)
//	Names() []string
//	Edges(v int) ([]Edge, error)
//	Weight(source, destination int) (int64, bool)
//	EdgeCount() int
//	Version() uint64
//
//	// Maintenance
//	Clone() *Graph   // deep copy, nothing shared
//	Clear()          // idempotent teardown
//
// Errors:
//
//	ErrEmptyGraph      – zero-length vertex list
//	ErrTooManyVertices – vertex list above capacity
//	ErrInvalidIndex    – vertex number outside [1, Size()]
//	ErrInvalidWeight   – negative weight
//	ErrEmptyAdjacency  – RemoveEdge on a vertex without outgoing edges
//
// RemoveEdge on a pair with no edge, when the source does have other edges,
// is a silent no-op and returns nil.
//
// All methods are safe for concurrent use; a single sync.RWMutex guards
// vertices and adjacency together.
package core
