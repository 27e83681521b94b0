// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/RemoveEdge/Edges/Weight/EdgeCount.
// Determinism:
//   - Edges(v) returns the adjacency slice in insertion order.
//   - Replacing an edge keeps its position.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// InsertEdge adds the edge source→destination with the given weight, or
// overwrites the weight of the existing edge between the same ordered pair.
//
// Steps:
//  1. Validate weight ≥ 0 and 1 ≤ source,destination ≤ Size().
//  2. Scan the source adjacency; on a match overwrite Weight in place.
//  3. Otherwise append a new Edge.
//
// Errors:
//   - ErrInvalidIndex, ErrInvalidWeight; the graph is left untouched.
//
// Complexity: O(d) where d = out-degree of source.
func (g *Graph) InsertEdge(source, destination int, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrInvalidWeight, source, destination, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.index(source)
	if !ok {
		return fmt.Errorf("%w: source %d", ErrInvalidIndex, source)
	}
	to, ok := g.index(destination)
	if !ok {
		return fmt.Errorf("%w: destination %d", ErrInvalidIndex, destination)
	}

	edges := g.adjacency[from]
	for i := range edges {
		if edges[i].To == to {
			edges[i].Weight = weight
			g.version++

			return nil
		}
	}
	g.adjacency[from] = append(edges, Edge{To: to, Weight: weight})
	g.version++

	return nil
}

// RemoveEdge deletes the edge source→destination if present.
//
// An index outside [1, Size()] yields ErrInvalidIndex and a source with no
// outgoing edges at all yields ErrEmptyAdjacency. When the source has edges
// but none leads to destination, RemoveEdge returns nil and changes nothing.
//
// Complexity: O(d).
func (g *Graph) RemoveEdge(source, destination int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.index(source)
	if !ok {
		return fmt.Errorf("%w: source %d", ErrInvalidIndex, source)
	}
	to, ok := g.index(destination)
	if !ok {
		return fmt.Errorf("%w: destination %d", ErrInvalidIndex, destination)
	}

	edges := g.adjacency[from]
	if len(edges) == 0 {
		return fmt.Errorf("%w: vertex %d", ErrEmptyAdjacency, source)
	}
	for i := range edges {
		if edges[i].To == to {
			g.adjacency[from] = append(edges[:i:i], edges[i+1:]...)
			g.version++

			return nil
		}
	}

	return nil
}

// Edges returns a copy of the outgoing edges of vertex v (1-based).
// Complexity: O(d).
func (g *Graph) Edges(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index(v)
	if !ok {
		return nil, fmt.Errorf("%w: vertex %d", ErrInvalidIndex, v)
	}
	out := make([]Edge, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out, nil
}

// Weight reports the weight of source→destination and whether that edge exists.
func (g *Graph) Weight(source, destination int) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	from, ok := g.index(source)
	if !ok {
		return 0, false
	}
	to, ok := g.index(destination)
	if !ok {
		return 0, false
	}
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e.Weight, true
		}
	}

	return 0, false
}

// EdgeCount returns the total number of edges. Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, edges := range g.adjacency {
		n += len(edges)
	}

	return n
}
