// File: methods_vertices.go
// Role: Vertex queries and the mutation version counter.
//
// Concurrency:
//   - All methods take the mu read lock.
package core

import "fmt"

// Size returns the number of vertices. A cleared graph has size 0.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Name returns the display name of vertex v (1-based).
func (g *Graph) Name(v int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index(v)
	if !ok {
		return "", fmt.Errorf("%w: vertex %d", ErrInvalidIndex, v)
	}

	return g.vertices[i].Name, nil
}

// Names returns all vertex names in order.
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Name
	}

	return out
}

// Version returns a counter that increases on every successful edge mutation.
// Two equal versions of the same graph imply identical edge sets.
func (g *Graph) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}
