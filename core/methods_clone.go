// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Clone takes the read lock of the source; Clear takes the write lock.

package core

// Clone returns a deep copy of the Graph: capacity, hook, vertices, every
// adjacency slice and the version counter. Nothing is shared with g.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		maxVertices: g.maxVertices,
		onReject:    g.onReject,
		vertices:    make([]Vertex, len(g.vertices)),
		adjacency:   make([][]Edge, len(g.adjacency)),
		version:     g.version,
	}
	copy(clone.vertices, g.vertices)
	for i, edges := range g.adjacency {
		if len(edges) == 0 {
			continue
		}
		clone.adjacency[i] = make([]Edge, len(edges))
		copy(clone.adjacency[i], edges)
	}

	return clone
}

// Clear releases all vertices and edges. The graph afterwards has Size() == 0
// and rejects every indexed operation with ErrInvalidIndex.
// Calling Clear more than once is harmless.
//
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.vertices == nil && g.adjacency == nil {
		return
	}
	g.vertices = nil
	g.adjacency = nil
	g.version++
}
