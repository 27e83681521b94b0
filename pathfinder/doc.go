// Package pathfinder couples a core.Graph with its dijkstra.Table into one
// unit, the Finder, which is what the command-line tool and reports work on.
//
// A Finder is built from a core.Description, mutated with InsertEdge and
// RemoveEdge, and answers distance and path queries from the table computed
// by the last FindShortestPaths call.
//
// The table is never recomputed implicitly. Every successful edge mutation
// marks it stale (Stale() reports this); queries on a stale table still
// answer from the old table and log a warning, so callers must call
// FindShortestPaths again after editing edges.
//
// All methods lock the Finder as a whole, so graph and table are always
// observed together. Clone deep-copies both.
package pathfinder
