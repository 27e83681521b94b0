// Package dijkstra defines the table types and configuration options for
// the all-pairs, per-source Dijkstra engine.
//
// Errors (sentinel):
//
//	– ErrNilGraph     if the provided graph is nil.
//	– ErrNoPath       if a path is requested for an unreachable pair.
//	– ErrCorruptTable if a predecessor chain does not terminate in the base case.
//
// Out-of-range vertex numbers are reported with core.ErrInvalidIndex so that
// callers test a single sentinel across packages.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the engine and the table.
var (
	// ErrNilGraph indicates that a nil graph was passed to Compute.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPath indicates that the destination is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrCorruptTable indicates a predecessor chain that loops or dead-ends.
	ErrCorruptTable = errors.New("dijkstra: corrupt predecessor chain")
)

const (
	// Infinite is the Dist of a cell whose destination has not been reached.
	Infinite int64 = math.MaxInt64

	// NoPath is the Path of a cell whose destination has no predecessor yet.
	NoPath = math.MaxInt

	// BasePath is the Path of the diagonal cell (source to itself).
	BasePath = 0
)

// Cell is one (source, destination) entry of the all-pairs table.
//
// Path encodes the predecessor of the destination on the shortest path:
// BasePath for the source itself, NoPath when unreached, otherwise the
// predecessor's 1-based vertex number.
type Cell struct {
	Visited bool  // distance finalized for this source
	Dist    int64 // shortest known distance, Infinite if unreached
	Path    int   // predecessor encoding, see above
}

// unreached is the value every cell holds before a source run touches it.
var unreached = Cell{Visited: false, Dist: Infinite, Path: NoPath}

// Reachable reports whether the cell holds a finite distance.
func (c Cell) Reachable() bool { return c.Dist != Infinite }

// Predecessor returns the 1-based predecessor vertex number. ok is false for
// the base case and for unreached cells.
func (c Cell) Predecessor() (v int, ok bool) {
	if c.Path == BasePath || c.Path == NoPath {
		return 0, false
	}

	return c.Path, true
}

// Options configures the behavior of Compute.
//
// LegacyScanBound – when true, the minimum-vertex selection scans
// destinations 0..size-2 only, so the highest-numbered vertex is never
// finalized or used as an intermediate hop. Off by default.
type Options struct {
	LegacyScanBound bool
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithLegacyScanBound restores the historical selection bound that skips the
// last vertex. Use it only to reproduce tables produced by older tooling.
func WithLegacyScanBound() Option {
	return func(o *Options) {
		o.LegacyScanBound = true
	}
}

// DefaultOptions returns the defaults: full selection scan.
func DefaultOptions() Options {
	return Options{LegacyScanBound: false}
}
