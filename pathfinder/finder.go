package pathfinder

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/allpairs/core"
	"github.com/katalvlaran/allpairs/dijkstra"
)

// ErrNotBuilt indicates an operation on a Finder without a graph.
var ErrNotBuilt = errors.New("pathfinder: graph not built")

// ErrNotComputed indicates a query before the first FindShortestPaths.
var ErrNotComputed = errors.New("pathfinder: shortest paths not computed")

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.log = l
		}
	}
}

// WithMaxVertices bounds the graphs this Finder accepts.
func WithMaxVertices(n int) Option {
	return func(f *Finder) { f.maxVertices = n }
}

// WithEngineOptions passes options to every dijkstra.Compute call.
func WithEngineOptions(opts ...dijkstra.Option) Option {
	return func(f *Finder) { f.engine = append(f.engine, opts...) }
}

// Finder is a graph plus its all-pairs table, guarded by a single mutex.
type Finder struct {
	mu sync.Mutex

	log         *slog.Logger
	maxVertices int
	engine      []dijkstra.Option

	graph    *core.Graph
	table    *dijkstra.Table
	computed uint64 // graph version the table was computed from
}

// New returns an empty Finder.
func New(opts ...Option) *Finder {
	f := &Finder{
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxVertices: core.DefaultMaxVertices,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Build replaces the current graph with one built from desc and drops the
// table. Invalid edge triples are skipped and logged at warn level.
// On error (empty or oversized vertex list) the Finder is left unchanged.
func (f *Finder) Build(desc core.Description) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rejected := 0
	g, err := core.Build(desc,
		core.WithMaxVertices(f.maxVertices),
		core.WithRejectHook(func(spec core.EdgeSpec, err error) {
			rejected++
			f.log.Warn("edge rejected",
				"from", spec.From, "to", spec.To, "weight", spec.Weight, "err", err)
		}),
	)
	if err != nil {
		f.log.Error("build failed", "vertices", len(desc.Names), "err", err)
		return err
	}

	f.graph = g
	f.table = nil
	f.computed = 0
	f.log.Info("graph built",
		"vertices", g.Size(), "edges", g.EdgeCount(), "rejected", rejected)

	return nil
}

// InsertEdge inserts or replaces source→destination. See core.Graph.InsertEdge.
func (f *Finder) InsertEdge(source, destination int, weight int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.graph == nil {
		return ErrNotBuilt
	}
	if err := f.graph.InsertEdge(source, destination, weight); err != nil {
		f.log.Debug("insert rejected", "from", source, "to", destination, "err", err)
		return err
	}

	return nil
}

// RemoveEdge removes source→destination. See core.Graph.RemoveEdge.
func (f *Finder) RemoveEdge(source, destination int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.graph == nil {
		return ErrNotBuilt
	}
	if err := f.graph.RemoveEdge(source, destination); err != nil {
		f.log.Warn("remove failed", "from", source, "to", destination, "err", err)
		return err
	}

	return nil
}

// FindShortestPaths recomputes the whole table from scratch.
func (f *Finder) FindShortestPaths() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.graph == nil {
		return ErrNotBuilt
	}
	table, err := dijkstra.Compute(f.graph, f.engine...)
	if err != nil {
		return fmt.Errorf("pathfinder: compute: %w", err)
	}
	f.table = table
	f.computed = f.graph.Version()
	f.log.Debug("shortest paths computed", "vertices", table.Size())

	return nil
}

// Stale reports whether edges changed since the last FindShortestPaths,
// or no table exists yet.
func (f *Finder) Stale() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.staleLocked()
}

func (f *Finder) staleLocked() bool {
	return f.table == nil || f.graph == nil || f.graph.Version() != f.computed
}

// tableLocked returns the current table, warning when it is stale.
func (f *Finder) tableLocked() (*dijkstra.Table, error) {
	if f.graph == nil {
		return nil, ErrNotBuilt
	}
	if f.table == nil {
		return nil, ErrNotComputed
	}
	if f.graph.Version() != f.computed {
		f.log.Warn("query on stale shortest-path table",
			"computed_version", f.computed, "graph_version", f.graph.Version())
	}

	return f.table, nil
}

// Size returns the number of vertices, 0 before Build.
func (f *Finder) Size() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.graph == nil {
		return 0
	}

	return f.graph.Size()
}

// Name returns the display name of vertex v (1-based).
func (f *Finder) Name(v int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.graph == nil {
		return "", ErrNotBuilt
	}

	return f.graph.Name(v)
}

// Cell returns the table cell for (source, destination).
func (f *Finder) Cell(source, destination int) (dijkstra.Cell, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.tableLocked()
	if err != nil {
		return dijkstra.Cell{}, err
	}

	return t.Cell(source, destination)
}

// Dist returns the shortest distance, dijkstra.Infinite when unreachable.
func (f *Finder) Dist(source, destination int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.tableLocked()
	if err != nil {
		return dijkstra.Infinite, err
	}

	return t.Dist(source, destination)
}

// Path returns the shortest path as 1-based vertex numbers, source first.
func (f *Finder) Path(source, destination int) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.tableLocked()
	if err != nil {
		return nil, err
	}

	return t.Path(source, destination)
}

// PathNames returns the shortest path as vertex names, source first.
func (f *Finder) PathNames(source, destination int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.tableLocked()
	if err != nil {
		return nil, err
	}
	path, err := t.Path(source, destination)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(path))
	for i, v := range path {
		if names[i], err = f.graph.Name(v); err != nil {
			return nil, err
		}
	}

	return names, nil
}

// Clone returns a Finder with deep copies of the graph and the table.
// The clone shares the logger and engine options, nothing else.
func (f *Finder) Clone() *Finder {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := &Finder{
		log:         f.log,
		maxVertices: f.maxVertices,
		engine:      append([]dijkstra.Option(nil), f.engine...),
		computed:    f.computed,
	}
	if f.graph != nil {
		c.graph = f.graph.Clone()
	}
	if f.table != nil {
		c.table = f.table.Clone()
	}

	return c
}

// Close releases the graph and the table. It is safe to call repeatedly;
// afterwards the Finder behaves as if never built.
func (f *Finder) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.graph != nil {
		f.graph.Clear()
	}
	f.graph = nil
	f.table = nil
	f.computed = 0

	return nil
}
