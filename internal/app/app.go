package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/allpairs/core"
	"github.com/katalvlaran/allpairs/dijkstra"
	"github.com/katalvlaran/allpairs/loader"
	"github.com/katalvlaran/allpairs/pathfinder"
	"github.com/katalvlaran/allpairs/report"
)

// App runs the tool for one configuration.
type App struct {
	out    io.Writer // reports
	errOut io.Writer // user-facing error lines
	cfg    *Config
	log    *slog.Logger
}

// NewApp returns an App writing reports to out and error lines to errOut.
func NewApp(out, errOut io.Writer, cfg *Config, logger *slog.Logger) *App {
	return &App{out: out, errOut: errOut, cfg: cfg, log: logger}
}

// Run loads every graph in the input and processes them in order.
// Query and edit failures are reported on errOut and do not fail the run.
func (a *App) Run() error {
	descs, err := loader.Open(a.cfg.InputPath, a.cfg.Format)
	if err != nil {
		return err
	}
	a.log.Info("input loaded", "path", a.cfg.InputPath, "graphs", len(descs))

	for i, desc := range descs {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		if err = a.runGraph(i+1, desc); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) runGraph(n int, desc core.Description) error {
	log := a.log.With("graph", n)
	opts := []pathfinder.Option{
		pathfinder.WithLogger(log),
		pathfinder.WithMaxVertices(a.cfg.MaxVertices),
	}
	if a.cfg.LegacyScan {
		opts = append(opts, pathfinder.WithEngineOptions(dijkstra.WithLegacyScanBound()))
	}
	f := pathfinder.New(opts...)
	defer f.Close()

	if err := f.Build(desc); err != nil {
		// A graph that cannot be built is reported and skipped; later graphs still run.
		fmt.Fprintf(a.errOut, "Error: graph %d: %v\n", n, err)
		return nil
	}
	if err := a.report(f); err != nil {
		return err
	}
	if len(a.cfg.Edits) == 0 {
		return nil
	}

	baseline := f.Clone()
	defer baseline.Close()
	for _, e := range a.cfg.Edits {
		var err error
		switch e.Op {
		case OpInsert:
			err = f.InsertEdge(e.From, e.To, e.Weight)
		case OpRemove:
			err = f.RemoveEdge(e.From, e.To)
		}
		if err != nil {
			fmt.Fprintln(a.errOut, report.ErrorMessage(err, e.From, e.To))
		}
	}
	if !f.Stale() {
		log.Info("edits left the graph unchanged")
		return nil
	}

	fmt.Fprintln(a.out)
	if err := a.report(f); err != nil {
		return err
	}
	log.Info("edits applied", "edits", len(a.cfg.Edits), "changed_pairs", changedPairs(baseline, f))

	return nil
}

// report computes the table and writes the configured reports.
func (a *App) report(f *pathfinder.Finder) error {
	if err := f.FindShortestPaths(); err != nil {
		return err
	}
	if !a.cfg.SkipTable {
		if err := report.WriteAll(a.out, f); err != nil {
			return err
		}
	}
	for _, q := range a.cfg.Queries {
		if err := report.WritePath(a.out, f, q.From, q.To); err != nil {
			fmt.Fprintln(a.errOut, report.ErrorMessage(err, q.From, q.To))
		}
	}

	return nil
}

// changedPairs counts (source, destination) pairs whose distance differs.
func changedPairs(before, after *pathfinder.Finder) int {
	n := after.Size()
	changed := 0
	for s := 1; s <= n; s++ {
		for d := 1; d <= n; d++ {
			x, _ := before.Dist(s, d)
			y, _ := after.Dist(s, d)
			if x != y {
				changed++
			}
		}
	}

	return changed
}
