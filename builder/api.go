package builder

import (
	"fmt"

	"github.com/katalvlaran/allpairs/core"
)

// Constructor appends one component to d using the resolved config.
// Constructors validate parameters before touching d.
type Constructor func(d *core.Description, cfg builderConfig) error

// BuildDescription resolves opts and applies cons in order to an empty
// Description. Constructor errors are wrapped with "BuildDescription: %w".
func BuildDescription(opts []BuilderOption, cons ...Constructor) (core.Description, error) {
	cfg := newBuilderConfig(opts...)

	var d core.Description
	for i, fn := range cons {
		if fn == nil {
			return core.Description{}, fmt.Errorf("BuildDescription: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&d, cfg); err != nil {
			return core.Description{}, fmt.Errorf("BuildDescription: %w", err)
		}
	}

	return d, nil
}

// component tracks where a constructor's vertices start inside d.
type component struct {
	d    *core.Description
	cfg  builderConfig
	base int
}

// begin appends n vertices named by cfg.idFn.
func begin(d *core.Description, cfg builderConfig, n int) component {
	c := component{d: d, cfg: cfg, base: len(d.Names)}
	for i := 0; i < n; i++ {
		d.Names = append(d.Names, cfg.idFn(i))
	}

	return c
}

// edge appends the triple for local indices u→v.
func (c component) edge(u, v int) {
	c.d.Edges = append(c.d.Edges, core.EdgeSpec{
		From:   c.base + u + 1,
		To:     c.base + v + 1,
		Weight: c.cfg.weightFn(c.cfg.rng),
	})
}

func checkMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}

func checkRand(method string, cfg builderConfig) error {
	if cfg.random && cfg.rng == nil {
		return fmt.Errorf("%s: random weights: %w", method, ErrNeedRandSource)
	}

	return nil
}
