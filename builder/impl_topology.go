package builder

import "github.com/katalvlaran/allpairs/core"

// Minimum sizes per topology.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinGridDim       = 1
)

// Path builds 0→1→…→n-1 (n ≥ 2).
func Path(n int) Constructor {
	return func(d *core.Description, cfg builderConfig) error {
		if err := checkMin("Path", n, MinPathNodes); err != nil {
			return err
		}
		if err := checkRand("Path", cfg); err != nil {
			return err
		}
		c := begin(d, cfg, n)
		for i := 0; i+1 < n; i++ {
			c.edge(i, i+1)
		}

		return nil
	}
}

// Cycle builds a directed ring (n ≥ 3); edges are emitted as i→(i+1)%n.
func Cycle(n int) Constructor {
	return func(d *core.Description, cfg builderConfig) error {
		if err := checkMin("Cycle", n, MinCycleNodes); err != nil {
			return err
		}
		if err := checkRand("Cycle", cfg); err != nil {
			return err
		}
		c := begin(d, cfg, n)
		for i := 0; i < n; i++ {
			c.edge(i, (i+1)%n)
		}

		return nil
	}
}

// Star builds center 0 with n-1 leaves; each spoke is emitted out then back.
func Star(n int) Constructor {
	return func(d *core.Description, cfg builderConfig) error {
		if err := checkMin("Star", n, MinStarNodes); err != nil {
			return err
		}
		if err := checkRand("Star", cfg); err != nil {
			return err
		}
		c := begin(d, cfg, n)
		for leaf := 1; leaf < n; leaf++ {
			c.edge(0, leaf)
			c.edge(leaf, 0)
		}

		return nil
	}
}

// Complete builds every ordered pair i≠j, i asc then j asc.
func Complete(n int) Constructor {
	return func(d *core.Description, cfg builderConfig) error {
		if err := checkMin("Complete", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := checkRand("Complete", cfg); err != nil {
			return err
		}
		c := begin(d, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					c.edge(i, j)
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice. Vertex r*cols+c is cell (r,c); every
// horizontal and vertical neighbour pair gets an edge in both directions.
func Grid(rows, cols int) Constructor {
	return func(d *core.Description, cfg builderConfig) error {
		if err := checkMin("Grid", rows, MinGridDim); err != nil {
			return err
		}
		if err := checkMin("Grid", cols, MinGridDim); err != nil {
			return err
		}
		if err := checkRand("Grid", cfg); err != nil {
			return err
		}
		c := begin(d, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				u := r*cols + col
				if col+1 < cols {
					c.edge(u, u+1)
					c.edge(u+1, u)
				}
				if r+1 < rows {
					c.edge(u, u+cols)
					c.edge(u+cols, u)
				}
			}
		}

		return nil
	}
}
