package builder

import (
	"fmt"

	"github.com/katalvlaran/allpairs/core"
)

// MinRandomSparseVertices is the smallest n RandomSparse accepts.
const MinRandomSparseVertices = 1

// RandomSparse samples each ordered pair (i,j), i≠j, independently with
// probability p. Trials run i asc then j asc, so a fixed seed gives a fixed
// edge set. An RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(d *core.Description, cfg builderConfig) error {
		if err := checkMin("RandomSparse", n, MinRandomSparseVertices); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		if err := checkRand("RandomSparse", cfg); err != nil {
			return err
		}

		c := begin(d, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				switch {
				case p == 0:
				case p == 1:
					c.edge(i, j)
				case cfg.rng.Float64() < p:
					c.edge(i, j)
				}
			}
		}

		return nil
	}
}
