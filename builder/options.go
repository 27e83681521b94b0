package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// IDFn maps a 0-based position inside a component to a vertex name.
type IDFn func(idx int) string

// WeightFn yields the next edge weight. rng may be nil for deterministic schemes.
type WeightFn func(rng *rand.Rand) int64

// DefaultEdgeWeight is the weight used when no weight option is given.
const DefaultEdgeWeight int64 = 1

type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	random   bool // weightFn draws from rng
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: func(*rand.Rand) int64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex naming function. nil is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// WithRand uses r for every stochastic decision.
func WithRand(r *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) { cfg.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithConstantWeight gives every edge weight w. Negative w panics.
func WithConstantWeight(w int64) BuilderOption {
	if w < 0 {
		panic(fmt.Sprintf("WithConstantWeight: w must be ≥ 0, got %d", w))
	}

	return func(cfg *builderConfig) {
		cfg.weightFn = func(*rand.Rand) int64 { return w }
		cfg.random = false
	}
}

// WithUniformWeight draws weights uniformly from [min, max]. It panics when
// min < 0 or max < min.
func WithUniformWeight(min, max int64) BuilderOption {
	if min < 0 || max < min {
		panic(fmt.Sprintf("WithUniformWeight: need 0 ≤ min ≤ max, got [%d,%d]", min, max))
	}

	return func(cfg *builderConfig) {
		cfg.weightFn = func(rng *rand.Rand) int64 { return min + rng.Int63n(max-min+1) }
		cfg.random = true
	}
}

// DefaultIDFn names vertices "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn names vertices "A".."Z". It panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn names vertices "A".."Z", "AA", "AB", ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
