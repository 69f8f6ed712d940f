package core

import (
	"math/rand/v2"

	"gridsys/pkg/grid"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Pick returns a random element of values, or the zero value when empty.
func Pick[T any](r *RNG, values []T) T {
	if len(values) == 0 {
		var zero T
		return zero
	}
	return values[r.r.IntN(len(values))]
}

// WorldPoint returns a uniformly distributed point inside the world-space
// footprint of g, including a margin of cells outside every edge so callers
// also exercise out-of-bounds positions.
func WorldPoint[T any](r *RNG, g *grid.Grid[T], margin int) grid.Vec3 {
	x := r.r.Float64()*float64(g.Width()+2*margin) - float64(margin)
	y := r.r.Float64()*float64(g.Height()+2*margin) - float64(margin)
	return g.WorldPositionAt(x, y)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
