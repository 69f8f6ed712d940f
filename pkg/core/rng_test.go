package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsys/pkg/grid"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(99), NewRNG(99)
	values := []int{1, 2, 3, 4, 5, 6, 7}
	for i := 0; i < 50; i++ {
		assert.Equal(t, Pick(a, values), Pick(b, values))
	}
}

func TestPick(t *testing.T) {
	r := NewRNG(1)
	assert.Equal(t, "", Pick[string](r, nil))
	assert.Contains(t, []string{"a", "b"}, Pick(r, []string{"a", "b"}))
}

func TestWorldPointStaysNearGrid(t *testing.T) {
	r := NewRNG(3)
	for _, conv := range []grid.CoordinateConverter{grid.VerticalConverter{}, grid.HorizontalConverter{}} {
		g := grid.NewGrid[int](grid.Config{Width: 4, Height: 6, CellSize: 0.5, Origin: grid.Vec3{X: 2, Y: 1, Z: -1}, Converter: conv})
		inside := 0
		for i := 0; i < 500; i++ {
			x, y := g.XY(WorldPoint(r, g, 1))
			assert.True(t, x >= -1 && x <= 4 && y >= -1 && y <= 6, "cell (%d,%d)", x, y)
			if g.InBounds(x, y) {
				inside++
			}
		}
		assert.Positive(t, inside)
		assert.Less(t, inside, 500)
	}
}
