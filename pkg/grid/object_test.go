package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridObjectDoesNotWriteThrough(t *testing.T) {
	g := NewGrid[*GridObject[int]](Config{Width: 3, Height: 3, CellSize: 1})
	notified := 0
	g.OnValueChanged(func(int, int, *GridObject[int]) { notified++ })

	obj := NewGridObject(g, 1, 2)
	assert.Zero(t, obj.Value())
	g.SetValue(1, 2, obj)
	require.Equal(t, 1, notified)

	obj.SetValue(42)
	assert.Equal(t, 42, obj.Value())
	assert.Equal(t, 1, notified, "mutating the object must not notify grid observers")
	assert.Same(t, obj, g.Value(1, 2))
	assert.Same(t, g, obj.Grid())
	assert.Equal(t, 1, obj.X())
	assert.Equal(t, 2, obj.Y())
	assert.Equal(t, "1,2: 42", obj.String())
}

func TestNewObjectGridFillsEveryCell(t *testing.T) {
	g := NewObjectGrid[string](Config{Width: 4, Height: 2, CellSize: 1})
	g.Each(func(x, y int, obj *GridObject[string]) {
		require.NotNil(t, obj)
		assert.Equal(t, x, obj.X())
		assert.Equal(t, y, obj.Y())
		assert.Same(t, g, obj.Grid())
	})

	g.ValueAt(Vec3{X: 3.2, Y: 1.7}).SetValue("corner")
	assert.Equal(t, "corner", g.Value(3, 1).Value())
	assert.Nil(t, g.Value(4, 1))
}

func TestNewObjectGridDegenerate(t *testing.T) {
	g := NewObjectGrid[int](Config{Width: 0, Height: 3, CellSize: 1})
	assert.Nil(t, g.Value(0, 0))
}
