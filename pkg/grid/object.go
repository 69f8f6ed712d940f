package grid

import "fmt"

// GridObject gives a cell an identity alongside its payload. It keeps a
// non-owning reference to the grid that holds it.
//
// SetValue only changes the object; it does not write through to the grid,
// so grid observers are not notified.
type GridObject[T any] struct {
	grid  *Grid[*GridObject[T]]
	x, y  int
	value T
}

// NewGridObject creates an object for cell (x, y) of g with a zero value.
func NewGridObject[T any](g *Grid[*GridObject[T]], x, y int) *GridObject[T] {
	return &GridObject[T]{grid: g, x: x, y: y}
}

// NewObjectGrid builds a grid and fills each cell with its own GridObject.
// The fill happens before any observer can subscribe.
func NewObjectGrid[T any](cfg Config) *Grid[*GridObject[T]] {
	g := NewGrid[*GridObject[T]](cfg)
	for i := range g.data {
		g.data[i] = NewGridObject(g, i%g.w, i/g.w)
	}
	return g
}

func (o *GridObject[T]) X() int                      { return o.x }
func (o *GridObject[T]) Y() int                      { return o.y }
func (o *GridObject[T]) Grid() *Grid[*GridObject[T]] { return o.grid }

func (o *GridObject[T]) SetValue(value T) { o.value = value }
func (o *GridObject[T]) Value() T         { return o.value }

func (o *GridObject[T]) String() string {
	return fmt.Sprintf("%d,%d: %v", o.x, o.y, o.value)
}
