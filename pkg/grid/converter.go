package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownConverter is returned by ConverterByName for unrecognised names.
var ErrUnknownConverter = errors.New("unknown coordinate converter")

// CoordinateConverter maps between world space and integer grid coordinates.
// Implementations differ in which world axes feed grid X and Y.
type CoordinateConverter interface {
	WorldToGrid(pos Vec3, cellSize float64, origin Vec3) Vec2i
	GridToWorld(x, y int, cellSize float64, origin Vec3) Vec3
	GridToWorldCenter(x, y int, cellSize float64, origin Vec3) Vec3

	// PlaneCoords returns the two world components that feed grid X and Y.
	PlaneCoords(pos Vec3) (u, v float64)

	// Forward is the facing direction for debug labels.
	Forward() Vec3
}

// VerticalConverter lays the grid on the world XY plane.
type VerticalConverter struct{}

func (VerticalConverter) PlaneCoords(pos Vec3) (float64, float64) { return pos.X, pos.Y }

func (c VerticalConverter) WorldToGrid(pos Vec3, cellSize float64, origin Vec3) Vec2i {
	return floorCell(c, pos, cellSize, origin)
}

func (VerticalConverter) GridToWorld(x, y int, cellSize float64, origin Vec3) Vec3 {
	return Vec3{X: float64(x), Y: float64(y)}.Scale(cellSize).Add(origin)
}

func (c VerticalConverter) GridToWorldCenter(x, y int, cellSize float64, origin Vec3) Vec3 {
	half := cellSize * 0.5
	return c.GridToWorld(x, y, cellSize, origin).Add(Vec3{X: half, Y: half})
}

func (VerticalConverter) Forward() Vec3 { return Vec3{Z: 1} }

// HorizontalConverter lays the grid on the world XZ plane, the usual ground
// layout for top-down maps.
type HorizontalConverter struct{}

func (HorizontalConverter) PlaneCoords(pos Vec3) (float64, float64) { return pos.X, pos.Z }

func (c HorizontalConverter) WorldToGrid(pos Vec3, cellSize float64, origin Vec3) Vec2i {
	return floorCell(c, pos, cellSize, origin)
}

func (HorizontalConverter) GridToWorld(x, y int, cellSize float64, origin Vec3) Vec3 {
	return Vec3{X: float64(x), Z: float64(y)}.Scale(cellSize).Add(origin)
}

func (c HorizontalConverter) GridToWorldCenter(x, y int, cellSize float64, origin Vec3) Vec3 {
	half := cellSize * 0.5
	return c.GridToWorld(x, y, cellSize, origin).Add(Vec3{X: half, Z: half})
}

func (HorizontalConverter) Forward() Vec3 { return Vec3{Y: -1} }

// boundarySnap is the relative tolerance within which a scaled coordinate is
// treated as lying exactly on a cell boundary.
const boundarySnap = 1e-9

// floorCell floors rather than truncates so points just before the origin
// land in cell -1 instead of 0.
func floorCell(c CoordinateConverter, pos Vec3, cellSize float64, origin Vec3) Vec2i {
	u, v := c.PlaneCoords(pos.Sub(origin))
	return Vec2i{
		X: floorIndex(u / cellSize),
		Y: floorIndex(v / cellSize),
	}
}

// floorIndex floors q, first snapping it to the nearest integer when rounding
// error from x*cellSize/cellSize left it a hair below a boundary.
func floorIndex(q float64) int {
	r := math.Round(q)
	if math.Abs(q-r) <= boundarySnap*math.Max(1, math.Abs(r)) {
		return int(r)
	}
	return int(math.Floor(q))
}

// ConverterByName resolves "vertical" or "horizontal". An empty name yields
// the vertical default.
func ConverterByName(name string) (CoordinateConverter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "vertical":
		return VerticalConverter{}, nil
	case "horizontal":
		return HorizontalConverter{}, nil
	default:
		return nil, fmt.Errorf("converter %q: %w", name, ErrUnknownConverter)
	}
}
