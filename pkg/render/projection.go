// pkg/render/projection.go
package render

import "go-tower-sim/pkg/grid"

// Projection maps the XZ plane of the world onto the screen, looking down
// the Y axis. World Z grows downwards on screen.
type Projection struct {
	CellSize float64
	OriginX  float64 // screen position of world (0, 0)
	OriginY  float64
}

// NewProjection centres the world origin in the given screen rectangle.
func NewProjection(cellSize float64, left, top, width, height int) Projection {
	return Projection{
		CellSize: cellSize,
		OriginX:  float64(left) + float64(width)/2,
		OriginY:  float64(top) + float64(height)/2,
	}
}

// WorldToScreen projects a world point, dropping its height.
func (p Projection) WorldToScreen(v grid.Vec3) (float32, float32) {
	return float32(p.OriginX + v.X*p.CellSize), float32(p.OriginY + v.Z*p.CellSize)
}

// CellToScreen returns the screen centre of a cell.
func (p Projection) CellToScreen(c grid.Cell) (float32, float32) {
	return p.WorldToScreen(c.Center(0))
}

// ScreenToCell finds the cell under a screen pixel.
func (p Projection) ScreenToCell(x, y int) grid.Cell {
	world := grid.Vec3{
		X: (float64(x) - p.OriginX) / p.CellSize,
		Z: (float64(y) - p.OriginY) / p.CellSize,
	}
	return world.Cell()
}
