// pkg/render/grid_renderer.go
package render

import (
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/grid"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridRenderer draws the map and the primitives entities are made of.
// The static map is rendered once into an offscreen image.
type GridRenderer struct {
	path         *grid.Path
	proj         Projection
	colors       MapColors
	health       HealthColors
	screenWidth  int
	screenHeight int
	mapImage     *ebiten.Image
}

func NewGridRenderer(path *grid.Path, proj Projection, screenWidth, screenHeight int, colors MapColors, health HealthColors) *GridRenderer {
	return &GridRenderer{
		path:         path,
		proj:         proj,
		colors:       colors,
		health:       health,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

func (r *GridRenderer) Projection() Projection {
	return r.proj
}

// RenderMapImage draws the ground, the buildable cells and the route into
// the cached map image.
func (r *GridRenderer) RenderMapImage() {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	}
	r.mapImage.Fill(r.colors.BackgroundColor)

	lo, hi := r.path.Bounds()
	for z := lo.Z; z <= hi.Z; z++ {
		for x := lo.X; x <= hi.X; x++ {
			r.fillCell(r.mapImage, grid.Cell{X: x, Z: z}, r.colors.GroundColor)
		}
	}
	for _, c := range r.path.BuildableCells() {
		r.fillCell(r.mapImage, c, r.colors.BuildableColor)
		r.strokeCell(r.mapImage, c, DarkenColor(r.colors.BuildableColor))
	}
	for _, c := range r.path.PathCells() {
		r.fillCell(r.mapImage, c, r.colors.PathColor)
	}

	wps := r.path.Waypoints()
	for i := 0; i < len(wps)-1; i++ {
		x0, y0 := r.proj.WorldToScreen(wps[i])
		x1, y1 := r.proj.WorldToScreen(wps[i+1])
		vector.StrokeLine(r.mapImage, x0, y0, x1, y1, r.colors.StrokeWidth, DarkenColor(r.colors.PathColor), true)
	}
}

// DrawMap blits the cached map, rendering it first if needed.
func (r *GridRenderer) DrawMap(screen *ebiten.Image) {
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, &ebiten.DrawImageOptions{})
}

// DrawCellHighlight tints one cell, used for the placement preview.
func (r *GridRenderer) DrawCellHighlight(screen *ebiten.Image, c grid.Cell, clr color.Color) {
	r.fillCell(screen, c, clr)
}

// DrawRange outlines a tower's reach around a world point.
func (r *GridRenderer) DrawRange(screen *ebiten.Image, center grid.Vec3, radius float64, clr color.Color) {
	x, y := r.proj.WorldToScreen(center)
	vector.StrokeCircle(screen, x, y, float32(radius*r.proj.CellSize), r.colors.StrokeWidth, clr, true)
}

// DrawTower draws a tower body with one pip per upgrade level and an aim
// line towards its target, if any.
func (r *GridRenderer) DrawTower(screen *ebiten.Image, c grid.Cell, radius float32, fill color.Color, level int, aim *grid.Vec3, selected bool, selectedColor color.Color) {
	x, y := r.proj.CellToScreen(c)
	if aim != nil {
		ax, ay := r.proj.WorldToScreen(*aim)
		dx, dy := float64(ax-x), float64(ay-y)
		if l := math.Hypot(dx, dy); l > 0 {
			ex := x + float32(dx/l)*radius*1.4
			ey := y + float32(dy/l)*radius*1.4
			vector.StrokeLine(screen, x, y, ex, ey, r.colors.StrokeWidth*2, r.colors.StrokeColor, true)
		}
	}

	stroke := color.Color(r.colors.StrokeColor)
	if selected {
		stroke = selectedColor
	}
	vector.DrawFilledCircle(screen, x, y, radius+r.colors.StrokeWidth, stroke, true)
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)

	for i := 0; i < level; i++ {
		px := x - radius/2 + float32(i)*radius/2
		vector.DrawFilledCircle(screen, px, y+radius+5, 2.5, r.colors.StrokeColor, true)
	}
}

// DrawEnemy draws an enemy with a health bar above it.
func (r *GridRenderer) DrawEnemy(screen *ebiten.Image, pos grid.Vec3, radius float32, fill color.Color, health, maxHealth int) {
	x, y := r.proj.WorldToScreen(pos)
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	vector.StrokeCircle(screen, x, y, radius, 1, r.colors.StrokeColor, true)

	if maxHealth <= 0 {
		return
	}
	ratio := utils.Clamp01(float64(health) / float64(maxHealth))
	barW := radius * 2
	barX, barY := x-radius, y-radius-6
	vector.DrawFilledRect(screen, barX, barY, barW, 3, r.health.Back, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(ratio), 3, r.health.Pick(ratio), false)
}

func (r *GridRenderer) DrawProjectile(screen *ebiten.Image, pos grid.Vec3, radius float32, clr color.Color) {
	x, y := r.proj.WorldToScreen(pos)
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
}

func (r *GridRenderer) fillCell(dst *ebiten.Image, c grid.Cell, clr color.Color) {
	x, y := r.proj.CellToScreen(c)
	half := float32(r.proj.CellSize / 2)
	vector.DrawFilledRect(dst, x-half+1, y-half+1, half*2-2, half*2-2, clr, false)
}

func (r *GridRenderer) strokeCell(dst *ebiten.Image, c grid.Cell, clr color.Color) {
	x, y := r.proj.CellToScreen(c)
	half := float32(r.proj.CellSize / 2)
	vector.StrokeRect(dst, x-half+1, y-half+1, half*2-2, half*2-2, 1, clr, false)
}
