// internal/ui/lives_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 4.0
)

// LivesIndicator shows the escape budget as a grid of circles, one per
// enemy the player can still let through.
type LivesIndicator struct {
	X, Y      float32
	Face      font.Face
	FullColor color.RGBA
	LowColor  color.RGBA
}

func NewLivesIndicator(x, y float32, face font.Face, full, low color.RGBA) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Face: face, FullColor: full, LowColor: low}
}

// cellOrigin is the top-left corner of the j-th circle.
func (i *LivesIndicator) cellOrigin(j int) (float32, float32) {
	row, col := j/LivesCols, j%LivesCols
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	return i.X + float32(col)*step, i.Y + float32(row)*step
}

// Draw fills one circle per remaining life. Once half the budget is gone
// the remaining ones turn to the low color.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	fill := i.FullColor
	if lives*2 <= maxLives {
		fill = i.LowColor
	}
	for j := 0; j < maxLives; j++ {
		x, y := i.cellOrigin(j)
		cx, cy := x+LivesCircleRadius, y+LivesCircleRadius
		if j < lives {
			vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, fill, true)
		} else {
			vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, color.Black, true)
		}
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}

	label := fmt.Sprintf("%d/%d", lives, maxLives)
	text.Draw(screen, label, i.Face, int(i.X), int(i.Y)-4, color.White)
}

// Height is the vertical space the grid takes for a given budget.
func (i *LivesIndicator) Height(maxLives int) float32 {
	rows := (maxLives + LivesCols - 1) / LivesCols
	return float32(rows) * (LivesCircleRadius*2 + LivesCircleSpacing)
}
