// internal/ui/speed_button.go
package ui

import (
	"go-tower-sim/internal/config"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is the source texture for flat-colored triangles.
var whitePixel *ebiten.Image

// SpeedButton toggles fast-forward. It is drawn as two "play" triangles.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// Multiplier is the factor applied to the frame delta.
func (b *SpeedButton) Multiplier() float64 {
	if b.CurrentState == 0 {
		return 1
	}
	return config.FastForward
}

func (b *SpeedButton) Toggle() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}

// IsClicked uses a circle for hit testing since the shape is irregular.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState]
	height := size * 1.2
	width := size
	offset := width * 0.8

	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, clr)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, clr)
}

func drawTriangle(screen *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.RGBA) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: x1, DstY: y1, SrcX: 0, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: x2, DstY: y2, SrcX: 0, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
