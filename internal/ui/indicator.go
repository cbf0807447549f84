// internal/ui/indicator.go
package ui

import (
	"go-tower-sim/internal/component"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is a pulsing dot showing whether a wave is on.
type StateIndicator struct {
	X, Y        float32
	Radius      float32
	LastChange  time.Time
	RestColor   color.RGBA
	WaveColor   color.RGBA
	EndedColor  color.RGBA
	lastPhase   component.WavePhase
	initialized bool
}

func NewStateIndicator(x, y, radius float32, rest, wave, ended color.RGBA) *StateIndicator {
	return &StateIndicator{
		X:          x,
		Y:          y,
		Radius:     radius,
		RestColor:  rest,
		WaveColor:  wave,
		EndedColor: ended,
	}
}

// Color picks the dot color for a session and wave phase.
func (i *StateIndicator) Color(state component.GameState, phase component.WavePhase) color.RGBA {
	switch {
	case state == component.Ended:
		return i.EndedColor
	case phase == component.WaveSpawning:
		return i.WaveColor
	}
	return i.RestColor
}

// Draw bumps the dot briefly whenever the wave phase changes.
func (i *StateIndicator) Draw(screen *ebiten.Image, state component.GameState, phase component.WavePhase) {
	if !i.initialized || phase != i.lastPhase {
		i.lastPhase = phase
		i.initialized = true
		i.LastChange = time.Now()
	}
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, i.Color(state, phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
