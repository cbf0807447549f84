// internal/ui/effects.go
package ui

import (
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/grid"
	"go-tower-sim/pkg/render"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	impactDuration = 0.15
	killDuration   = 0.4
	impactRadius   = 8.0
	killRadius     = 22.0
)

// effect is a short expanding ring at a world point.
type effect struct {
	Pos       grid.Vec3
	Timer     float64
	Duration  float64
	MaxRadius float64
	Color     color.RGBA
}

// Effects turns simulation events into short-lived rings: one per
// projectile impact, a larger one per kill and per escape.
type Effects struct {
	active      []effect
	ImpactColor color.RGBA
	KillColor   color.RGBA
	EscapeColor color.RGBA
}

func NewEffects(impact, kill, escape color.RGBA) *Effects {
	return &Effects{ImpactColor: impact, KillColor: kill, EscapeColor: escape}
}

// Consume starts an effect for every event that has one.
func (e *Effects) Consume(events []event.Event) {
	for _, ev := range events {
		switch ev.Type {
		case event.ProjectileArrived:
			data := ev.Data.(event.ProjectileData)
			e.add(data.Position, impactDuration, impactRadius, e.ImpactColor)
		case event.EnemyKilled:
			data := ev.Data.(event.EnemyData)
			e.add(data.Position, killDuration, killRadius, e.KillColor)
		case event.EnemyEscaped:
			data := ev.Data.(event.EnemyData)
			e.add(data.Position, killDuration, killRadius, e.EscapeColor)
		}
	}
}

func (e *Effects) add(pos grid.Vec3, duration, radius float64, clr color.RGBA) {
	e.active = append(e.active, effect{Pos: pos, Duration: duration, MaxRadius: radius, Color: clr})
}

// Update ages the effects and drops finished ones.
func (e *Effects) Update(deltaTime float64) {
	kept := e.active[:0]
	for _, fx := range e.active {
		fx.Timer += deltaTime
		if fx.Timer < fx.Duration {
			kept = append(kept, fx)
		}
	}
	e.active = kept
}

func (e *Effects) Len() int {
	return len(e.active)
}

func (e *Effects) Draw(screen *ebiten.Image, proj render.Projection) {
	for _, fx := range e.active {
		progress := float32(utils.Clamp01(fx.Timer / fx.Duration))
		x, y := proj.WorldToScreen(fx.Pos)
		clr := fx.Color
		clr.A = uint8(utils.Lerp(float32(clr.A), 0, progress))
		vector.StrokeCircle(screen, x, y, utils.Lerp(1, float32(fx.MaxRadius), progress), 2, clr, true)
	}
}
