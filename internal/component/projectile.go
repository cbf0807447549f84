// internal/component/projectile.go
package component

import (
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/grid"
)

// Projectile is a cosmetic shot homing on its target. The damage it
// represents was applied when the tower fired.
type Projectile struct {
	SourceID types.EntityID
	TargetID types.EntityID
	Origin   grid.Vec3
	Speed    float64
	Lifetime float64 // seconds left before the projectile fizzles
	Damage   int
}
