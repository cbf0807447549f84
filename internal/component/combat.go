package component

import "go-tower-sim/internal/types"

// Health is the hit points of an enemy
type Health struct {
	Value int
	Max   int
}

// Combat is the firing state of a tower
type Combat struct {
	Damage   int
	Range    float64
	FireRate float64 // shots per second
	Cooldown float64 // seconds accumulated since the last shot
	TargetID types.EntityID
}

// ReadyToFire reports whether enough time has passed for the next shot.
func (c *Combat) ReadyToFire() bool {
	return c.FireRate > 0 && c.Cooldown >= 1.0/c.FireRate
}
