package component

import "go-tower-sim/internal/defs"

// Enemy represents an enemy entity.
type Enemy struct {
	Archetype defs.EnemyArchetype
	Wave      int // wave the enemy was spawned in
	Reward    int // currency granted on kill
	Score     int // score granted on kill
	Alive     bool
	Escaped   bool // reached the end of the path alive
}

// Active reports whether the enemy is still a valid target.
func (e *Enemy) Active() bool {
	return e.Alive && !e.Escaped
}
