package event

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/grid"
)

type WaveData struct {
	Wave        int
	TargetCount int
}

type EnemyData struct {
	EnemyID   types.EntityID
	Archetype defs.EnemyArchetype
	Position  grid.Vec3
	Reward    int
	Score     int
}

type ShotData struct {
	TowerID  types.EntityID
	EnemyID  types.EntityID
	Damage   int
	Killed   bool
	Position grid.Vec3 // target position at fire time
}

type ProjectileData struct {
	ProjectileID types.EntityID
	TowerID      types.EntityID
	EnemyID      types.EntityID
	Position     grid.Vec3
}

type TowerData struct {
	TowerID   types.EntityID
	Archetype defs.TowerArchetype
	Cell      grid.Cell
	Level     int
	Amount    int // cost paid, or refund for a sale
}

type RejectionData struct {
	Op     string
	Reason error
}

type SessionData struct {
	Wave    int
	Score   int
	Escapes int
}
