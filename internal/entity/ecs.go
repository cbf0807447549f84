// internal/entity/ecs.go
package entity

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/grid"
	"sort"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Projectiles map[types.EntityID]*component.Projectile
	Wave        *component.Wave
	GameState   component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Wave:        &component.Wave{},
		GameState:   component.NotStarted,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SortedIDs returns the keys of a registry in issue order. Systems iterate
// through it so that ties and event order do not depend on map order.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LiveEnemy resolves an enemy handle, returning nil once the enemy is dead,
// escaped or gone.
func (ecs *ECS) LiveEnemy(id types.EntityID) *component.Enemy {
	enemy, ok := ecs.Enemies[id]
	if !ok || !enemy.Active() {
		return nil
	}
	return enemy
}

// TowerAt finds the tower standing on a cell.
func (ecs *ECS) TowerAt(cell grid.Cell) (types.EntityID, bool) {
	for id, tower := range ecs.Towers {
		if tower.Cell == cell {
			return id, true
		}
	}
	return 0, false
}

func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
}

func (ecs *ECS) RemoveTower(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
}
