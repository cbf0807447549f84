package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/grid"
	"math"
)

// CombatSystem drives tower cooldowns, target selection and firing.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update advances every cooldown by deltaTime. A ready tower shoots the
// nearest live enemy in range; with nothing in range the accumulated time is
// kept so it fires as soon as something walks in.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Combats) {
		combat := s.ecs.Combats[id]
		tower, hasTower := s.ecs.Towers[id]
		if !hasTower {
			continue
		}

		if combat.TargetID != 0 && s.ecs.LiveEnemy(combat.TargetID) == nil {
			combat.TargetID = 0
		}

		combat.Cooldown += deltaTime
		if !combat.ReadyToFire() {
			continue
		}

		origin := TowerOrigin(tower)
		targetID, found := s.findTarget(origin, combat.Range)
		if !found {
			continue
		}
		s.fire(id, combat, origin, targetID)
	}
}

// TowerOrigin is the point a tower measures range and fires from.
func TowerOrigin(tower *component.Tower) grid.Vec3 {
	return tower.Cell.Center(config.TowerHeight)
}

// findTarget returns the closest live enemy within rangeRadius. Enemies are
// scanned in ID order and only a strictly closer one replaces the current
// pick, so ties go to the oldest enemy.
func (s *CombatSystem) findTarget(origin grid.Vec3, rangeRadius float64) (types.EntityID, bool) {
	var bestID types.EntityID
	bestDist := math.MaxFloat64
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		if s.ecs.LiveEnemy(id) == nil {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		dist := origin.Distance(pos.Vec3)
		if dist <= rangeRadius && dist < bestDist {
			bestID, bestDist = id, dist
		}
	}
	return bestID, bestID != 0
}

func (s *CombatSystem) fire(towerID types.EntityID, combat *component.Combat, origin grid.Vec3, targetID types.EntityID) {
	targetPos := s.ecs.Positions[targetID].Vec3
	killed := ApplyDamage(s.ecs, targetID, combat.Damage)
	combat.Cooldown = 0
	combat.TargetID = targetID

	emit(s.eventDispatcher, s.ecs, event.TowerFired, event.ShotData{
		TowerID:  towerID,
		EnemyID:  targetID,
		Damage:   combat.Damage,
		Killed:   killed,
		Position: targetPos,
	})

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{Vec3: origin}
	s.ecs.Projectiles[projID] = &component.Projectile{
		SourceID: towerID,
		TargetID: targetID,
		Origin:   origin,
		Speed:    config.ProjectileSpeed,
		Lifetime: config.ProjectileLifetime,
		Damage:   combat.Damage,
	}
	emit(s.eventDispatcher, s.ecs, event.ProjectileSpawned, event.ProjectileData{
		ProjectileID: projID,
		TowerID:      towerID,
		EnemyID:      targetID,
		Position:     origin,
	})
}
