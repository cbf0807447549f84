// internal/system/projectile.go
package system

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// ProjectileSystem flies shots towards their targets. Shots are purely
// visual: the damage was dealt when the tower fired.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	type removal struct {
		id     types.EntityID
		reason event.EventType
	}
	var removals []removal

	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		proj.Lifetime -= deltaTime

		if pos == nil || proj.Lifetime <= 0 || s.ecs.LiveEnemy(proj.TargetID) == nil {
			removals = append(removals, removal{id, event.ProjectileExpired})
			continue
		}
		targetPos, ok := s.ecs.Positions[proj.TargetID]
		if !ok {
			removals = append(removals, removal{id, event.ProjectileExpired})
			continue
		}

		pos.Vec3, _ = pos.MoveTowards(targetPos.Vec3, proj.Speed*deltaTime)
		if pos.Distance(targetPos.Vec3) < config.ProjectileArrivalEpsilon {
			removals = append(removals, removal{id, event.ProjectileArrived})
		}
	}

	for _, r := range removals {
		s.remove(r.id, r.reason)
	}
}

func (s *ProjectileSystem) remove(id types.EntityID, reason event.EventType) {
	proj := s.ecs.Projectiles[id]
	data := event.ProjectileData{
		ProjectileID: id,
		TowerID:      proj.SourceID,
		EnemyID:      proj.TargetID,
	}
	if pos, ok := s.ecs.Positions[id]; ok {
		data.Position = pos.Vec3
	}
	s.ecs.RemoveProjectile(id)
	emit(s.eventDispatcher, s.ecs, reason, data)
}
