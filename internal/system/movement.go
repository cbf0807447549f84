// internal/system/movement.go
package system

import (
	"go-tower-sim/internal/entity"
)

// MovementSystem walks live enemies along their waypoints.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update moves every live enemy speed*deltaTime along its path. Distance
// left over after reaching a waypoint carries on towards the next one, so
// a long frame does not stall an enemy on a corner. An enemy that passes
// the last waypoint is flagged as escaped.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Paths) {
		enemy := s.ecs.LiveEnemy(id)
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if enemy == nil || !hasPos || !hasVel {
			continue
		}
		path := s.ecs.Paths[id]

		remaining := vel.Speed * deltaTime
		for !path.Finished() && remaining > 0 {
			target := path.Waypoints[path.CurrentIndex]
			dist := pos.Distance(target)
			if dist <= remaining {
				pos.Vec3 = target
				path.CurrentIndex++
				remaining -= dist
				continue
			}
			pos.Vec3, _ = pos.MoveTowards(target, remaining)
			remaining = 0
		}

		if path.Finished() {
			enemy.Escaped = true
		}
	}
}
