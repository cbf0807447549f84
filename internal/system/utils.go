// internal/system/utils.go
package system

import (
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// ApplyDamage lowers an enemy's health and marks it dead once health
// reaches zero. It reports true only on the hit that kills. Dead or
// escaped enemies and negative damage are ignored, so health never rises.
func ApplyDamage(ecs *entity.ECS, enemyID types.EntityID, damage int) bool {
	enemy := ecs.LiveEnemy(enemyID)
	health, hasHealth := ecs.Healths[enemyID]
	if enemy == nil || !hasHealth || damage <= 0 {
		return false
	}

	health.Value -= damage
	if health.Value > 0 {
		return false
	}
	health.Value = 0
	enemy.Alive = false
	return true
}

// emit stamps an event with the current simulated time and dispatches it.
func emit(d *event.Dispatcher, ecs *entity.ECS, t event.EventType, data interface{}) {
	d.Dispatch(event.Event{Type: t, Time: ecs.GameTime, Data: data})
}
