// internal/system/cleanup.go
package system

import (
	"go-tower-sim/internal/economy"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
)

// CleanupSystem runs last in the frame. It settles dead and escaped enemies
// with the ledger and removes them from the live set.
type CleanupSystem struct {
	ecs             *entity.ECS
	ledger          *economy.Ledger
	eventDispatcher *event.Dispatcher
}

func NewCleanupSystem(ecs *entity.ECS, ledger *economy.Ledger, eventDispatcher *event.Dispatcher) *CleanupSystem {
	return &CleanupSystem{
		ecs:             ecs,
		ledger:          ledger,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CleanupSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		if enemy.Active() {
			continue
		}

		data := event.EnemyData{
			EnemyID:   id,
			Archetype: enemy.Archetype,
			Reward:    enemy.Reward,
			Score:     enemy.Score,
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			data.Position = pos.Vec3
		}
		s.ecs.RemoveEnemy(id)

		if !enemy.Alive {
			s.ledger.RecordKill(enemy.Reward, enemy.Score)
			emit(s.eventDispatcher, s.ecs, event.EnemyKilled, data)
			continue
		}
		s.ledger.RecordEscape()
		emit(s.eventDispatcher, s.ecs, event.EnemyEscaped, data)
	}
}
