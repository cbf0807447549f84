// internal/system/state.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/economy"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"log"
)

// StateSystem owns the session phase. It ends the session on the frame an
// escape uses up the ledger's escape budget.
type StateSystem struct {
	ecs             *entity.ECS
	ledger          *economy.Ledger
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewStateSystem(ecs *entity.ECS, ledger *economy.Ledger, eventDispatcher *event.Dispatcher, logger *log.Logger) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		ledger:          ledger,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Update runs after cleanup has settled the frame's escapes.
func (s *StateSystem) Update(deltaTime float64) {
	if s.Running() && s.ledger.Exhausted() {
		s.End()
	}
}

// Start moves a fresh session into Running. It reports false if the
// session was already started.
func (s *StateSystem) Start() bool {
	if s.ecs.GameState != component.NotStarted {
		return false
	}
	s.ecs.GameState = component.Running
	s.logger.Println("Session started")
	emit(s.eventDispatcher, s.ecs, event.SessionStarted, s.summary())
	return true
}

// End moves a running session into the terminal Ended phase.
func (s *StateSystem) End() bool {
	if s.ecs.GameState != component.Running {
		return false
	}
	s.ecs.GameState = component.Ended
	s.logger.Printf("Session ended at wave %d with score %d", s.ledger.Wave(), s.ledger.Score())
	emit(s.eventDispatcher, s.ecs, event.SessionEnded, s.summary())
	return true
}

func (s *StateSystem) Running() bool {
	return s.ecs.GameState == component.Running
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}

func (s *StateSystem) summary() event.SessionData {
	return event.SessionData{
		Wave:    s.ledger.Wave(),
		Score:   s.ledger.Score(),
		Escapes: s.ledger.Escapes(),
	}
}
