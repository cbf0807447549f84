package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/event"
	"go-tower-sim/pkg/grid"
	"testing"
)

func TestCleanupCreditsKillsOnce(t *testing.T) {
	w := newWorld()
	id := w.addEnemy(100, 0, grid.Vec3{X: 1}, grid.Vec3{X: 10})
	s := NewCleanupSystem(w.ecs, w.ledger, w.dispatcher)

	for i := 0; i < 3; i++ {
		ApplyDamage(w.ecs, id, 40)
	}
	s.Update(0.25)
	s.Update(0.25)

	if _, ok := w.ecs.Enemies[id]; ok {
		t.Fatal("dead enemy should be removed")
	}
	if w.ledger.Money() != 210 || w.ledger.Score() != 5 || w.ledger.Kills() != 1 {
		t.Errorf("expected one kill credited, got money=%d score=%d kills=%d",
			w.ledger.Money(), w.ledger.Score(), w.ledger.Kills())
	}
	if n := w.countEvents(event.EnemyKilled); n != 1 {
		t.Errorf("expected one EnemyKilled, got %d", n)
	}
}

func TestCleanupKeepsLiveEnemies(t *testing.T) {
	w := newWorld()
	id := w.addEnemy(100, 0, grid.Vec3{X: 1}, grid.Vec3{X: 10})
	ApplyDamage(w.ecs, id, 40)

	NewCleanupSystem(w.ecs, w.ledger, w.dispatcher).Update(0.25)
	if _, ok := w.ecs.Enemies[id]; !ok {
		t.Fatal("wounded enemy must stay in play")
	}
	if w.ledger.Money() != 200 {
		t.Errorf("no reward for a wounded enemy, money=%d", w.ledger.Money())
	}
}

func TestEscapesEndTheSession(t *testing.T) {
	w := newWorld()
	w.ecs.GameState = component.NotStarted
	state := NewStateSystem(w.ecs, w.ledger, w.dispatcher, w.logger)
	cleanup := NewCleanupSystem(w.ecs, w.ledger, w.dispatcher)

	if !state.Start() || state.Start() {
		t.Fatal("Start should succeed exactly once")
	}

	for i := 0; i < 3; i++ {
		if state.Current() != component.Running {
			t.Fatalf("session ended after only %d escapes", i)
		}
		id := w.addEnemy(10, 0, grid.Vec3{}, grid.Vec3{X: 1})
		w.ecs.Enemies[id].Escaped = true
		cleanup.Update(0.25)
		state.Update(0.25)
	}

	if state.Current() != component.Ended {
		t.Fatalf("expected Ended after 3 escapes, got %v", state.Current())
	}
	if w.ledger.Escapes() != 3 || w.ledger.LivesRemaining() != 0 {
		t.Errorf("unexpected escape tally %d", w.ledger.Escapes())
	}
	if w.ledger.Money() != 200 {
		t.Errorf("escapes must not pay out, money=%d", w.ledger.Money())
	}

	events := w.events.Drain()
	var escaped, ended int
	for _, e := range events {
		switch e.Type {
		case event.EnemyEscaped:
			escaped++
		case event.SessionEnded:
			ended++
			if data := e.Data.(event.SessionData); data.Escapes != 3 {
				t.Errorf("session summary should report 3 escapes, got %d", data.Escapes)
			}
		}
	}
	if escaped != 3 || ended != 1 {
		t.Errorf("expected 3 EnemyEscaped and 1 SessionEnded, got %d and %d", escaped, ended)
	}
	if state.End() {
		t.Error("an ended session cannot end again")
	}
}
