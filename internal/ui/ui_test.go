package ui

import (
	"go-tower-sim/internal/app"
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"
	"strings"
	"testing"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{
		0:    "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for n, want := range tests {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestTowerDetails(t *testing.T) {
	def := defs.DefaultTowerDefs()[defs.TowerSniper]
	view := app.TowerView{Level: 1, MaxLevel: 2, Damage: 8, Range: 5, FireRate: 0.42, Investment: 85, UpgradeCost: 45, SellValue: 42}

	lines := TowerDetails(view, def)
	if lines[0] != "Sniper Tower" {
		t.Errorf("expected the tower name first, got %q", lines[0])
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Level: 1/2", "Damage: 8", "Upgrade: $45", "Sell: $42"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in %v", want, lines)
		}
	}

	view.Level = 2
	if joined := strings.Join(TowerDetails(view, def), "\n"); !strings.Contains(joined, "Max level") || strings.Contains(joined, "Upgrade") {
		t.Errorf("max level tower should not offer an upgrade: %s", joined)
	}
}

func TestCatalogLine(t *testing.T) {
	def := defs.DefaultTowerDefs()[defs.TowerRapid]
	if got := CatalogLine(3, def, true); got != "[3] Rapid Tower  $65" {
		t.Errorf("unexpected catalog line %q", got)
	}
	if got := CatalogLine(3, def, false); !strings.HasSuffix(got, "(need funds)") {
		t.Errorf("expected a funds hint, got %q", got)
	}
}

func TestStatusLine(t *testing.T) {
	snap := app.Snapshot{Money: 120, Score: 30, Kills: 4, Wave: 2, State: component.Running, WavePhase: component.WaveResting, NextWaveIn: 3.25}
	if got := StatusLine(snap); !strings.Contains(got, "Money: $120") || !strings.Contains(got, "Next wave in 3.2") {
		t.Errorf("unexpected resting status %q", got)
	}

	snap.WavePhase = component.WaveSpawning
	snap.WaveSpawned, snap.WaveTarget = 3, 9
	if got := StatusLine(snap); !strings.Contains(got, "Spawned 3/9") {
		t.Errorf("unexpected spawning status %q", got)
	}
}

func TestSpeedButtonToggle(t *testing.T) {
	b := NewSpeedButton(100, 100, 10, config.SpeedButtonColors)
	if b.Multiplier() != 1 {
		t.Fatalf("expected normal speed first, got %v", b.Multiplier())
	}
	b.Toggle()
	if b.Multiplier() != config.FastForward {
		t.Errorf("expected fast forward, got %v", b.Multiplier())
	}
	b.Toggle()
	if b.Multiplier() != 1 {
		t.Errorf("expected the toggle to wrap around, got %v", b.Multiplier())
	}

	if !b.IsClicked(105, 95) || b.IsClicked(130, 100) {
		t.Error("unexpected hit test")
	}
}

func TestInfoPanelContains(t *testing.T) {
	p := NewInfoPanel(DefaultFace)
	if !p.Contains(config.ScreenWidth-10, config.HUDHeight+10) {
		t.Error("point inside the panel")
	}
	if p.Contains(10, config.HUDHeight+10) || p.Contains(config.ScreenWidth-10, 5) {
		t.Error("points outside the panel")
	}
}

func TestEffectsLifecycle(t *testing.T) {
	fx := NewEffects(config.ProjectileColor, config.HealthGoodColor, config.TextWarnColor)
	fx.Consume([]event.Event{
		{Type: event.ProjectileArrived, Data: event.ProjectileData{}},
		{Type: event.EnemyKilled, Data: event.EnemyData{}},
		{Type: event.TowerFired, Data: event.ShotData{}},
	})
	if fx.Len() != 2 {
		t.Fatalf("expected an impact and a kill ring, got %d", fx.Len())
	}

	fx.Update(0.25)
	if fx.Len() != 1 {
		t.Errorf("impact ring should be gone after 0.25s, %d left", fx.Len())
	}
	fx.Update(0.25)
	if fx.Len() != 0 {
		t.Errorf("kill ring should be gone after 0.5s, %d left", fx.Len())
	}
}

func TestPauseButton(t *testing.T) {
	b := NewPauseButton(100, 20, 10, config.TextLightColor, config.HoverValidColor)
	if b.IsPaused {
		t.Fatal("new button should not be paused")
	}
	b.Toggle()
	if !b.IsPaused {
		t.Error("Toggle should pause")
	}
	b.SetPaused(false)
	if b.IsPaused {
		t.Error("SetPaused(false) should resume")
	}
	if !b.IsClicked(105, 25) {
		t.Error("click near the center should hit")
	}
	if b.IsClicked(140, 20) {
		t.Error("click far outside should miss")
	}
}
