package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefinitionsJSON(t *testing.T) {
	path := writeFile(t, "defs.json", `{
		"enemies": [{"id": "fast", "name": "Wolf", "health": 150, "speed": 2, "reward": 30, "score": 12}],
		"towers": [{"id": "basic", "name": "Cheap", "cost": 20, "levels": [{"damage": 1, "range": 2, "fire_rate": 1}]}]
	}`)

	lib, err := LoadDefinitions(path)
	if err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}

	fast, _ := lib.Enemy(EnemyFast)
	if fast.Name != "Wolf" || fast.Health != 150 || fast.Reward != 30 {
		t.Errorf("fast enemy not overridden: %+v", fast)
	}
	if fast.Visuals != DefaultEnemyDefs()[EnemyFast].Visuals {
		t.Error("missing visuals should fall back to the defaults")
	}

	basic, _ := lib.Tower(TowerBasic)
	if basic.Cost != 20 || basic.MaxLevel() != 0 {
		t.Errorf("basic tower not overridden: %+v", basic)
	}

	heavy, _ := lib.Enemy(EnemyHeavy)
	if heavy != DefaultEnemyDefs()[EnemyHeavy] {
		t.Error("unlisted archetypes keep their defaults")
	}
}

func TestLoadDefinitionsYAML(t *testing.T) {
	path := writeFile(t, "defs.yaml", `
towers:
  - id: sniper
    name: Long Gun
    cost: 80
    levels:
      - {damage: 10, range: 6, fire_rate: 0.5}
      - {damage: 20, range: 7, fire_rate: 0.5, upgrade_cost: 60}
enemies:
  - id: heavy
    name: Golem
    health: 900
    speed: 0.4
    reward: 70
    score: 30
    visuals:
      color: {r: 10, g: 20, b: 30, a: 255}
      radius_factor: 1.5
`)

	lib, err := LoadDefinitions(path)
	if err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}

	sniper, _ := lib.Tower(TowerSniper)
	if sniper.Cost != 80 || sniper.MaxLevel() != 1 {
		t.Errorf("sniper not overridden: %+v", sniper)
	}
	if cost, ok := sniper.UpgradeCost(0); !ok || cost != 60 {
		t.Errorf("expected upgrade cost 60, got %d", cost)
	}

	heavy, _ := lib.Enemy(EnemyHeavy)
	if heavy.Health != 900 || heavy.Visuals.RadiusFactor != 1.5 || heavy.Visuals.Color.B != 30 {
		t.Errorf("heavy enemy not overridden: %+v", heavy)
	}
}

func TestLoadDefinitionsErrors(t *testing.T) {
	if _, err := LoadDefinitions(writeFile(t, "defs.toml", "")); err == nil {
		t.Error("expected error for unsupported extension")
	}

	if _, err := LoadDefinitions(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}

	if _, err := LoadDefinitions(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("expected decode error")
	}

	unknown := writeFile(t, "unknown.yml", "towers:\n  - id: laser\n    cost: 10\n")
	if _, err := LoadDefinitions(unknown); err == nil {
		t.Error("expected error for unknown archetype")
	}

	invalid := writeFile(t, "invalid.json", `{"towers": [{"id": "rapid", "cost": 10, "levels": []}]}`)
	if _, err := LoadDefinitions(invalid); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("expected ErrInvalidDefinition, got %v", err)
	}
}
