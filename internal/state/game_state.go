// internal/state/game_state.go
package state

import (
	"fmt"
	"go-tower-sim/internal/app"
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/ui"
	"go-tower-sim/pkg/grid"
	"go-tower-sim/pkg/render"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// archetypeKeys bind the number row to the tower catalog order.
var archetypeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// GameState runs one session: it turns input into commands, ticks the
// simulation and draws its snapshot.
type GameState struct {
	sm        *StateMachine
	opts      app.Options
	game      *app.Game
	renderer  *render.GridRenderer
	hud       *ui.HUD
	infoPanel *ui.InfoPanel
	effects   *ui.Effects
	snapshot  app.Snapshot
}

func NewGameState(sm *StateMachine, opts app.Options) (*GameState, error) {
	game, err := app.NewGame(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GroundColor:     config.GroundColor,
		PathColor:       config.PathColor,
		BuildableColor:  config.BuildableColor,
		StrokeColor:     config.TowerStrokeColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	healthColors := render.HealthColors{
		Back: config.HealthBackColor,
		Good: config.HealthGoodColor,
		Mid:  config.HealthMidColor,
		Low:  config.HealthLowColor,
	}
	proj := render.NewProjection(config.CellSize, 0, config.HUDHeight,
		config.ScreenWidth-config.InfoPanelWidth, config.ScreenHeight-config.HUDHeight)

	gs := &GameState{
		sm:        sm,
		opts:      opts,
		game:      game,
		renderer:  render.NewGridRenderer(game.Path, proj, config.ScreenWidth, config.ScreenHeight, mapColors, healthColors),
		hud:       ui.NewHUD(ui.DefaultFace),
		infoPanel: ui.NewInfoPanel(ui.DefaultFace),
		effects:   ui.NewEffects(config.ProjectileColor, config.HealthGoodColor, config.TextWarnColor),
	}
	gs.snapshot = game.Snapshot()
	return gs, nil
}

func (g *GameState) Enter() {
	g.hud.Pause.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && g.snapshot.State == component.Running {
		g.pause()
		return
	}
	if g.snapshot.State == component.Ended && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return
	}

	g.handleKeys()
	g.handleMouse()

	dt := deltaTime * g.hud.Speed.Multiplier()
	g.game.Tick(dt)
	g.effects.Consume(g.game.Events())
	g.effects.Update(dt)
	g.snapshot = g.game.Snapshot()
}

func (g *GameState) restart() {
	opts := g.opts
	opts.AutoStart = true
	gs, err := NewGameState(g.sm, opts)
	if err != nil {
		log.Printf("Failed to restart: %v", err)
		return
	}
	g.sm.SetState(gs)
}

func (g *GameState) pause() {
	g.hud.Pause.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

// PauseClicked reports whether a click at (x, y) hit the pause button.
func (g *GameState) PauseClicked(x, y int) bool {
	return g.hud.Pause.IsClicked(x, y)
}

func (g *GameState) handleKeys() {
	if g.snapshot.State == component.NotStarted && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.Start()
	}
	for i, key := range archetypeKeys {
		if i < len(defs.TowerArchetypes) && inpututil.IsKeyJustPressed(key) {
			g.game.SelectArchetype(defs.TowerArchetypes[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.game.UpgradeSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.game.SellSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.ClearSelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.hud.Speed.Toggle()
	}
}

func (g *GameState) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	if g.hud.Speed.IsClicked(x, y) {
		g.hud.Speed.Toggle()
		return
	}
	if g.snapshot.State == component.Running && g.hud.Pause.IsClicked(x, y) {
		g.pause()
		return
	}
	if y < config.HUDHeight || g.infoPanel.Contains(x, y) {
		return
	}
	g.handleMapClick(g.renderer.Projection().ScreenToCell(x, y))
}

// handleMapClick selects the tower under the cursor, or builds the
// selected archetype on an empty cell.
func (g *GameState) handleMapClick(cell grid.Cell) {
	for _, t := range g.snapshot.Towers {
		if t.Cell == cell {
			g.game.SelectTowerAt(cell.X, cell.Z)
			return
		}
	}
	if _, ok := g.game.SelectedArchetype(); ok {
		g.game.PlaceSelected(cell.X, cell.Z)
		return
	}
	g.game.ClearSelection()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.snapshot
	lib := g.game.Defs

	g.renderer.DrawMap(screen)
	g.drawHover(screen, snap, lib)

	enemyPos := make(map[types.EntityID]grid.Vec3, len(snap.Enemies))
	for _, e := range snap.Enemies {
		enemyPos[e.ID] = e.Position
	}

	for _, t := range snap.Towers {
		def, _ := lib.Tower(t.Archetype)
		var aim *grid.Vec3
		if pos, ok := enemyPos[t.TargetID]; ok {
			aim = &pos
		}
		selected := t.ID == snap.SelectedTower
		if selected {
			g.renderer.DrawRange(screen, t.Cell.Center(config.TowerHeight), t.Range, config.RangeColor)
		}
		radius := float32(config.TowerRadius * def.Visuals.RadiusFactor)
		g.renderer.DrawTower(screen, t.Cell, radius, def.Visuals.Color, t.Level, aim, selected, config.SelectionColor)
	}

	for _, e := range snap.Enemies {
		def, _ := lib.Enemy(e.Archetype)
		radius := float32(config.EnemyRadius * def.Visuals.RadiusFactor)
		g.renderer.DrawEnemy(screen, e.Position, radius, def.Visuals.Color, e.Health, e.MaxHealth)
	}

	for _, p := range snap.Projectiles {
		g.renderer.DrawProjectile(screen, p.Position, config.ProjectileRadius, config.ProjectileColor)
	}

	g.effects.Draw(screen, g.renderer.Projection())
	g.hud.Draw(screen, snap)
	g.infoPanel.Draw(screen, snap, lib)

	if snap.State == component.Ended {
		g.drawGameOver(screen, snap)
	}
}

// drawHover previews placement of the selected archetype under the cursor.
func (g *GameState) drawHover(screen *ebiten.Image, snap app.Snapshot, lib *defs.Library) {
	if !snap.HasArchetype || snap.State != component.Running {
		return
	}
	x, y := ebiten.CursorPosition()
	if y < config.HUDHeight || g.infoPanel.Contains(x, y) {
		return
	}
	cell := g.renderer.Projection().ScreenToCell(x, y)
	if !g.game.Path.IsBuildable(cell.X, cell.Z) && !g.game.Path.IsPath(cell.X, cell.Z) {
		return
	}

	clr := config.HoverValidColor
	if g.game.CheckPlacement(snap.SelectedArchetype, cell.X, cell.Z) != nil {
		clr = config.HoverBlockColor
	}
	g.renderer.DrawCellHighlight(screen, cell, clr)

	if def, ok := lib.Tower(snap.SelectedArchetype); ok {
		if stats, ok := def.Stats(0); ok {
			g.renderer.DrawRange(screen, cell.Center(config.TowerHeight), stats.Range, config.RangeColor)
		}
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image, snap app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Reached wave %d with score %d (%d kills)", snap.Wave, snap.Score, snap.Kills),
		"Press R to play again",
	}
	y := config.ScreenHeight/2 - 20
	for _, line := range lines {
		x := (config.ScreenWidth - ui.TextWidth(ui.DefaultFace, line)) / 2
		text.Draw(screen, line, ui.DefaultFace, x, y, config.TextLightColor)
		y += 20
	}
}

func (g *GameState) Exit() {}
