// internal/state/menu_state.go
package state

import (
	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/ui"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState is the title screen. Space starts a session.
type MenuState struct {
	sm   *StateMachine
	opts app.Options
	err  error
}

func NewMenuState(sm *StateMachine, opts app.Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	gs, err := NewGameState(m.sm, m.opts)
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		m.err = err
		return
	}
	gs.game.Start()
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	lines := []string{
		"TOWER DEFENSE",
		"",
		"Press Space to start",
	}
	if m.err != nil {
		lines = append(lines, "", m.err.Error())
	}
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		x := (config.ScreenWidth - ui.TextWidth(ui.DefaultFace, line)) / 2
		text.Draw(screen, line, ui.DefaultFace, x, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {}
