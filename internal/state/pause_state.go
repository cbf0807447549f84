// internal/state/pause_state.go
package state

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/ui"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the session by simply not ticking it, and draws the
// paused screen underneath a dim overlay.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || s.buttonClicked() {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) buttonClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	gs, ok := s.previousState.(*GameState)
	if !ok {
		return false
	}
	x, y := ebiten.CursorPosition()
	return gs.PauseClicked(x, y)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	label := "PAUSED"
	x := (config.ScreenWidth - ui.TextWidth(ui.DefaultFace, label)) / 2
	text.Draw(screen, label, ui.DefaultFace, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
