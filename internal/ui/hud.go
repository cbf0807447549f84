package ui

import (
	"fmt"
	"go-tower-sim/internal/app"
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUD is the top bar: economy, wave progress and the escape budget.
type HUD struct {
	fontFace  font.Face
	wave      *WaveIndicator
	lives     *LivesIndicator
	indicator *StateIndicator
	Speed     *SpeedButton
	Pause     *PauseButton
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		fontFace: face,
		wave:     NewWaveIndicator(config.ScreenWidth-config.InfoPanelWidth-40, config.HUDHeight/2+5, face),
		lives: NewLivesIndicator(float32(config.ScreenWidth-config.InfoPanelWidth+config.InfoPanelWidth/2), 20, face,
			config.HealthGoodColor, config.HealthLowColor),
		indicator: NewStateIndicator(20, config.HUDHeight/2, 8,
			config.HoverValidColor, config.TextWarnColor, config.HealthBackColor),
		Speed: NewSpeedButton(float32(config.ScreenWidth-30), config.HUDHeight/2, 12, config.SpeedButtonColors),
		Pause: NewPauseButton(float32(config.ScreenWidth-70), config.HUDHeight/2, 10, config.TextLightColor, config.HoverValidColor),
	}
}

// StatusLine is the text part of the bar.
func StatusLine(snap app.Snapshot) string {
	line := fmt.Sprintf("Money: $%d   Score: %d   Kills: %d   Wave %d", snap.Money, snap.Score, snap.Kills, snap.Wave)
	switch {
	case snap.State == component.NotStarted:
		line += "   Press Space to start"
	case snap.WavePhase == component.WaveResting:
		line += fmt.Sprintf("   Next wave in %.1fs", snap.NextWaveIn)
	default:
		line += fmt.Sprintf("   Spawned %d/%d", snap.WaveSpawned, snap.WaveTarget)
	}
	return line
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.PanelColor, false)
	h.indicator.Draw(screen, snap.State, snap.WavePhase)
	text.Draw(screen, StatusLine(snap), h.fontFace, 40, config.HUDHeight/2+5, config.TextLightColor)
	h.wave.Draw(screen, snap.Wave)
	h.lives.Draw(screen, snap.LivesRemaining, snap.MaxEscapes)
	h.Speed.Draw(screen)
	if snap.State == component.Running {
		h.Pause.Draw(screen)
	}
}
