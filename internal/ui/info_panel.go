// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin = 10
	lineHeight  = 18
	swatchSize  = 10
)

// InfoPanel is the right-hand column: the tower catalog with hotkeys, the
// selected tower's stats and the control summary.
type InfoPanel struct {
	X, Y, Width, Height int
	fontFace            font.Face
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		X:        config.ScreenWidth - config.InfoPanelWidth,
		Y:        config.HUDHeight,
		Width:    config.InfoPanelWidth,
		Height:   config.ScreenHeight - config.HUDHeight,
		fontFace: face,
	}
}

// Contains reports whether a screen point falls on the panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// CatalogLine is the catalog entry for the i-th archetype hotkey.
func CatalogLine(hotkey int, def defs.TowerDefinition, affordable bool) string {
	line := fmt.Sprintf("[%d] %s  $%d", hotkey, def.Name, def.Cost)
	if !affordable {
		line += "  (need funds)"
	}
	return line
}

// TowerDetails lists the stats of a placed tower.
func TowerDetails(view app.TowerView, def defs.TowerDefinition) []string {
	lines := []string{
		def.Name,
		fmt.Sprintf("Level: %d/%d", view.Level, view.MaxLevel),
		fmt.Sprintf("Damage: %d", view.Damage),
		fmt.Sprintf("Range: %.1f", view.Range),
		fmt.Sprintf("Fire Rate: %.2f/s", view.FireRate),
		fmt.Sprintf("Invested: $%d", view.Investment),
	}
	if view.Level < view.MaxLevel {
		lines = append(lines, fmt.Sprintf("[U] Upgrade: $%d", view.UpgradeCost))
	} else {
		lines = append(lines, "Max level")
	}
	return append(lines, fmt.Sprintf("[S] Sell: $%d", view.SellValue))
}

var controlLines = []string{
	"Left click: place / select",
	"Esc: clear selection",
	"F1: fast forward",
	"P: pause",
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap app.Snapshot, lib *defs.Library) {
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), config.PanelColor, false)
	vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(p.X), float32(p.Y+p.Height), 1, config.TowerStrokeColor, false)

	x := p.X + panelMargin
	y := p.Y + panelMargin + lineHeight

	text.Draw(screen, "Towers", p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	for i, a := range defs.TowerArchetypes {
		def, ok := lib.Tower(a)
		if !ok {
			continue
		}
		selected := snap.HasArchetype && snap.SelectedArchetype == a
		if selected {
			vector.DrawFilledRect(screen, float32(p.X+2), float32(y-lineHeight+4), float32(p.Width-4), lineHeight*2, config.SelectionColor, false)
		}
		vector.DrawFilledRect(screen, float32(x), float32(y-swatchSize), swatchSize, swatchSize, def.Visuals.Color, false)

		clr := color.Color(config.TextLightColor)
		if selected {
			clr = color.Black
		} else if snap.Money < def.Cost {
			clr = config.TextWarnColor
		}
		text.Draw(screen, CatalogLine(i+1, def, snap.Money >= def.Cost), p.fontFace, x+swatchSize+6, y, clr)
		y += lineHeight
		text.Draw(screen, def.Description, p.fontFace, x+swatchSize+6, y, clr)
		y += lineHeight + 4
	}

	y += lineHeight
	if view, ok := selectedTower(snap); ok {
		if def, ok := lib.Tower(view.Archetype); ok {
			for i, line := range TowerDetails(view, def) {
				clr := config.TextLightColor
				if i == 0 {
					clr = config.SelectionColor
				}
				text.Draw(screen, line, p.fontFace, x, y, clr)
				y += lineHeight
			}
		}
	}

	y = p.Y + p.Height - panelMargin - lineHeight*(len(controlLines)-1)
	for _, line := range controlLines {
		text.Draw(screen, line, p.fontFace, x, y, config.TextLightColor)
		y += lineHeight
	}
}

func selectedTower(snap app.Snapshot) (app.TowerView, bool) {
	if snap.SelectedTower == 0 {
		return app.TowerView{}, false
	}
	for _, view := range snap.Towers {
		if view.ID == snap.SelectedTower {
			return view, true
		}
	}
	return app.TowerView{}, false
}
