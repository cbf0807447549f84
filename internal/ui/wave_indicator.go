package ui

import (
	"go-tower-sim/internal/config"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the current wave number in Roman numerals.
type WaveIndicator struct {
	X, Y         int
	Face         font.Face
	Color        color.RGBA
	BossColor    color.RGBA
	OutlineColor color.RGBA
}

func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Face:         face,
		Color:        config.TextLightColor,
		BossColor:    config.TextWarnColor,
		OutlineColor: color.RGBA{0, 0, 0, 255},
	}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw centres the numeral on X. Every tenth wave is drawn in the warning
// color since that is where enemy scaling starts compounding.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}

	label := toRoman(waveNumber)
	textColor := i.Color
	if waveNumber%config.WaveScalingTier == 0 {
		textColor = i.BossColor
	}

	x := i.X - TextWidth(i.Face, label)/2
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.Face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.Face, x, i.Y, textColor)
}
