package ui

import (
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap face every widget draws with.
var DefaultFace font.Face = basicfont.Face7x13

// TextWidth measures a single line in pixels.
func TextWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}
