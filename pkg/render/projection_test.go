package render

import (
	"go-tower-sim/pkg/grid"
	"image/color"
	"testing"
)

func TestProjectionRoundTrip(t *testing.T) {
	p := NewProjection(40, 0, 60, 800, 840)
	if p.OriginX != 400 || p.OriginY != 480 {
		t.Fatalf("unexpected origin %v,%v", p.OriginX, p.OriginY)
	}

	for _, c := range []grid.Cell{{X: 0, Z: 0}, {X: -4, Z: 2}, {X: 9, Z: 3}, {X: -9, Z: -4}} {
		x, y := p.CellToScreen(c)
		if got := p.ScreenToCell(int(x), int(y)); got != c {
			t.Errorf("cell %v -> (%v,%v) -> %v", c, x, y, got)
		}
		// Anywhere inside the cell maps back to it.
		if got := p.ScreenToCell(int(x)+19, int(y)-19); got != c {
			t.Errorf("near corner of %v mapped to %v", c, got)
		}
	}
}

func TestWorldToScreenIgnoresHeight(t *testing.T) {
	p := NewProjection(10, 0, 0, 100, 100)
	x0, y0 := p.WorldToScreen(grid.Vec3{X: 1, Z: 2})
	x1, y1 := p.WorldToScreen(grid.Vec3{X: 1, Y: 5, Z: 2})
	if x0 != x1 || y0 != y1 || x0 != 60 || y0 != 70 {
		t.Errorf("expected (60,70) for both, got (%v,%v) and (%v,%v)", x0, y0, x1, y1)
	}
}

func TestHealthColorsPick(t *testing.T) {
	h := HealthColors{
		Good: color.RGBA{G: 255, A: 255},
		Mid:  color.RGBA{R: 255, G: 255, A: 255},
		Low:  color.RGBA{R: 255, A: 255},
	}
	if h.Pick(1) != h.Good || h.Pick(0.5) != h.Mid || h.Pick(0.1) != h.Low {
		t.Error("unexpected health color bands")
	}
}
