package parallax

import "math"

const (
	maxShiftX   = 10.0
	maxShiftY   = 6.0
	activeScale = 1.06
)

// Rect is the hero area in pointer coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Transform is the background offset for a pointer position.
type Transform struct {
	X, Y  float64
	Scale float64
}

// Rest is the transform while the pointer is outside the hero.
func Rest() Transform {
	return Transform{Scale: 1}
}

// Offset maps a pointer inside rect to a shift of at most ±5 by ±3 units,
// centred on the middle of the rect.
func Offset(pointerX, pointerY float64, rect Rect) Transform {
	if rect.Width <= 0 || rect.Height <= 0 {
		return Rest()
	}
	return Transform{
		X:     ((pointerX-rect.Left)/rect.Width - 0.5) * maxShiftX,
		Y:     ((pointerY-rect.Top)/rect.Height - 0.5) * maxShiftY,
		Scale: activeScale,
	}
}

// Cells rounds the offset to whole terminal cells.
func (t Transform) Cells() (int, int) {
	return int(math.Round(t.X)), int(math.Round(t.Y))
}
