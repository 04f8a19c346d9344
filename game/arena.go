package game

import "math"

// Arena is the square play area, sized from the viewport and centered in it.
// All entity coordinates are relative to its top-left corner.
type Arena struct {
	Size    float64
	OffsetX float64
	OffsetY float64
}

// LayoutArena computes the arena for a viewport: a square of side
// min(w, h) * ArenaScale, centered.
func LayoutArena(viewportW, viewportH float64) Arena {
	size := math.Min(viewportW, viewportH) * ArenaScale
	return Arena{
		Size:    size,
		OffsetX: (viewportW - size) / 2,
		OffsetY: (viewportH - size) / 2,
	}
}

// ToLocal converts screen coordinates to arena-local coordinates.
func (a Arena) ToLocal(screenX, screenY float64) Vec2 {
	return Vec2{X: screenX - a.OffsetX, Y: screenY - a.OffsetY}
}

// ToScreen converts arena-local coordinates to screen coordinates.
func (a Arena) ToScreen(p Vec2) (x, y float64) {
	return p.X + a.OffsetX, p.Y + a.OffsetY
}

// Contains reports whether an arena-local point falls inside the play area.
func (a Arena) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= a.Size && p.Y >= 0 && p.Y <= a.Size
}
