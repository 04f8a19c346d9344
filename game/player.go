package game

// Player is the player-controlled square. It exists for the lifetime of a
// round and is repositioned on every reset.
type Player struct {
	Box
}

// NewPlayer creates a player centered in the arena.
func NewPlayer(a Arena) *Player {
	p := &Player{Box: Box{W: PlayerSize, H: PlayerSize}}
	p.MoveTo(a, Vec2{X: a.Size / 2, Y: a.Size / 2})
	return p
}

// MoveTo centers the player box on the given arena-local point, clamped so
// the full box stays inside the arena.
func (p *Player) MoveTo(a Arena, center Vec2) {
	p.X = Clamp(center.X-PlayerSize/2, 0, a.Size-PlayerSize)
	p.Y = Clamp(center.Y-PlayerSize/2, 0, a.Size-PlayerSize)
}

// OnBoundary reports whether the player box touches or crosses an arena
// edge. Since MoveTo clamps, touching the clamped extreme is what a loss
// looks like in practice.
func (p *Player) OnBoundary(a Arena) bool {
	return p.X <= 0 || p.X >= a.Size-PlayerSize ||
		p.Y <= 0 || p.Y >= a.Size-PlayerSize
}

// NearEdge reports whether any side of the player box is within margin of an
// arena edge. Drives the cosmetic border warning only.
func (p *Player) NearEdge(a Arena, margin float64) bool {
	return p.X < margin || p.X > a.Size-PlayerSize-margin ||
		p.Y < margin || p.Y > a.Size-PlayerSize-margin
}
