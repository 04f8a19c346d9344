package game

import "strconv"

// Render draws the current state snapshot to the canvas. It is a read-only
// consumer of the engine state and must not mutate it.
func (g *Game) Render() {
	if g.Ctx == nil {
		return
	}

	ctx := g.Ctx
	a := g.Arena

	// Clear viewport
	ctx.Set("fillStyle", Theme.BackgroundColor)
	ctx.Call("fillRect", 0, 0, g.ViewportW, g.ViewportH)

	// Arena background
	ctx.Set("fillStyle", Theme.ArenaColor)
	ctx.Call("fillRect", a.OffsetX, a.OffsetY, a.Size, a.Size)

	// Border flags proximity to the edge as a warning. Cosmetic only.
	border := Theme.BorderColor
	if g.Status == StatusPlaying && g.Player.NearEdge(a, WarnMargin) {
		border = Theme.BorderWarnColor
	}
	ctx.Set("strokeStyle", border)
	ctx.Set("lineWidth", Theme.BorderWidth)
	ctx.Call("strokeRect", a.OffsetX, a.OffsetY, a.Size, a.Size)

	// Enemies
	ctx.Set("fillStyle", Theme.EnemyColor)
	for _, e := range g.Enemies {
		ctx.Call("fillRect", a.OffsetX+e.X, a.OffsetY+e.Y, e.W, e.H)
	}

	// Player, brighter while the pointer is driving it
	if g.PointerActive {
		ctx.Set("fillStyle", Theme.PlayerActiveColor)
	} else {
		ctx.Set("fillStyle", Theme.PlayerColor)
	}
	ctx.Call("fillRect", a.OffsetX+g.Player.X, a.OffsetY+g.Player.Y, g.Player.W, g.Player.H)

	g.renderHUD()

	switch g.Status {
	case StatusIdle:
		g.renderIdleOverlay()
	case StatusWin:
		g.renderWinOverlay()
	}

	// Stats overlay last, on top of everything
	g.Stats.Render(g.Ctx, g)
}

// renderHUD draws the live counters above the arena.
func (g *Game) renderHUD() {
	ctx := g.Ctx
	a := g.Arena

	ctx.Set("fillStyle", Theme.HUDColor)
	ctx.Set("font", Theme.HUDFont)
	ctx.Set("textBaseline", "bottom")

	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "TIME "+strconv.Itoa(g.Session.CurrentSeconds)+"s", a.OffsetX, a.OffsetY-8)

	ctx.Set("textAlign", "center")
	ctx.Call("fillText", "LEVEL "+strconv.Itoa(g.Level()), a.OffsetX+a.Size/2, a.OffsetY-8)

	ctx.Set("textAlign", "right")
	ctx.Call("fillText", "BEST "+strconv.Itoa(g.Session.HighScore)+"s", a.OffsetX+a.Size, a.OffsetY-8)

	ctx.Set("textBaseline", "alphabetic")
}
