package game

import "strconv"

// renderIdleOverlay veils the arena and draws the title, the last-run
// summary when one exists, and the decorative icon (or its fallback).
func (g *Game) renderIdleOverlay() {
	ctx := g.Ctx
	a := g.Arena

	ctx.Set("fillStyle", Theme.OverlayVeilColor)
	ctx.Call("fillRect", a.OffsetX, a.OffsetY, a.Size, a.Size)

	cx := a.OffsetX + a.Size/2
	cy := a.OffsetY + a.Size/2

	g.renderIcon(cx, cy-120)

	ctx.Set("textAlign", "center")
	ctx.Set("fillStyle", Theme.TextPrimaryColor)
	ctx.Set("font", Theme.TitleFont)
	ctx.Call("fillText", "BOXDODGE", cx, cy-30)

	ctx.Set("font", Theme.InstructFont)
	ctx.Set("fillStyle", Theme.TextSecondaryColor)
	ctx.Call("fillText", "TAP OR CLICK INSIDE THE ARENA TO START", cx, cy+10)
	ctx.Call("fillText", "SURVIVE "+strconv.Itoa(int(WinThresholdMS/1000))+"s TO LEVEL UP", cx, cy+34)

	if g.Session.HasLastRun {
		summary := "LAST RUN " + strconv.Itoa(g.Session.LastRunSeconds) + "s · " +
			strconv.Itoa(g.Session.LastRunEnemies) + " ENEMIES"
		ctx.Set("fillStyle", Theme.TextPrimaryColor)
		ctx.Call("fillText", summary, cx, cy+70)
	}
}

// renderWinOverlay draws the level-cleared banner shown while the
// continuation timer runs.
func (g *Game) renderWinOverlay() {
	ctx := g.Ctx
	a := g.Arena

	ctx.Set("fillStyle", Theme.OverlayVeilColor)
	ctx.Call("fillRect", a.OffsetX, a.OffsetY, a.Size, a.Size)

	cx := a.OffsetX + a.Size/2
	cy := a.OffsetY + a.Size/2

	ctx.Set("textAlign", "center")
	ctx.Set("fillStyle", Theme.TextPrimaryColor)
	ctx.Set("font", Theme.TextFont)
	ctx.Call("fillText", "LEVEL "+strconv.Itoa(g.Level())+" CLEARED", cx, cy-10)

	ctx.Set("font", Theme.InstructFont)
	ctx.Set("fillStyle", Theme.TextSecondaryColor)
	ctx.Call("fillText", "+1 ENEMY INCOMING", cx, cy+24)
}

// renderIcon draws the fetched decorative icon centered at (x, y), or a
// fallback square when the fetch failed or has not finished.
func (g *Game) renderIcon(x, y float64) {
	ctx := g.Ctx

	if g.Icon.Loaded {
		ctx.Call("drawImage", g.Icon.Image, x-IconSize/2, y-IconSize/2, IconSize, IconSize)
		return
	}

	ctx.Call("save")
	ctx.Call("translate", x, y)
	ctx.Call("rotate", 0.785)
	ctx.Set("fillStyle", Theme.FallbackIconColor)
	ctx.Call("fillRect", -IconSize/4, -IconSize/4, IconSize/2, IconSize/2)
	ctx.Call("restore")
}
