package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// domListener remembers a registered handler so Teardown can remove it.
type domListener struct {
	target *js.Object
	event  string
	fn     *js.Object
}

// PointerStart handles a press at screen coordinates. Only acted on while
// Idle, and only if the point falls inside the arena; it positions the
// player at the point and starts the round.
func (g *Game) PointerStart(screenX, screenY float64) {
	p := g.Arena.ToLocal(screenX, screenY)
	if g.Status != StatusIdle || !g.Arena.Contains(p) {
		return
	}

	g.PointerActive = true
	g.PointerPos = p
	g.Player.MoveTo(g.Arena, p)
	g.Status = StatusPlaying
	g.RoundStart = g.Now
	g.LastSpeedUp = g.Now
	g.Audio.PlayStart()
}

// PointerMove re-centers the player on the pointer, clamped to the arena.
// Only acted on while Playing with the pointer active; the position is
// tracked regardless so a level-up continuation can resume at the pointer.
func (g *Game) PointerMove(screenX, screenY float64) {
	p := g.Arena.ToLocal(screenX, screenY)
	g.PointerPos = p

	if g.Status != StatusPlaying || !g.PointerActive {
		return
	}
	g.Player.MoveTo(g.Arena, p)
}

// PointerEnd clears the pointer-active flag. The round keeps running; the
// player just stops following the pointer.
func (g *Game) PointerEnd() {
	g.PointerActive = false
}

// HandleResize recomputes arena geometry from the live viewport and performs
// a full non-level-up reset.
func (g *Game) HandleResize() {
	if js.Global == nil {
		return
	}
	g.SetViewport(
		js.Global.Get("innerWidth").Float(),
		js.Global.Get("innerHeight").Float(),
	)
}

// SetupInputHandlers registers pointer, touch, resize, and overlay-toggle
// listeners on the document. First touch point wins; touch moves suppress
// scrolling while a round is live.
func (g *Game) SetupInputHandlers() {
	doc := js.Global.Get("document")

	g.listen(doc, "mousedown", func(event *js.Object) {
		g.Audio.Resume()
		g.PointerStart(event.Get("clientX").Float(), event.Get("clientY").Float())
	})

	g.listen(doc, "mousemove", func(event *js.Object) {
		g.PointerMove(event.Get("clientX").Float(), event.Get("clientY").Float())
	})

	g.listen(doc, "mouseup", func(event *js.Object) {
		g.PointerEnd()
	})

	g.listen(doc, "touchstart", func(event *js.Object) {
		g.Audio.Resume()
		touch := event.Get("touches").Index(0)
		g.PointerStart(touch.Get("clientX").Float(), touch.Get("clientY").Float())
	})

	g.listen(doc, "touchmove", func(event *js.Object) {
		if g.Status == StatusPlaying {
			event.Call("preventDefault")
		}
		touch := event.Get("touches").Index(0)
		g.PointerMove(touch.Get("clientX").Float(), touch.Get("clientY").Float())
	})

	g.listen(doc, "touchend", func(event *js.Object) {
		g.PointerEnd()
	})

	g.listen(js.Global, "resize", func(event *js.Object) {
		g.HandleResize()
	})

	// Stats overlay toggle (F10 = 121)
	g.listen(doc, "keydown", func(event *js.Object) {
		if event.Get("keyCode").Int() == 121 {
			g.Stats.Toggle()
			event.Call("preventDefault")
		}
	})
}

// listen wraps a handler with js.MakeFunc so the identical object can be
// passed to removeEventListener later.
func (g *Game) listen(target *js.Object, event string, fn func(*js.Object)) {
	wrapped := js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		var ev *js.Object
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", event, wrapped)
	g.listeners = append(g.listeners, domListener{target: target, event: event, fn: wrapped})
}
