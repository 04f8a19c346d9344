//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/hvirtanen/boxdodge/common"
	"github.com/hvirtanen/boxdodge/game"
)

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	// Get 2D context
	ctx := canvas.Call("getContext", "2d")

	// Seed spawn randomness from the clock
	rng := common.NewSeededRNG(uint32(js.Global.Get("Date").Call("now").Int64()))

	// Create the game instance
	g := game.NewGame(canvas, ctx, rng)
	g.SetupInputHandlers()

	// Decorative icon; failure falls back to a drawn glyph
	g.Icon.Fetch()

	g.Start()

	// Tear down the loop, timers and listeners when the page goes away
	js.Global.Call("addEventListener", "beforeunload", func() {
		g.Teardown()
	})

	select {}
}
