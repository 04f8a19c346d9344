package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// IconSize is the drawn size of the decorative idle-screen icon, in px.
const IconSize = 96.0

// IconURL points at a generative image service producing the decorative
// idle-screen icon. Purely cosmetic; any failure falls back to a drawn glyph.
const IconURL = "https://image.pollinations.ai/prompt/" +
	"minimalist%20pixel%20art%20blue%20square%20hero%20game%20icon%20dark%20background" +
	"?width=96&height=96&nologo=true"

// IconLoader performs the one-shot icon fetch at startup. It never blocks
// game start and has zero effect on the simulation.
type IconLoader struct {
	Image  *js.Object
	Loaded bool
	Failed bool
}

// Fetch starts loading the icon. Completion and failure both resolve
// asynchronously via the element's callbacks.
func (l *IconLoader) Fetch() {
	if js.Global == nil {
		l.Failed = true
		return
	}

	img := js.Global.Get("Image").New()
	img.Set("crossOrigin", "anonymous")
	img.Set("onload", func() {
		l.Loaded = true
	})
	img.Set("onerror", func(event *js.Object) {
		l.Failed = true
		Debug("icon fetch failed, using fallback")
	})
	img.Set("src", IconURL)
	l.Image = img
}
