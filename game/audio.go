package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// CuePlayer plays short synthesized WebAudio cues on round transitions.
// Entirely cosmetic; every method is a no-op when no AudioContext exists.
type CuePlayer struct {
	ctx        *js.Object
	masterGain *js.Object
}

// NewCuePlayer creates a cue player. The AudioContext itself is created
// lazily on the first user gesture, as browsers require.
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{}
}

// Resume initializes the context if needed and resumes it when the browser
// has it suspended. Call from a pointer event handler.
func (c *CuePlayer) Resume() {
	if js.Global == nil {
		return
	}

	if c.ctx == nil {
		audioCtx := js.Global.Get("AudioContext")
		if audioCtx == nil || audioCtx == js.Undefined {
			audioCtx = js.Global.Get("webkitAudioContext")
		}
		if audioCtx == nil || audioCtx == js.Undefined {
			return
		}
		c.ctx = audioCtx.New()
		c.masterGain = c.ctx.Call("createGain")
		c.masterGain.Call("connect", c.ctx.Get("destination"))
		c.masterGain.Get("gain").Set("value", 0.3)
	}

	if c.ctx.Get("state").String() == "suspended" {
		c.ctx.Call("resume")
	}
}

// beep schedules a single oscillator note offset seconds from now.
func (c *CuePlayer) beep(waveform string, freq, offset, duration float64) {
	if c == nil || c.ctx == nil {
		return
	}

	now := c.ctx.Get("currentTime").Float()
	osc := c.ctx.Call("createOscillator")
	osc.Set("type", waveform)
	osc.Get("frequency").Set("value", freq)

	gain := c.ctx.Call("createGain")
	gain.Get("gain").Set("value", 0.5)
	gain.Get("gain").Call("setTargetAtTime", 0, now+offset+duration*0.6, duration*0.2)

	osc.Call("connect", gain)
	gain.Call("connect", c.masterGain)
	osc.Call("start", now+offset)
	osc.Call("stop", now+offset+duration)
}

// PlayStart is the round-start blip.
func (c *CuePlayer) PlayStart() {
	c.beep("square", 660, 0, 0.08)
}

// PlayWin is a short ascending arpeggio for the level-cleared banner.
func (c *CuePlayer) PlayWin() {
	c.beep("square", 523, 0, 0.1)
	c.beep("square", 659, 0.1, 0.1)
	c.beep("square", 784, 0.2, 0.16)
}

// PlayLoss is the low buzz on a crash.
func (c *CuePlayer) PlayLoss() {
	c.beep("sawtooth", 110, 0, 0.35)
}
